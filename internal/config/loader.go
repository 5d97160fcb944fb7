package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const hopFile = "hop.yaml"

// LoadHop loads the configuration.
// Search order: customPath -> ~/.arcade/configs/hop.yaml -> ./configs/hop.yaml -> embedded default.
// Files are decoded over the defaults, so keys they omit keep their
// default values. Only missing files are skipped: an unreadable or
// invalid file is an error naming its path.
func LoadHop(customPath string) (HopConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HopConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseHop(data)
		if err != nil {
			return HopConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// A missing file falls through; a broken one is reported.
	for _, path := range []string{userConfigPath(hopFile), filepath.Join("configs", hopFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return HopConfig{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		cfg, err := parseHop(data)
		if err != nil {
			return HopConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseHop(defaultHopYAML)
	if err != nil {
		return DefaultHopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseHop(data []byte) (HopConfig, error) {
	cfg := DefaultHopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HopConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HopConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// DataDir returns ~/.arcade, the directory holding the database and log.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".arcade"), nil
}

// LogFile returns the configured log path or the default under DataDir.
func (c HopConfig) LogFile() (string, error) {
	if c.Logging.File != "" {
		return c.Logging.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hop.log"), nil
}
