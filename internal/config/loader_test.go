package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home, wd = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)
	cfg, err := LoadHop("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultHopConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultHopConfig())
	}
}

func TestSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "hop.yaml"), "input:\n  hold_ms: 200\n")
	cfg, err := LoadHop("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input.HoldMS != 200 {
		t.Errorf("local: hold_ms = %d, want 200", cfg.Input.HoldMS)
	}
	if cfg.Display.Glyphs != "unicode" {
		t.Errorf("omitted key lost its default: %q", cfg.Display.Glyphs)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "hop.yaml"), "input:\n  hold_ms: 300\n")
	cfg, _ = LoadHop("")
	if cfg.Input.HoldMS != 300 {
		t.Errorf("user: hold_ms = %d, want 300", cfg.Input.HoldMS)
	}

	custom := filepath.Join(wd, "custom.yaml")
	writeFile(t, custom, "display:\n  glyphs: ascii\n  hud: false\n")
	cfg, err = LoadHop(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Glyphs != "ascii" || cfg.Display.HUD || cfg.Input.HoldMS != 120 {
		t.Errorf("custom: %+v", cfg)
	}
}

func TestInvalidSearchedFileIsReported(t *testing.T) {
	tests := []struct {
		name    string
		user    bool // Write to ~/.arcade/configs instead of ./configs
		content string
	}{
		{"user invalid value", true, "display:\n  glyphs: emoji\n"},
		{"user malformed", true, "input: ["},
		{"local invalid value", false, "input:\n  hold_ms: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, wd := isolate(t)
			path := filepath.Join(wd, "configs", "hop.yaml")
			if tt.user {
				path = filepath.Join(home, ".arcade", "configs", "hop.yaml")
				// A valid local file must not hide the broken user file.
				writeFile(t, filepath.Join(wd, "configs", "hop.yaml"), "input:\n  hold_ms: 90\n")
			}
			writeFile(t, path, tt.content)

			_, err := LoadHop("")
			if err == nil {
				t.Fatal("want error for broken config file")
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q does not name %s", err, path)
			}
		})
	}
}

func TestCustomPathErrors(t *testing.T) {
	_, wd := isolate(t)

	if _, err := LoadHop(filepath.Join(wd, "missing.yaml")); err == nil {
		t.Error("missing custom file: want error")
	}

	bad := filepath.Join(wd, "bad.yaml")
	writeFile(t, bad, "input: [")
	if _, err := LoadHop(bad); err == nil {
		t.Error("malformed custom file: want error")
	}

	invalid := filepath.Join(wd, "invalid.yaml")
	writeFile(t, invalid, "input:\n  hold_ms: 0\n")
	if _, err := LoadHop(invalid); err == nil {
		t.Error("hold_ms 0: want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HopConfig)
		ok     bool
	}{
		{"defaults", func(*HopConfig) {}, true},
		{"negative hold", func(c *HopConfig) { c.Input.HoldMS = -1 }, false},
		{"bad glyphs", func(c *HopConfig) { c.Display.Glyphs = "braille" }, false},
		{"zero window", func(c *HopConfig) { c.Window.Width = 0 }, false},
		{"bad level", func(c *HopConfig) { c.Logging.Level = "loud" }, false},
		{"debug level", func(c *HopConfig) { c.Logging.Level = "debug" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultHopConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestHoldWindowAndLogFile(t *testing.T) {
	home, _ := isolate(t)
	cfg := DefaultHopConfig()
	if cfg.Input.HoldWindow() != 120*time.Millisecond {
		t.Errorf("hold window = %v", cfg.Input.HoldWindow())
	}

	path, err := cfg.LogFile()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".arcade", "hop.log"); path != want {
		t.Errorf("log file = %q, want %q", path, want)
	}

	cfg.Logging.File = "/tmp/x.log"
	if path, _ := cfg.LogFile(); path != "/tmp/x.log" {
		t.Errorf("log file = %q", path)
	}
}
