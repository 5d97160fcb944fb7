package config

import (
	_ "embed"
)

//go:embed defaults/hop.yaml
var defaultHopYAML []byte

// DefaultHopConfig returns the default configuration.
func DefaultHopConfig() HopConfig {
	return HopConfig{
		Input: InputConfig{
			HoldMS: 120,
		},
		Display: DisplayConfig{
			HUD:    true,
			Glyphs: "unicode",
		},
		Window: WindowConfig{
			Width:  1000,
			Height: 500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
