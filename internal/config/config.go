// Package config provides YAML-based configuration for the front-ends.
// Physics and narrative constants live with the game and are not
// configurable.
package config

import (
	"fmt"
	"time"
)

// HopConfig contains all configuration for haskellHop.
type HopConfig struct {
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig controls how terminal key events become held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // A key stays held this long after its last press event
}

// HoldWindow returns HoldMS as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	HUD    bool   `yaml:"hud"`    // Draw the jumps/stage status line
	Glyphs string `yaml:"glyphs"` // "unicode" or "ascii"
}

// WindowConfig sizes the Ebiten window.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig controls the log file used by the interactive front-ends.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means ~/.arcade/hop.log
}

// Validate reports the first invalid value.
func (c HopConfig) Validate() error {
	if c.Input.HoldMS <= 0 {
		return fmt.Errorf("config: input.hold_ms must be positive, got %d", c.Input.HoldMS)
	}
	switch c.Display.Glyphs {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("config: display.glyphs must be unicode or ascii, got %q", c.Display.Glyphs)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
