package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/platform/tui"
	"github.com/vovakirdan/haskell-hop/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  W/Space/Up - Jump
  A/Left     - Move left
  D/Right    - Move right
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Q/Esc      - Quit

Terminals only report key presses, so a key counts as held for
input.hold_ms after its last (auto-repeated) press.

Logs go to logging.file (default ~/.arcade/hop.log).

Examples:
  hop play
  hop play --seed 42
  hop play --config ./my-hop.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openFileLogger(cfg)
	defer closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger = nil
	}

	game, err := newGame(cfg)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run history; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, tui.Options{
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Seed:      flagSeed,
		},
		HoldWindow: cfg.Input.HoldWindow(),
		Logger:     logger,
	})
}
