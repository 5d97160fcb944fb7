package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/games/hop"
	"github.com/vovakirdan/haskell-hop/internal/platform/window"
	"github.com/vovakirdan/haskell-hop/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window (1000x500 by default, see window.*).

The window redraws at the display refresh rate; --fps does not apply.
Textures are read from textures/*.png relative to the working
directory; missing textures are drawn as text art.

Controls:
  W/Space/Up - Jump
  A/Left     - Move left
  D/Right    - Move right
  Q/Esc      - Quit

Examples:
  hop window
  hop window --seed 7 --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newStderrLogger(cfg, "hop-window")

	game, err := newGame(cfg)
	if err != nil {
		return err
	}

	state, err := window.Run(game, window.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: cfg.Window.Width,
			ScreenH: cfg.Window.Height,
			Seed:    flagSeed,
		},
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	logger.Info("run finished", "jumps", state.Score, "stage", state.Stage, "ticks", state.Ticks)

	if state.Score <= 0 {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{
		GameID: hop.ID,
		Jumps:  state.Score,
		Stage:  state.Stage,
		Ticks:  state.Ticks,
	}); err != nil {
		logger.Warn("could not save run", "error", err)
	}
	return nil
}
