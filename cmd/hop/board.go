package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/haskell-hop/internal/games/hop"
	"github.com/vovakirdan/haskell-hop/internal/platform/tui"
	"github.com/vovakirdan/haskell-hop/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse run history interactively",
	Long: `Open a scrollable table of recorded runs.

Controls:
  Up/K, Down/J - Scroll
  R            - Reload
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The board reports the missing history itself
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunScoreboard(store, hop.ID, width, height)
}
