package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/haskell-hop/internal/games/hop"
	"github.com/vovakirdan/haskell-hop/internal/registry"
	"github.com/vovakirdan/haskell-hop/internal/storage"
)

var (
	flagScoreLimit int
	flagScoreClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs by jump count and how many runs ended in
each stage.

Examples:
  hop scores
  hop scores --limit 25
  hop scores --clear
  hop scores --db ./hop.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoreClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagScoreClear {
		if err := store.ClearRuns(hop.ID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	best, err := store.HighScore(hop.ID)
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}

	runs, err := store.TopRuns(hop.ID, flagScoreLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(hop.ID))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hop play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Jumps", "Stage", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-10s  %s\n", i+1, r.Jumps, r.Stage, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(hop.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	counts, err := store.StageCounts(hop.ID)
	if err != nil {
		return fmt.Errorf("retrieving stage counts: %w", err)
	}

	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Total jumps: %d  Average: %.1f\n", best, stats.RunsCount, stats.TotalJumps, stats.AvgJumps)
	fmt.Println("Furthest stage:")
	for _, stage := range []string{"DEFAULT", "NICE", "CORRUPT_A", "CORRUPT_B", "JAVA"} {
		if n := counts[stage]; n > 0 {
			fmt.Printf("  %-10s  %d\n", stage, n)
		}
	}
	return nil
}
