// hop is haskellHop: a one-screen platformer whose score text slowly
// turns against the player.
//
// Usage:
//
//	hop list             - List registered games
//	hop play             - Play in the terminal
//	hop window           - Play in a desktop window
//	hop serve            - Start SSH server for remote play
//	hop scores           - Show the best runs
//	hop board            - Browse run history interactively
//	hop simulate         - Run headless with scripted input
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/hop.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - Override logging.level from the config
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/haskell-hop/internal/config"
	"github.com/vovakirdan/haskell-hop/internal/games/hop"
	"github.com/vovakirdan/haskell-hop/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hop",
	Short: "haskellHop - jump, count, and watch the number go wrong",
	Long: `haskellHop is a small platformer. Every jump is counted on screen,
and the count does not stay friendly for long.

Available commands:
  list      - List registered games
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - Show the best runs
  board     - Browse run history interactively
  simulate  - Run headless with scripted input

Examples:
  hop play
  hop window --seed 42
  hop serve --ssh :2222
  hop simulate --ticks 6000 --jump-every 1`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Terminal redraw rate (frames per second); the game always runs at 60 ticks/s")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/hop.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig loads the config and applies --log-level.
func loadConfig() (config.HopConfig, error) {
	cfg, err := config.LoadHop(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newGame creates the hop game from the registry with display settings applied.
func newGame(cfg config.HopConfig) (*hop.Game, error) {
	g, err := registry.Create(hop.ID)
	if err != nil {
		return nil, err
	}
	game, ok := g.(*hop.Game)
	if !ok {
		return nil, fmt.Errorf("game %q is not haskellHop", hop.ID)
	}
	game.SetGlyphs(cfg.Display.Glyphs)
	game.SetHUD(cfg.Display.HUD)
	return game, nil
}

// openFileLogger opens the configured log file. The terminal belongs to
// the game while it runs, so interactive front-ends log there instead.
// The returned close func is never nil.
func openFileLogger(cfg config.HopConfig) (*log.Logger, func(), error) {
	path, err := cfg.LogFile()
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "hop",
		Level:           parseLevel(cfg.Logging.Level),
	})
	return logger, func() { f.Close() }, nil
}

// newStderrLogger returns a logger for non-interactive commands.
func newStderrLogger(cfg config.HopConfig, prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           parseLevel(cfg.Logging.Level),
	})
}

func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
