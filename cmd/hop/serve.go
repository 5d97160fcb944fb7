package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/haskell-hop/internal/platform/tui"
	"github.com/vovakirdan/haskell-hop/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the haskellHop SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own run with its own seed.
Runs are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  hop serve                           # Listen on :23234 with auto-generated key
  hop serve --ssh :2222               # Listen on port 2222
  hop serve --host-key ./my_host_key  # Use specific host key
  hop serve --db ./hop.db             # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newStderrLogger(cfg, "hop-ssh")

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.FrameRate = flagFPS
	srvCfg.HoldWindow = cfg.Input.HoldWindow()
	if _, err := newGame(cfg); err != nil {
		return err
	}
	srvCfg.NewGame = func() registry.Game {
		game, gameErr := newGame(cfg)
		if gameErr != nil {
			logger.Error("could not create game", "error", gameErr)
			return nil
		}
		return game
	}

	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting haskellHop SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
