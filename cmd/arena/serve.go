package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagAdmins      []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arena SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the main menu and its own run.
Runs and wallets are stored per SSH user name in the server's database.
Users listed with --admin may be offered restricted abilities.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arena/host_key

Examples:
  arena serve                           # Listen on :23234 with auto-generated key
  arena serve --ssh :2222               # Listen on port 2222
  arena serve --admin alice --admin bob # Elevated privilege for two users
  arena serve --log-file -              # Log to stderr

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringSliceVar(&flagAdmins, "admin", nil, "SSH user allowed restricted abilities (repeatable)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("arena-ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	arena, err := loadArenaConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Admins:      flagAdmins,
		Arena:       arena,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting arena SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
