package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the breakout SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game.
Results are stored per-server (all users share the same best score).
The --difficulty and --config flags apply to every connection.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  breakout serve                           # Listen on :23234 with auto-generated key
  breakout serve --ssh :2222               # Listen on port 2222
  breakout serve --host-key ./my_host_key  # Use specific host key
  breakout serve --difficulty hard         # Everyone plays hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	game, preset, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	events, closeEvents, err := openEventLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeEvents()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
		GameID:      preset.GameID(),
		Events:      events,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		closeEvents()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting breakout SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: %s\n", connectCommand(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeEvents()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// connectCommand returns the ssh invocation that reaches a server listening
// on addr. Wildcard hosts are reached through localhost.
func connectCommand(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
