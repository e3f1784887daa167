package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/term"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Frontends accepted by --frontend.
const (
	frontendBubbleTea = "bubbletea"
	frontendTcell     = "tcell"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of breakout.

Controls:
  Left/A/H   - Move paddle left
  Right/D/L  - Move paddle right
  R          - Restart (after win or game over)
  Ctrl+S     - Save a screenshot (bubbletea frontend)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider paddle, slower ball
  normal - Configured values
  hard   - Narrower, faster paddle and a faster ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --seed 42
  breakout play --frontend tcell
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&flagFrontend, "frontend", frontendBubbleTea, "Renderer: bubbletea or tcell")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagFrontend != frontendBubbleTea && flagFrontend != frontendTcell {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q (want %s or %s)\n", flagFrontend, frontendBubbleTea, frontendTcell)
		os.Exit(1)
	}

	cfg, preset, err := loadGame()
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

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var runErr error
	switch flagFrontend {
	case frontendTcell:
		runErr = term.Run(term.Options{
			Config: cfg,
			Store:  store,
			GameID: preset.GameID(),
			Seed:   flagSeed,
			Logger: events,
		})
	default:
		runErr = tui.Run(tui.Options{
			Config:  cfg,
			Store:   store,
			GameID:  preset.GameID(),
			Seed:    flagSeed,
			Runtime: terminalSize(),
			Logger:  events,

			AllowScreenshots: true,
		})
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeEvents()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runMenu lets the user pick a difficulty on a terminal, then plays.
func runMenu(cmd *cobra.Command, args []string) {
	if !cmd.Flags().Changed("difficulty") && xterm.IsTerminal(int(os.Stdout.Fd())) {
		preset, _ := config.ParsePreset(flagDifficulty)

		store, err := storage.Open(flagDBPath)
		if err != nil {
			store = nil
		}
		rc := terminalSize()
		chosen, ok, menuErr := tui.RunDifficultyMenu(store, preset, rc.ScreenW, rc.ScreenH)
		if store != nil {
			store.Close()
		}
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		if !ok {
			return
		}
		flagDifficulty = string(chosen)
	}
	runPlay(cmd, args)
}

// terminalSize reads the size of stdout, falling back to 80x24.
func terminalSize() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}
