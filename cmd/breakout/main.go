// breakout is a single-screen brick breaker for the terminal.
//
// Usage:
//
//	breakout                 - Pick a difficulty, then play
//	breakout play            - Play a game
//	breakout scores          - Show results and the best score
//	breakout serve           - Start SSH server for remote play
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for a reproducible launch angle
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom breakout YAML
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Session event log (default: ~/.arcade/breakout.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/logging"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break every brick in your terminal",
	Long: `Breakout is a single-screen brick breaker for the terminal.
Bounce the ball off the paddle and clear all bricks to win; let it
past the paddle and the game is over.

Available commands:
  play     - Play a game (without a command, pick a difficulty first)
  scores   - View results and the best score
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  breakout
  breakout play --difficulty hard
  breakout play --frontend tcell --seed 42
  breakout serve --ssh :2222
  breakout scores --recent`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", logging.DefaultEventLogPath, "Session event log file (empty disables)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
