package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagPlain  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show results and the best score",
	Long: `Display finished games for a difficulty, best first.

On a terminal this opens an interactive scoreboard; use --plain
(or pipe the output) for a text listing.

Examples:
  breakout scores
  breakout scores --difficulty hard
  breakout scores --recent --plain
  breakout scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent games instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to list")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing even on a terminal")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results and the best score for the difficulty")
}

func runScores(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gameID := preset.GameID()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			return
		}
		fmt.Printf("Cleared results for %s.\n", preset.Title())
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && xterm.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := xterm.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, preset, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(store, preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

// printScores writes a text listing of results for a preset.
func printScores(store *storage.Store, preset config.DifficultyPreset) error {
	gameID := preset.GameID()

	var results []storage.Result
	var err error
	if flagRecent {
		results, err = store.RecentResults(gameID, flagLimit)
	} else {
		results, err = store.TopResults(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	order := "Top Results"
	if flagRecent {
		order = "Recent Results"
	}
	fmt.Printf("%s - Breakout (%s)\n", order, preset.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'breakout play --difficulty %s' to set the first best score!\n", preset)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-7s  %s\n", "Rank", "Score", "Outcome", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %s\n", "----", "-----", "-------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-6d  %-7s  %s\n", i+1, r.Score, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Wins: %d  Avg: %.1f\n", stats.GamesCount, stats.Wins, stats.AvgScore)
	}
	return nil
}
