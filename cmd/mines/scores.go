package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/mines/board"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <preset>",
	Short: "Show best times for a board",
	Long: `Display the ten fastest wins and totals for the given board preset.

Examples:
  mines scores beginner
  mines scores e
  mines scores expert --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded results for this board")
}

func runScores(_ *cobra.Command, args []string) {
	mcfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d, err := config.ParseDifficulty(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available boards.")
		os.Exit(1)
	}
	gameID := string(d)

	preset, err := mcfg.Preset(d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			return
		}
		logger.Info("results cleared", "game", gameID)
		fmt.Printf("Removed all results for %s.\n", preset.Title)
		return
	}

	scores, err := store.BestTimes(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Printf("Best Times - %s (%s)\n", preset.Title, preset)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play %s' to set the first time!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %s\n", i+1, board.FormatSeconds(uint64(entry.Seconds)), dateStr)
	}

	if recent, err := store.RecentResults(gameID, 5); err == nil && len(recent) > 0 {
		fmt.Println()
		fmt.Println("Recent games:")
		for _, r := range recent {
			outcome := "lost"
			if r.Won {
				outcome = "won "
			}
			fmt.Printf("  %s  %s  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), outcome, board.FormatSeconds(uint64(r.Seconds)))
		}
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%), average win %s\n",
			stats.Played, stats.Wins, stats.WinRate()*100,
			board.FormatSeconds(uint64(stats.AvgSeconds+0.5)))
	}
}
