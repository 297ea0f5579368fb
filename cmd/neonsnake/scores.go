package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and recent sessions",
	Long: `Display the high score, the best recorded sessions and overall stats.

Examples:
  neonsnake scores
  neonsnake scores --limit 25
  neonsnake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the high score and all sessions")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	best, err := store.HighScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	sessions, err := store.TopSessions(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(tui.ScoreTable(sessions, best, tui.NewStyles(cfg.Theme)))

	if len(sessions) == 0 {
		fmt.Println()
		fmt.Println("Play 'neonsnake play' to set the first high score!")
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d   Avg score: %.1f   Longest snake: %d   Last played: %s\n",
		stats.Sessions, stats.AvgScore, stats.LongestLen, stats.LastPlayed.Local().Format("2006-01-02 15:04"))
}
