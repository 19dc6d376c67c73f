package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores with the wave each game reached.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --tui
  invaders scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored scores")
}

func runScores(_ *cobra.Command, _ []string) {
	game, err := registry.Create(invaders.ID)
	if err != nil {
		stderrLog.Fatal("cannot create game", "err", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderrLog.Fatal("cannot open scores database", "err", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(invaders.ID); err != nil {
			store.Close()
			stderrLog.Fatal("cannot clear scores", "err", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, invaders.ID, title, cfg.ScreenW, cfg.ScreenH); err != nil {
			store.Close()
			stderrLog.Fatal("error running scoreboard", "err", err)
		}
		return
	}

	printScores(store, title)
}

// printScores writes the score table to stdout.
func printScores(store *storage.Store, title string) {
	scores, err := store.TopScores(invaders.ID, flagScoresLimit)
	if err != nil {
		store.Close()
		stderrLog.Fatal("cannot retrieve scores", "err", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Score", "Wave", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "-----", "----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-12s  %s\n", i+1, entry.Score, entry.Level, player, dateStr)
	}

	stats, err := store.GetGameStats(invaders.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not compute stats: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Best wave: %d  Games: %d  Average: %.1f\n",
		stats.HighScore, stats.BestLevel, stats.GamesCount, stats.AvgScore)
}
