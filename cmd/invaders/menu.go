package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start screen with high scores",
	Long: `Open the start screen. From there you can start a game, browse the
high score table, or quit. Finished games return to the scoreboard.

Examples:
  invaders menu
  invaders menu --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	prepareGame()

	logger, closeLog := openEventLog()
	defer closeLog()

	store := openStore()
	runErr := tui.RunSession(invaders.ID, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		stderrLog.Fatal("error running menu", "err", runErr)
	}
}
