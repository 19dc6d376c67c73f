package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Space Invaders right away.

Controls:
  A/D, Left/Right  - Move sideways
  W/S, Up/Down     - Move up and down
  Space            - Fire
  P                - Pause
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives and health, hostiles speed up slowly
  normal - Hostiles get faster and fire more with every wave
  hard   - Fewer lives, hostiles start fast and aggressive
  fixed  - No progression, the classic behaviour

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml
  invaders play --sprites ./my-sprites.yaml --log ./events.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	prepareGame()

	game, err := registry.Create(invaders.ID)
	if err != nil {
		stderrLog.Fatal("cannot create game", "err", err)
	}

	logger, closeLog := openEventLog()
	defer closeLog()

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		stderrLog.Fatal("error running game", "err", runErr)
	}
}
