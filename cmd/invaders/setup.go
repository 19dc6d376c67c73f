package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSprites    string
)

// addGameFlags registers the flags that shape a game session.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite manifest YAML")
}

// prepareGame loads assets and configuration and hands them to the game
// package. Any failure is fatal: nothing has taken over the terminal yet.
func prepareGame() {
	atlas, err := assets.Load(flagSprites)
	if err != nil {
		stderrLog.Fatal("cannot load sprites", "err", err)
	}

	if flagConfig != "" {
		if _, err := config.LoadInvaders(flagConfig); err != nil {
			stderrLog.Fatal("cannot load config", "err", err)
		}
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		stderrLog.Fatal("invalid difficulty", "err", err)
	}

	invaders.SetAtlas(atlas)
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
}

// runtimeConfig builds the runtime settings for the local terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. The game runs without one on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderrLog.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}
