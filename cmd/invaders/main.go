// invaders is a Space Invaders game for the terminal.
//
// Usage:
//
//	invaders play            - Play immediately
//	invaders menu            - Start screen with scores
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 120)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.invaders/scores.db, or $INVADERS_DB)
//	--log <path>    - Write debug game events to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/core"
	// Import the game to register it
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

const defaultDBPath = "~/.invaders/scores.db"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

// stderrLog reports startup problems before a TUI owns the terminal.
var stderrLog = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "invaders",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Shoot down waves of hostile ships before they reach the bottom of
the screen. Every wave is larger than the last.

Available commands:
  play     - Start a game right away
  menu     - Start screen with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  invaders play
  invaders play --difficulty hard
  invaders menu --fps 60
  invaders serve --ssh :2222
  invaders scores`,
}

func init() {
	dbDefault := defaultDBPath
	if env := os.Getenv("INVADERS_DB"); env != "" {
		dbDefault = env
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dbDefault, "Path to scores database (env INVADERS_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug game events to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openEventLog returns a debug logger writing to --log, or nil when unset.
// The returned close func is always safe to call.
func openEventLog() (*log.Logger, func()) {
	if flagLogPath == "" {
		return nil, func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		stderrLog.Warn("could not open log file", "path", flagLogPath, "err", err)
		return nil, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "invaders",
	})
	return logger, func() { f.Close() }
}
