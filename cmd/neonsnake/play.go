package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neon Snake",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer (first move also starts the game)
  Space             - Start, then pause/resume
  P/Esc             - Pause
  R/Enter           - Reboot after game over
  Q/Ctrl+C          - Quit

Logs go to log.file from the config; without one they are discarded so
they do not disturb the board.

Examples:
  neonsnake play
  neonsnake play --seed 42
  neonsnake play --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the session history (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "neonsnake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	runCfg := core.DefaultConfig()
	runCfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runCfg.ScreenW = w
		runCfg.ScreenH = h
	}
	if runCfg.ScreenW < tui.ScreenW || runCfg.ScreenH < tui.ScreenH+2 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs at least %dx%d\n",
			runCfg.ScreenW, runCfg.ScreenH, tui.ScreenW, tui.ScreenH+2)
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}
	if player == "" {
		player = "player"
	}

	keeper, closeStore := openKeeper(cfg.Storage.DBPath, logger)

	runErr := tui.Run(keeper, tui.NewStyles(cfg.Theme), logger, runCfg, player)

	// Close store before potential exit
	closeStore()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
