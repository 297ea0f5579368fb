// neonsnake is a neon grid snake game for the terminal.
//
// Usage:
//
//	neonsnake play      - Play in the current terminal
//	neonsnake scores    - Show the high score and recent sessions
//	neonsnake serve     - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.neonsnake/config.yaml, ./configs/neonsnake.yaml)
//	--db <path>         - Override storage.db_path
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-level <lvl>   - Override log.level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/highscore"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonsnake",
	Short: "Neon Snake - grid snake in your terminal",
	Long: `Neon Snake is a 20x20 grid snake game for the terminal.

Eat food to grow and score 10 points; every bite makes the snake a little
faster. Hitting a wall or your own body ends the run.

Available commands:
  play     - Play locally
  scores   - Show the high score and session history
  serve    - Start SSH server for remote play

Examples:
  neonsnake play
  neonsnake play --seed 42
  neonsnake scores --limit 20
  neonsnake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger described by cfg. When no log file is set,
// fallback receives the output. The returned func releases the file.
func newLogger(cfg config.LogConfig, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	out := fallback
	closeFn := func() {}
	if cfg.File != "" {
		if mkErr := os.MkdirAll(filepath.Dir(cfg.File), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// openKeeper opens the scores database and wraps it in a Keeper. If the
// database cannot be opened the game still runs with an in-memory store.
func openKeeper(dbPath string, logger *log.Logger) (*highscore.Keeper, func()) {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "path", dbPath, "error", err)
		return highscore.NewKeeper(highscore.NewMemoryStore(), logger), func() {}
	}
	return highscore.NewKeeper(store, logger), func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("closing scores database", "error", cerr)
		}
	}
}
