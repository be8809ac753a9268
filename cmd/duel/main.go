// duel is a two-player falling-block game for the terminal.
//
// Usage:
//
//	duel play [solo|versus]  - Play a game directly
//	duel menu                - Start menu to pick a mode interactively
//	duel scores [mode]       - Show high scores and recent matches
//	duel serve               - Start SSH server for remote play
//	duel simulate            - Run bot-vs-bot matches headlessly
//	duel config              - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible piece sequences
//	--db <path>           - Set database path (default: ~/.tetris-duel/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Gravity preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris-duel/internal/config"
	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Tetris Duel - falling blocks for one or two players in your terminal",
	Long: `Tetris Duel is a terminal falling-block game. Play solo for a high
score, or play versus on one keyboard: clearing two or more rows at once
sends garbage rows to your opponent.

Available commands:
  play      - Play solo or versus directly
  menu      - Interactive mode picker
  scores    - View high scores and recent matches
  serve     - Start SSH server for remote play
  simulate  - Run bot matches without a terminal
  config    - Print the effective configuration

Examples:
  duel play
  duel play versus --difficulty hard
  duel menu
  duel serve --ssh :2222
  duel simulate --ticks 20000 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris-duel/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config and applies the difficulty preset.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger writes to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "duel",
		Level:           level,
	})
	return logger, nil
}

// fileLogger logs to ~/.tetris-duel/duel.log so the alt screen stays clean.
// The returned closer must be called on exit.
func fileLogger() (*log.Logger, func(), error) {
	path := "duel.log"
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, ".tetris-duel", "duel.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database, or returns nil with a warning so
// the game still runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig reads the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
