package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
)

var (
	flagSimMode     string
	flagSimGames    int
	flagSimTicks    int
	flagSimRealtime bool
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run bot matches headlessly",
	Long: `Play games between random bots without a terminal UI. Useful for
checking the rules end to end and for filling a database with results.

By default the clock is virtual: each tick advances time by the configured
tick interval without waiting. --realtime ticks on the wall clock instead.

Examples:
  duel simulate
  duel simulate --games 10 --seed 42
  duel simulate --mode solo --ticks 5000 --record`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", "versus", "Mode: solo or versus")
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 100000, "Tick limit per game (0 = none)")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick on the wall clock")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save results to the scores database")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	mode, err := multiplayer.ParseMode(flagSimMode)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := multiplayer.Options{
		Mode:      mode,
		Seed:      seed,
		Timing:    cfg.Timing.Input(),
		Gravity:   cfg.Gravity.Delay,
		NetCancel: cfg.Garbage.NetCancel,
		HideGhost: !cfg.Ghost.Enabled,
		Logger:    logger,
	}
	if flagSimRecord {
		if store := openStore(); store != nil {
			defer store.Close()
			opts.Recorder = store
		}
	}
	session := multiplayer.NewSession(opts)
	defer session.Flush()

	players := make([]multiplayer.KeySource, mode.Seats())
	for i := range players {
		players[i] = multiplayer.NewBot(seed + 100 + int64(i))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	tick := cfg.Timing.Tick()
	for game := 1; game <= flagSimGames; game++ {
		start := time.Now()
		var ticker multiplayer.Ticker
		if flagSimRealtime {
			ticker = multiplayer.NewTicker(tick)
		} else {
			ticker = multiplayer.NewVirtualTicker(start, tick)
		}
		session.Start(start)

		runner := &multiplayer.Runner{
			Session:  session,
			Ticker:   ticker,
			Players:  players,
			MaxTicks: flagSimTicks,
		}
		outcome, err := runner.Run(ctx)
		switch {
		case errors.Is(err, multiplayer.ErrTickLimit):
			logger.Warn("tick limit reached", "game", game, "ticks", session.Ticks())
		case err != nil:
			return err
		}

		printOutcome(game, session, outcome)
	}
	return nil
}

func printOutcome(game int, s *multiplayer.Session, outcome multiplayer.Outcome) {
	fmt.Printf("Game %d: %s after %d ticks\n", game, outcome, s.Ticks())
	for i := range s.Seats() {
		p := multiplayer.PlayerID(i)
		snap := s.Snapshot(p)
		fmt.Printf("  %s  score %-6d level %-2d lines %-4d tetrises %-3d pieces %-4d wins %d\n",
			p, snap.Score, snap.Level, snap.Lines, snap.Tetrises, snap.Pieces, snap.Wins)
	}
}
