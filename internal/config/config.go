// Package config provides YAML-based configuration loading and difficulty
// presets for tetris-duel.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tetris-duel/internal/input"
)

// TetrisConfig contains all tunable settings.
type TetrisConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Gravity GravityConfig `yaml:"gravity"`
	Garbage GarbageConfig `yaml:"garbage"`
	Ghost   GhostConfig   `yaml:"ghost"`
	Keys    KeysConfig    `yaml:"keys"`
}

// TimingConfig defines the tick rate and key repeat schedule.
type TimingConfig struct {
	TickMs        int `yaml:"tick_ms"`
	DASMs         int `yaml:"das_ms"`
	ARRMs         int `yaml:"arr_ms"`
	HoldReleaseMs int `yaml:"hold_release_ms"`
	HoldLatchMs   int `yaml:"hold_latch_ms"`
}

// Tick returns the simulation tick interval.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMs) * time.Millisecond
}

// HoldRelease returns how long a terminal key stays held without a new event.
func (t TimingConfig) HoldRelease() time.Duration {
	return time.Duration(t.HoldReleaseMs) * time.Millisecond
}

// HoldLatch returns how long a fire-once key stays held after a lone event.
func (t TimingConfig) HoldLatch() time.Duration {
	return time.Duration(t.HoldLatchMs) * time.Millisecond
}

// Input returns the DAS/ARR timing for input controllers.
func (t TimingConfig) Input() input.Timing {
	return input.Timing{
		DAS: time.Duration(t.DASMs) * time.Millisecond,
		ARR: time.Duration(t.ARRMs) * time.Millisecond,
	}
}

// GravityConfig defines the automatic fall speed curve.
type GravityConfig struct {
	InitialMs int `yaml:"initial_ms"`
	StepMs    int `yaml:"step_ms"`
	MinMs     int `yaml:"min_ms"`
}

// Delay returns the fall interval at the given level (1-based).
func (g GravityConfig) Delay(level int) time.Duration {
	ms := g.InitialMs - (max(level, 1)-1)*g.StepMs
	return time.Duration(max(ms, g.MinMs)) * time.Millisecond
}

// GarbageConfig selects how simultaneous attacks are settled.
type GarbageConfig struct {
	NetCancel bool `yaml:"net_cancel"`
}

// GhostConfig sets whether the landing preview starts enabled.
type GhostConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Bindings maps logical key names (input.Key strings) to terminal key names.
type Bindings map[string][]string

// KeysConfig holds the bindings for each seat plus global actions.
type KeysConfig struct {
	Solo    Bindings       `yaml:"solo"`
	Player1 Bindings       `yaml:"player1"`
	Player2 Bindings       `yaml:"player2"`
	Global  GlobalBindings `yaml:"global"`
}

// GlobalBindings are session-wide actions, not tied to a seat.
type GlobalBindings struct {
	Pause   []string `yaml:"pause"`
	Ghost   []string `yaml:"ghost"`
	Restart []string `yaml:"restart"`
	Back    []string `yaml:"back"`
	Quit    []string `yaml:"quit"`
}

// Validate checks the config for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Timing.TickMs <= 0 {
		return fmt.Errorf("config: timing.tick_ms must be positive, got %d", c.Timing.TickMs)
	}
	if c.Timing.DASMs <= 0 || c.Timing.ARRMs <= 0 {
		return fmt.Errorf("config: timing.das_ms and timing.arr_ms must be positive")
	}
	if c.Timing.HoldReleaseMs < 0 || c.Timing.HoldLatchMs < 0 {
		return fmt.Errorf("config: timing.hold_release_ms and timing.hold_latch_ms must not be negative")
	}
	if c.Gravity.MinMs <= 0 || c.Gravity.MinMs > c.Gravity.InitialMs {
		return fmt.Errorf("config: gravity.min_ms must be in (0, initial_ms], got %d", c.Gravity.MinMs)
	}
	if c.Gravity.StepMs < 0 {
		return fmt.Errorf("config: gravity.step_ms must not be negative")
	}

	for name, b := range map[string]Bindings{"solo": c.Keys.Solo, "player1": c.Keys.Player1, "player2": c.Keys.Player2} {
		for key := range b {
			if _, err := input.ParseKey(key); err != nil {
				return fmt.Errorf("config: keys.%s: %w", name, err)
			}
		}
	}

	// Versus seats share one keyboard.
	owner := map[string]string{}
	claim := func(seat string, keys []string) error {
		for _, k := range keys {
			if prev, ok := owner[k]; ok && prev != seat {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, seat)
			}
			owner[k] = seat
		}
		return nil
	}
	for _, seat := range []struct {
		name string
		b    Bindings
	}{{"player1", c.Keys.Player1}, {"player2", c.Keys.Player2}} {
		for _, keys := range seat.b {
			if err := claim(seat.name, keys); err != nil {
				return err
			}
		}
	}
	g := c.Keys.Global
	for _, keys := range [][]string{g.Pause, g.Ghost, g.Restart, g.Back, g.Quit} {
		if err := claim("global", keys); err != nil {
			return err
		}
	}
	return nil
}
