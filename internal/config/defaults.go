package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickMs:        33,
			DASMs:         160,
			ARRMs:         50,
			HoldReleaseMs: 120,
			HoldLatchMs:   550,
		},
		Gravity: GravityConfig{
			InitialMs: 400,
			StepMs:    30,
			MinMs:     100,
		},
		Garbage: GarbageConfig{NetCancel: true},
		Ghost:   GhostConfig{Enabled: true},
		Keys: KeysConfig{
			Solo: Bindings{
				"left":       {"left", "a"},
				"right":      {"right", "d"},
				"soft_drop":  {"down", "s"},
				"hard_drop":  {"space"},
				"rotate_cw":  {"up", "w", "x"},
				"rotate_ccw": {"z", "q"},
			},
			Player1: Bindings{
				"left":       {"a"},
				"right":      {"d"},
				"soft_drop":  {"s"},
				"hard_drop":  {"space"},
				"rotate_cw":  {"w"},
				"rotate_ccw": {"q"},
			},
			Player2: Bindings{
				"left":       {"left"},
				"right":      {"right"},
				"soft_drop":  {"down"},
				"hard_drop":  {"m"},
				"rotate_cw":  {"up"},
				"rotate_ccw": {"n"},
			},
			Global: GlobalBindings{
				Pause:   []string{"p"},
				Ghost:   []string{"g"},
				Restart: []string{"r", "enter"},
				Back:    []string{"esc", "b"},
				Quit:    []string{"ctrl+c"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
