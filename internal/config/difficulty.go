package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyPreset adjusts the gravity curve for a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	g := &cfg.Gravity
	switch preset {
	case DifficultyEasy:
		g.InitialMs = 600
		g.StepMs = 25
		g.MinMs = min(g.MinMs, g.InitialMs)
	case DifficultyHard:
		g.InitialMs = 250
		g.StepMs = 25
		g.MinMs = 60
	case DifficultyFixed:
		g.StepMs = 0
	}
}
