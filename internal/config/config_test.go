package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg := embeddedDefault()
	want := DefaultTetrisConfig()

	if cfg.Timing != want.Timing {
		t.Errorf("Timing = %+v, expected %+v", cfg.Timing, want.Timing)
	}
	if cfg.Gravity != want.Gravity {
		t.Errorf("Gravity = %+v, expected %+v", cfg.Gravity, want.Gravity)
	}
	if !cfg.Garbage.NetCancel {
		t.Error("embedded default should net-cancel garbage")
	}
	if got := cfg.Keys.Player2["hard_drop"]; len(got) != 1 || got[0] != "m" {
		t.Errorf("player2 hard_drop = %v, expected [m]", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestGravityDelay(t *testing.T) {
	g := DefaultTetrisConfig().Gravity

	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, 400 * time.Millisecond},
		{1, 400 * time.Millisecond},
		{2, 370 * time.Millisecond},
		{5, 280 * time.Millisecond},
		{11, 100 * time.Millisecond},
		{30, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := g.Delay(tt.level); got != tt.want {
			t.Errorf("Delay(%d) = %v, expected %v", tt.level, got, tt.want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  das_ms: 120\ngarbage:\n  net_cancel: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.DASMs != 120 {
		t.Errorf("DASMs = %d, expected 120", cfg.Timing.DASMs)
	}
	if cfg.Timing.ARRMs != 50 {
		t.Errorf("ARRMs = %d, expected default 50", cfg.Timing.ARRMs)
	}
	if cfg.Garbage.NetCancel {
		t.Error("NetCancel should be overridden to false")
	}
	if cfg.Timing.Input().DAS != 120*time.Millisecond {
		t.Errorf("Input().DAS = %v", cfg.Timing.Input().DAS)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  tick_ms: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error")
	}
}

func TestValidateRejectsSharedVersusKeys(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Keys.Player2["hard_drop"] = []string{"space"}

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for key bound to both players")
	}
}

func TestValidateRejectsUnknownKey(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Keys.Solo["hold"] = []string{"c"}

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown logical key")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		initial int
		step    int
		min     int
	}{
		{DifficultyEasy, 600, 25, 100},
		{DifficultyNormal, 400, 30, 100},
		{DifficultyHard, 250, 25, 60},
		{DifficultyFixed, 400, 0, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyPreset(&cfg, tt.preset)

			g := cfg.Gravity
			if g.InitialMs != tt.initial || g.StepMs != tt.step || g.MinMs != tt.min {
				t.Errorf("Gravity = %+v, expected initial=%d step=%d min=%d", g, tt.initial, tt.step, tt.min)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultTetrisConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gravity != DefaultTetrisConfig().Gravity {
		t.Errorf("Gravity = %+v after round trip", cfg.Gravity)
	}
}
