package core

// RuntimeConfig carries per-run settings that are not part of the YAML
// config: terminal size and the RNG seed.
type RuntimeConfig struct {
	ScreenW int
	ScreenH int
	Seed    int64 // 0 means seed from the clock
}

// DefaultConfig returns an 80x24 config with a clock seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24}
}
