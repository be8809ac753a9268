package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
	"github.com/vovakirdan/tetris-duel/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [solo|versus]",
	Short: "Play a game",
	Long: `Start a solo or versus game directly. Solo is the default.

Default controls (change them in the config file):
  Solo:     Left/A, Right/D move, Down/S soft drop, Space hard drop,
            Up/W/X rotate clockwise, Z/Q rotate counter-clockwise
  Player 1: A/D move, S soft drop, Space hard drop, W/Q rotate
  Player 2: Left/Right move, Down soft drop, M hard drop, Up/N rotate
  Global:   P pause, G ghost, R/Enter restart, Esc/B menu, Ctrl+C quit

Difficulty options:
  easy   - Slower start, gentle speed-up
  normal - Config values
  hard   - Fast start, lower speed floor
  fixed  - No speed-up with level

Examples:
  duel play
  duel play versus
  duel play solo --difficulty hard --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	mode, err := multiplayer.ParseMode(name)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.GameOptions{
		Mode:    mode,
		Config:  cfg,
		Store:   store,
		Runtime: runtimeConfig(),
		Logger:  logger,
	})
}
