package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
	"github.com/vovakirdan/tetris-duel/internal/platform/tui"
	"github.com/vovakirdan/tetris-duel/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [solo|versus|matches]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or the most recent versus matches.

Examples:
  duel scores
  duel scores versus --limit 20
  duel scores matches
  duel scores solo --clear
  duel scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	tab := "solo"
	if len(args) > 0 {
		tab = args[0]
	}
	if tab != "matches" {
		mode, err := multiplayer.ParseMode(tab)
		if err != nil {
			return err
		}
		tab = mode.String()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		rc := runtimeConfig()
		return tui.RunScoreboard(store, tab, rc.ScreenW, rc.ScreenH)
	case flagScoresClear:
		if tab == "matches" {
			return fmt.Errorf("--clear applies to solo or versus scores")
		}
		if err := store.ClearScores(tab); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", tab)
		return nil
	case tab == "matches":
		return printMatches(store)
	}
	return printScores(store, tab)
}

func printScores(store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'duel play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-3s  %s\n", "Rank", "Score", "Level", "Lines", "Tetris", "Who", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-3s  %s\n", "----", "-----", "-----", "-----", "------", "---", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-6d  %-3s  %s\n",
			i+1, e.Score, e.Level, e.Lines, e.Tetrises, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.ModeStats(mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Lines: %d  Tetrises: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines, stats.TotalTetris)
	return nil
}

func printMatches(store *storage.Store) error {
	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Versus Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No versus matches recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %-5s  %s\n", "Date", "P1", "P2", "Winner", "Wins", "Ticks")
	fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %-5s  %s\n", "----", "--", "--", "------", "----", "-----")
	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "draw"
		}
		fmt.Printf("  %-16s  %-8d  %-8d  %-6s  %-5s  %d\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Score1, m.Score2, winner,
			fmt.Sprintf("%d-%d", m.Wins1, m.Wins2), m.Ticks)
	}
	return nil
}
