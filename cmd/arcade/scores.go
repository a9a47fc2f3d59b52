package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goblin-arcade/internal/platform/tui"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

var (
	flagScoresRuns  bool
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top high scores for the specified game (default: goblins).

Examples:
  arcade scores
  arcade scores goblins --runs
  arcade scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "Show recent runs instead of high scores")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "goblins"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}
	if flagScoresRuns {
		return printRuns(store, gameID, game.Title())
	}
	return printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieve stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Kills: %d  Longest run: %s\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalKills,
		stats.LongestRun.Round(time.Second))
	return nil
}

func printRuns(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve runs: %w", err)
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-7s  %-5s  %-5s  %-8s  %-8s  %s\n", "Date", "Score", "Hits", "Kills", "Kill/Hit", "Duration", "End")
	fmt.Printf("  %-16s  %-7s  %-5s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "----", "-----", "--------", "--------", "---")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-7d  %-5d  %-5d  %-8s  %-8s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Hits, r.Kills,
			fmt.Sprintf("%.2f", r.Accuracy()), r.Duration.Round(time.Second), r.EndReason)
	}

	best, err := store.BestRun(gameID)
	if err != nil {
		return fmt.Errorf("retrieve best run: %w", err)
	}
	if best != nil {
		fmt.Println()
		fmt.Printf("Best run: %d points, %d kills in %s\n", best.Score, best.Kills, best.Duration.Round(time.Second))
	}
	return nil
}
