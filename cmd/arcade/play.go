package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/platform/tui"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game (default: goblins).

Controls:
  WASD/Arrows  - Move (terminals repeat keys, so movement latches briefly)
  Mouse        - Aim
  Click/F      - Cast a spell
  Space        - Restart after game over
  P            - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower goblins, one fewer in the opening wave, slower spawns
  normal - Stock values
  hard   - Faster goblins, two more in the opening wave, faster spawns
  fixed  - Hits no longer speed up new goblins

Examples:
  arcade play
  arcade play goblins --difficulty easy
  arcade play --config ./my-goblins.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the game tuning flags on a command.
func addGameFlags(cmd *cobra.Command) {
	addConfigFlag(cmd)
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// addConfigFlag registers only --config, for commands where the menu picks
// the difficulty.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func parseDifficulty() (config.DifficultyPreset, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return "", fmt.Errorf("--difficulty: %w", err)
	}
	return preset, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "goblins"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without storage
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	logger.Info("starting game", "game", gameID, "seed", cfg.Seed, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, cfg, tui.WithLogger(logger.With("game", gameID))); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
