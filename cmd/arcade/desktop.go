package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/platform/desktop"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

var (
	flagWindowWidth  int
	flagWindowHeight int
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play Goblin Siege in a desktop window",
	Long: `Open a window and play with real key releases and a free mouse pointer.

Controls:
  WASD/Arrows  - Move
  Mouse        - Aim
  Left click   - Cast a spell
  Space        - Restart after game over
  P            - Pause
  Q/Esc        - Quit

Examples:
  arcade desktop
  arcade desktop --difficulty hard --width 1600 --height 1000`,
	RunE: runDesktop,
}

func init() {
	addGameFlags(desktopCmd)
	desktopCmd.Flags().IntVar(&flagWindowWidth, "width", 1280, "Window width in pixels")
	desktopCmd.Flags().IntVar(&flagWindowHeight, "height", 800, "Window height in pixels")
}

func runDesktop(_ *cobra.Command, _ []string) error {
	preset, err := parseDifficulty()
	if err != nil {
		return err
	}
	setup, err := config.LoadGoblins(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyGoblinsPreset(&setup, preset)

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("opening window", "difficulty", preset, "seed", flagSeed)
	err = desktop.Run(desktop.Options{
		Config:   setup,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Width:    flagWindowWidth,
		Height:   flagWindowHeight,
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
