// arcade runs Goblin Siege: a wizard holding off goblins, playable in the
// terminal, over SSH or in a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game in the terminal
//	arcade menu              - Start menu to pick games interactively
//	arcade desktop           - Play in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores and recent runs
//	arcade simulate          - Run a headless session with the autopilot
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write logs to a file (terminal modes own stdout)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/games/goblins"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Goblin Siege - hold off the goblin horde",
	Long: `Goblin Siege puts you in the robes of a wizard surrounded by goblins.
Move with WASD, aim with the mouse and click to cast.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  menu      - Interactive game picker menu
  desktop   - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  simulate  - Run a headless autopilot session

Examples:
  arcade play
  arcade play goblins --difficulty hard
  arcade desktop --seed 42
  arcade serve --ssh :2222
  arcade simulate --ticks 3600`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the command logger. Terminal games draw on stdout, so
// unless a log file is given, fallback receives the output (io.Discard for
// full-screen modes).
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid log level %q", flagLogLevel)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closeFn, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// terminalConfig sizes the runtime config from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// applyGameFlags routes --config and --difficulty to the game packages.
func applyGameFlags() error {
	preset, err := parseDifficulty()
	if err != nil {
		return err
	}
	goblins.SetConfigPath(flagConfig)
	goblins.SetDifficultyPreset(preset)
	return nil
}
