package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/games/goblins"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

var (
	flagSimTicks     int
	flagSimEvery     int
	flagSimFireEvery int
	flagSimRestart   bool
	flagSimOut       string
	flagSimRecord    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session with the autopilot",
	Long: `Run the simulation without a display. The autopilot aims at the nearest
goblin, backs away from close ones and casts on a fixed cadence. Spawn timers
follow simulated time, so a given --seed always produces the same run.

Snapshots are written as a YAML stream, one document per snapshot.

Examples:
  arcade simulate --seed 42 --ticks 3600
  arcade simulate --seed 42 --every 600 --out run.yaml
  arcade simulate --difficulty hard --restart --record`,
	RunE: runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagSimEvery, "every", 0, "Write a snapshot every N ticks (0 = final only)")
	simulateCmd.Flags().IntVar(&flagSimFireEvery, "fire-every", 12, "Ticks between autopilot spells")
	simulateCmd.Flags().BoolVar(&flagSimRestart, "restart", false, "Restart after game over instead of idling")
	simulateCmd.Flags().StringVar(&flagSimOut, "out", "-", "Snapshot output file (- for stdout)")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save finished runs to the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 || flagFPS <= 0 {
		return fmt.Errorf("--ticks and --fps must be positive")
	}
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

	var out io.Writer = os.Stdout
	var outFile *os.File
	if flagSimOut != "-" {
		f, err := os.Create(flagSimOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		// Error paths only; the success path closes explicitly below
		defer f.Close()
		out, outFile = f, f
	}

	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("open scores database: %w", err)
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	host := goblins.NewLocalHost(seed, setup.Layout.Width, setup.Layout.Height)
	tuning := goblins.TuningFromConfig(setup)
	sim := goblins.NewSim(host, tuning)

	// Simulated wall clock, so runs do not depend on machine speed
	dt := 1 / float64(flagFPS)
	step := time.Second / time.Duration(flagFPS)
	now := time.Unix(0, 0)
	clock := goblins.NewSpawnClock(tuning.SpawnInterval, now)
	pilot := &goblins.Autopilot{FireEvery: flagSimFireEvery, Restart: flagSimRestart}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	logger.Info("simulating", "seed", seed, "ticks", flagSimTicks, "difficulty", preset)

	run, finished := sim.Session().Run, false
	for i := 1; i <= flagSimTicks; i++ {
		now = now.Add(step)
		for range clock.Due(now) {
			sim.SpawnTimer()
		}
		sim.Tick(dt, pilot.Drive(sim))

		sess := sim.Session()
		if sess.Run != run {
			run, finished = sess.Run, false
			clock.Reset(now)
		}
		if sess.State() == goblins.StateGameOver && !finished {
			finished = true
			logger.Info("run ended", "run", sess.Run, "tick", sim.Ticks(), "score", sess.Score, "kills", sess.Kills)
			if err := recordSimRun(store, sess); err != nil {
				return err
			}
		}

		if flagSimEvery > 0 && i%flagSimEvery == 0 && i != flagSimTicks {
			if err := enc.Encode(sim.Snapshot()); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
		}
	}

	if err := enc.Encode(sim.Snapshot()); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}
	return nil
}

func recordSimRun(store *storage.Store, sess *goblins.Session) error {
	if store == nil {
		return nil
	}
	stats := sess.Stats()
	if stats.Score > 0 {
		if _, err := store.SaveScore("goblins", stats.Score); err != nil {
			return fmt.Errorf("save score: %w", err)
		}
	}
	if _, err := store.SaveRun(storage.NewRunRecord("goblins", stats, "caught")); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}
