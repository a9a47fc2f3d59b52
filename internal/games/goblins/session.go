package goblins

import (
	"time"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// State is the session state machine position.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// Session is the mutable state of one play-through. It is owned by a Sim and
// only changed from inside Tick.
type Session struct {
	Score      int
	EnemySpeed float64 // speed given to the next spawned enemy
	Player     *Player // nil once the wizard is caught

	GameOverVisible bool

	// Run counts restarts; it changes exactly when a new session begins.
	Run     int
	Hits    int
	Kills   int
	Elapsed float64 // simulated seconds in this run
}

// State derives the state machine position from the player handle.
func (s *Session) State() State {
	if s.Player == nil {
		return StateGameOver
	}
	return StateRunning
}

// Stats summarises the session for persistence.
func (s *Session) Stats() core.RunStats {
	return core.RunStats{
		Score:     s.Score,
		Hits:      s.Hits,
		Kills:     s.Kills,
		PeakSpeed: s.EnemySpeed,
		Elapsed:   time.Duration(s.Elapsed * float64(time.Second)),
	}
}
