package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

// holdDuration is how long a movement key counts as held after its last
// press. Terminals report presses and auto-repeat, never releases.
const holdDuration = 150 * time.Millisecond

// resizer is implemented by games that follow terminal resizes in place.
type resizer interface {
	Resize(w, h int)
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for run events.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithBackToMenu lets Esc or B leave a paused or finished game.
func WithBackToMenu() Option {
	return func(m *Model) {
		m.allowBack = true
	}
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	loop       uint64
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	held       map[core.Action]int // ticks left before a movement key is released
	gameState  core.GameState
	allowBack  bool
	backToMenu bool
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		loop:       loopIDs.Add(1),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tea.Batch(tickCmd(m.config.TickRate, m.loop), m.nextTimer())
}

// nextTimer schedules the next timer delivery for the game's current generation.
func (m Model) nextTimer() tea.Cmd {
	timed, ok := m.game.(registry.Timed)
	if !ok {
		return nil
	}
	return timerCmd(timed.TimerInterval(), timed.TimerGeneration(), m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()

	case TimerMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTimer(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "esc", "b":
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.recordRun("quit")
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keyMapper.MapPress(msg, &m.inputFrame) {
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.recordRun("quit")
		m.quitting = true
		return m, tea.Quit
	case IsMovement(action):
		m.held[action] = m.holdTicks()
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m Model) holdTicks() int {
	return max(1, int(holdDuration*time.Duration(m.config.TickRate)/time.Second))
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without in-place resize restart with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for action, left := range m.held {
		m.inputFrame.Set(action)
		if left <= 1 {
			delete(m.held, action)
		} else {
			m.held[action] = left - 1
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.loop)}

	if result.Restarted {
		m.runSaved = false
		m.logger.Info("run restarted", "game", m.game.ID())
		cmds = append(cmds, m.nextTimer())
	}

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun("caught")
	}

	return m, tea.Batch(cmds...)
}

// handleTimer forwards a timer expiry and schedules the next one. Deliveries
// from a previous generation end their chain; a restart starts a new one.
func (m Model) handleTimer(msg TimerMsg) (tea.Model, tea.Cmd) {
	timed, ok := m.game.(registry.Timed)
	if !ok || msg.Generation != timed.TimerGeneration() {
		return m, nil
	}
	timed.Timer(msg.Generation)
	return m, timerCmd(timed.TimerInterval(), msg.Generation, m.loop)
}

// recordRun saves the current run once. Runs that never started are skipped.
func (m *Model) recordRun(reason string) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	stats := core.RunStats{Score: m.game.State().Score}
	if rep, ok := m.game.(registry.Reporter); ok {
		stats = rep.RunStats()
	}
	run := storage.NewRunRecord(m.game.ID(), stats, reason)
	if reason == "quit" && run.Score == 0 && run.Duration == 0 {
		return
	}

	m.logger.Info("run ended",
		"game", run.GameID,
		"reason", reason,
		"score", run.Score,
		"kills", run.Kills,
		"duration", run.Duration.Round(time.Second),
	)

	if m.store == nil {
		return
	}
	if run.Score > 0 {
		if _, err := m.store.SaveScore(run.GameID, run.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer aims without a button held
	)

	_, err := p.Run()
	return err
}
