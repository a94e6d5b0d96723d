package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

// helpHeight is the number of terminal rows reserved below the game screen.
const helpHeight = 1

// GameModel is the Bubble Tea model for one game screen.
//
// Every game timer runs as its own tea.Tick chain tagged with a generation.
// Leaving the running state bumps the generation and stops re-arming, so
// in-flight ticks arrive stale and are dropped. Entering the running state
// bumps it again and re-arms every chain from zero; missed ticks are never
// replayed.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   GameKeyMap
	help   help.Model
	logger *log.Logger

	timers []core.Timer
	state  core.GameState
	gen    uint64
	armed  bool

	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel resets game and returns a model ready to run it.
// A nil logger discards output.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(cfg); err != nil {
		return GameModel{}, fmt.Errorf("cannot start %s: %w", game.ID(), err)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   h,
		logger: logger,
		timers: game.Timers(),
		state:  game.State(),
		gen:    nextGeneration(),
	}
	m.armed = m.state.Running()

	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "difficulty", cfg.Difficulty)
	return m, nil
}

// Init arms every game timer.
func (m GameModel) Init() tea.Cmd {
	if !m.armed {
		return nil
	}
	return m.armCmds()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-helpHeight))
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		return m.handleTimer(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.logger.Info("quit", "game", m.game.ID(), "score", m.state.Score, "status", m.state.Status)
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.suspend()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	before := m.state
	m.game.HandleAction(action)
	m.state = m.game.State()
	reset := action == core.ActionRestart
	m.logTransition(before, reset)

	switch {
	case m.state.Running() && (reset || !m.armed):
		return m, m.rearm()
	case !m.state.Running() && m.armed:
		m.suspend()
	}
	return m, nil
}

// handleTimer fires a due timer and re-arms its chain while the game runs.
func (m GameModel) handleTimer(msg timerMsg) (tea.Model, tea.Cmd) {
	if !m.armed || msg.gen != m.gen || msg.index < 0 || msg.index >= len(m.timers) {
		return m, nil
	}

	t := m.timers[msg.index]
	before := m.state
	t.Fire()
	m.state = m.game.State()

	if !m.state.Running() {
		m.logTransition(before, false)
		m.suspend()
		return m, nil
	}
	return m, timerCmd(m.gen, msg.index, t.Interval())
}

// rearm starts a new generation and schedules every timer from zero.
func (m *GameModel) rearm() tea.Cmd {
	m.gen = nextGeneration()
	m.armed = true
	m.logger.Debug("timers armed", "game", m.game.ID(), "gen", m.gen)
	return m.armCmds()
}

// suspend invalidates every in-flight tick.
func (m *GameModel) suspend() {
	if !m.armed {
		return
	}
	m.gen = nextGeneration()
	m.armed = false
	m.logger.Debug("timers suspended", "game", m.game.ID(), "gen", m.gen)
}

func (m GameModel) armCmds() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.timers))
	for i, t := range m.timers {
		cmds[i] = timerCmd(m.gen, i, t.Interval())
	}
	return tea.Batch(cmds...)
}

func (m GameModel) logTransition(before core.GameState, reset bool) {
	after := m.state
	id := m.game.ID()

	switch {
	case reset:
		m.logger.Info("session reset", "game", id, "previous_score", before.Score)
	case after.GameOver && !before.GameOver:
		outcome := "lost"
		if after.Won {
			outcome = "won"
		}
		m.logger.Info("game finished", "game", id, "score", after.Score, "outcome", outcome)
	case after.Paused && !before.Paused:
		m.logger.Info("paused", "game", id)
	case before.Paused && !after.Paused:
		m.logger.Info("resumed", "game", id)
	}
}

// View renders the game screen and the key help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Run starts a Bubble Tea program for a single game.
// Back and quit both leave the program.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewGameModel(game, cfg, logger)
	if err != nil {
		return err
	}
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
