package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

// SessionModel manages the full flow: menu -> game -> menu.
// It is the top-level model for both `gamehub menu` and SSH sessions.
type SessionModel struct {
	config    core.RuntimeConfig
	logger    *log.Logger
	sessionID string
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model.
// Each game started from the menu gets a fresh seed unless cfg.Seed is set.
func NewSessionModel(cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.NewString()

	return SessionModel{
		config:    cfg,
		logger:    logger.With("session", id),
		sessionID: id,
		menu:      NewMenuModel(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks from a game that was left behind
	if _, ok := msg.(timerMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	gameID := m.menu.Selected()
	if gameID == "" {
		return m, cmd
	}

	game, err := registry.Create(gameID)
	if err != nil {
		m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH).WithStatus(err.Error())
		return m, nil
	}

	gameModel, err := NewGameModel(game, m.config, m.logger)
	if err != nil {
		m.logger.Error("cannot start game", "game", gameID, "error", err)
		m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH).WithStatus(err.Error())
		return m, nil
	}

	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		st := m.gameModel.State()
		m.logger.Info("back to menu", "game", m.gameModel.game.ID(), "score", st.Score, "status", st.Status)
		m.gameModel = nil
		m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// RunSession runs the menu -> game loop in the local terminal.
func RunSession(cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
