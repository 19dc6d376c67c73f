package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

type sessionState int

const (
	stateStart sessionState = iota
	statePlaying
	stateScores
)

// SessionModel manages the full session flow: start screen -> game ->
// scoreboard -> start screen. It is the top-level model for the menu
// command and for SSH sessions.
type SessionModel struct {
	gameID   string
	title    string
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	player   string
	state    sessionState
	start    StartModel
	game     Model
	board    ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session for a registered game.
func NewSessionModel(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) (SessionModel, error) {
	info, ok := registry.Info(gameID)
	if !ok {
		return SessionModel{}, fmt.Errorf("tui: unknown game %q", gameID)
	}
	title := info.Title

	return SessionModel{
		gameID: gameID,
		title:  title,
		store:  store,
		config: cfg,
		logger: logger,
		player: player,
		start:  NewStartModel(store, gameID, title, cfg.ScreenW, cfg.ScreenH),
	}, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.start.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case statePlaying:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateStart(msg)
	}
}

// updateStart handles updates on the start screen.
func (m SessionModel) updateStart(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.start.Update(msg)
	if start, ok := next.(StartModel); ok {
		m.start = start
	}

	switch m.start.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.showScores()
		return m, nil

	case ChoiceStart:
		game, err := registry.Create(m.gameID)
		if err != nil {
			// Shouldn't happen since NewSessionModel checked the ID
			m.quitting = true
			return m, tea.Quit
		}

		// A zero seed gives every game a fresh time-based seed
		m.game = NewModel(game, m.store, m.config, m.logger).WithPlayer(m.player).embed()
		m.state = statePlaying
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if !m.game.Done() {
		return m, cmd
	}
	if m.game.Aborted() {
		m.quitting = true
		return m, tea.Quit
	}

	m.showScores()
	return m, nil
}

// updateScores handles updates on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		m.state = stateStart
		m.start = NewStartModel(m.store, m.gameID, m.title, m.config.ScreenW, m.config.ScreenH)
		return m, m.start.Init()
	}

	return m, cmd
}

// showScores switches to a freshly loaded scoreboard.
func (m *SessionModel) showScores() {
	m.state = stateScores
	m.board = NewScoreboardModel(m.store, m.gameID, m.title, m.config.ScreenW, m.config.ScreenH).embed()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case statePlaying:
		return m.game.View()
	case stateScores:
		return m.board.View()
	default:
		return m.start.View()
	}
}

// RunSession runs the start screen flow for a game in the local terminal.
func RunSession(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewSessionModel(gameID, store, cfg, logger, "local")
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
