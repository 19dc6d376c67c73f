package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// helpStyle renders the key help line below the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	gen        uint64
	latch      *InputLatch
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger
	player     string
	gameState  core.GameState
	quitting   bool
	done       bool // Embedded session finished; the parent takes over
	aborted    bool // Ended by the quit key rather than by losing
	embedded   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := playfieldSize(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:   game,
		screen: core.NewScreen(w, h),
		store:  store,
		config: cfg,
		gen:    nextGen(),
		latch:  NewInputLatch(cfg.TickRate, DefaultHoldWindow),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		logger: logger,
		player: "local",
	}
}

// WithPlayer sets the name scores are saved under.
func (m Model) WithPlayer(name string) Model {
	if name != "" {
		m.player = name
	}
	return m
}

// embed marks the model as running inside a session.
// Quitting or finishing then sets Done instead of exiting the program.
func (m Model) embed() Model {
	m.embedded = true
	return m
}

// Done reports whether an embedded game has ended.
func (m Model) Done() bool {
	return m.done
}

// Aborted reports whether the player quit before the game ended.
func (m Model) Aborted() bool {
	return m.aborted
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// playfieldSize reserves the last terminal row for the help line.
func playfieldSize(w, h int) (int, int) {
	return max(w, 0), max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.logger.Info("game aborted", "game", m.game.ID(), "score", m.gameState.Score)
		m.aborted = true
		return m.finish()
	}

	m.latch.Press(action)
	return m, nil
}

// handleResize processes window resize events.
// The simulation works in world units, so only the screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(playfieldSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.latch.Frame())
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("game event", "event", ev.Kind, "tick", ev.Tick, "value", ev.Value)
	}

	if m.gameState.GameOver {
		m.saveScore()
		return m.finish()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScore stores the final score once per session.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	st := m.gameState
	m.logger.Info("game over", "game", m.game.ID(), "score", st.Score, "level", st.Level)
	if m.store == nil || st.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, st.Score, st.Level); err != nil {
		m.logger.Error("failed to save score", "err", err)
	}
}

// finish ends the session: the program quits, or the parent is signalled.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.latch.Reset()
	if m.embedded {
		m.done = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
