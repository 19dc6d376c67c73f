package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// StartChoice is what the player picked on the start screen.
type StartChoice int

const (
	ChoiceNone StartChoice = iota
	ChoiceStart
	ChoiceScores
	ChoiceQuit
)

// startItem is a selectable start screen entry.
type startItem struct {
	label  string
	choice StartChoice
}

var startItems = []startItem{
	{"Start game", ChoiceStart},
	{"High scores", ChoiceScores},
	{"Quit", ChoiceQuit},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// StartModel is the start screen shown before a game.
type StartModel struct {
	title     string
	gameID    string
	highScore int
	cursor    int
	width     int
	height    int
	keys      StartKeyMap
	help      help.Model
	choice    StartChoice
}

// NewStartModel creates a start screen for a game.
// The best stored score is shown when a store is available.
func NewStartModel(store *storage.Store, gameID, title string, width, height int) StartModel {
	m := StartModel{
		title:  title,
		gameID: gameID,
		width:  width,
		height: height,
		keys:   DefaultStartKeyMap(),
		help:   help.New(),
	}
	m.help.Width = width

	if store != nil {
		if hs, err := store.HighScore(gameID); err == nil {
			m.highScore = hs
		}
	}
	return m
}

// Init initializes the start screen.
func (m StartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the start screen.
func (m StartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m StartModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = ChoiceQuit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(startItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choice = startItems[m.cursor].choice
	case key.Matches(msg, m.keys.Scores):
		m.choice = ChoiceScores
	}
	return m, nil
}

// Choice returns the selected entry, or ChoiceNone while the screen is open.
func (m StartModel) Choice() StartChoice {
	return m.choice
}

// View renders the start screen.
func (m StartModel) View() string {
	var b strings.Builder

	top := max((m.height-len(startItems)-9)/2, 0)
	b.WriteString(strings.Repeat("\n", top))

	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(promptStyle.Render("Press Enter to start..."), m.width))
	b.WriteString("\n\n")

	for i, item := range startItems {
		line := "  " + item.label
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.highScore > 0 {
		b.WriteString(centerText(mutedStyle.Render(fmt.Sprintf("High score: %d", m.highScore)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// centerText centers text within given width.
// Width is measured on the printed cells, so styled text centers correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
