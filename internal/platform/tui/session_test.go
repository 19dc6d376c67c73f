package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	m, err := NewSessionModel(stubID, openTestStore(t), testRuntime(), nil, "bob")
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}
	return m
}

func TestSessionUnknownGame(t *testing.T) {
	if _, err := NewSessionModel("no_such_game", nil, testRuntime(), nil, ""); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestSessionStartScreen(t *testing.T) {
	m := newTestSession(t)

	view := stripANSI(m.View())
	for _, want := range []string{"STUB", "Press Enter to start...", "Start game", "High scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("start screen missing %q", want)
		}
	}
}

func TestSessionPlayThenScores(t *testing.T) {
	m := newTestSession(t)

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != statePlaying {
		t.Fatalf("state = %v, expected playing", m.state)
	}
	if cmd == nil {
		t.Fatal("starting a game should schedule a tick")
	}

	// The stub game ends on its third step
	for i := 0; i < 3; i++ {
		m, _ = updateSession(t, m, TickMsg{Gen: m.game.gen})
	}
	if m.state != stateScores {
		t.Fatalf("state = %v, expected scores after game over", m.state)
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "bob") || !strings.Contains(view, "42") {
		t.Errorf("scoreboard should list the finished game:\n%s", view)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.state != stateStart {
		t.Fatalf("state = %v, expected start", m.state)
	}
	if !strings.Contains(stripANSI(m.View()), "High score: 42") {
		t.Error("start screen should show the new high score")
	}
}

func TestSessionStaleTickIgnoredOnStart(t *testing.T) {
	m := newTestSession(t)
	m, cmd := updateSession(t, m, TickMsg{Gen: 1})
	if cmd != nil || m.state != stateStart {
		t.Error("ticks on the start screen should be ignored")
	}
}

func TestSessionQuitDuringGame(t *testing.T) {
	m := newTestSession(t)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := updateSession(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q during a game should quit the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionTabOpensScores(t *testing.T) {
	m := newTestSession(t)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScores {
		t.Fatalf("state = %v, expected scores", m.state)
	}
	if !strings.Contains(stripANSI(m.View()), "No scores recorded yet.") {
		t.Error("empty scoreboard message missing")
	}

	_, cmd := updateSession(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q on the scoreboard should quit")
	}
}

func TestSessionMenuQuit(t *testing.T) {
	m := newTestSession(t)

	// Move to the Quit entry
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown}) // clamps at the last entry
	_, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("selecting Quit should quit")
	}
}

func TestScoreboardStats(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(stubID, "ann", 30, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore(stubID, "", 50, 4); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, stubID, "Stub", 80, 24)
	view := stripANSI(m.View())

	for _, want := range []string{"HIGH SCORES - Stub", "Games: 2", "Best: 50", "Best wave: 4", "ann"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, view)
		}
	}
	if strings.Index(view, "50") > strings.Index(view, "ann") {
		t.Error("highest score should be listed first")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !isQuit(cmd) {
		t.Error("standalone scoreboard should quit on back")
	}
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("back should be recorded")
	}
}
