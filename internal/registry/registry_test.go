package registry

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                           { return g.id }
func (g fakeGame) Title() string                        { return "Fake " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig)             {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                  {}
func (g fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("fake_b", func() Game { return fakeGame{"fake_b"} })
	Register("fake_a", func() Game { return fakeGame{"fake_a"} })

	info, ok := Info("fake_a")
	if !ok || info.Title != "Fake fake_a" {
		t.Errorf("Info(fake_a) = %+v, %v", info, ok)
	}
	if !Exists("fake_b") || Exists("missing") {
		t.Error("Exists() reported wrong membership")
	}

	g, err := Create("fake_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "fake_b" {
		t.Errorf("created %q, expected fake_b", g.ID())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}

	list := List()
	var ids []string
	for _, gi := range list {
		ids = append(ids, gi.ID)
	}
	if len(ids) < 2 || ids[0] != "fake_a" || ids[1] != "fake_b" {
		t.Errorf("List() = %v, expected sorted IDs", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("fake_dup", func() Game { return fakeGame{"fake_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("fake_dup", func() Game { return fakeGame{"fake_dup"} })
}
