package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestInputLatchHoldsPress(t *testing.T) {
	l := NewInputLatch(120, 150*time.Millisecond)
	l.Press(core.ActionLeft)

	for i := 0; i < 18; i++ {
		f := l.Frame()
		if !f.Has(core.ActionLeft) {
			t.Fatalf("frame %d: left should still be held", i+1)
		}
	}
	if f := l.Frame(); f.Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestInputLatchRepeatExtendsHold(t *testing.T) {
	l := NewInputLatch(10, 300*time.Millisecond) // 3 ticks
	l.Press(core.ActionFire)
	l.Frame()
	l.Frame()
	l.Press(core.ActionFire)

	for i := 0; i < 3; i++ {
		if f := l.Frame(); !f.Has(core.ActionFire) {
			t.Fatalf("frame %d after repeat: fire should be held", i+1)
		}
	}
	if f := l.Frame(); f.Has(core.ActionFire) {
		t.Error("fire should be released")
	}
}

func TestInputLatchOppositeReleases(t *testing.T) {
	tests := []struct {
		first, second core.Action
	}{
		{core.ActionLeft, core.ActionRight},
		{core.ActionRight, core.ActionLeft},
		{core.ActionUp, core.ActionDown},
		{core.ActionDown, core.ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.second.String(), func(t *testing.T) {
			l := NewInputLatch(120, DefaultHoldWindow)
			l.Press(tc.first)
			l.Press(tc.second)

			f := l.Frame()
			if f.Has(tc.first) {
				t.Errorf("%v should be released by %v", tc.first, tc.second)
			}
			if !f.Has(tc.second) {
				t.Errorf("%v should be held", tc.second)
			}
		})
	}
}

func TestInputLatchCombinesAxes(t *testing.T) {
	l := NewInputLatch(120, DefaultHoldWindow)
	l.Press(core.ActionLeft)
	l.Press(core.ActionUp)
	l.Press(core.ActionFire)

	f := l.Frame()
	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionFire} {
		if !f.Has(a) {
			t.Errorf("%v should be held", a)
		}
	}
}

func TestInputLatchOneShot(t *testing.T) {
	l := NewInputLatch(120, DefaultHoldWindow)
	l.Press(core.ActionPause)

	if f := l.Frame(); !f.Has(core.ActionPause) {
		t.Fatal("pause should be active for one frame")
	}
	if f := l.Frame(); f.Has(core.ActionPause) {
		t.Error("pause should not repeat")
	}
}

func TestInputLatchMinimumHold(t *testing.T) {
	l := NewInputLatch(1, time.Millisecond)
	l.Press(core.ActionRight)

	if f := l.Frame(); !f.Has(core.ActionRight) {
		t.Error("a press should last at least one frame")
	}
}

func TestInputLatchResetAndNone(t *testing.T) {
	l := NewInputLatch(120, DefaultHoldWindow)
	l.Press(core.ActionNone)
	l.Press(core.ActionDown)
	l.Reset()

	if f := l.Frame(); len(f.Actions) != 0 {
		t.Errorf("expected an empty frame after Reset, got %v", f.Actions)
	}
}
