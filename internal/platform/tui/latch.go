package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow is how long a key press keeps its action active.
// It bridges the gap between terminal auto-repeat events.
const DefaultHoldWindow = 150 * time.Millisecond

// InputLatch turns key presses into held actions.
// Terminals report presses and auto-repeats but never releases, so a press
// keeps movement and fire active for a number of ticks. Pause and quit
// last exactly one tick.
type InputLatch struct {
	hold      int
	remaining map[core.Action]int
}

// NewInputLatch creates a latch holding presses for window at tickRate.
func NewInputLatch(tickRate int, window time.Duration) *InputLatch {
	hold := int(window * time.Duration(tickRate) / time.Second)
	return &InputLatch{
		hold:      max(hold, 1),
		remaining: make(map[core.Action]int),
	}
}

// opposite returns the action a press cancels.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	default:
		return core.ActionNone
	}
}

// Press activates an action. A direction releases its opposite.
func (l *InputLatch) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionPause, core.ActionQuit, core.ActionConfirm, core.ActionBack:
		l.remaining[a] = 1
		return
	}

	l.remaining[a] = l.hold
	if o := opposite(a); o != core.ActionNone {
		delete(l.remaining, o)
	}
}

// Frame returns the actions active this tick and ages every press.
func (l *InputLatch) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range l.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
	return frame
}

// Reset drops every held action.
func (l *InputLatch) Reset() {
	clear(l.remaining)
}
