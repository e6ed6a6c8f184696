package tui

import "github.com/ctrlsworld/arcade/internal/core"

// holdWindowTicks is how many simulation ticks an action stays asserted
// after its last key event. Terminals don't report key releases, so a
// held key shows up as a stream of repeats; keeping the action alive
// between repeats gives games a continuous held signal. The window must
// not exceed the shift auto-repeat delay, or a single tap would register
// as a hold.
const holdWindowTicks = 10

// holdableActions are the actions that behave as held buttons. Everything
// else is edge-triggered: delivered on the tick it was pressed and never
// repeated, so menus and one-shot moves don't fire on every tick.
var holdableActions = map[core.Action]bool{
	core.ActionLeft:     true,
	core.ActionRight:    true,
	core.ActionSoftDrop: true,
	core.ActionGuard:    true,
}

// inputTracker accumulates key events between simulation ticks and
// produces one InputFrame per tick.
type inputTracker struct {
	tick     uint64
	lastSeen map[core.Action]uint64
	pressed  core.InputFrame
}

func newInputTracker() *inputTracker {
	return &inputTracker{
		lastSeen: make(map[core.Action]uint64),
		pressed:  core.NewInputFrame(),
	}
}

// Record registers actions from a key event.
func (t *inputTracker) Record(actions []core.Action) {
	for _, a := range actions {
		if holdableActions[a] {
			t.lastSeen[a] = t.tick
		} else {
			t.pressed.Set(a)
		}
	}
}

// Frame returns the input frame for the current tick and advances the
// tracker. Held actions persist while their window is fresh; pressed
// actions are consumed.
func (t *inputTracker) Frame() core.InputFrame {
	frame := t.pressed.Clone()
	t.pressed.Clear()

	for a, seen := range t.lastSeen {
		if t.tick-seen < holdWindowTicks {
			frame.Set(a)
		} else {
			delete(t.lastSeen, a)
		}
	}

	t.tick++
	return frame
}

// Reset clears all tracked state, e.g. when switching games.
func (t *inputTracker) Reset() {
	t.tick = 0
	t.lastSeen = make(map[core.Action]uint64)
	t.pressed.Clear()
}
