package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// holdWindow is how long a movement or zoom key counts as held after its
// last press. Terminals report no key releases, only auto-repeat presses.
const holdWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "i", "+", "=":
		return core.ActionZoomIn, false
	case "o", "-":
		return core.ActionZoomOut, false
	}

	return core.ActionNone, false
}

// isHeld reports whether an action is level-triggered.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionZoomIn, core.ActionZoomOut:
		return true
	}
	return false
}

// HeldInput accumulates key presses between ticks and turns them into one
// InputFrame per tick. Held actions stay active for holdWindow after their
// last press; the rest fire on the next tick only.
type HeldInput struct {
	lastPress map[core.Action]time.Time
	pending   core.InputFrame
	pointer   core.Vec2
}

// NewHeldInput creates an empty input tracker.
func NewHeldInput() *HeldInput {
	return &HeldInput{
		lastPress: make(map[core.Action]time.Time),
		pending:   core.NewInputFrame(),
	}
}

// Press records an action at the given time.
func (h *HeldInput) Press(a core.Action, at time.Time) {
	if a == core.ActionNone {
		return
	}
	if isHeld(a) {
		h.lastPress[a] = at
		return
	}
	h.pending.Set(a)
}

// Point sets the pointer offset from the screen center, given a mouse cell
// and the screen size in cells.
func (h *HeldInput) Point(x, y, screenW, screenH int) {
	h.pointer = core.V(
		float64(x-screenW/2)*core.CellPixelsW,
		float64(y-screenH/2)*core.CellPixelsH,
	)
}

// Frame builds the input for a tick at time now and consumes one-shot actions.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	frame.Pointer = h.pointer
	for a, at := range h.lastPress {
		if now.Sub(at) <= holdWindow {
			frame.Set(a)
		} else {
			delete(h.lastPress, a)
		}
	}
	h.pending.Clear()
	return frame
}

// Release drops every held action, e.g. when a menu takes focus.
func (h *HeldInput) Release() {
	for a := range h.lastPress {
		delete(h.lastPress, a)
	}
	h.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
