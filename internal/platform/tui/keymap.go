package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// key event. Terminals report held keys as repeated presses, so the window
// must outlast one input-repeat period.
const DefaultHoldWindow = 100 * time.Millisecond

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
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "down", "s", "j":
		return core.ActionSoftDrop, false
	case "up", "w", "k", "x":
		return core.ActionRotateCW, false
	case "z":
		return core.ActionRotateCCW, false
	case " ":
		return core.ActionHardDrop, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// IsHoldable reports whether an action is level-triggered.
func IsHoldable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionSoftDrop:
		return true
	default:
		return false
	}
}

// HeldKeys turns key events into held state. Each event for a holdable
// action extends its deadline by the hold window.
type HeldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records a key event for a at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if !IsHoldable(a) {
		return
	}
	// Opposite directions cancel each other.
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// Apply marks every action still inside its window as held in frame and
// forgets expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, deadline := range h.until {
		if now.Before(deadline) {
			frame.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release forgets every held action.
func (h *HeldKeys) Release() {
	for a := range h.until {
		delete(h.until, a)
	}
}

// MapKeyToFrame updates an input frame based on a key message. Holdable
// actions go to held instead of the pressed set.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, held *HeldKeys, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case IsHoldable(action) && held != nil:
		held.Press(action, now)
	default:
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
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
