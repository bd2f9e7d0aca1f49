package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectgrip/internal/ui/views"
)

// Mode represents an input mode
type Mode int

const (
	ModeFocused Mode = iota
	ModeBlurred
)

func (m Mode) String() string {
	if m == ModeBlurred {
		return "blurred"
	}
	return "focused"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	IsOpen() bool
	// WidgetTop and WidgetLeft locate the widget's top-left cell on screen
	WidgetTop() int
	WidgetLeft() int
	HitTest(col, line int) (views.Zone, string)
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
