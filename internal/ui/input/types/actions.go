package types

// List visibility actions
type ToggleOpenAction struct{}

func (a ToggleOpenAction) Type() string { return "toggle_open" }

type CloseAction struct{}

func (a CloseAction) Type() string { return "close" }

// Selection actions
type SelectPreviousAction struct{}

func (a SelectPreviousAction) Type() string { return "select_previous" }

type SelectNextAction struct{}

func (a SelectNextAction) Type() string { return "select_next" }

type SelectValueAction struct {
	Value string
}

func (a SelectValueAction) Type() string { return "select_value" }

// TypeAheadAction appends Key to the search buffer
type TypeAheadAction struct {
	Key string
}

func (a TypeAheadAction) Type() string { return "type_ahead" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Application actions
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }
