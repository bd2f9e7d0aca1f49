package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventOpenStateChanged EventType = "OpenStateChanged"
	EventSearchReset      EventType = "SearchReset"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventSubmitted        EventType = "Submitted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when a widget's selected option changes
type SelectionChangedEvent struct {
	WidgetID string
	Previous string
	Current  string
	Label    string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// OpenStateChangedEvent is emitted when the option list opens or closes
type OpenStateChangedEvent struct {
	WidgetID string
	Open     bool
}

func (e OpenStateChangedEvent) Type() EventType { return EventOpenStateChanged }

// SearchResetEvent is emitted when the type-ahead buffer is cleared after the idle window
type SearchResetEvent struct {
	WidgetID string
	Buffer   string // contents before the reset
}

func (e SearchResetEvent) Type() EventType { return EventSearchReset }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// SubmittedEvent is emitted when the user confirms the current value
type SubmittedEvent struct {
	WidgetID string
	Value    string
}

func (e SubmittedEvent) Type() EventType { return EventSubmitted }
