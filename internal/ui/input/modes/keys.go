package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the widget's key bindings
type KeyMap struct {
	Toggle    key.Binding
	Up        key.Binding
	Down      key.Binding
	Close     key.Binding
	Focus     key.Binding
	Submit    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "open/close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Close: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "close"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "cancel"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// FocusedHelp lists the bindings active while the widget has focus
func (k KeyMap) FocusedHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Up, k.Down, k.Close, k.Focus, k.Help}
}

// BlurredHelp lists the bindings active while the widget is blurred
func (k KeyMap) BlurredHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Submit, k.Quit, k.Help}
}
