package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectgrip/internal/ui/input/types"
)

// FocusedMode drives the widget while it holds input focus
type FocusedMode struct {
	keys KeyMap
}

func NewFocusedMode(keys KeyMap) *FocusedMode {
	return &FocusedMode{keys: keys}
}

func (m *FocusedMode) Name() string {
	return "focused"
}

func (m *FocusedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Exit closes the list: losing focus always closes the widget
func (m *FocusedMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseAction{}}
}

func (m *FocusedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Toggle):
		return []types.Action{types.ToggleOpenAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.SelectPreviousAction{}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.SelectNextAction{}}, true

	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.CloseAction{}}, true

	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBlurred}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	// Any other printable key feeds type-ahead search
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
		return []types.Action{types.TypeAheadAction{Key: string(msg.Runes)}}, true
	}

	return nil, false
}
