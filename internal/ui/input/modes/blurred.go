package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectgrip/internal/ui/input/types"
)

// BlurredMode handles keys while the widget does not have focus
type BlurredMode struct {
	keys KeyMap
}

func NewBlurredMode(keys KeyMap) *BlurredMode {
	return &BlurredMode{keys: keys}
}

func (m *BlurredMode) Name() string {
	return "blurred"
}

func (m *BlurredMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFocused}}, true

	case key.Matches(msg, m.keys.Submit):
		return []types.Action{types.SubmitAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}
