package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectgrip/internal/ui/input/modes"
	"selectgrip/internal/ui/input/types"
	"selectgrip/internal/ui/views"
)

// Handler turns terminal input into actions for the current mode
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        modes.KeyMap
}

// New creates a handler that starts with the widget focused
func New(keys modes.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeFocused,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeFocused] = modes.NewFocusedMode(keys)
	h.modes[types.ModeBlurred] = modes.NewBlurredMode(keys)

	return h
}

// HandleKey dispatches a key to the current mode. Mode changes are
// resolved here; the returned actions never contain ChangeModeAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}
	return h.resolve(actions, ctx)
}

// HandleMouse maps a left click to actions. Clicking the label text
// focuses and toggles, clicking a row selects it and closes the list,
// clicking anywhere else, including beside the label, takes focus away.
func (h *Handler) HandleMouse(msg tea.MouseMsg, ctx types.Context) []types.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	zone, value := ctx.HitTest(msg.X-ctx.WidgetLeft(), msg.Y-ctx.WidgetTop())
	var actions []types.Action
	switch zone {
	case views.ZoneLabel:
		actions = []types.Action{
			types.ChangeModeAction{Mode: types.ModeFocused},
			types.ToggleOpenAction{},
		}
	case views.ZoneRow:
		actions = []types.Action{
			types.ChangeModeAction{Mode: types.ModeFocused},
			types.SelectValueAction{Value: value},
			types.CloseAction{},
		}
	default:
		actions = []types.Action{types.ChangeModeAction{Mode: types.ModeBlurred}}
	}
	return h.resolve(actions, ctx)
}

// HandleBlur reacts to the terminal losing focus
func (h *Handler) HandleBlur(ctx types.Context) []types.Action {
	return h.resolve([]types.Action{types.ChangeModeAction{Mode: types.ModeBlurred}}, ctx)
}

func (h *Handler) resolve(actions []types.Action, ctx types.Context) []types.Action {
	var out []types.Action
	for _, action := range actions {
		change, ok := action.(types.ChangeModeAction)
		if !ok {
			out = append(out, action)
			continue
		}
		if change.Mode == h.currentMode {
			continue
		}
		if current := h.modes[h.currentMode]; current != nil {
			out = append(out, current.Exit(ctx)...)
		}
		h.currentMode = change.Mode
		if next := h.modes[h.currentMode]; next != nil {
			out = append(out, next.Enter(ctx)...)
		}
	}
	return out
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Focused reports whether the widget holds input focus
func (h *Handler) Focused() bool {
	return h.currentMode == types.ModeFocused
}

// KeyMap returns the bindings in use
func (h *Handler) KeyMap() modes.KeyMap {
	return h.keys
}
