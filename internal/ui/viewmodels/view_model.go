package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"selectgrip/internal/config"
	"selectgrip/internal/ui/views"
	"selectgrip/internal/widget"
)

// ViewModel transforms widget and UI state into view-ready data
type ViewModel struct {
	config        *config.Config
	help          help.Model
	width         int
	status        string
	statusIsError bool
}

// NewViewModel creates a new view model
func NewViewModel(cfg *config.Config) *ViewModel {
	return &ViewModel{
		config: cfg,
		help:   help.New(),
	}
}

// SetWidth sets the current terminal width
func (vm *ViewModel) SetWidth(width int) {
	vm.width = width
	vm.help.Width = width
}

// SetStatus shows an informational message
func (vm *ViewModel) SetStatus(msg string) {
	vm.status = msg
	vm.statusIsError = false
}

// SetError shows an error message
func (vm *ViewModel) SetError(err error) {
	vm.status = err.Error()
	vm.statusIsError = true
}

// ClearStatus removes any message
func (vm *ViewModel) ClearStatus() {
	vm.status = ""
	vm.statusIsError = false
}

// Status returns the current message and whether it is an error
func (vm *ViewModel) Status() (string, bool) {
	return vm.status, vm.statusIsError
}

// BuildScreenState creates a ScreenState for rendering
func (vm *ViewModel) BuildScreenState(w *widget.Widget, surface *views.Surface, focused bool, bindings []key.Binding) views.ScreenState {
	state := views.ScreenState{
		Title:         vm.config.UISettings.Title,
		Surface:       surface,
		Focused:       focused,
		SearchBuffer:  w.SearchBuffer(),
		Status:        vm.status,
		StatusIsError: vm.statusIsError,
	}
	if vm.config.UISettings.ShowHelp {
		state.HelpLine = vm.help.ShortHelpView(bindings)
	}
	return state
}
