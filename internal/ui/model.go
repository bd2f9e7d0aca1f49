package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"selectgrip/internal/config"
	"selectgrip/internal/eventbus"
	"selectgrip/internal/ui/commands"
	"selectgrip/internal/ui/input"
	"selectgrip/internal/ui/input/modes"
	"selectgrip/internal/ui/input/types"
	"selectgrip/internal/ui/viewmodels"
	"selectgrip/internal/ui/views"
	"selectgrip/internal/widget"
)

// Model hosts one select widget in a bubbletea program
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	widget *widget.Widget

	inputHandler *input.Handler
	cmdExecutor  *commands.Executor
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel

	// surface is the retained rendering; view is what it was last patched to
	surface *views.Surface
	view    views.View

	submitted bool
	value     string
}

// NewModel creates a new UI model around w
func NewModel(bus eventbus.EventBus, cfg *config.Config, w *widget.Widget) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		widget:       w,
		inputHandler: input.New(modes.DefaultKeyMap()),
		cmdExecutor:  commands.NewExecutor(w, bus),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(cfg),
	}

	m.view = m.buildView()
	m.surface = views.Mount(m.view, cfg.UISettings.MaxVisibleRows)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewModel.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m, m.run(m.inputHandler.HandleKey(msg, m))

	case tea.MouseMsg:
		return m, m.run(m.inputHandler.HandleMouse(msg, m))

	case tea.BlurMsg:
		return m, m.run(m.inputHandler.HandleBlur(m))

	case commands.SearchResetMsg:
		if m.cmdExecutor.ResetSearch(msg.Seq) {
			m.sync()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Error("help pager failed")
			m.viewModel.SetError(msg.err)
		}
		return m, nil
	}

	return m, nil
}

// run executes actions in order. A failing action ends the batch; the
// error is shown in the status line.
func (m *Model) run(actions []types.Action) tea.Cmd {
	if len(actions) == 0 {
		return nil
	}
	m.viewModel.ClearStatus()

	var cmds []tea.Cmd
	for _, action := range actions {
		switch action.(type) {
		case types.SubmitAction:
			m.submitted = true
			m.value = m.widget.SelectedOption().Value
			if m.bus != nil {
				m.bus.Publish(eventbus.SubmittedEvent{WidgetID: m.widget.ID(), Value: m.value})
			}
			cmds = append(cmds, tea.Quit)

		case types.QuitAction:
			cmds = append(cmds, tea.Quit)

		case types.ShowHelpAction:
			cmds = append(cmds, showHelpInPager(renderHelpContent(m.config.UISettings.Title, m.inputHandler.KeyMap())))

		default:
			cmd, err := m.cmdExecutor.Execute(action)
			cmds = append(cmds, cmd)
			if err != nil {
				m.viewModel.SetError(err)
				m.sync()
				return tea.Batch(cmds...)
			}
		}
	}

	m.sync()
	return tea.Batch(cmds...)
}

func (m *Model) buildView() views.View {
	return views.Build(m.widget.Options(), m.widget.SelectedOption().Value, m.widget.IsOpen())
}

// sync patches the surface to match the widget
func (m *Model) sync() {
	next := m.buildView()
	if err := m.surface.Apply(views.Diff(m.view, next)); err != nil {
		logrus.WithError(err).Error("failed to patch view")
		m.viewModel.SetError(err)
	}
	m.view = next
}

func (m *Model) View() string {
	keys := m.inputHandler.KeyMap()
	bindings := keys.BlurredHelp()
	if m.inputHandler.Focused() {
		bindings = keys.FocusedHelp()
	}
	return m.renderer.Render(m.viewModel.BuildScreenState(m.widget, m.surface, m.inputHandler.Focused(), bindings))
}

// IsOpen reports whether the option list is shown
func (m *Model) IsOpen() bool {
	return m.widget.IsOpen()
}

// WidgetTop is the screen line of the widget's label area
func (m *Model) WidgetTop() int {
	return m.renderer.WidgetTop(m.config.UISettings.Title)
}

// WidgetLeft is the screen column the widget starts at
func (m *Model) WidgetLeft() int {
	return m.renderer.WidgetLeft()
}

// HitTest maps a cell relative to the widget to what is drawn there
func (m *Model) HitTest(col, line int) (views.Zone, string) {
	return m.surface.HitTest(col, line)
}

// Submitted reports whether the user confirmed a value
func (m *Model) Submitted() bool {
	return m.submitted
}

// Value returns the confirmed value
func (m *Model) Value() string {
	return m.value
}

// Widget returns the hosted widget
func (m *Model) Widget() *widget.Widget {
	return m.widget
}

// Surface returns the rendered widget
func (m *Model) Surface() *views.Surface {
	return m.surface
}

// Focused reports whether the widget holds input focus
func (m *Model) Focused() bool {
	return m.inputHandler.Focused()
}
