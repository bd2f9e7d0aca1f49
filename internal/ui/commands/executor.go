package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"selectgrip/internal/eventbus"
	"selectgrip/internal/ui/input/types"
	"selectgrip/internal/widget"
)

// SearchResetMsg fires when the type-ahead idle window of generation Seq
// has elapsed
type SearchResetMsg struct {
	Seq uint64
}

// Executor applies widget actions and publishes the resulting changes
type Executor struct {
	widget *widget.Widget
	bus    eventbus.EventBus
	log    *logrus.Entry
}

// NewExecutor creates a new command executor. bus may be nil.
func NewExecutor(w *widget.Widget, bus eventbus.EventBus) *Executor {
	return &Executor{
		widget: w,
		bus:    bus,
		log:    logrus.WithField("widget", w.ID()),
	}
}

// Execute applies one action. The returned command, if any, schedules
// follow-up work such as the search idle reset.
func (e *Executor) Execute(action types.Action) (tea.Cmd, error) {
	prevValue := e.widget.SelectedOption().Value
	prevOpen := e.widget.IsOpen()

	var cmd tea.Cmd
	var err error

	switch a := action.(type) {
	case types.ToggleOpenAction:
		e.widget.Toggle()
	case types.CloseAction:
		e.widget.Close()
	case types.SelectPreviousAction:
		_, err = e.widget.SelectPrevious()
	case types.SelectNextAction:
		_, err = e.widget.SelectNext()
	case types.SelectValueAction:
		err = e.widget.SelectValue(a.Value)
	case types.TypeAheadAction:
		var seq uint64
		seq, err = e.widget.TypeAhead(a.Key)
		cmd = scheduleSearchReset(e.widget.IdleWindow(), seq)
	default:
		return nil, fmt.Errorf("unsupported action %q", action.Type())
	}

	if err != nil {
		e.log.WithError(err).WithField("action", action.Type()).Error("action failed")
		e.publish(eventbus.ErrorEvent{Message: action.Type(), Err: err})
		return cmd, err
	}

	e.publishChanges(prevValue, prevOpen)
	return cmd, nil
}

// ResetSearch clears the search buffer if seq is the latest generation
func (e *Executor) ResetSearch(seq uint64) bool {
	buffer := e.widget.SearchBuffer()
	if !e.widget.ResetSearch(seq) {
		return false
	}
	e.log.WithField("buffer", buffer).Debug("search buffer reset")
	e.publish(eventbus.SearchResetEvent{WidgetID: e.widget.ID(), Buffer: buffer})
	return true
}

func (e *Executor) publishChanges(prevValue string, prevOpen bool) {
	if current := e.widget.SelectedOption(); current.Value != prevValue {
		e.log.WithFields(logrus.Fields{"from": prevValue, "value": current.Value}).Info("selection changed")
		e.publish(eventbus.SelectionChangedEvent{
			WidgetID: e.widget.ID(),
			Previous: prevValue,
			Current:  current.Value,
			Label:    current.Label,
		})
	}
	if open := e.widget.IsOpen(); open != prevOpen {
		e.publish(eventbus.OpenStateChangedEvent{WidgetID: e.widget.ID(), Open: open})
	}
}

func (e *Executor) publish(event eventbus.DomainEvent) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}

// scheduleSearchReset restarts the idle timer. Earlier timers still fire
// but carry a stale generation and are ignored.
func scheduleSearchReset(window time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return SearchResetMsg{Seq: seq}
	})
}
