// Package widget implements the select widget: an ordered list of option
// records mirrored from a native host, a single selected record, an
// open/closed list state and type-ahead search.
//
// All methods run on the UI event loop; a Widget is not safe for
// concurrent use.
package widget

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"selectgrip/internal/domain"
)

var (
	ErrNoOptions    = errors.New("select host has no options")
	ErrNoSelection  = errors.New("select host has no selected option")
	ErrUnknownValue = errors.New("no option with value")
)

const DefaultIdleWindow = 1000 * time.Millisecond

// State is the open/closed state of the option list
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Option configures a Widget
type Option func(*Widget)

// WithNativeSync makes SelectValue mark the newly selected host entry as
// selected. Without it the host entries of both the previous and the new
// selection are cleared, so the hidden host drifts from the widget.
func WithNativeSync(enabled bool) Option {
	return func(w *Widget) {
		w.syncNative = enabled
	}
}

// WithIdleWindow sets how long type-ahead input is kept between keys
func WithIdleWindow(d time.Duration) Option {
	return func(w *Widget) {
		if d > 0 {
			w.search.window = d
		}
	}
}

// Widget is a select widget attached to a native host
type Widget struct {
	id         string
	host       *domain.NativeSelect
	options    []*domain.OptionRecord
	state      State
	syncNative bool
	search     searchBuffer
}

// New attaches a widget to host and hides the host. The host must have at
// least one entry and one marked selected. If several are marked, only the
// first counts as selected.
func New(host *domain.NativeSelect, opts ...Option) (*Widget, error) {
	if host == nil || len(host.Options) == 0 {
		return nil, ErrNoOptions
	}

	w := &Widget{
		id:      uuid.NewString(),
		host:    host,
		options: FormatOptions(host),
		state:   Closed,
		search:  searchBuffer{window: DefaultIdleWindow},
	}
	for _, opt := range opts {
		opt(w)
	}

	seen := false
	for _, o := range w.options {
		if o.Selected && seen {
			o.Selected = false
		}
		seen = seen || o.Selected
	}
	if !seen {
		return nil, ErrNoSelection
	}

	host.Hidden = true
	return w, nil
}

// ID identifies this widget instance in published events
func (w *Widget) ID() string {
	return w.id
}

// Host returns the native host the widget is attached to
func (w *Widget) Host() *domain.NativeSelect {
	return w.host
}

// Options returns a copy of the option records in source order
func (w *Widget) Options() []domain.OptionRecord {
	out := make([]domain.OptionRecord, len(w.options))
	for i, o := range w.options {
		out[i] = *o
	}
	return out
}

// Len returns the number of options
func (w *Widget) Len() int {
	return len(w.options)
}

// SelectedOption returns the first record marked selected
func (w *Widget) SelectedOption() *domain.OptionRecord {
	for _, o := range w.options {
		if o.Selected {
			return o
		}
	}
	return nil
}

// SelectedOptionIndex returns the position of the selected record, or -1
func (w *Widget) SelectedOptionIndex() int {
	selected := w.SelectedOption()
	for i, o := range w.options {
		if o == selected {
			return i
		}
	}
	return -1
}

// SelectValue moves the selection to the record holding value. Both host
// entries involved are cleared first; the new one is marked again only with
// native sync. An unknown value leaves everything as is.
func (w *Widget) SelectValue(value string) error {
	next := w.find(value)
	if next == nil {
		return fmt.Errorf("%w %q", ErrUnknownValue, value)
	}
	prev := w.SelectedOption()

	prev.Selected = false
	prev.Source.Selected = false

	next.Selected = true
	next.Source.Selected = w.syncNative
	return nil
}

func (w *Widget) find(value string) *domain.OptionRecord {
	for _, o := range w.options {
		if o.Value == value {
			return o
		}
	}
	return nil
}

// SelectPrevious selects the option before the current one, if any
func (w *Widget) SelectPrevious() (bool, error) {
	i := w.SelectedOptionIndex() - 1
	if i < 0 {
		return false, nil
	}
	return true, w.SelectValue(w.options[i].Value)
}

// SelectNext selects the option after the current one, if any
func (w *Widget) SelectNext() (bool, error) {
	i := w.SelectedOptionIndex() + 1
	if i >= len(w.options) {
		return false, nil
	}
	return true, w.SelectValue(w.options[i].Value)
}

// State returns the open/closed state
func (w *Widget) State() State {
	return w.state
}

// IsOpen reports whether the option list is shown
func (w *Widget) IsOpen() bool {
	return w.state == Open
}

// Toggle flips between Open and Closed
func (w *Widget) Toggle() {
	if w.state == Open {
		w.state = Closed
	} else {
		w.state = Open
	}
}

// Close forces the Closed state
func (w *Widget) Close() {
	w.state = Closed
}
