package widget

import (
	"strings"
	"time"
)

// searchBuffer holds type-ahead input. seq is the generation of the
// pending idle reset; only the latest generation may clear the buffer.
type searchBuffer struct {
	text   string
	seq    uint64
	window time.Duration
}

// TypeAhead appends key to the search buffer and selects the first option
// whose label starts with the buffer, ignoring case. It returns the
// generation the caller must pass to ResetSearch once the idle window
// elapses. No match leaves the selection alone.
func (w *Widget) TypeAhead(key string) (uint64, error) {
	w.search.text += key
	w.search.seq++
	seq := w.search.seq

	term := strings.ToLower(w.search.text)
	for _, o := range w.options {
		if strings.HasPrefix(strings.ToLower(o.Label), term) {
			return seq, w.SelectValue(o.Value)
		}
	}
	return seq, nil
}

// ResetSearch clears the buffer if seq is still the latest generation.
// Stale timers are ignored.
func (w *Widget) ResetSearch(seq uint64) bool {
	if seq != w.search.seq || w.search.text == "" {
		return false
	}
	w.search.text = ""
	return true
}

// SearchBuffer returns the pending type-ahead input
func (w *Widget) SearchBuffer() string {
	return w.search.text
}

// IdleWindow returns how long type-ahead input survives without a key
func (w *Widget) IdleWindow() time.Duration {
	return w.search.window
}
