// Package host builds native selection hosts from TOML files or
// command-line entries.
package host

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pelletier/go-toml/v2"

	"selectgrip/internal/domain"
)

var (
	ErrEmpty           = errors.New("host has no options")
	ErrUnknownSelected = errors.New("selected value is not among the options")
)

type fileOption struct {
	Value    string `toml:"value"`
	Label    string `toml:"label"`
	Selected bool   `toml:"selected"`
}

type file struct {
	Name    string       `toml:"name"`
	Options []fileOption `toml:"option"`
}

// LoadFile reads a host definition:
//
//	name = "medal"
//
//	[[option]]
//	value = "gold"
//	label = "Gold"
//	selected = true
func LoadFile(path string) (*domain.NativeSelect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read host file: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse host file %s: %w", path, err)
	}

	sel := &domain.NativeSelect{Name: f.Name}
	for _, o := range f.Options {
		sel.Options = append(sel.Options, newOption(o.Value, o.Label, o.Selected))
	}
	if len(sel.Options) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	markDefault(sel)
	return sel, nil
}

// ParseArgs builds a host from value[:label] entries. selected names the
// initially marked value; when empty the first entry is marked.
func ParseArgs(args []string, selected string) (*domain.NativeSelect, error) {
	if len(args) == 0 {
		return nil, ErrEmpty
	}

	sel := &domain.NativeSelect{}
	found := selected == ""
	for _, arg := range args {
		value, label, _ := strings.Cut(arg, ":")
		if value == "" {
			return nil, fmt.Errorf("invalid option %q: empty value", arg)
		}
		marked := selected != "" && value == selected
		found = found || marked
		sel.Options = append(sel.Options, newOption(value, label, marked))
	}
	if !found {
		return nil, unknownSelected(sel, selected)
	}
	markDefault(sel)
	return sel, nil
}

// Select marks value as the only selected entry
func Select(sel *domain.NativeSelect, value string) error {
	found := false
	for _, o := range sel.Options {
		o.Selected = o.Value == value && !found
		found = found || o.Selected
	}
	if !found {
		markDefault(sel)
		return unknownSelected(sel, value)
	}
	return nil
}

func unknownSelected(sel *domain.NativeSelect, value string) error {
	if s := closest(sel, value); s != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownSelected, value, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownSelected, value)
}

// closest returns the option value nearest to value, if any is within a
// third of its length in edits
func closest(sel *domain.NativeSelect, value string) string {
	best, bestDist := "", 0
	for _, o := range sel.Options {
		d := levenshtein.ComputeDistance(strings.ToLower(value), strings.ToLower(o.Value))
		if best == "" || d < bestDist {
			best, bestDist = o.Value, d
		}
	}
	if bestDist > max(1, len(value)/3) {
		return ""
	}
	return best
}

func newOption(value, label string, selected bool) *domain.NativeOption {
	if label == "" {
		label = value
	}
	return &domain.NativeOption{Value: value, Label: label, Selected: selected}
}

// markDefault applies single-select semantics: with nothing marked the
// first entry is selected
func markDefault(sel *domain.NativeSelect) {
	for _, o := range sel.Options {
		if o.Selected {
			return
		}
	}
	sel.Options[0].Selected = true
}
