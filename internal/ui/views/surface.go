package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Zone is the part of the widget under a screen line
type Zone int

const (
	ZoneOutside Zone = iota
	ZoneLabel
	ZoneRow
)

type element struct {
	value   string
	text    string
	classes map[string]bool
}

func newElement(value, text string, classes ...string) *element {
	e := &element{value: value, text: text, classes: make(map[string]bool)}
	for _, c := range classes {
		e.classes[c] = true
	}
	return e
}

// Surface is the retained rendered widget: a focusable container, a label
// area and a list of rows addressable by option value. It only changes
// through Apply.
type Surface struct {
	container *element
	label     *element
	list      *element
	rows      []*element
	byValue   map[string]*element

	offset int // first visible row
	height int // rows visible at once
}

// Mount creates the surface for an initial view. maxRows bounds how many
// rows are visible when the list is shown.
func Mount(v View, maxRows int) *Surface {
	if maxRows < 1 {
		maxRows = 1
	}
	s := &Surface{
		container: newElement("", "", ClassContainer),
		label:     newElement("", v.Label, ClassValue),
		list:      newElement("", "", ClassOptions),
		byValue:   make(map[string]*element, len(v.Rows)),
		height:    maxRows,
	}
	for _, r := range v.Rows {
		row := newElement(r.Value, r.Label, ClassOption)
		row.classes[ClassSelected] = r.Selected
		s.rows = append(s.rows, row)
		s.byValue[r.Value] = row
	}
	s.list.classes[ClassShow] = v.Open
	if v.HasSelection {
		s.ScrollIntoView(v.SelectedValue)
	}
	return s
}

// Apply performs patches in order. A patch naming an unknown row fails
// and stops the remaining patches.
func (s *Surface) Apply(patches []Patch) error {
	for _, p := range patches {
		switch p.Kind {
		case PatchSetLabel:
			s.label.text = p.Text
		case PatchAddClass, PatchRemoveClass:
			row := s.byValue[p.Value]
			if row == nil {
				return fmt.Errorf("no row with value %q", p.Value)
			}
			row.classes[p.Text] = p.Kind == PatchAddClass
		case PatchShowList:
			s.list.classes[ClassShow] = true
		case PatchHideList:
			s.list.classes[ClassShow] = false
		case PatchScrollIntoView:
			if s.byValue[p.Value] == nil {
				return fmt.Errorf("no row with value %q", p.Value)
			}
			s.ScrollIntoView(p.Value)
		}
	}
	return nil
}

// ScrollIntoView scrolls by the least amount that makes the row fully
// visible. A visible row does not move the viewport.
func (s *Surface) ScrollIntoView(value string) {
	idx := s.indexOf(value)
	if idx < 0 {
		return
	}
	if idx < s.offset {
		s.offset = idx
	} else if idx >= s.offset+s.height {
		s.offset = idx - s.height + 1
	}
}

func (s *Surface) indexOf(value string) int {
	for i, r := range s.rows {
		if r.value == value {
			return i
		}
	}
	return -1
}

// Label returns the label area text
func (s *Surface) Label() string {
	return s.label.text
}

// HasClass reports whether the row for value carries class
func (s *Surface) HasClass(value, class string) bool {
	row := s.byValue[value]
	return row != nil && row.classes[class]
}

// ListShown reports whether the option list is visible
func (s *Surface) ListShown() bool {
	return s.list.classes[ClassShow]
}

// Offset returns the index of the first visible row
func (s *Surface) Offset() int {
	return s.offset
}

// VisibleValues returns the values of rows inside the viewport
func (s *Surface) VisibleValues() []string {
	end := s.offset + s.height
	if end > len(s.rows) {
		end = len(s.rows)
	}
	values := make([]string, 0, end-s.offset)
	for _, r := range s.rows[s.offset:end] {
		values = append(values, r.value)
	}
	return values
}

// HitTest maps a cell relative to the top-left of the widget to what is
// drawn there. Rows are only hit while the list is shown. Cells right of
// the drawn text are outside.
func (s *Surface) HitTest(col, line int) (Zone, string) {
	if col < 0 || line < 0 {
		return ZoneOutside, ""
	}
	width := s.textWidth()
	if line == 0 {
		if col < labelPrefix+width {
			return ZoneLabel, ""
		}
		return ZoneOutside, ""
	}
	if !s.ListShown() || col >= rowIndent+width+rowSuffix {
		return ZoneOutside, ""
	}
	visible := s.VisibleValues()
	if line-1 < len(visible) {
		return ZoneRow, visible[line-1]
	}
	return ZoneOutside, ""
}

// Height returns the number of lines Render produces
func (s *Surface) Height() int {
	if !s.ListShown() {
		return 1
	}
	return 1 + len(s.VisibleValues())
}

// Columns drawn around the padded text: the arrow and a space before the
// label, the row indent, and a space plus scroll marker after each row.
const (
	labelPrefix = 2
	rowIndent   = 2
	rowSuffix   = 2
)

// textWidth is the width every label and row text is padded to
func (s *Surface) textWidth() int {
	width := lipgloss.Width(s.label.text)
	for _, r := range s.rows {
		if w := lipgloss.Width(r.text); w > width {
			width = w
		}
	}
	return width
}

// Render draws the surface. The label area is line 0, visible rows follow.
func (s *Surface) Render(styles *Styles, focused bool) string {
	width := s.textWidth()

	arrow := "▾"
	if s.ListShown() {
		arrow = "▴"
	}
	labelStyle := styles.Label
	if focused {
		labelStyle = styles.LabelFocused
	}
	lines := []string{labelStyle.Render(fmt.Sprintf("%s %s", arrow, padRight(s.label.text, width)))}

	if s.ListShown() {
		visible := s.VisibleValues()
		for i, value := range visible {
			row := s.byValue[value]
			style := styles.Row
			if row.classes[ClassSelected] {
				style = styles.RowSelected
			}
			line := style.Render(padRight(row.text, width))

			marker := " "
			if i == 0 && s.offset > 0 {
				marker = "↑"
			}
			if i == len(visible)-1 && s.offset+len(visible) < len(s.rows) {
				marker = "↓"
			}
			lines = append(lines, line+" "+styles.Scroll.Render(marker))
		}
	}

	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
