package views

import "selectgrip/internal/domain"

// Class names carried by rendered elements
const (
	ClassContainer = "custom-select-container"
	ClassValue     = "custom-select-value"
	ClassOptions   = "custom-select-options"
	ClassOption    = "custom-select-option"
	ClassSelected  = "selected"
	ClassShow      = "show"
)

// RowView is one option row
type RowView struct {
	Value    string
	Label    string
	Selected bool
}

// View is everything needed to draw a widget
type View struct {
	Label         string
	SelectedValue string
	// HasSelection is false when no row matches SelectedValue. The empty
	// string is a valid option value, so it cannot stand for "none".
	HasSelection bool
	Open         bool
	Rows         []RowView
}

// Build derives the view from the option records. It has no side effects.
func Build(records []domain.OptionRecord, selectedValue string, open bool) View {
	v := View{
		SelectedValue: selectedValue,
		Open:          open,
		Rows:          make([]RowView, len(records)),
	}
	for i, r := range records {
		selected := r.Value == selectedValue
		v.Rows[i] = RowView{Value: r.Value, Label: r.Label, Selected: selected}
		if selected && !v.HasSelection {
			v.Label = r.Label
			v.HasSelection = true
		}
	}
	return v
}
