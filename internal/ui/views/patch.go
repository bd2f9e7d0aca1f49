package views

// PatchKind identifies a change to the rendered surface
type PatchKind int

const (
	PatchSetLabel PatchKind = iota
	PatchAddClass
	PatchRemoveClass
	PatchShowList
	PatchHideList
	PatchScrollIntoView
)

func (k PatchKind) String() string {
	switch k {
	case PatchSetLabel:
		return "set-label"
	case PatchAddClass:
		return "add-class"
	case PatchRemoveClass:
		return "remove-class"
	case PatchShowList:
		return "show-list"
	case PatchHideList:
		return "hide-list"
	case PatchScrollIntoView:
		return "scroll-into-view"
	default:
		return "unknown"
	}
}

// Patch is one imperative change. Value addresses a row by its option
// value; Text carries the label or class name.
type Patch struct {
	Kind  PatchKind
	Value string
	Text  string
}

// Diff returns the patches turning prev into next. Rows are fixed once
// mounted, so only the label, the selected marker and list visibility
// can change.
func Diff(prev, next View) []Patch {
	var patches []Patch

	if prev.Label != next.Label {
		patches = append(patches, Patch{Kind: PatchSetLabel, Text: next.Label})
	}

	if prev.SelectedValue != next.SelectedValue || prev.HasSelection != next.HasSelection {
		if prev.HasSelection {
			patches = append(patches, Patch{Kind: PatchRemoveClass, Value: prev.SelectedValue, Text: ClassSelected})
		}
		if next.HasSelection {
			patches = append(patches,
				Patch{Kind: PatchAddClass, Value: next.SelectedValue, Text: ClassSelected},
				Patch{Kind: PatchScrollIntoView, Value: next.SelectedValue},
			)
		}
	}

	if prev.Open != next.Open {
		if next.Open {
			patches = append(patches, Patch{Kind: PatchShowList})
		} else {
			patches = append(patches, Patch{Kind: PatchHideList})
		}
	}

	return patches
}
