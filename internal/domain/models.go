package domain

// NativeOption is one entry of a native selection host
type NativeOption struct {
	Value    string
	Label    string
	Selected bool
}

// NativeSelect is the platform selection control the widget mirrors
type NativeSelect struct {
	Name    string
	Options []*NativeOption
	Hidden  bool // suppressed once a widget is attached
}

// OptionRecord is the widget's in-memory view of one selectable choice.
// Source points back at the host entry it was read from.
type OptionRecord struct {
	Value    string
	Label    string
	Selected bool
	Source   *NativeOption
}
