package ports

// InputKind is the phase of a pointer or slider interaction.
type InputKind int

const (
	// InputPress starts an interaction.
	InputPress InputKind = iota
	// InputMove updates an interaction, or hovers when nothing is pressed.
	InputMove
	// InputRelease ends an interaction.
	InputRelease
)

// String returns the name of the input kind.
func (k InputKind) String() string {
	switch k {
	case InputPress:
		return "press"
	case InputMove:
		return "move"
	case InputRelease:
		return "release"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer interaction in surface coordinates.
type PointerEvent struct {
	Kind InputKind
	X    float64
	Y    float64
}

// Cursor is the pointer shape requested by an interactive widget.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorResizeHorizontal
)
