package layout

// Direction specifies the axis items are laid out along.
type Direction uint8

const (
	Row    Direction = iota // Items laid out left-to-right
	Column                  // Items laid out top-to-bottom
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// Align specifies how items are positioned on an axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of axis
	AlignCenter               // Center on axis
	AlignEnd                  // Align to end of axis
	AlignJustify              // Fill the axis (cross axis only)
)

// String implements fmt.Stringer.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignJustify:
		return "justify"
	default:
		return "start"
	}
}

// ParseAlign converts a name produced by Align.String back into an Align.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "start", "":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	case "justify":
		return AlignJustify, true
	}
	return AlignStart, false
}

// alignOffset returns the offset for an extent of size inside available space.
// Centering is rounded once, per call.
func alignOffset(align Align, available, size float64) float64 {
	switch align {
	case AlignCenter:
		return roundHalfUp((available - size) / 2)
	case AlignEnd:
		return available - size
	default: // AlignStart, AlignJustify
		return 0
	}
}
