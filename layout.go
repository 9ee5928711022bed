// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package ui

import "github.com/grindlemire/go-ui/internal/layout"

// Direction specifies the axis a Linear layout runs along.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Align specifies how items are positioned on an axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
	AlignJustify = layout.AlignJustify
)

// ParseAlign converts "start", "center", "end" or "justify" to an Align.
func ParseAlign(s string) (Align, bool) {
	return layout.ParseAlign(s)
}

// Value represents an item dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Dim is a dimension that is either explicit or unspecified.
type Dim = layout.Dim

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// ViewPortBounds is the input contract of a layout engine.
type ViewPortBounds = layout.ViewPortBounds

// BoundsResult is the output contract of a layout engine.
type BoundsResult = layout.BoundsResult

// Linear is the virtualized linear layout engine.
type Linear = layout.Linear

// LayoutChild is the interface items must implement to be laid out.
type LayoutChild = layout.Item

// LayoutData holds per-item sizing constraints.
type LayoutData = layout.Data

// Errors returned by virtualization-only queries and scroll solvers.
var (
	ErrNotVirtual      = layout.ErrNotVirtual
	ErrIndexOutOfRange = layout.ErrIndexOutOfRange
)

// Fixed creates a Value with an absolute size.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Explicit creates a Dim holding n. It panics on NaN.
func Explicit(n float64) Dim {
	return layout.Explicit(n)
}

// Unset creates an unspecified Dim.
func Unset() Dim {
	return layout.Unset()
}

// DefaultLayoutData returns LayoutData with no constraints.
func DefaultLayoutData() LayoutData {
	return layout.DefaultData()
}

// NewLinear creates a layout engine along the given direction.
func NewLinear(direction Direction) *Linear {
	return layout.NewLinear(direction)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
