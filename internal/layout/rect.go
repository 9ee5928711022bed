package layout

// Rect represents a rectangle.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Left - edges.Right,
		Height: r.Height - edges.Top - edges.Bottom,
	}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return max(r.X, other.X) < min(r.Right(), other.Right()) &&
		max(r.Y, other.Y) < min(r.Bottom(), other.Bottom())
}
