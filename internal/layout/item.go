package layout

// Item is anything the layout engine can position and size.
type Item interface {
	// IncludeInLayout reports whether the engine should position this item.
	IncludeInLayout() bool

	// Position returns the item's top-left corner.
	Position() (x, y float64)

	// SetPosition is called by the engine to store the computed position.
	SetPosition(x, y float64)

	// Size returns the item's current (measured) size.
	Size() (width, height float64)

	// SetSize is called by the engine to impose a size on the item.
	SetSize(width, height float64)
}

// Measurer is implemented by items that must bring their measured size up
// to date before the engine reads it.
type Measurer interface {
	Validate()
}

// DataProvider is implemented by items carrying per-item layout constraints.
type DataProvider interface {
	LayoutData() Data
}

// Data holds per-item sizing constraints.
type Data struct {
	// Width and Height override the item's natural size. Percent values are
	// resolved against the space left after non-percentage items on the
	// layout axis; on the cross axis they resolve against the available
	// cross size.
	Width  Value
	Height Value

	MinWidth  float64
	MinHeight float64
	MaxWidth  Dim // unset = unbounded
	MaxHeight Dim // unset = unbounded
}

// DefaultData returns Data with no constraints.
func DefaultData() Data {
	return Data{Width: Auto(), Height: Auto()}
}

func dataOf(item Item) Data {
	if p, ok := item.(DataProvider); ok {
		return p.LayoutData()
	}
	return DefaultData()
}

func validateItem(item Item) {
	if m, ok := item.(Measurer); ok {
		m.Validate()
	}
}

// Bounds returns the item's rectangle.
func Bounds(item Item) Rect {
	x, y := item.Position()
	w, h := item.Size()
	return Rect{X: x, Y: y, Width: w, Height: h}
}
