package ui

import "github.com/grindlemire/go-ui/internal/layout"

// Position returns the component's top-left corner in its parent.
func (c *Component) Position() (x, y float64) {
	return c.x, c.y
}

// SetPosition moves the component. Moving does not invalidate it.
func (c *Component) SetPosition(x, y float64) {
	c.x, c.y = x, y
}

// Size returns the measured size from the last Draw.
func (c *Component) Size() (width, height float64) {
	return c.width, c.height
}

// Bounds returns the component's rectangle in its parent.
func (c *Component) Bounds() Rect {
	return layout.NewRect(c.x, c.y, c.width, c.height)
}

// SetSize imposes an explicit size. The component redraws with FlagSize.
func (c *Component) SetSize(width, height float64) {
	c.SetWidth(width)
	c.SetHeight(height)
}

// SetWidth imposes an explicit width.
func (c *Component) SetWidth(width float64) {
	if w, ok := c.explicitWidth.Get(); ok && w == width {
		return
	}
	c.explicitWidth = layout.Explicit(width)
	c.Invalidate(FlagSize)
}

// SetHeight imposes an explicit height.
func (c *Component) SetHeight(height float64) {
	if h, ok := c.explicitHeight.Get(); ok && h == height {
		return
	}
	c.explicitHeight = layout.Explicit(height)
	c.Invalidate(FlagSize)
}

// ClearExplicitSize lets the component measure itself again.
func (c *Component) ClearExplicitSize() {
	if !c.explicitWidth.IsSet() && !c.explicitHeight.IsSet() {
		return
	}
	c.explicitWidth, c.explicitHeight = layout.Unset(), layout.Unset()
	c.Invalidate(FlagSize)
}

// ExplicitSize returns the imposed width and height, unset when the
// component sizes itself.
func (c *Component) ExplicitSize() (width, height Dim) {
	return c.explicitWidth, c.explicitHeight
}

// SetMeasuredSize records the size computed by Draw, clamped to the
// component's min/max constraints. If the size changed, the parent's layout
// is invalidated. Returns true if the size changed.
func (c *Component) SetMeasuredSize(width, height float64) bool {
	width = clampSize(width, c.data.MinWidth, c.data.MaxWidth)
	height = clampSize(height, c.data.MinHeight, c.data.MaxHeight)
	if width == c.width && height == c.height {
		return false
	}
	c.width, c.height = width, height
	// A parent inside its Draw is laying this component out and reads the
	// new size directly.
	if c.parent != nil && !c.parent.validating {
		c.parent.Invalidate(FlagLayout)
	}
	return true
}

// IncludeInLayout reports whether containers should position this component.
func (c *Component) IncludeInLayout() bool {
	return !c.excluded
}

// SetIncludeInLayout includes or excludes the component from its parent's layout.
func (c *Component) SetIncludeInLayout(include bool) {
	if c.excluded == !include {
		return
	}
	c.excluded = !include
	if c.parent != nil {
		c.parent.Invalidate(FlagLayout)
	}
}

// LayoutData returns the per-item layout constraints.
func (c *Component) LayoutData() LayoutData {
	return c.data
}

// SetLayoutData replaces the per-item layout constraints.
func (c *Component) SetLayoutData(data LayoutData) {
	c.data = data
	c.Invalidate(FlagSize)
	if c.parent != nil {
		c.parent.Invalidate(FlagLayout)
	}
}

// viewPortBounds builds layout engine input from the component's own size
// constraints.
func (c *Component) viewPortBounds(scrollX, scrollY float64) ViewPortBounds {
	return ViewPortBounds{
		ScrollX:        scrollX,
		ScrollY:        scrollY,
		ExplicitWidth:  c.explicitWidth,
		ExplicitHeight: c.explicitHeight,
		MinWidth:       c.data.MinWidth,
		MinHeight:      c.data.MinHeight,
		MaxWidth:       c.data.MaxWidth,
		MaxHeight:      c.data.MaxHeight,
	}
}

func clampSize(v, minVal float64, maxVal Dim) float64 {
	if m, ok := maxVal.Get(); ok && v > m {
		v = m
	}
	if v < minVal {
		v = minVal
	}
	return v
}
