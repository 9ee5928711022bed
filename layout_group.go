package ui

// LayoutGroup is a container that positions its children with a Linear
// layout engine and measures itself from the result.
type LayoutGroup struct {
	*Component
	layout  *Linear
	content BoundsResult
}

// NewLayoutGroup creates a container laying its children out along direction.
func NewLayoutGroup(direction Direction, opts ...LayoutOption) *LayoutGroup {
	g := &LayoutGroup{layout: NewLinear(direction)}
	g.Component = NewComponent(g)
	for _, opt := range opts {
		opt(g.layout)
	}
	return g
}

// NewRow creates a horizontal LayoutGroup.
func NewRow(opts ...LayoutOption) *LayoutGroup {
	return NewLayoutGroup(Row, opts...)
}

// NewColumn creates a vertical LayoutGroup.
func NewColumn(opts ...LayoutOption) *LayoutGroup {
	return NewLayoutGroup(Column, opts...)
}

// Configure changes layout settings and schedules a new layout.
func (g *LayoutGroup) Configure(opts ...LayoutOption) {
	for _, opt := range opts {
		opt(g.layout)
	}
	g.Invalidate(FlagLayout)
}

// Layout returns the container's layout engine.
func (g *LayoutGroup) Layout() *Linear {
	return g.layout
}

// ContentBounds returns the result of the last layout pass.
func (g *LayoutGroup) ContentBounds() BoundsResult {
	return g.content
}

// Draw implements Drawer.
func (g *LayoutGroup) Draw() {
	items := make([]LayoutChild, 0, len(g.children))
	for _, child := range g.children {
		items = append(items, child)
	}
	g.content = g.layout.Layout(items, g.viewPortBounds(0, 0))
	g.SetMeasuredSize(g.content.ViewPortWidth, g.content.ViewPortHeight)
}
