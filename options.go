package ui

// Option configures a Component.
type Option func(*Component)

// LayoutOption configures a Linear layout engine.
type LayoutOption func(*Linear)

// --- Component options ---

// WithName sets the debug name used in log records.
func WithName(name string) Option {
	return func(c *Component) {
		c.name = name
	}
}

// WithSize imposes an explicit width and height.
func WithSize(width, height float64) Option {
	return func(c *Component) {
		c.explicitWidth = Explicit(width)
		c.explicitHeight = Explicit(height)
	}
}

// WithWidth sets the width a container gives this component.
func WithWidth(width float64) Option {
	return func(c *Component) {
		c.data.Width = Fixed(width)
	}
}

// WithWidthPercent sets the width as a percentage of the container's space.
func WithWidthPercent(percent float64) Option {
	return func(c *Component) {
		c.data.Width = Percent(percent)
	}
}

// WithHeight sets the height a container gives this component.
func WithHeight(height float64) Option {
	return func(c *Component) {
		c.data.Height = Fixed(height)
	}
}

// WithHeightPercent sets the height as a percentage of the container's space.
func WithHeightPercent(percent float64) Option {
	return func(c *Component) {
		c.data.Height = Percent(percent)
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(width float64) Option {
	return func(c *Component) {
		c.data.MinWidth = width
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(height float64) Option {
	return func(c *Component) {
		c.data.MinHeight = height
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(width float64) Option {
	return func(c *Component) {
		c.data.MaxWidth = Explicit(width)
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(height float64) Option {
	return func(c *Component) {
		c.data.MaxHeight = Explicit(height)
	}
}

// WithIncludeInLayout includes or excludes the component from its parent's layout.
func WithIncludeInLayout(include bool) Option {
	return func(c *Component) {
		c.excluded = !include
	}
}

func (c *Component) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// --- Layout options ---

// WithDirection sets the layout axis.
func WithDirection(d Direction) LayoutOption {
	return func(l *Linear) {
		l.Direction = d
	}
}

// WithGap sets the space between adjacent items.
func WithGap(gap float64) LayoutOption {
	return func(l *Linear) {
		l.Gap = gap
	}
}

// WithFirstGap sets the space between the first two items.
func WithFirstGap(gap float64) LayoutOption {
	return func(l *Linear) {
		l.FirstGap = Explicit(gap)
	}
}

// WithLastGap sets the space between the last two items.
func WithLastGap(gap float64) LayoutOption {
	return func(l *Linear) {
		l.LastGap = Explicit(gap)
	}
}

// WithPadding sets the space between the viewport edges and the items.
func WithPadding(e Edges) LayoutOption {
	return func(l *Linear) {
		l.Padding = e
	}
}

// WithAlign positions items on the layout axis when they do not fill it.
func WithAlign(a Align) LayoutOption {
	return func(l *Linear) {
		l.Align = a
	}
}

// WithCrossAlign positions items on the cross axis.
func WithCrossAlign(a Align) LayoutOption {
	return func(l *Linear) {
		l.CrossAlign = a
	}
}

// WithDistributed gives every item the same size on the layout axis.
func WithDistributed(distributed bool) LayoutOption {
	return func(l *Linear) {
		l.Distributed = distributed
	}
}

// WithVariableSize lets virtual items keep their own measured sizes.
func WithVariableSize(variable bool) LayoutOption {
	return func(l *Linear) {
		l.VariableSize = variable
	}
}

// WithScrollAlign sets where ScrollPositionForIndex places an item.
func WithScrollAlign(a Align) LayoutOption {
	return func(l *Linear) {
		l.ScrollAlign = a
	}
}

// WithRequestedCount sizes an unconstrained virtual viewport to count
// typical items.
func WithRequestedCount(count int) LayoutOption {
	return func(l *Linear) {
		l.RequestedCount = count
	}
}
