package ui

import "slices"

// --- Component's own API ---

// AddChild appends children to this Component. A child that already has a
// parent is moved. If this Component is attached to a queue, the children
// are attached too.
func (c *Component) AddChild(children ...Widget) {
	for _, child := range children {
		c.insertChild(len(c.children), child)
	}
	c.Invalidate(FlagLayout)
}

// AddChildAt inserts child at index, clamped to the valid range.
func (c *Component) AddChildAt(index int, child Widget) {
	c.insertChild(max(0, min(index, len(c.children))), child)
	c.Invalidate(FlagLayout)
}

func (c *Component) insertChild(index int, child Widget) {
	if child == nil {
		panic("ui: nil child in AddChild")
	}
	base := child.Base()
	if base == c {
		panic("ui: component added to itself")
	}
	if base.parent != nil {
		base.parent.RemoveChild(child)
		index = min(index, len(c.children))
	}
	base.parent = c
	c.children = slices.Insert(c.children, index, child)
	base.clearDepth()
	if c.queue != nil {
		base.attach(c.queue)
	}
}

// RemoveChild removes a child from this Component, keeping the order of the
// remaining children. Returns true if the child was found and removed.
func (c *Component) RemoveChild(child Widget) bool {
	if !c.takeChild(child) {
		return false
	}
	c.Invalidate(FlagLayout)
	return true
}

// takeChild unlinks and detaches child without invalidating c. Containers
// use it to recycle children from inside their own Draw.
func (c *Component) takeChild(child Widget) bool {
	if child == nil {
		return false
	}
	base := child.Base()
	for i, ch := range c.children {
		if ch.Base() == base {
			c.children = slices.Delete(c.children, i, i+1)
			base.parent = nil
			base.detach()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Component.
func (c *Component) RemoveAllChildren() {
	for _, child := range c.children {
		base := child.Base()
		base.parent = nil
		base.detach()
	}
	c.children = nil
	c.Invalidate(FlagLayout)
}

// Children returns the child widgets.
func (c *Component) Children() []Widget {
	return c.children
}

// Parent returns the parent component, or nil if this is a root.
func (c *Component) Parent() *Component {
	return c.parent
}

// Depth returns the distance from the display root. The value is memoized
// and recomputed after the component is moved or detached.
func (c *Component) Depth() int {
	if c.depth < 0 {
		if c.parent == nil {
			c.depth = 0
		} else {
			c.depth = c.parent.Depth() + 1
		}
	}
	return c.depth
}

func (c *Component) clearDepth() {
	c.depth = -1
	for _, child := range c.children {
		child.Base().clearDepth()
	}
}

// attach binds the subtree to q, running one-time setup and enqueueing
// every component that is already invalid.
func (c *Component) attach(q *ValidationQueue) {
	if c.disposed {
		return
	}
	c.queue = q
	c.depth = -1
	c.initializeNow()
	if c.invalid.any() {
		q.Add(c.self, false)
	}
	for _, child := range c.children {
		child.Base().attach(q)
	}
}

// detach removes the subtree from its queue and forgets memoized depths.
func (c *Component) detach() {
	if c.queue != nil {
		c.queue.Remove(c.self)
	}
	c.queue = nil
	c.depth = -1
	for _, child := range c.children {
		child.Base().detach()
	}
}
