package ui

import (
	"github.com/grindlemire/go-ui/internal/debug"
	"github.com/grindlemire/go-ui/internal/layout"
)

// reentrantLimit is the number of invalidations a component may request
// from inside its own Draw before it is reported as an invalidation loop
// and scheduled as a high-priority entry.
const reentrantLimit = 10

// Drawer is implemented by widgets to recompute their visual state.
// Draw is called by Validate, at most once per validation pass.
type Drawer interface {
	Draw()
}

// Initializer is implemented by widgets that need one-time setup before
// their first Draw.
type Initializer interface {
	Initialize()
}

// Validatable is anything a ValidationQueue can schedule.
type Validatable interface {
	// Validate redraws the component if it is invalid.
	Validate()

	// Depth is the distance from the display root, used as sort key.
	Depth() int
}

// teardowner is implemented by widgets holding resources outside the
// display tree. Dispose calls teardown after the subtree is disposed.
type teardowner interface {
	teardown()
}

// Resizable is anything whose size can be imposed by a container.
type Resizable interface {
	SetSize(width, height float64)
	Size() (width, height float64)
}

// Widget is anything built on a Component. Every widget embedding
// *Component satisfies it.
type Widget interface {
	layout.Item
	Validatable
	Base() *Component
}

var (
	_ Widget      = (*Component)(nil)
	_ Resizable   = (*Component)(nil)
	_ LayoutChild = (*Component)(nil)
)

// Component holds the invalidation state, display tree links and geometry
// shared by all widgets. Widgets embed *Component and pass themselves to
// NewComponent so Validate can call back into their Draw.
type Component struct {
	owner Drawer
	name  string

	// Invalidation state
	invalid     flagSet
	delayed     flagSet // collected while validating, promoted afterwards
	validating  bool
	initialized bool
	created     bool
	disposed    bool
	reentrant   int // invalidations requested during the current Draw

	queue *ValidationQueue

	// Tree structure
	parent   *Component
	children []Widget
	self     Widget
	depth    int // memoized; -1 until computed

	// Geometry
	x, y           float64
	width, height  float64
	explicitWidth  layout.Dim
	explicitHeight layout.Dim
	data           layout.Data
	excluded       bool

	onCreated []func()
}

// NewComponent creates the base for a widget. owner receives Draw calls and,
// if it implements Initializer, a single Initialize call. owner must not be
// nil: a bare Component has nothing to draw.
func NewComponent(owner Drawer) *Component {
	if owner == nil {
		panic("ui: NewComponent requires a Drawer")
	}
	c := &Component{
		owner: owner,
		depth: -1,
		data:  layout.DefaultData(),
	}
	if w, ok := owner.(Widget); ok {
		c.self = w
	} else {
		c.self = c
	}
	return c
}

// Base returns the component itself. It lets embedding widgets satisfy Widget.
func (c *Component) Base() *Component {
	return c
}

// Name returns the debug name of the component.
func (c *Component) Name() string {
	return c.name
}

// SetName sets the debug name used in log records.
func (c *Component) SetName(name string) {
	c.name = name
}

// Invalidate marks aspects of the component stale and schedules a redraw.
// With no arguments it marks everything stale. Calls made while the
// component is drawing are collected separately and scheduled for the next
// validation pass, so Draw never runs twice in one pass.
func (c *Component) Invalidate(flags ...Flag) {
	if c.disposed {
		return
	}
	wasInvalid := c.invalid.any()
	wasDelayed := c.delayed.any()

	target := &c.invalid
	if c.validating {
		target = &c.delayed
	}
	if len(flags) == 0 {
		target.add(FlagAll)
	}
	for _, f := range flags {
		target.add(f)
	}

	// Not attached yet: attach sweeps invalid components in.
	if c.queue == nil || !c.initialized {
		return
	}

	if c.validating {
		// Every request counts, including repeats within one Draw. Past the
		// limit the component is treated as an invalidation loop and
		// scheduled ahead of its peers for the next pass.
		c.reentrant++
		if c.reentrant > reentrantLimit {
			if c.reentrant == reentrantLimit+1 {
				debug.Event("ui: invalidate during draw loop", "component", c.name, "count", c.reentrant)
			}
			c.queue.AddPriority(c.self, true)
			return
		}
		if !wasDelayed {
			c.queue.Add(c.self, true)
		}
		return
	}

	if wasInvalid {
		return
	}
	c.reentrant = 0
	c.queue.Add(c.self, false)
}

// IsInvalid reports whether the component needs a redraw. With no
// arguments it reports whether any flag is set; otherwise whether any of the
// given flags is set. FlagAll being set makes every query true.
func (c *Component) IsInvalid(flags ...Flag) bool {
	if len(flags) == 0 {
		return c.invalid.any()
	}
	for _, f := range flags {
		if c.invalid.has(f) {
			return true
		}
	}
	return false
}

// Validate redraws the component if it is invalid. A Validate call made
// while the component is already drawing is deferred to the next pass.
func (c *Component) Validate() {
	if c.disposed {
		return
	}
	if !c.initialized {
		c.initializeNow()
	}
	if !c.invalid.any() {
		return
	}
	if c.validating {
		debug.Event("ui: deferred re-entrant validate", "component", c.name)
		if c.queue != nil {
			c.queue.Add(c.self, true)
		}
		return
	}

	c.validating = true
	c.owner.Draw()
	c.invalid.clear()
	c.invalid.merge(&c.delayed)
	c.delayed.clear()
	c.validating = false

	if !c.created {
		c.created = true
		for _, fn := range c.onCreated {
			fn()
		}
		c.onCreated = nil
	}
}

// initializeNow runs one-time setup and marks everything stale.
func (c *Component) initializeNow() {
	if c.initialized {
		return
	}
	c.initialized = true
	if init, ok := c.owner.(Initializer); ok {
		init.Initialize()
	}
	c.Invalidate(FlagAll)
}

// OnCreated registers fn to run once, after the first successful Validate.
// If the component has already been created, fn runs immediately.
func (c *Component) OnCreated(fn func()) {
	if c.created {
		fn()
		return
	}
	c.onCreated = append(c.onCreated, fn)
}

// IsInitialized reports whether one-time setup has run.
func (c *Component) IsInitialized() bool {
	return c.initialized
}

// IsCreated reports whether the component has validated successfully once.
func (c *Component) IsCreated() bool {
	return c.created
}

// IsValidating reports whether the component is inside its Draw.
func (c *Component) IsValidating() bool {
	return c.validating
}

// IsDisposed reports whether Dispose has been called.
func (c *Component) IsDisposed() bool {
	return c.disposed
}

// Queue returns the validation queue the component is attached to, or nil.
func (c *Component) Queue() *ValidationQueue {
	return c.queue
}

// Dispose detaches the component and its subtree. A disposed component
// ignores Invalidate and Validate.
func (c *Component) Dispose() {
	if c.disposed {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c.self)
	}
	c.detach()
	children := c.children
	c.children = nil
	c.disposed = true
	for _, child := range children {
		child.Base().parent = nil
		child.Base().Dispose()
	}
	if t, ok := c.owner.(teardowner); ok {
		t.teardown()
	}
	debug.Event("ui: component disposed", "component", c.name)
}
