package ui

import (
	"maps"
	"slices"

	"github.com/grindlemire/go-ui/internal/debug"
)

// ListView is a virtualized container. It shows count items through a
// Linear layout, keeping live renderers only for the indices needed to cover
// its viewport and recycling them as it scrolls.
type ListView struct {
	*Component
	layout *Linear

	count   int
	factory func() Widget
	bind    func(w Widget, index int)

	typical Widget
	live    map[int]Widget
	pool    []Widget

	scrollX, scrollY float64
	content          BoundsResult
}

// NewListView creates a list laying out count items along direction.
// factory creates renderers; bind loads the data of index into one.
func NewListView(direction Direction, factory func() Widget, bind func(w Widget, index int), opts ...LayoutOption) *ListView {
	if factory == nil || bind == nil {
		panic("ui: NewListView requires a factory and a bind function")
	}
	v := &ListView{
		layout:  NewLinear(direction),
		factory: factory,
		bind:    bind,
		live:    make(map[int]Widget),
	}
	v.Component = NewComponent(v)
	for _, opt := range opts {
		opt(v.layout)
	}
	v.layout.Virtual = true
	v.layout.OnScroll = v.adjustScroll
	v.typical = v.newRenderer()
	v.layout.TypicalItem = v.typical
	return v
}

// Layout returns the list's layout engine.
func (v *ListView) Layout() *Linear {
	return v.layout
}

// Configure changes layout settings and schedules a new layout.
func (v *ListView) Configure(opts ...LayoutOption) {
	for _, opt := range opts {
		opt(v.layout)
	}
	v.layout.Virtual = true
	v.Invalidate(FlagLayout)
}

// Count returns the number of items.
func (v *ListView) Count() int {
	return v.count
}

// SetCount changes the number of items. Live renderers are rebound on the
// next Draw.
func (v *ListView) SetCount(count int) {
	if count < 0 {
		panic("ui: negative item count")
	}
	if count == v.count {
		return
	}
	v.count = count
	v.releaseAll()
	v.Invalidate(FlagData)
}

// InsertItemAt records that an item was inserted before index.
func (v *ListView) InsertItemAt(index int) {
	v.count++
	v.layout.InsertVariableCacheAt(index)
	v.releaseAll()
	v.Invalidate(FlagData)
}

// RemoveItemAt records that the item at index was removed.
func (v *ListView) RemoveItemAt(index int) {
	if v.count == 0 {
		return
	}
	v.count--
	v.layout.RemoveVariableCacheAt(index)
	v.releaseAll()
	v.Invalidate(FlagData)
}

// ItemChanged rebinds the item at index and forgets its measured size.
func (v *ListView) ItemChanged(index int) {
	v.layout.ResetVariableCacheAt(index)
	if w, ok := v.live[index]; ok {
		v.bind(w, index)
	}
	v.Invalidate(FlagData)
}

// Scroll returns the current scroll offsets.
func (v *ListView) Scroll() (x, y float64) {
	return v.scrollX, v.scrollY
}

// SetScroll moves the viewport. Offsets are clamped on the next Draw.
func (v *ListView) SetScroll(x, y float64) {
	if x == v.scrollX && y == v.scrollY {
		return
	}
	v.scrollX, v.scrollY = x, y
	v.Invalidate(FlagScroll)
}

// MaxScroll returns the largest scroll offsets for the last layout.
func (v *ListView) MaxScroll() (x, y float64) {
	return max(0, v.content.ContentWidth-v.content.ViewPortWidth),
		max(0, v.content.ContentHeight-v.content.ViewPortHeight)
}

// ScrollToIndex scrolls the least amount that brings index fully into view.
func (v *ListView) ScrollToIndex(index int) error {
	x, y, err := v.layout.NearestScrollPositionForIndex(index, v.items(), v.scrollX, v.scrollY, v.width, v.height)
	if err != nil {
		return err
	}
	v.SetScroll(x, y)
	return nil
}

// AlignToIndex scrolls so index sits at the layout's ScrollAlign point.
func (v *ListView) AlignToIndex(index int) error {
	x, y, err := v.layout.ScrollPositionForIndex(index, v.items(), v.width, v.height)
	if err != nil {
		return err
	}
	if v.layout.Direction == Column {
		x = v.scrollX
	} else {
		y = v.scrollY
	}
	v.SetScroll(x, y)
	return nil
}

// Live returns the indices that currently have a renderer, in order.
func (v *ListView) Live() []int {
	return slices.Sorted(maps.Keys(v.live))
}

// Renderer returns the live renderer for index, if any.
func (v *ListView) Renderer(index int) (Widget, bool) {
	w, ok := v.live[index]
	return w, ok
}

// ContentBounds returns the result of the last layout pass.
func (v *ListView) ContentBounds() BoundsResult {
	return v.content
}

// Draw implements Drawer.
func (v *ListView) Draw() {
	if v.count > 0 {
		v.bind(v.typical, 0)
	}
	bounds := v.viewPortBounds(v.scrollX, v.scrollY)

	width, height := v.explicitWidth.Or(0), v.explicitHeight.Or(0)
	if !v.explicitWidth.IsSet() || !v.explicitHeight.IsSet() {
		w, h, err := v.layout.MeasureViewPort(v.count, bounds)
		if err != nil {
			panic("ui: " + err.Error())
		}
		width, height = v.explicitWidth.Or(w), v.explicitHeight.Or(h)
	}

	indices, err := v.layout.VisibleIndices(v.scrollX, v.scrollY, width, height, v.count)
	if err != nil {
		panic("ui: " + err.Error())
	}
	v.recycle(indices)

	scrollX, scrollY := v.scrollX, v.scrollY
	v.content = v.layout.Layout(v.items(), bounds)

	maxX, maxY := v.MaxScroll()
	v.scrollX = max(0, min(v.scrollX, maxX))
	v.scrollY = max(0, min(v.scrollY, maxY))
	if v.scrollX != scrollX || v.scrollY != scrollY {
		// The visible range was computed for the old offsets.
		v.Invalidate(FlagScroll)
	}
	v.SetMeasuredSize(v.content.ViewPortWidth, v.content.ViewPortHeight)
}

// items returns one entry per index, nil where no renderer is live.
func (v *ListView) items() []LayoutChild {
	items := make([]LayoutChild, v.count)
	for i, w := range v.live {
		if i < v.count {
			items[i] = w
		}
	}
	return items
}

// recycle makes exactly the given indices live, reusing renderers that
// scrolled out of range before creating new ones.
func (v *ListView) recycle(indices []int) {
	want := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		want[i] = struct{}{}
	}
	for i, w := range v.live {
		if _, ok := want[i]; !ok {
			v.release(i, w)
		}
	}
	created := 0
	for _, i := range indices {
		if _, ok := v.live[i]; ok {
			continue
		}
		var w Widget
		if n := len(v.pool); n > 0 {
			w = v.pool[n-1]
			v.pool = v.pool[:n-1]
		} else {
			w = v.newRenderer()
			created++
		}
		v.insertChild(len(v.children), w)
		v.bind(w, i)
		v.live[i] = w
	}
	if created > 0 {
		debug.Event("ui: list renderers created", "list", v.name, "created", created, "live", len(v.live))
	}
}

func (v *ListView) release(index int, w Widget) {
	v.takeChild(w)
	delete(v.live, index)
	v.pool = append(v.pool, w)
}

// releaseAll returns every live renderer to the pool so the next Draw
// binds fresh indices.
func (v *ListView) releaseAll() {
	for i, w := range v.live {
		v.release(i, w)
	}
}

func (v *ListView) newRenderer() Widget {
	w := v.factory()
	if w == nil {
		panic("ui: ListView factory returned nil")
	}
	return w
}

// adjustScroll keeps the visible content still when an item before the
// scroll offset changes size.
func (v *ListView) adjustScroll(dx, dy float64) {
	v.scrollX += dx
	v.scrollY += dy
}

// teardown disposes the renderers kept outside the display tree.
func (v *ListView) teardown() {
	pool := v.pool
	v.pool = nil
	clear(v.live)
	for _, w := range pool {
		w.Base().Dispose()
	}
	v.typical.Base().Dispose()
}
