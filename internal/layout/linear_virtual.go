package layout

import (
	"fmt"
	"math"
	"sort"
)

// cacheMeasurement records the measured size of a live item in
// variable-size mode. When the size differs from what the layout previously
// assumed for that index and the item starts before the scroll offset, the
// difference is reported through OnScroll so the container can keep the
// visible content still. It returns the reported delta, which the caller
// adds to the scroll offset used for the items that follow.
func (l *Linear) cacheMeasurement(index int, size, start, scroll, typMain float64) float64 {
	previous, cached := l.sizeCache[index]
	if cached && previous == size {
		return 0
	}
	if l.sizeCache == nil {
		l.sizeCache = make(map[int]float64)
	}
	l.sizeCache[index] = size
	if !cached {
		previous = typMain
	}

	delta := 0.0
	if start < scroll && previous != size {
		delta = size - previous
		logScrollAdjust(index, delta)
		if l.OnScroll != nil {
			l.OnScroll(l.join(delta, 0))
		}
	}
	if l.OnChange != nil {
		l.OnChange()
	}
	return delta
}

// CachedSize returns the last measured on-axis size of the item at index.
func (l *Linear) CachedSize(index int) (float64, bool) {
	size, ok := l.sizeCache[index]
	return size, ok
}

// SetCachedSize records a known on-axis size for index without emitting
// scroll corrections. It seeds estimates before items become live.
func (l *Linear) SetCachedSize(index int, size float64) {
	if l.sizeCache == nil {
		l.sizeCache = make(map[int]float64)
	}
	l.sizeCache[index] = size
}

// ResetVariableCache forgets every measured size.
func (l *Linear) ResetVariableCache() {
	l.sizeCache = nil
}

// ResetVariableCacheAt forgets the measured size of one index.
func (l *Linear) ResetVariableCacheAt(index int) {
	delete(l.sizeCache, index)
}

// InsertVariableCacheAt shifts cached sizes at or after index up by one,
// leaving index itself unmeasured. Call it when an item is inserted.
func (l *Linear) InsertVariableCacheAt(index int) {
	l.shiftCache(index, 1)
}

// RemoveVariableCacheAt drops the cached size at index and shifts later
// entries down by one. Call it when an item is removed.
func (l *Linear) RemoveVariableCacheAt(index int) {
	delete(l.sizeCache, index)
	l.shiftCache(index+1, -1)
}

func (l *Linear) shiftCache(from, by int) {
	if len(l.sizeCache) == 0 {
		return
	}
	keys := make([]int, 0, len(l.sizeCache))
	for k := range l.sizeCache {
		if k >= from {
			keys = append(keys, k)
		}
	}
	// Move in an order that never overwrites an entry still to be moved.
	sort.Ints(keys)
	if by > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	}
	for _, k := range keys {
		l.sizeCache[k+by] = l.sizeCache[k]
		delete(l.sizeCache, k)
	}
}

// typicalMain returns the typical item's on-axis size after validating it.
func (l *Linear) typicalMain() float64 {
	if l.TypicalItem == nil {
		return 0
	}
	validateItem(l.TypicalItem)
	m, _ := l.split(l.TypicalItem.Size())
	return m
}

// VisibleIndices returns the contiguous index range needed to cover a
// viewport of the given size at the given scroll offsets, for a sequence of
// count items. One extra item is included at each edge, and the range is
// padded toward a stable length so scrolling reuses live items instead of
// recreating them.
func (l *Linear) VisibleIndices(scrollX, scrollY, width, height float64, count int) ([]int, error) {
	if !l.Virtual {
		return nil, fmt.Errorf("visible indices: %w", ErrNotVirtual)
	}
	if count < 0 {
		panic("layout: negative item count")
	}
	if count == 0 {
		return []int{}, nil
	}

	scroll, _ := l.split(scrollX, scrollY)
	viewport, _ := l.split(width, height)
	padStart, _ := l.padding()
	typMain := l.typicalMain()

	step := typMain + l.Gap
	target := count
	if step > 0 {
		target = int(math.Ceil(viewport/step)) + 1
	}

	if !l.VariableSize {
		return l.uniformVisible(scroll, viewport, padStart, step, target, count), nil
	}

	result := make([]int, 0, target+2)
	end := scroll + viewport
	pos := padStart
	for i := 0; i < count; i++ {
		start := pos
		pos += l.estimate(i, typMain, Unset())
		if pos > scroll && start < end {
			result = append(result, i)
		}
		if pos >= end {
			break
		}
		pos += l.gapAfter(i, count)
	}
	if len(result) == 0 {
		// Scrolled past the end; keep the tail live.
		result = append(result, count-1)
	}
	if first := result[0]; first > 0 {
		result = append([]int{first - 1}, result...)
	}
	if last := result[len(result)-1]; last < count-1 {
		result = append(result, last+1)
	}

	if missing := target - len(result); missing > 0 {
		first := result[0]
		stop := max(0, first-missing)
		for i := first - 1; i >= stop; i-- {
			result = append([]int{i}, result...)
		}
	}
	if missing := target - len(result); missing > 0 {
		next := result[len(result)-1] + 1
		stop := min(next+missing, count)
		for i := next; i < stop; i++ {
			result = append(result, i)
		}
	}
	return result, nil
}

// uniformVisible is the closed-form visible range for uniformly sized items.
func (l *Linear) uniformVisible(scroll, viewport, padStart, step float64, target, count int) []int {
	if step <= 0 {
		return sequence(0, count-1)
	}
	indexOffset := 0
	total := float64(count)*step - l.Gap
	if total < viewport {
		switch l.Align {
		case AlignEnd:
			indexOffset = int(math.Ceil((viewport - total) / step))
		case AlignCenter:
			indexOffset = int(math.Ceil((viewport - total) / step / 2))
		}
	}

	minimum := max(0, int(math.Floor((scroll-padStart)/step)))
	minimum -= indexOffset
	maximum := minimum + target
	if maximum >= count {
		maximum = count - 1
	}
	minimum = max(0, maximum-target)
	return sequence(minimum, maximum)
}

func sequence(from, to int) []int {
	result := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		result = append(result, i)
	}
	return result
}

// padding returns the start/end padding on the layout axis.
func (l *Linear) padding() (float64, float64) {
	if l.Direction == Column {
		return l.Padding.Top, l.Padding.Bottom
	}
	return l.Padding.Left, l.Padding.Right
}

// extent returns the on-axis start (relative to the content origin, padding
// included) and size of the item at index.
func (l *Linear) extent(index int, items []Item) (float64, float64, error) {
	if index < 0 || index >= len(items) {
		return 0, 0, fmt.Errorf("extent of %d in %d items: %w", index, len(items), ErrIndexOutOfRange)
	}
	slots := l.slots(items)
	n := len(slots)
	typMain := 0.0
	if l.Virtual {
		typMain = l.typicalMain()
	}

	pos, _ := l.padding()
	for k, s := range slots {
		size := l.slotSize(s, typMain)
		if s.index == index {
			return pos, size, nil
		}
		pos += size + l.gapAfter(k, n)
	}
	// The item at index does not take part in layout.
	return pos, 0, nil
}

func (l *Linear) slotSize(s slot, typMain float64) float64 {
	if s.item == nil {
		return l.estimate(s.index, typMain, Unset())
	}
	if l.Virtual && !l.VariableSize && !l.Distributed {
		return typMain
	}
	m, _ := l.split(s.item.Size())
	return m
}

// ScrollPositionForIndex returns the scroll offsets that place the item at
// index at the ScrollAlign point of a viewport of the given size.
// The offsets are not clamped to the scrollable range.
func (l *Linear) ScrollPositionForIndex(index int, items []Item, width, height float64) (float64, float64, error) {
	start, size, err := l.extent(index, items)
	if err != nil {
		return 0, 0, err
	}
	viewport, _ := l.split(width, height)
	padStart, padEnd := l.padding()

	var scroll float64
	switch l.ScrollAlign {
	case AlignCenter:
		scroll = start - roundHalfUp((viewport-size)/2)
	case AlignEnd:
		scroll = start + size + padEnd - viewport
	default:
		scroll = start - padStart
	}
	x, y := l.join(scroll, 0)
	return x, y, nil
}

// NearestScrollPositionForIndex returns the scroll offsets closest to the
// current ones that bring the item at index fully into view. The cross-axis
// offset is returned unchanged.
func (l *Linear) NearestScrollPositionForIndex(index int, items []Item, scrollX, scrollY, width, height float64) (float64, float64, error) {
	start, size, err := l.extent(index, items)
	if err != nil {
		return 0, 0, err
	}
	scroll, cross := l.split(scrollX, scrollY)
	viewport, _ := l.split(width, height)

	switch {
	case start < scroll:
		scroll = start
	case start+size > scroll+viewport:
		scroll = start + size - viewport
	}
	x, y := l.join(scroll, cross)
	return x, y, nil
}

// MeasureViewPort estimates the viewport size for count items without any
// live instances.
func (l *Linear) MeasureViewPort(count int, bounds ViewPortBounds) (float64, float64, error) {
	if !l.Virtual {
		return 0, 0, fmt.Errorf("measure viewport: %w", ErrNotVirtual)
	}
	if count < 0 {
		panic("layout: negative item count")
	}
	if bounds.ExplicitWidth.IsSet() && bounds.ExplicitHeight.IsSet() {
		return bounds.ExplicitWidth.Or(0), bounds.ExplicitHeight.Or(0), nil
	}
	ab := l.axisBounds(bounds)
	typMain, typCross := l.measureTypical(ab)

	distributed := Unset()
	if l.Distributed {
		distributed = Explicit(l.distributedSize(make([]slot, count), ab, typMain))
	}

	main, ok := ab.explicit.Get()
	if !ok {
		measureCount := count
		if l.RequestedCount > 0 {
			measureCount = l.RequestedCount
		}
		main = clamp(l.estimateRange(measureCount, typMain, distributed)+ab.padMain(), ab.min, ab.max)
	}
	cross, ok := ab.explicitCross.Get()
	if !ok {
		cross = clamp(typCross+ab.padCross(), ab.minCross, ab.maxCross)
	}
	w, h := l.join(main, cross)
	return w, h, nil
}
