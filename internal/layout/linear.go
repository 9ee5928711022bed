package layout

import (
	"errors"

	"github.com/grindlemire/go-ui/internal/debug"
)

// ErrNotVirtual is returned by queries that only make sense for a
// virtualized layout.
var ErrNotVirtual = errors.New("layout: virtualization is disabled")

// ErrIndexOutOfRange is returned by the scroll solvers for an index outside
// the item sequence.
var ErrIndexOutOfRange = errors.New("layout: index out of range")

// Linear positions items one after another along a single axis.
//
// The zero value is a non-virtual horizontal layout with no gaps or padding.
// Fields may be changed between calls to Layout.
type Linear struct {
	Direction Direction

	// Gap is the space between adjacent items. FirstGap replaces it between
	// the first two items; LastGap replaces it between the last two.
	Gap      float64
	FirstGap Dim
	LastGap  Dim

	Padding Edges

	// Align positions the items on the layout axis when their total extent
	// is smaller than the viewport. AlignJustify behaves like AlignStart.
	Align Align

	// CrossAlign positions each item on the cross axis. AlignJustify
	// stretches items to the available cross size.
	CrossAlign Align

	// Distributed gives every item the same size on the layout axis.
	Distributed bool

	// Virtual allows nil entries in the item slice; their sizes are
	// estimated from TypicalItem.
	Virtual bool

	// VariableSize keeps a per-index cache of measured sizes in virtual
	// mode. Without it every item takes the typical item's size.
	VariableSize bool

	// TypicalItem estimates the size of items that are not live.
	TypicalItem Item

	// RequestedCount sizes an unconstrained viewport to this many typical
	// items in virtual mode. Zero disables it.
	RequestedCount int

	// ScrollAlign is the point ScrollPositionForIndex aligns an item to.
	ScrollAlign Align

	// OnScroll receives the scroll correction when a variable-size item
	// before the scroll offset changes size. The container should add the
	// delta to its scroll offset. Within one Layout call later items are
	// compared against the offset with earlier deltas already applied.
	OnScroll func(dx, dy float64)

	// OnChange is called whenever the variable-size cache changes.
	OnChange func()

	sizeCache map[int]float64
}

// NewLinear creates a layout along the given direction.
func NewLinear(direction Direction) *Linear {
	return &Linear{Direction: direction}
}

// slot is one participating entry of the item slice.
type slot struct {
	index int
	item  Item // nil for a virtual placeholder
}

// Layout positions and sizes items inside the viewport and reports the
// resulting content and viewport bounds.
func (l *Linear) Layout(items []Item, bounds ViewPortBounds) BoundsResult {
	ab := l.axisBounds(bounds)
	typMain, typCross := l.measureTypical(ab)

	slots := l.slots(items)
	n := len(slots)

	distributed := Unset()
	if l.Distributed {
		distributed = Explicit(l.distributedSize(slots, ab, typMain))
	}

	l.validateItems(slots, ab, distributed)
	if !l.Virtual && !l.Distributed {
		l.applyPercentages(slots, ab)
	}

	pos := ab.origin + ab.padStart
	scroll := ab.scroll
	maxCross := 0.0
	if l.Virtual {
		maxCross = typCross
	}
	for k, s := range slots {
		if k > 0 {
			pos += l.gapAfter(k-1, n)
		}
		var size float64
		if s.item == nil {
			size = l.estimate(s.index, typMain, distributed)
		} else {
			m, c := l.split(s.item.Size())
			if l.Virtual && !l.Distributed {
				if l.VariableSize {
					scroll += l.cacheMeasurement(s.index, m, pos-ab.origin, scroll, typMain)
				} else if m != typMain {
					m = typMain
					l.setMain(s.item, m)
					validateItem(s.item)
				}
			}
			size = m
			_, cross := l.split(s.item.Position())
			l.setPosition(s.item, pos, cross)
			maxCross = max(maxCross, c)
		}
		pos += size
	}
	totalMain := pos + ab.padEnd - ab.origin
	if n == 0 {
		totalMain = ab.padMain()
	}

	viewMain, ok := ab.explicit.Get()
	if !ok {
		measured := totalMain
		if l.Virtual && l.RequestedCount > 0 {
			measured = l.estimateRange(l.RequestedCount, typMain, distributed) + ab.padMain()
		}
		viewMain = clamp(measured, ab.min, ab.max)
	}
	viewCross, ok := ab.explicitCross.Get()
	if !ok {
		viewCross = clamp(maxCross+ab.padCross(), ab.minCross, ab.maxCross)
	}
	availableCross := max(0, viewCross-ab.padCross())

	mainOffset := 0.0
	if totalMain < viewMain {
		mainOffset = alignOffset(l.Align, viewMain, totalMain)
	}

	for _, s := range slots {
		if s.item == nil {
			continue
		}
		l.alignCross(s.item, ab, availableCross)
		if mainOffset != 0 {
			m, c := l.split(s.item.Position())
			l.setPosition(s.item, m+mainOffset, c)
		}
	}

	contentCross := maxCross + ab.padCross()
	if l.CrossAlign == AlignJustify {
		contentCross = viewCross
	}

	result := BoundsResult{ContentX: bounds.X, ContentY: bounds.Y}
	result.ContentWidth, result.ContentHeight = l.join(totalMain, contentCross)
	result.ViewPortWidth, result.ViewPortHeight = l.join(viewMain, viewCross)
	return result
}

// alignCross sizes and positions one live item on the cross axis.
func (l *Linear) alignCross(item Item, ab axisBounds, available float64) {
	data := dataOf(item)
	main, _ := l.split(item.Position())
	_, size := l.split(item.Size())

	if l.CrossAlign == AlignJustify {
		minC, maxC := l.crossBounds(data)
		justified := clamp(available, minC, maxC)
		if justified != size {
			l.setCross(item, justified)
			validateItem(item)
		}
		l.setPosition(item, main, ab.crossOrigin+ab.padCrossStart)
		return
	}
	l.setPosition(item, main, ab.crossOrigin+ab.padCrossStart+alignOffset(l.CrossAlign, available, size))
}

// gapAfter returns the gap between participating items k and k+1 of n.
// LastGap only applies when the last pair does not share an item with a
// pair already using FirstGap.
func (l *Linear) gapAfter(k, n int) float64 {
	if k == 0 && n >= 2 && l.FirstGap.IsSet() {
		return l.FirstGap.Or(l.Gap)
	}
	if k == n-2 && n >= 3 && l.LastGap.IsSet() {
		if !l.FirstGap.IsSet() || n >= 4 {
			return l.LastGap.Or(l.Gap)
		}
	}
	return l.Gap
}

// totalGaps returns the sum of all gaps between n items.
func (l *Linear) totalGaps(n int) float64 {
	total := 0.0
	for k := 0; k < n-1; k++ {
		total += l.gapAfter(k, n)
	}
	return total
}

// slots returns the entries that take part in layout. In virtual mode every
// index participates; otherwise nil and excluded items are skipped.
func (l *Linear) slots(items []Item) []slot {
	slots := make([]slot, 0, len(items))
	for i, item := range items {
		if item == nil {
			if l.Virtual {
				slots = append(slots, slot{index: i})
			}
			continue
		}
		if !l.Virtual && !item.IncludeInLayout() {
			continue
		}
		slots = append(slots, slot{index: i, item: item})
	}
	return slots
}

func (l *Linear) axisBounds(b ViewPortBounds) axisBounds {
	ab := axisBounds{}
	if l.Direction == Column {
		ab.origin, ab.crossOrigin = b.Y, b.X
		ab.scroll = b.ScrollY
		ab.explicit, ab.explicitCross = b.ExplicitHeight, b.ExplicitWidth
		ab.min, ab.minCross = b.MinHeight, b.MinWidth
		ab.max, ab.maxCross = b.MaxHeight.maxOr(), b.MaxWidth.maxOr()
		ab.padStart, ab.padEnd = l.Padding.Top, l.Padding.Bottom
		ab.padCrossStart, ab.padCrossEnd = l.Padding.Left, l.Padding.Right
		return ab
	}
	ab.origin, ab.crossOrigin = b.X, b.Y
	ab.scroll = b.ScrollX
	ab.explicit, ab.explicitCross = b.ExplicitWidth, b.ExplicitHeight
	ab.min, ab.minCross = b.MinWidth, b.MinHeight
	ab.max, ab.maxCross = b.MaxWidth.maxOr(), b.MaxHeight.maxOr()
	ab.padStart, ab.padEnd = l.Padding.Left, l.Padding.Right
	ab.padCrossStart, ab.padCrossEnd = l.Padding.Top, l.Padding.Bottom
	return ab
}

// split converts an (x, y) pair into (main, cross).
func (l *Linear) split(x, y float64) (float64, float64) {
	if l.Direction == Column {
		return y, x
	}
	return x, y
}

// join converts a (main, cross) pair into (x, y).
func (l *Linear) join(main, cross float64) (float64, float64) {
	if l.Direction == Column {
		return cross, main
	}
	return main, cross
}

func (l *Linear) setPosition(item Item, main, cross float64) {
	x, y := l.join(main, cross)
	item.SetPosition(x, y)
}

func (l *Linear) setMain(item Item, size float64) {
	m, c := l.split(item.Size())
	if m == size {
		return
	}
	item.SetSize(l.join(size, c))
}

func (l *Linear) setCross(item Item, size float64) {
	m, c := l.split(item.Size())
	if c == size {
		return
	}
	item.SetSize(l.join(m, size))
}

func (l *Linear) mainValue(data Data) Value {
	if l.Direction == Column {
		return data.Height
	}
	return data.Width
}

func (l *Linear) crossValue(data Data) Value {
	if l.Direction == Column {
		return data.Width
	}
	return data.Height
}

func (l *Linear) mainBounds(data Data) (float64, float64) {
	if l.Direction == Column {
		return data.MinHeight, data.MaxHeight.maxOr()
	}
	return data.MinWidth, data.MaxWidth.maxOr()
}

func (l *Linear) crossBounds(data Data) (float64, float64) {
	if l.Direction == Column {
		return data.MinWidth, data.MaxWidth.maxOr()
	}
	return data.MinHeight, data.MaxHeight.maxOr()
}

func logScrollAdjust(index int, delta float64) {
	debug.Event("layout: scroll adjust", "index", index, "delta", delta)
}
