package layout

import (
	"slices"
	"testing"
)

func positions(l *Linear, ts []*testItem) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i], _ = l.split(t.Position())
	}
	return out
}

func TestLinear_Gaps(t *testing.T) {
	type tc struct {
		count    int
		gap      float64
		first    Dim
		last     Dim
		wantPos  []float64
		wantMain float64
	}

	tests := map[string]tc{
		"plain gap": {
			count:    3,
			gap:      10,
			wantPos:  []float64{0, 110, 220},
			wantMain: 320,
		},
		"first and last gap on three items": {
			count:    3,
			gap:      10,
			first:    Explicit(0),
			last:     Explicit(0),
			wantPos:  []float64{0, 100, 210},
			wantMain: 310,
		},
		"first and last gap on four items": {
			count:    4,
			gap:      10,
			first:    Explicit(1),
			last:     Explicit(2),
			wantPos:  []float64{0, 101, 211, 313},
			wantMain: 413,
		},
		"last gap alone on three items": {
			count:    3,
			gap:      10,
			last:     Explicit(5),
			wantPos:  []float64{0, 110, 215},
			wantMain: 315,
		},
		"two items use first gap only": {
			count:    2,
			gap:      10,
			first:    Explicit(3),
			last:     Explicit(7),
			wantPos:  []float64{0, 103},
			wantMain: 203,
		},
		"two items ignore last gap": {
			count:    2,
			gap:      10,
			last:     Explicit(7),
			wantPos:  []float64{0, 110},
			wantMain: 210,
		},
		"single item": {
			count:    1,
			gap:      10,
			first:    Explicit(3),
			wantPos:  []float64{0},
			wantMain: 100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLinear(Row)
			l.Gap, l.FirstGap, l.LastGap = tt.gap, tt.first, tt.last
			ts := sized(tt.count, 100, 20)

			result := l.Layout(items(ts...), ViewPortBounds{})
			if got := positions(l, ts); !slices.Equal(got, tt.wantPos) {
				t.Errorf("positions = %v, want %v", got, tt.wantPos)
			}
			if result.ContentWidth != tt.wantMain {
				t.Errorf("ContentWidth = %v, want %v", result.ContentWidth, tt.wantMain)
			}
			if result.ViewPortWidth != tt.wantMain {
				t.Errorf("ViewPortWidth = %v, want %v", result.ViewPortWidth, tt.wantMain)
			}
		})
	}
}

func TestLinear_ContentSizeJustified(t *testing.T) {
	type tc struct {
		sizes   []float64
		gap     float64
		padding float64
	}

	tests := map[string]tc{
		"uniform":    {sizes: []float64{10, 10, 10, 10}, gap: 3, padding: 2},
		"mixed":      {sizes: []float64{7, 31, 12}, gap: 5, padding: 9},
		"single":     {sizes: []float64{40}, gap: 5, padding: 1},
		"no gap":     {sizes: []float64{1, 2, 3, 4, 5}, gap: 0, padding: 0},
		"fractional": {sizes: []float64{1.5, 2.25}, gap: 0.5, padding: 0.125},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLinear(Column)
			l.Gap = tt.gap
			l.Padding = EdgeAll(tt.padding)
			l.CrossAlign = AlignJustify
			var ts []*testItem
			want := 2 * tt.padding
			for i, s := range tt.sizes {
				ts = append(ts, newItem(20, s))
				want += s
				if i > 0 {
					want += tt.gap
				}
			}

			result := l.Layout(items(ts...), ViewPortBounds{ExplicitWidth: Explicit(50)})
			if result.ContentHeight != want {
				t.Errorf("ContentHeight = %v, want %v", result.ContentHeight, want)
			}
			if result.ContentWidth != 50 {
				t.Errorf("ContentWidth = %v, want the justified viewport 50", result.ContentWidth)
			}
			for i, ti := range ts {
				if ti.w != 50-2*tt.padding || ti.x != tt.padding {
					t.Errorf("item %d cross = x %v w %v, want x %v w %v", i, ti.x, ti.w, tt.padding, 50-2*tt.padding)
				}
			}
		})
	}
}

func TestLinear_Align(t *testing.T) {
	type tc struct {
		align   Align
		width   float64
		wantPos []float64
	}

	tests := map[string]tc{
		"start":                 {align: AlignStart, width: 300, wantPos: []float64{0, 100}},
		"justify acts as start": {align: AlignJustify, width: 300, wantPos: []float64{0, 100}},
		"center":                {align: AlignCenter, width: 300, wantPos: []float64{50, 150}},
		"center rounds half up": {align: AlignCenter, width: 301, wantPos: []float64{51, 151}},
		"end":                   {align: AlignEnd, width: 301, wantPos: []float64{101, 201}},
		"content fills":         {align: AlignCenter, width: 200, wantPos: []float64{0, 100}},
		"content overflows":     {align: AlignEnd, width: 150, wantPos: []float64{0, 100}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLinear(Row)
			l.Align = tt.align
			ts := sized(2, 100, 20)
			l.Layout(items(ts...), ViewPortBounds{ExplicitWidth: Explicit(tt.width)})
			if got := positions(l, ts); !slices.Equal(got, tt.wantPos) {
				t.Errorf("positions = %v, want %v", got, tt.wantPos)
			}
		})
	}
}

func TestLinear_CrossAlign(t *testing.T) {
	type tc struct {
		align Align
		wantY float64
		wantH float64
		maxH  Dim
	}

	tests := map[string]tc{
		"start":           {align: AlignStart, wantY: 2, wantH: 20},
		"center":          {align: AlignCenter, wantY: 2 + 13, wantH: 20},
		"end":             {align: AlignEnd, wantY: 2 + 26, wantH: 20},
		"justify":         {align: AlignJustify, wantY: 2, wantH: 46},
		"justify clamped": {align: AlignJustify, wantY: 2, wantH: 30, maxH: Explicit(30)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLinear(Row)
			l.CrossAlign = tt.align
			l.Padding = EdgeAll(2)
			item := newItem(100, 20)
			item.data.MaxHeight = tt.maxH

			l.Layout(items(item), ViewPortBounds{ExplicitHeight: Explicit(50)})
			if item.y != tt.wantY || item.h != tt.wantH {
				t.Errorf("y=%v h=%v, want y=%v h=%v", item.y, item.h, tt.wantY, tt.wantH)
			}
		})
	}
}

func TestLinear_MeasuredViewport(t *testing.T) {
	l := NewLinear(Row)
	l.Padding = EdgeTRBL(1, 2, 3, 4)
	ts := []*testItem{newItem(10, 5), newItem(10, 9)}

	result := l.Layout(items(ts...), ViewPortBounds{X: 100, Y: 50, MaxWidth: Explicit(15), MinHeight: 20})
	if result.ContentX != 100 || result.ContentY != 50 {
		t.Errorf("content origin = %v,%v, want 100,50", result.ContentX, result.ContentY)
	}
	if result.ContentWidth != 26 || result.ViewPortWidth != 15 {
		t.Errorf("width content=%v viewport=%v, want 26 15", result.ContentWidth, result.ViewPortWidth)
	}
	if result.ContentHeight != 13 || result.ViewPortHeight != 20 {
		t.Errorf("height content=%v viewport=%v, want 13 20", result.ContentHeight, result.ViewPortHeight)
	}
	if ts[0].x != 104 || ts[0].y != 51 || ts[1].x != 114 {
		t.Errorf("positions = (%v,%v) (%v,%v), want (104,51) (114,51)", ts[0].x, ts[0].y, ts[1].x, ts[1].y)
	}
}

func TestLinear_FixedData(t *testing.T) {
	l := NewLinear(Row)
	a := newItem(10, 10)
	a.data.Width = Fixed(40)
	a.data.Height = Fixed(15)
	b := newItem(10, 10)
	b.data.Height = Percent(50)

	l.Layout(items(a, b), ViewPortBounds{ExplicitHeight: Explicit(60)})
	if a.w != 40 || a.h != 15 {
		t.Errorf("a = %vx%v, want 40x15", a.w, a.h)
	}
	if b.h != 30 {
		t.Errorf("b height = %v, want 50%% of 60", b.h)
	}
	if b.x != 40 {
		t.Errorf("b x = %v, want 40", b.x)
	}
}

func TestLinear_Distributed(t *testing.T) {
	type tc struct {
		bounds   ViewPortBounds
		sizes    []float64
		wantSize float64
	}

	tests := map[string]tc{
		"explicit viewport divided evenly": {
			bounds:   ViewPortBounds{ExplicitWidth: Explicit(320)},
			sizes:    []float64{10, 20, 30},
			wantSize: 100,
		},
		"unconstrained takes the largest": {
			sizes:    []float64{40, 80, 60},
			wantSize: 80,
		},
		"largest shrunk to max": {
			bounds:   ViewPortBounds{MaxWidth: Explicit(200)},
			sizes:    []float64{40, 80, 60},
			wantSize: 60,
		},
		"largest grown to min": {
			bounds:   ViewPortBounds{MinWidth: 320},
			sizes:    []float64{40, 80, 60},
			wantSize: 100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLinear(Row)
			l.Distributed = true
			l.Gap = 10
			var ts []*testItem
			for _, s := range tt.sizes {
				ts = append(ts, newItem(s, 20))
			}

			l.Layout(items(ts...), tt.bounds)
			for i, ti := range ts {
				if ti.w != tt.wantSize {
					t.Errorf("item %d width = %v, want %v", i, ti.w, tt.wantSize)
				}
				if want := float64(i) * (tt.wantSize + 10); ti.x != want {
					t.Errorf("item %d x = %v, want %v", i, ti.x, want)
				}
			}
		})
	}
}

func TestLinear_PercentFixedPoint(t *testing.T) {
	type tc struct {
		width    float64
		fixed    []float64
		percents []float64
		mins     []float64
		maxes    []Dim
		want     []float64
	}

	tests := map[string]tc{
		"proportional": {
			width:    400,
			percents: []float64{50, 25, 25},
			want:     []float64{200, 100, 100},
		},
		"max pins and redistributes": {
			width:    400,
			percents: []float64{50, 25, 25},
			maxes:    []Dim{Explicit(100), Unset(), Unset()},
			want:     []float64{100, 150, 150},
		},
		"min pins and redistributes": {
			width:    100,
			percents: []float64{20, 80},
			mins:     []float64{50, 0},
			want:     []float64{50, 50},
		},
		"fixed items measured first": {
			width:    300,
			fixed:    []float64{100},
			percents: []float64{50, 50},
			want:     []float64{100, 100},
		},
		"percentages below one hundred": {
			width:    200,
			percents: []float64{50},
			want:     []float64{100},
		},
		"percentages above one hundred": {
			width:    300,
			percents: []float64{100, 50},
			want:     []float64{200, 100},
		},
		"every item pinned": {
			width:    100,
			percents: []float64{50, 50},
			maxes:    []Dim{Explicit(10), Explicit(20)},
			want:     []float64{10, 20},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLinear(Row)
			var all, pct []*testItem
			fixedTotal := 0.0
			for _, f := range tt.fixed {
				all = append(all, newItem(f, 10))
				fixedTotal += f
			}
			for i, p := range tt.percents {
				item := newItem(0, 10)
				item.data.Width = Percent(p)
				if i < len(tt.mins) {
					item.data.MinWidth = tt.mins[i]
				}
				if i < len(tt.maxes) {
					item.data.MaxWidth = tt.maxes[i]
				}
				all = append(all, item)
				pct = append(pct, item)
			}

			l.Layout(items(all...), ViewPortBounds{ExplicitWidth: Explicit(tt.width)})
			total := 0.0
			for i, item := range pct {
				if item.w != tt.want[i] {
					t.Errorf("item %d width = %v, want %v", i, item.w, tt.want[i])
				}
				total += item.w
			}
			if total > tt.width-fixedTotal {
				t.Errorf("percent items take %v, more than the remaining %v", total, tt.width-fixedTotal)
			}
		})
	}
}

func TestLinear_SkipsExcludedAndNil(t *testing.T) {
	l := NewLinear(Row)
	l.Gap = 5
	a, b, c := newItem(10, 10), newItem(10, 10), newItem(10, 10)
	b.excluded = true

	result := l.Layout(items(a, nil, b, c), ViewPortBounds{})
	if c.x != 15 {
		t.Errorf("c x = %v, want 15", c.x)
	}
	if result.ContentWidth != 25 {
		t.Errorf("ContentWidth = %v, want 25", result.ContentWidth)
	}
}

func TestLinear_Empty(t *testing.T) {
	type tc struct {
		items []Item
	}

	tests := map[string]tc{
		"no items": {items: nil},
		"all nil":  {items: []Item{nil, nil, nil}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLinear(Column)
			l.Padding = EdgeAll(3)
			result := l.Layout(tt.items, ViewPortBounds{})
			if result.ContentHeight != 6 || result.ContentWidth != 6 {
				t.Errorf("content = %vx%v, want 6x6", result.ContentWidth, result.ContentHeight)
			}
		})
	}
}

func TestLinear_Column(t *testing.T) {
	l := NewLinear(Column)
	l.Gap = 4
	ts := []*testItem{newItem(30, 10), newItem(50, 20)}

	result := l.Layout(items(ts...), ViewPortBounds{})
	if ts[0].y != 0 || ts[1].y != 14 || ts[1].x != 0 {
		t.Errorf("positions = (%v,%v) (%v,%v), want (0,0) (0,14)", ts[0].x, ts[0].y, ts[1].x, ts[1].y)
	}
	if result.ContentWidth != 50 || result.ContentHeight != 34 {
		t.Errorf("content = %vx%v, want 50x34", result.ContentWidth, result.ContentHeight)
	}
}

func TestLinear_ValidatesLiveItems(t *testing.T) {
	l := NewLinear(Row)
	ts := sized(3, 10, 10)
	l.Layout(items(ts...), ViewPortBounds{})
	for i, ti := range ts {
		if ti.validations == 0 {
			t.Errorf("item %d was not validated", i)
		}
	}
}
