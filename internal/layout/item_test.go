package layout

// testItem is a layout item with a fixed measured size.
type testItem struct {
	x, y        float64
	w, h        float64
	excluded    bool
	data        Data
	validations int
}

func newItem(w, h float64) *testItem {
	return &testItem{w: w, h: h, data: DefaultData()}
}

func (t *testItem) IncludeInLayout() bool       { return !t.excluded }
func (t *testItem) Position() (float64, float64) { return t.x, t.y }
func (t *testItem) SetPosition(x, y float64)     { t.x, t.y = x, y }
func (t *testItem) Size() (float64, float64)     { return t.w, t.h }
func (t *testItem) SetSize(w, h float64)         { t.w, t.h = w, h }
func (t *testItem) Validate()                    { t.validations++ }
func (t *testItem) LayoutData() Data             { return t.data }

// items converts test items to the engine's input, keeping nil entries.
func items(ts ...*testItem) []Item {
	out := make([]Item, len(ts))
	for i, t := range ts {
		if t != nil {
			out[i] = t
		}
	}
	return out
}

func sized(n int, w, h float64) []*testItem {
	out := make([]*testItem, n)
	for i := range out {
		out[i] = newItem(w, h)
	}
	return out
}
