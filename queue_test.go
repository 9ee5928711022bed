package ui

import (
	"slices"
	"strconv"
	"testing"
)

// fakeValidatable records validation order without a display tree.
type fakeValidatable struct {
	name       string
	depth      int
	log        *[]string
	onValidate func()
}

func (f *fakeValidatable) Validate() {
	*f.log = append(*f.log, f.name)
	if f.onValidate != nil {
		f.onValidate()
	}
}

func (f *fakeValidatable) Depth() int {
	return f.depth
}

func newTestQueue(t *testing.T) (*ValidationQueue, *FrameSurface) {
	t.Helper()
	surface, err := NewFrameSurface()
	if err != nil {
		t.Fatalf("NewFrameSurface: %v", err)
	}
	return NewValidationQueue(surface), surface
}

func TestValidationQueue_DrainOrder(t *testing.T) {
	type tc struct {
		depths []int
		want   []string
	}

	tests := map[string]tc{
		"deepest first": {
			depths: []int{0, 2, 1, 3},
			want:   []string{"3", "2", "1", "0"},
		},
		"equal depths keep insertion order": {
			depths: []int{1, 2, 1, 2},
			want:   []string{"2", "2", "1", "1"},
		},
		"single entry": {
			depths: []int{5},
			want:   []string{"5"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var log []string
			q, surface := newTestQueue(t)
			for _, d := range tt.depths {
				q.Add(&fakeValidatable{name: strconv.Itoa(d), depth: d, log: &log}, false)
			}
			surface.Tick(frame)
			if !slices.Equal(log, tt.want) {
				t.Errorf("order = %v, want %v", log, tt.want)
			}
			if q.Len() != 0 {
				t.Errorf("Len() = %d after drain, want 0", q.Len())
			}
		})
	}
}

func TestValidationQueue_NoDuplicates(t *testing.T) {
	var log []string
	q, surface := newTestQueue(t)
	v := &fakeValidatable{name: "v", depth: 1, log: &log}
	q.Add(v, false)
	q.Add(v, false)
	q.Add(v, true) // not draining: same as primary
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
	surface.Tick(frame)
	if len(log) != 1 {
		t.Errorf("validated %d times, want 1", len(log))
	}
}

func TestValidationQueue_MidDrainInsertion(t *testing.T) {
	var log []string
	q, surface := newTestQueue(t)
	deep := &fakeValidatable{name: "deep", depth: 4, log: &log}
	deep2 := &fakeValidatable{name: "deep2", depth: 4, log: &log}
	shallow := &fakeValidatable{name: "shallow", depth: 1, log: &log}
	middle := &fakeValidatable{name: "middle", depth: 2, log: &log}
	deepest := &fakeValidatable{name: "deepest", depth: 9, log: &log}

	deep.onValidate = func() {
		q.Add(middle, false)
		q.Add(deepest, false)
	}
	q.Add(shallow, false)
	q.Add(deep, false)
	q.Add(deep2, false)

	surface.Tick(frame)
	// deepest is already behind in depth order and lands at the front of
	// what remains.
	want := []string{"deep", "deepest", "deep2", "middle", "shallow"}
	if !slices.Equal(log, want) {
		t.Errorf("order = %v, want %v", log, want)
	}
}

func TestValidationQueue_DelayedSwap(t *testing.T) {
	var log []string
	q, surface := newTestQueue(t)
	a := &fakeValidatable{name: "a", depth: 1, log: &log}
	b := &fakeValidatable{name: "b", depth: 2, log: &log}
	a.onValidate = func() {
		q.Add(b, true)
		q.Add(b, true)
	}
	q.Add(a, false)

	surface.Tick(frame)
	if !slices.Equal(log, []string{"a"}) {
		t.Fatalf("first pass = %v, want [a]", log)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1 delayed entry", q.Len())
	}

	surface.Tick(frame)
	if !slices.Equal(log, []string{"a", "b"}) {
		t.Errorf("second pass = %v, want [a b]", log)
	}
}

func TestValidationQueue_IsDraining(t *testing.T) {
	var log []string
	q, surface := newTestQueue(t)
	var during bool
	q.Add(&fakeValidatable{name: "v", log: &log, onValidate: func() {
		during = q.IsDraining()
		q.AdvanceTime(frame) // nested drain is a no-op
	}}, false)

	surface.Tick(frame)
	if !during {
		t.Error("IsDraining() = false during drain")
	}
	if q.IsDraining() {
		t.Error("IsDraining() = true after drain")
	}
	if len(log) != 1 {
		t.Errorf("validated %d times, want 1", len(log))
	}
}

func TestValidationQueue_Remove(t *testing.T) {
	var log []string
	q, surface := newTestQueue(t)
	a := &fakeValidatable{name: "a", depth: 1, log: &log}
	b := &fakeValidatable{name: "b", depth: 2, log: &log}
	b.onValidate = func() { q.Remove(a) }
	q.Add(a, false)
	q.Add(b, false)

	if q.Remove(&fakeValidatable{log: &log}) {
		t.Error("Remove of unknown entry returned true")
	}
	surface.Tick(frame)
	if !slices.Equal(log, []string{"b"}) {
		t.Errorf("order = %v, want [b]", log)
	}
}

func TestValidationQueue_DisableAndDispose(t *testing.T) {
	var log []string
	q, surface := newTestQueue(t)
	q.SetEnabled(false)
	q.Add(&fakeValidatable{name: "ignored", log: &log}, false)
	if q.Len() != 0 || q.Enabled() {
		t.Fatalf("disabled queue accepted an entry")
	}
	q.SetEnabled(true)
	q.Add(&fakeValidatable{name: "kept", log: &log}, false)

	if surface.Listeners() != 1 {
		t.Fatalf("Listeners() = %d, want 1", surface.Listeners())
	}
	q.Dispose()
	if surface.Listeners() != 0 {
		t.Errorf("Listeners() = %d after Dispose, want 0", surface.Listeners())
	}
	surface.Tick(frame)
	if len(log) != 0 {
		t.Errorf("disposed queue validated %v", log)
	}
}

func TestValidationQueue_PriorityBreaksDepthTies(t *testing.T) {
	type tc struct {
		addNext func(q *ValidationQueue, a, b, deep *fakeValidatable)
		want    []string
	}

	tests := map[string]tc{
		"no priority keeps insertion order": {
			addNext: func(q *ValidationQueue, a, b, deep *fakeValidatable) {
				q.Add(a, true)
				q.Add(b, true)
				q.Add(deep, true)
			},
			want: []string{"deep", "a", "b"},
		},
		"priority entry leads its depth": {
			addNext: func(q *ValidationQueue, a, b, deep *fakeValidatable) {
				q.Add(a, true)
				q.AddPriority(b, true)
				q.Add(deep, true)
			},
			want: []string{"deep", "b", "a"},
		},
		"marking an entry already delayed": {
			addNext: func(q *ValidationQueue, a, b, deep *fakeValidatable) {
				q.Add(a, true)
				q.Add(b, true)
				q.AddPriority(b, true)
				q.Add(deep, true)
			},
			want: []string{"deep", "b", "a"},
		},
		"priority does not jump depth": {
			addNext: func(q *ValidationQueue, a, b, deep *fakeValidatable) {
				q.AddPriority(a, true)
				q.Add(deep, true)
				q.Add(b, true)
			},
			want: []string{"deep", "a", "b"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var log []string
			q, surface := newTestQueue(t)
			a := &fakeValidatable{name: "a", depth: 1, log: &log}
			b := &fakeValidatable{name: "b", depth: 1, log: &log}
			deep := &fakeValidatable{name: "deep", depth: 2, log: &log}
			trigger := &fakeValidatable{name: "trigger", log: &log}
			trigger.onValidate = func() { tt.addNext(q, a, b, deep) }

			q.Add(trigger, false)
			surface.Tick(frame)
			log = nil
			surface.Tick(frame)

			if !slices.Equal(log, tt.want) {
				t.Errorf("order = %v, want %v", log, tt.want)
			}
			if q.IsPriority(a) || q.IsPriority(b) {
				t.Error("priority marks survived the pass that validated them")
			}
		})
	}
}

func TestValidationQueue_PriorityMidDrain(t *testing.T) {
	var log []string
	q, surface := newTestQueue(t)
	a := &fakeValidatable{name: "a", depth: 1, log: &log}
	b := &fakeValidatable{name: "b", depth: 1, log: &log}
	trigger := &fakeValidatable{name: "trigger", depth: 2, log: &log}
	trigger.onValidate = func() { q.AddPriority(b, false) }

	q.Add(trigger, false)
	q.Add(a, false)
	q.Add(b, false)
	surface.Tick(frame)

	if want := []string{"trigger", "b", "a"}; !slices.Equal(log, want) {
		t.Errorf("order = %v, want %v", log, want)
	}
}
