package ui

import (
	"slices"
	"time"

	"github.com/grindlemire/go-ui/internal/debug"
)

// ValidationQueue is the per-surface worklist of components waiting to be
// redrawn. It drains once per frame, deepest components first.
//
// Components are added by Invalidate and removed on detach; AdvanceTime is
// the only consumer. All calls must happen on the surface's frame
// goroutine.
type ValidationQueue struct {
	surface    Surface
	queue      []Validatable
	delayed    []Validatable // becomes queue on the next frame
	draining   bool
	disabled   bool
	removeTick func()

	// High-priority entries of queue and delayed. They validate before
	// other entries of the same depth.
	priority        map[Validatable]struct{}
	delayedPriority map[Validatable]struct{}
}

// NewValidationQueue creates a queue and registers it with the surface's
// per-frame tick. Most callers obtain queues from a Registry instead.
func NewValidationQueue(surface Surface) *ValidationQueue {
	if surface == nil {
		panic("ui: nil surface in NewValidationQueue")
	}
	q := &ValidationQueue{surface: surface}
	q.removeTick = surface.OnTick(q.AdvanceTime)
	debug.Event("ui: queue created")
	return q
}

// Add schedules v for validation. Adding a component already present in
// the target sequence is a no-op. While draining, delay selects the
// sequence for the next frame; otherwise v joins the current drain at the
// position implied by its depth.
func (q *ValidationQueue) Add(v Validatable, delay bool) {
	q.add(v, delay, false)
}

// AddPriority is like Add but marks v high-priority: it validates before
// every other entry of the same depth. An entry already present is marked
// in place.
func (q *ValidationQueue) AddPriority(v Validatable, delay bool) {
	q.add(v, delay, true)
}

func (q *ValidationQueue) add(v Validatable, delay, priority bool) {
	if q.disabled || v == nil {
		return
	}
	if q.draining && delay {
		if priority {
			q.delayedPriority = mark(q.delayedPriority, v)
		}
		if !slices.Contains(q.delayed, v) {
			q.delayed = append(q.delayed, v)
		}
		return
	}
	if i := slices.Index(q.queue, v); i >= 0 {
		if priority && q.draining {
			if _, ok := q.priority[v]; !ok {
				// Re-insert so the entry moves ahead of its equal-depth peers.
				q.queue = slices.Delete(q.queue, i, i+1)
				q.priority = mark(q.priority, v)
				q.insert(v)
			}
		} else if priority {
			q.priority = mark(q.priority, v)
		}
		return
	}
	if priority {
		q.priority = mark(q.priority, v)
	}
	if !q.draining {
		q.queue = append(q.queue, v)
		return
	}
	q.insert(v)
}

// insert places v mid-drain: walk back from the end to the first entry
// that does not sort after v and insert behind it, keeping the remainder
// sorted.
func (q *ValidationQueue) insert(v Validatable) {
	i := len(q.queue) - 1
	for ; i >= 0; i-- {
		if q.compare(v, q.queue[i]) >= 0 {
			break
		}
	}
	q.queue = slices.Insert(q.queue, i+1, v)
}

// compare orders a before b when a is deeper, or when both have the same
// depth and only a is high-priority.
func (q *ValidationQueue) compare(a, b Validatable) int {
	if d := b.Depth() - a.Depth(); d != 0 {
		return d
	}
	_, pa := q.priority[a]
	_, pb := q.priority[b]
	switch {
	case pa && !pb:
		return -1
	case pb && !pa:
		return 1
	}
	return 0
}

func mark(set map[Validatable]struct{}, v Validatable) map[Validatable]struct{} {
	if set == nil {
		set = make(map[Validatable]struct{})
	}
	set[v] = struct{}{}
	return set
}

// Remove drops v from both sequences. Returns true if it was present.
func (q *ValidationQueue) Remove(v Validatable) bool {
	removed := false
	if i := slices.Index(q.queue, v); i >= 0 {
		q.queue = slices.Delete(q.queue, i, i+1)
		removed = true
	}
	if i := slices.Index(q.delayed, v); i >= 0 {
		q.delayed = slices.Delete(q.delayed, i, i+1)
		removed = true
	}
	delete(q.priority, v)
	delete(q.delayedPriority, v)
	return removed
}

// AdvanceTime drains the queue. It is registered as the surface's tick
// callback and does nothing while a drain is already running or when there
// is nothing to validate.
func (q *ValidationQueue) AdvanceTime(delta time.Duration) {
	if q.draining || len(q.queue) == 0 {
		return
	}
	q.draining = true
	defer func() { q.draining = false }()

	// Equal depths keep insertion order apart from high-priority entries;
	// no other sibling order is promised.
	slices.SortStableFunc(q.queue, q.compare)
	debug.Event("ui: drain start", "pending", len(q.queue), "delta", delta)

	validated := 0
	// Validate may insert into q.queue, so pop from the front and re-check
	// the length every iteration.
	for len(q.queue) > 0 {
		v := q.queue[0]
		q.queue[0] = nil
		q.queue = q.queue[1:]
		delete(q.priority, v)
		v.Validate()
		validated++
	}

	q.queue, q.delayed = q.delayed, q.queue[:0]
	q.priority, q.delayedPriority = q.delayedPriority, nil
	debug.Event("ui: drain done", "validated", validated, "delayed", len(q.queue))
}

// Len returns the number of components waiting for the next drain,
// including delayed ones.
func (q *ValidationQueue) Len() int {
	return len(q.queue) + len(q.delayed)
}

// IsPriority reports whether v is waiting as a high-priority entry.
func (q *ValidationQueue) IsPriority(v Validatable) bool {
	_, now := q.priority[v]
	_, next := q.delayedPriority[v]
	return now || next
}

// IsDraining reports whether AdvanceTime is running.
func (q *ValidationQueue) IsDraining() bool {
	return q.draining
}

// SetEnabled turns the queue on or off. A disabled queue ignores Add.
func (q *ValidationQueue) SetEnabled(enabled bool) {
	q.disabled = !enabled
}

// Enabled reports whether the queue accepts additions.
func (q *ValidationQueue) Enabled() bool {
	return !q.disabled
}

// Dispose detaches the queue from its surface's tick and drops all entries.
func (q *ValidationQueue) Dispose() {
	if q.removeTick != nil {
		q.removeTick()
		q.removeTick = nil
	}
	q.queue = nil
	q.delayed = nil
	q.priority = nil
	q.delayedPriority = nil
	q.disabled = true
	debug.Event("ui: queue disposed")
}
