package ui

import (
	"fmt"
	"reflect"

	"github.com/grindlemire/go-ui/internal/debug"
)

// Registry hands out one ValidationQueue per Surface. Surfaces are keyed by
// identity: a Surface implementation must be a comparable type, normally a
// pointer. The methods panic on a surface whose type is not comparable.
//
// A Registry is an explicit service: create one per application and pass it
// to every Stage, rather than relying on package state.
type Registry struct {
	queues map[Surface]*ValidationQueue
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{queues: make(map[Surface]*ValidationQueue)}
}

// Queue returns the queue bound to surface, creating it on first use.
func (r *Registry) Queue(surface Surface) *ValidationQueue {
	if r == nil {
		panic("ui: nil registry in Queue")
	}
	checkSurface(surface)
	if q, ok := r.queues[surface]; ok {
		return q
	}
	q := NewValidationQueue(surface)
	r.queues[surface] = q
	debug.Event("ui: registry queue added", "surfaces", len(r.queues))
	return q
}

// Lookup returns the queue bound to surface without creating one.
func (r *Registry) Lookup(surface Surface) (*ValidationQueue, bool) {
	checkSurface(surface)
	q, ok := r.queues[surface]
	return q, ok
}

// Dispose removes the surface's queue from the registry and detaches it
// from the surface's tick. Disposing an unknown surface is a no-op.
func (r *Registry) Dispose(surface Surface) {
	checkSurface(surface)
	q, ok := r.queues[surface]
	if !ok {
		return
	}
	delete(r.queues, surface)
	q.Dispose()
}

// Len returns the number of live queues.
func (r *Registry) Len() int {
	return len(r.queues)
}

// checkSurface panics unless surface can be used as a map key.
func checkSurface(surface Surface) {
	if surface == nil {
		panic("ui: nil surface")
	}
	if !reflect.TypeOf(surface).Comparable() {
		panic(fmt.Sprintf("ui: surface type %T is not comparable; use a pointer", surface))
	}
}
