package ui

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Surface is a render target with a per-frame tick.
type Surface interface {
	// OnTick registers fn to run once per frame and returns a function that
	// unregisters it.
	OnTick(fn func(delta time.Duration)) (cancel func())
}

// tickListener wraps a callback so it can be removed by identity.
type tickListener struct {
	fn func(time.Duration)
}

// FrameSurface is a Surface driven by a fixed-rate frame loop.
// Run drives ticks in real time; Tick drives them by hand.
type FrameSurface struct {
	frameDuration time.Duration
	listeners     []*tickListener
	updates       chan func()
	stopCh        chan struct{}
	stopOnce      sync.Once
	running       atomic.Bool
	lastTick      time.Time
}

var _ Surface = (*FrameSurface)(nil)

// SurfaceOption is a functional option for configuring a FrameSurface.
type SurfaceOption func(*FrameSurface) error

// WithFrameRate sets the target frame rate for the frame loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) SurfaceOption {
	return func(s *FrameSurface) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		s.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithUpdateQueueSize sets the capacity of the QueueUpdate buffer.
// Default is 256. Must be at least 1.
func WithUpdateQueueSize(size int) SurfaceOption {
	return func(s *FrameSurface) error {
		if size < 1 {
			return fmt.Errorf("update queue size must be at least 1")
		}
		s.updates = make(chan func(), size)
		return nil
	}
}

// NewFrameSurface creates a surface with the given options.
func NewFrameSurface(opts ...SurfaceOption) (*FrameSurface, error) {
	s := &FrameSurface{
		frameDuration: time.Second / 60,
		updates:       make(chan func(), 256),
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// OnTick registers fn to run once per frame.
func (s *FrameSurface) OnTick(fn func(time.Duration)) func() {
	l := &tickListener{fn: fn}
	s.listeners = append(s.listeners, l)
	return func() {
		if i := slices.Index(s.listeners, l); i >= 0 {
			s.listeners = slices.Delete(s.listeners, i, i+1)
		}
	}
}

// Tick runs every registered listener once. Listeners added or removed by a
// listener take effect on the next tick.
func (s *FrameSurface) Tick(delta time.Duration) {
	for _, l := range slices.Clone(s.listeners) {
		l.fn(delta)
	}
}

// Listeners returns the number of registered tick listeners.
func (s *FrameSurface) Listeners() int {
	return len(s.listeners)
}

// QueueUpdate enqueues a function to run on the frame goroutine before the
// next tick. Safe to call from any goroutine.
func (s *FrameSurface) QueueUpdate(fn func()) {
	select {
	case s.updates <- fn:
	case <-s.stopCh:
		// Surface is stopping, ignore update
	default:
		// Queue full - this shouldn't happen with reasonable buffer size
	}
}

// Run starts the frame loop. It blocks until Stop is called or ctx is done.
// Each frame spends up to half its budget on queued updates, then ticks.
func (s *FrameSurface) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("frame surface is already running")
	}
	defer s.running.Store(false)

	s.lastTick = time.Now()
	for {
		frameStart := time.Now()

		updateDeadline := frameStart.Add(s.frameDuration / 2)
	updates:
		for time.Now().Before(updateDeadline) {
			select {
			case fn := <-s.updates:
				fn()
			case <-s.stopCh:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			default:
				break updates
			}
		}

		now := time.Now()
		s.Tick(now.Sub(s.lastTick))
		s.lastTick = now

		// Sleep for remaining frame time to maintain consistent framerate
		elapsed := time.Since(frameStart)
		if elapsed < s.frameDuration {
			select {
			case <-time.After(s.frameDuration - elapsed):
			case <-s.stopCh:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Stop signals Run to exit. Stop is idempotent.
func (s *FrameSurface) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
