package ui

import (
	"testing"
	"time"
)

const frame = time.Second / 60

// drawCounter is a minimal widget that records its draws.
type drawCounter struct {
	*Component
	draws       int
	initialized int
	log         *[]string
	onDraw      func(d *drawCounter)
}

func newDrawCounter(name string, log *[]string) *drawCounter {
	d := &drawCounter{log: log}
	d.Component = NewComponent(d)
	d.SetName(name)
	return d
}

func (d *drawCounter) Initialize() {
	d.initialized++
}

func (d *drawCounter) Draw() {
	d.draws++
	if d.log != nil {
		*d.log = append(*d.log, d.Name())
	}
	if d.onDraw != nil {
		d.onDraw(d)
	}
}

// newTestStage returns a stage on a surface that is ticked by hand.
func newTestStage(t *testing.T) (*Stage, *FrameSurface) {
	t.Helper()
	surface, err := NewFrameSurface()
	if err != nil {
		t.Fatalf("NewFrameSurface: %v", err)
	}
	return NewStage(NewRegistry(), surface), surface
}
