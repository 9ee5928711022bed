package ui

// Stage is the display root of one surface. Widgets added to a Stage (or
// to any of its descendants) are attached to the surface's ValidationQueue.
type Stage struct {
	*Component
	registry *Registry
	surface  Surface
}

// NewStage creates the root for surface, taking its queue from registry.
func NewStage(registry *Registry, surface Surface) *Stage {
	if registry == nil {
		panic("ui: nil registry in NewStage")
	}
	if surface == nil {
		panic("ui: nil surface in NewStage")
	}
	s := &Stage{registry: registry, surface: surface}
	s.Component = NewComponent(s)
	s.SetName("stage")
	s.attach(registry.Queue(surface))
	return s
}

// Draw implements Drawer. The stage positions nothing; children keep the
// positions their owners give them.
func (s *Stage) Draw() {}

// Surface returns the surface the stage renders to.
func (s *Stage) Surface() Surface {
	return s.surface
}

// teardown releases the surface's queue once the tree is disposed.
func (s *Stage) teardown() {
	s.registry.Dispose(s.surface)
}
