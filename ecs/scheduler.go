package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Scheduler runs update systems in a fixed order, then draw systems in
// a fixed order. The explicit pipeline replaces ad-hoc callback
// chaining: input -> simulation -> camera -> render.
type Scheduler struct {
	systems []System
	drawers []DrawSystem
}

func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) AddDrawer(d DrawSystem) {
	if d == nil {
		return
	}
	s.drawers = append(s.drawers, d)
}

// Update runs all update systems once, then flushes undrained events so
// stale events never leak into the next tick.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
	w.events.flush()
}

// Draw runs all draw systems once.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	for _, d := range s.drawers {
		d.Draw(w, screen)
	}
}
