package system

import (
	"math"

	"orrery/ecs"
	"orrery/ecs/component"
)

// SpinSystem rotates body sprites about their own axis. It follows the
// same speed scale and pause state as the orbit system.
type SpinSystem struct {
	dt     float64
	orbits *OrbitSystem
}

func NewSpinSystem(tps int, orbits *OrbitSystem) *SpinSystem {
	return &SpinSystem{dt: 1.0 / float64(tps), orbits: orbits}
}

func (s *SpinSystem) Update(w *ecs.World) {
	if s.orbits != nil && s.orbits.Paused() {
		return
	}
	speed := 1.0
	if s.orbits != nil {
		speed = s.orbits.Speed()
	}
	for _, e := range w.Query(component.SpinComponent.ID()) {
		spin, ok := ecs.Get(w, e, component.SpinComponent)
		if !ok {
			continue
		}
		spin.Angle = math.Mod(spin.Angle+spin.Rate*speed*s.dt, 2*math.Pi)
	}
}
