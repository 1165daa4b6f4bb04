package system

import (
	"math"
	"sort"

	"orrery/common"
	"orrery/ecs"
	"orrery/ecs/component"
)

// OrbitSystem advances every orbiting body by angle += angularVel * dt
// and places it on its tilted circular path around its parent. Moons
// chain off planets, so bodies are evaluated parents-first.
type OrbitSystem struct {
	dt     float64
	speed  float64
	paused bool
}

func NewOrbitSystem(tps int) *OrbitSystem {
	return &OrbitSystem{dt: 1.0 / float64(tps), speed: 1.0}
}

// Speed returns the current simulation speed multiplier.
func (s *OrbitSystem) Speed() float64 {
	return s.speed
}

// Paused reports whether orbital motion is suspended.
func (s *OrbitSystem) Paused() bool {
	return s.paused
}

// SetPaused suspends or resumes orbital motion.
func (s *OrbitSystem) SetPaused(paused bool) {
	s.paused = paused
}

func (s *OrbitSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Pending() {
		if evt.Kind != ecs.EventSpeedChange {
			continue
		}
		if sc, ok := evt.Data.(ecs.SpeedChangeEvent); ok && sc.Scale >= 0 {
			s.speed = sc.Scale
		}
	}

	orbiters := w.Query(component.OrbitComponent.ID(), component.TransformComponent.ID())

	// Parents first: a moon's position depends on its planet's position
	// from this same tick.
	sort.SliceStable(orbiters, func(i, j int) bool {
		return orbitDepth(w, orbiters[i]) < orbitDepth(w, orbiters[j])
	})

	step := s.dt * s.speed
	if s.paused {
		step = 0
	}

	for _, e := range orbiters {
		orbit, ok := ecs.Get(w, e, component.OrbitComponent)
		if !ok {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		orbit.Angle = math.Mod(orbit.Angle+orbit.AngularVel*step, 2*math.Pi)

		center := common.Vec3{}
		if parent := ecs.Entity(orbit.Parent); parent.Valid() {
			if pt, ok := ecs.Get(w, parent, component.TransformComponent); ok {
				center = pt.Position
			}
		}

		tr.Position = center.Add(OrbitOffset(orbit.Radius, orbit.Angle, orbit.Inclination))
	}
}

// OrbitOffset converts orbital parameters to a displacement from the
// orbit center: a circle in the XZ plane tilted about X by the
// inclination.
func OrbitOffset(radius, angle, inclination float64) common.Vec3 {
	return common.Vec3{
		X: radius * math.Cos(angle),
		Y: radius * math.Sin(angle) * math.Sin(inclination),
		Z: radius * math.Sin(angle) * math.Cos(inclination),
	}
}

// orbitDepth counts parent links, bounded in case a spec wires a cycle.
func orbitDepth(w *ecs.World, e ecs.Entity) int {
	depth := 0
	for depth < 8 {
		orbit, ok := ecs.Get(w, e, component.OrbitComponent)
		if !ok || !ecs.Entity(orbit.Parent).Valid() {
			return depth
		}
		e = ecs.Entity(orbit.Parent)
		depth++
	}
	return depth
}
