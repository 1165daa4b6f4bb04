package entity

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"orrery/common"
	"orrery/ecs"
	"orrery/ecs/component"
	"orrery/ecs/system"
	"orrery/specs"
	"orrery/sprites"
)

// SpriteLookup resolves a body name to its pre-generated sprite image.
// The loading sequence fills the library before the world is built.
type SpriteLookup func(name string) *ebiten.Image

// BuildSystem creates entities for every body in the spec, wiring moons
// to their planets. It returns the created entities keyed by body name.
func BuildSystem(w *ecs.World, spec *specs.SystemSpec, lookup SpriteLookup) (map[string]ecs.Entity, error) {
	built := make(map[string]ecs.Entity)
	for i := range spec.Bodies {
		parent, err := buildBody(w, &spec.Bodies[i], 0, lookup, built)
		if err != nil {
			return nil, err
		}
		for j := range spec.Bodies[i].Moons {
			if _, err := buildBody(w, &spec.Bodies[i].Moons[j], parent, lookup, built); err != nil {
				return nil, err
			}
		}
	}
	return built, nil
}

func buildBody(w *ecs.World, spec *specs.BodySpec, parent ecs.Entity, lookup SpriteLookup, built map[string]ecs.Entity) (ecs.Entity, error) {
	rgba, err := spec.RGBA()
	if err != nil {
		return 0, fmt.Errorf("entity: body %s: %w", spec.Name, err)
	}

	img := lookup(spec.Name)
	if img == nil {
		return 0, fmt.Errorf("entity: body %s: no sprite generated", spec.Name)
	}

	e := w.CreateEntity()

	angle := spec.StartAngle * math.Pi / 180
	incl := spec.Inclination * math.Pi / 180

	pos := common.Vec3{}
	if spec.OrbitRadius > 0 {
		center := common.Vec3{}
		if parent.Valid() {
			if pt, ok := ecs.Get(w, parent, component.TransformComponent); ok {
				center = pt.Position
			}
		}
		pos = center.Add(system.OrbitOffset(spec.OrbitRadius, angle, incl))
	}

	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: pos}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BodyComponent, &component.Body{
		Name:   spec.Name,
		Radius: spec.Radius,
		Color:  rgba,
		Glow:   spec.Glow,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Image:     img,
		WorldSize: sprites.WorldSize(spec.Radius, spec.Glow),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PickableComponent, &component.Pickable{MinPickPixels: 6}); err != nil {
		return 0, err
	}

	if spec.OrbitRadius > 0 {
		period := spec.PeriodSec
		if err := ecs.Add(w, e, component.OrbitComponent, &component.Orbit{
			Parent:      uint64(parent),
			Radius:      spec.OrbitRadius,
			AngularVel:  2 * math.Pi / period,
			Angle:       angle,
			Inclination: incl,
		}); err != nil {
			return 0, err
		}
		if err := ecs.Add(w, e, component.OrbitRingComponent, &component.OrbitRing{
			Segments: 96,
			Color:    color.RGBA{R: 0x3a, G: 0x3f, B: 0x55, A: 0x90},
		}); err != nil {
			return 0, err
		}
	}

	if spec.SpinSec > 0 {
		if err := ecs.Add(w, e, component.SpinComponent, &component.Spin{Rate: 2 * math.Pi / spec.SpinSec}); err != nil {
			return 0, err
		}
	}

	built[spec.Name] = e
	return e, nil
}
