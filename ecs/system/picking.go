package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"orrery/camera"
	"orrery/ecs"
	"orrery/ecs/component"
)

// PickingSystem resolves the pointer against the bodies' projected
// screen footprints. It keeps a chipmunk space of circle shapes in
// screen coordinates: hover marks the body under the cursor and a left
// click publishes a focus request for it.
type PickingSystem struct {
	cam           *camera.Camera
	space         *cp.Space
	shapeToEntity map[*cp.Shape]ecs.Entity

	// Blocked reports whether a screen point is claimed by the HUD, so
	// clicks on the control panel don't also pick a body behind it.
	Blocked func(x, y int) bool
}

func NewPickingSystem(cam *camera.Camera) *PickingSystem {
	return &PickingSystem{cam: cam}
}

func (s *PickingSystem) Update(w *ecs.World) {
	s.space = cp.NewSpace()
	s.shapeToEntity = make(map[*cp.Shape]ecs.Entity)

	for _, e := range w.Query(component.PickableComponent.ID(), component.TransformComponent.ID(), component.BodyComponent.ID()) {
		pickable, ok := ecs.Get(w, e, component.PickableComponent)
		if !ok {
			continue
		}
		pickable.Hovered = false

		tr, _ := ecs.Get(w, e, component.TransformComponent)
		body, _ := ecs.Get(w, e, component.BodyComponent)

		sx, sy, _, scale, visible := s.cam.Project(tr.Position)
		if !visible {
			continue
		}

		r := body.Radius * scale
		if r < pickable.MinPickPixels {
			r = pickable.MinPickPixels
		}

		cpBody := cp.NewStaticBody()
		cpBody.SetPosition(cp.Vector{X: sx, Y: sy})
		shape := cp.NewCircle(cpBody, r, cp.Vector{})
		s.space.AddBody(cpBody)
		s.space.AddShape(shape)
		s.shapeToEntity[shape] = e
	}

	cx, cy := ebiten.CursorPosition()
	if s.Blocked != nil && s.Blocked(cx, cy) {
		return
	}

	info := s.space.PointQueryNearest(cp.Vector{X: float64(cx), Y: float64(cy)}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return
	}
	hovered, ok := s.shapeToEntity[info.Shape]
	if !ok {
		return
	}

	if pickable, ok := ecs.Get(w, hovered, component.PickableComponent); ok {
		pickable.Hovered = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.Events().Push(ecs.Event{Kind: ecs.EventFocusBody, Data: ecs.FocusBodyEvent{Body: hovered}})
	}
}
