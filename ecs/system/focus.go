package system

import (
	"log"

	"orrery/camera"
	"orrery/common"
	"orrery/ecs"
	"orrery/ecs/component"
)

const (
	// focusDeltaFactor is the per-tick interpolation fraction fed to the
	// focus controller. Update runs at a fixed TPS, so a constant factor
	// is already frame-rate independent.
	focusDeltaFactor = 0.06

	// framingDistance sizes the approach: the camera stops this many
	// body radii away from the focused body.
	framingDistance = 8.0
	minApproach     = 2.0
)

// FocusSystem turns focus-request events into camera focus targets and
// drives the focus controller each tick, applying the returned pose to
// the camera. A rejected target is logged and dropped; it never breaks
// the frame.
type FocusSystem struct {
	cam  *camera.Camera
	ctrl *camera.FocusController
}

func NewFocusSystem(cam *camera.Camera, ctrl *camera.FocusController) *FocusSystem {
	return &FocusSystem{cam: cam, ctrl: ctrl}
}

// Controller exposes the focus controller for the debug overlay.
func (s *FocusSystem) Controller() *camera.FocusController {
	return s.ctrl
}

func (s *FocusSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Pending() {
		switch evt.Kind {
		case ecs.EventFocusBody:
			req, ok := evt.Data.(ecs.FocusBodyEvent)
			if !ok {
				continue
			}
			s.requestBody(w, req.Body)
		case ecs.EventResetView:
			home := s.cam.Home()
			s.request(camera.Target{Position: home.Position, LookAt: home.LookAt})
		}
	}

	pose, _ := s.ctrl.Tick(s.cam.Pose(), focusDeltaFactor)
	s.cam.ApplyPose(pose)
}

func (s *FocusSystem) requestBody(w *ecs.World, e ecs.Entity) {
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, e, component.BodyComponent)
	if !ok {
		return
	}

	// Approach along the current viewing direction so the transition
	// doesn't swing the camera around the body.
	dir := s.cam.Pose().Position.Sub(tr.Position).Normalized()
	if dir.Norm() == 0 {
		dir = common.Vec3{Y: 0.4, Z: 1}.Normalized()
	}

	dist := body.Radius * framingDistance
	if dist < minApproach {
		dist = minApproach
	}

	s.request(camera.Target{
		Position: tr.Position.Add(dir.Scale(dist)),
		LookAt:   tr.Position,
	})
}

func (s *FocusSystem) request(t camera.Target) {
	if err := s.ctrl.RequestFocus(t); err != nil {
		log.Printf("focus: rejected target: %v", err)
	}
}
