package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"orrery/common"
	"orrery/ecs"
)

// InputSystem maps keyboard shortcuts onto world events: R resets the
// view, space toggles the simulation pause, and the bracket keys nudge
// the speed multiplier.
type InputSystem struct {
	orbits *OrbitSystem
}

func NewInputSystem(orbits *OrbitSystem) *InputSystem {
	return &InputSystem{orbits: orbits}
}

func (s *InputSystem) Update(w *ecs.World) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.Events().Push(ecs.Event{Kind: ecs.EventResetView})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && s.orbits != nil {
		s.orbits.SetPaused(!s.orbits.Paused())
	}

	if s.orbits == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		s.nudgeSpeed(w, 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		s.nudgeSpeed(w, -0.25)
	}
}

// nudgeSpeed steps the speed multiplier, clamped to the same range the
// HUD slider covers.
func (s *InputSystem) nudgeSpeed(w *ecs.World, delta float64) {
	next := common.Clamp(s.orbits.Speed()+delta, 0, 5)
	w.Events().Push(ecs.Event{Kind: ecs.EventSpeedChange, Data: ecs.SpeedChangeEvent{Scale: next}})
}
