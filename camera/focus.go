package camera

import (
	"errors"

	"orrery/common"
)

var ErrInvalidTarget = errors.New("camera: focus target has non-finite coordinates")

// Pose is a camera placement: where it sits and what it looks at.
type Pose struct {
	Position common.Vec3
	LookAt   common.Vec3
}

// Target is a requested end pose for a focus transition.
type Target struct {
	Position common.Vec3
	LookAt   common.Vec3
}

// State reports whether a focus transition is in flight.
type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Epsilon is the convergence tolerance in world units. Once both the
// position and look-at point are within this distance of the target the
// pose snaps to the exact target, avoiding infinite micro-motion from
// the asymptotic lerp.
const Epsilon = 0.1

// FocusController drives a camera pose smoothly toward a requested
// target. It owns only the transition state and target; the host render
// loop owns the actual camera and applies the pose returned by Tick.
type FocusController struct {
	state  State
	target Target
}

// NewFocusController returns an idle controller.
func NewFocusController() *FocusController {
	return &FocusController{}
}

// RequestFocus stores the target and starts (or retargets) a transition.
// A target with non-finite coordinates returns ErrInvalidTarget and
// leaves state and target untouched.
func (fc *FocusController) RequestFocus(t Target) error {
	if !t.Position.IsFinite() || !t.LookAt.IsFinite() {
		return ErrInvalidTarget
	}
	fc.target = t
	fc.state = Transitioning
	return nil
}

// Tick advances the transition by one frame. pose is the camera's
// current placement and deltaFactor is the interpolation fraction in
// (0, 1] for this frame. When idle the pose is returned unchanged.
func (fc *FocusController) Tick(pose Pose, deltaFactor float64) (Pose, State) {
	if fc.state == Idle {
		return pose, Idle
	}

	next := Pose{
		Position: pose.Position.LerpTo(fc.target.Position, deltaFactor),
		LookAt:   pose.LookAt.LerpTo(fc.target.LookAt, deltaFactor),
	}

	if next.Position.Distance(fc.target.Position) < Epsilon &&
		next.LookAt.Distance(fc.target.LookAt) < Epsilon {
		next.Position = fc.target.Position
		next.LookAt = fc.target.LookAt
		fc.state = Idle
	}

	return next, fc.state
}

// State returns the controller's current state.
func (fc *FocusController) State() State {
	return fc.state
}

// CurrentTarget returns the last accepted focus target.
func (fc *FocusController) CurrentTarget() Target {
	return fc.target
}
