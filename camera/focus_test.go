package camera

import (
	"math"
	"testing"

	"orrery/common"
)

// tickUntilIdle drives the controller with a bounded iteration count so
// a transition that never converges fails the test instead of hanging.
func tickUntilIdle(t *testing.T, fc *FocusController, pose Pose, factor float64) (Pose, int) {
	t.Helper()
	for i := 1; i <= 10000; i++ {
		next, state := fc.Tick(pose, factor)
		pose = next
		if state == Idle {
			return pose, i
		}
	}
	t.Fatalf("transition did not converge within 10000 ticks")
	return pose, 0
}

func TestFocusConvergence(t *testing.T) {
	cases := []struct {
		name   string
		start  Pose
		target Target
		factor float64
	}{
		{
			name:   "origin_to_positive",
			start:  Pose{},
			target: Target{Position: common.Vec3{X: 100, Y: 50, Z: -30}, LookAt: common.Vec3{X: 10, Y: 0, Z: 0}},
			factor: 0.1,
		},
		{
			name:   "negative_axes",
			start:  Pose{Position: common.Vec3{X: -500, Y: 2, Z: 9}, LookAt: common.Vec3{Z: -1}},
			target: Target{Position: common.Vec3{X: 3, Y: -8, Z: 0.5}},
			factor: 0.02,
		},
		{
			name:   "tiny_move_within_epsilon",
			start:  Pose{Position: common.Vec3{X: 0.05}},
			target: Target{},
			factor: 0.5,
		},
		{
			name:   "full_jump",
			start:  Pose{},
			target: Target{Position: common.Vec3{X: 42, Y: 42, Z: 42}, LookAt: common.Vec3{Y: 7}},
			factor: 1.0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fc := NewFocusController()
			if err := fc.RequestFocus(c.target); err != nil {
				t.Fatalf("RequestFocus: %v", err)
			}
			if fc.State() != Transitioning {
				t.Fatalf("expected Transitioning after request, got %v", fc.State())
			}

			final, _ := tickUntilIdle(t, fc, c.start, c.factor)

			if final.Position != c.target.Position {
				t.Fatalf("position %+v, want exact target %+v", final.Position, c.target.Position)
			}
			if final.LookAt != c.target.LookAt {
				t.Fatalf("lookAt %+v, want exact target %+v", final.LookAt, c.target.LookAt)
			}
		})
	}
}

func TestFocusFullJumpConvergesInOneTick(t *testing.T) {
	fc := NewFocusController()
	target := Target{Position: common.Vec3{X: 1000, Y: -1000, Z: 77}, LookAt: common.Vec3{X: 5}}
	if err := fc.RequestFocus(target); err != nil {
		t.Fatalf("RequestFocus: %v", err)
	}

	pose, state := fc.Tick(Pose{}, 1.0)
	if state != Idle {
		t.Fatalf("deltaFactor=1 should converge in one tick, state %v", state)
	}
	if pose.Position != target.Position || pose.LookAt != target.LookAt {
		t.Fatalf("pose %+v not snapped to target", pose)
	}
}

func TestFocusIdleIsNoOp(t *testing.T) {
	fc := NewFocusController()
	pose := Pose{Position: common.Vec3{X: 3, Y: 4, Z: 5}, LookAt: common.Vec3{X: 1}}

	got, state := fc.Tick(pose, 0.5)
	if state != Idle {
		t.Fatalf("expected Idle, got %v", state)
	}
	if got != pose {
		t.Fatalf("idle tick changed pose: %+v", got)
	}
}

func TestFocusIdempotentRequest(t *testing.T) {
	target := Target{Position: common.Vec3{X: 20, Y: 10, Z: 0}, LookAt: common.Vec3{X: 2}}
	start := Pose{Position: common.Vec3{X: -5}}

	once := NewFocusController()
	if err := once.RequestFocus(target); err != nil {
		t.Fatal(err)
	}

	twice := NewFocusController()
	if err := twice.RequestFocus(target); err != nil {
		t.Fatal(err)
	}
	if err := twice.RequestFocus(target); err != nil {
		t.Fatal(err)
	}

	pa, pb := start, start
	for i := 0; i < 100; i++ {
		var sa, sb State
		pa, sa = once.Tick(pa, 0.25)
		pb, sb = twice.Tick(pb, 0.25)
		if pa != pb || sa != sb {
			t.Fatalf("trajectories diverge at tick %d: %+v/%v vs %+v/%v", i, pa, sa, pb, sb)
		}
	}
}

func TestFocusRetargetMidTransition(t *testing.T) {
	t1 := Target{Position: common.Vec3{X: 100}}
	t2 := Target{Position: common.Vec3{X: -60, Y: 12, Z: 4}, LookAt: common.Vec3{Z: 3}}

	fc := NewFocusController()
	if err := fc.RequestFocus(t1); err != nil {
		t.Fatal(err)
	}

	pose := Pose{}
	for i := 0; i < 3; i++ {
		pose, _ = fc.Tick(pose, 0.2)
	}

	if err := fc.RequestFocus(t2); err != nil {
		t.Fatal(err)
	}
	final, _ := tickUntilIdle(t, fc, pose, 0.2)

	if final.Position != t2.Position || final.LookAt != t2.LookAt {
		t.Fatalf("final pose %+v, want second target %+v", final, t2)
	}
}

func TestFocusHalvingScenario(t *testing.T) {
	fc := NewFocusController()
	target := Target{Position: common.Vec3{X: 10}}
	if err := fc.RequestFocus(target); err != nil {
		t.Fatal(err)
	}

	pose := Pose{}
	pose, state := fc.Tick(pose, 0.5)
	if pose.Position.X != 5 || state != Transitioning {
		t.Fatalf("tick 1: got x=%v state=%v, want x=5 transitioning", pose.Position.X, state)
	}

	pose, state = fc.Tick(pose, 0.5)
	if pose.Position.X != 7.5 || state != Transitioning {
		t.Fatalf("tick 2: got x=%v state=%v, want x=7.5 transitioning", pose.Position.X, state)
	}

	for i := 0; i < 100 && state == Transitioning; i++ {
		pose, state = fc.Tick(pose, 0.5)
	}
	if state != Idle {
		t.Fatalf("never converged")
	}
	if pose.Position.X != 10 {
		t.Fatalf("expected snap to exactly 10, got %v", pose.Position.X)
	}
}

func TestFocusRejectsNonFiniteTarget(t *testing.T) {
	valid := Target{Position: common.Vec3{X: 1, Y: 2, Z: 3}, LookAt: common.Vec3{X: 4}}

	bad := []Target{
		{Position: common.Vec3{X: math.NaN()}},
		{LookAt: common.Vec3{Y: math.Inf(1)}},
		{Position: common.Vec3{Z: math.Inf(-1)}, LookAt: common.Vec3{X: math.NaN()}},
	}

	for _, b := range bad {
		fc := NewFocusController()
		if err := fc.RequestFocus(valid); err != nil {
			t.Fatal(err)
		}

		if err := fc.RequestFocus(b); err != ErrInvalidTarget {
			t.Fatalf("expected ErrInvalidTarget, got %v", err)
		}
		if fc.State() != Transitioning {
			t.Fatalf("rejected request changed state to %v", fc.State())
		}
		if fc.CurrentTarget() != valid {
			t.Fatalf("rejected request changed target to %+v", fc.CurrentTarget())
		}
	}
}

func TestFocusRejectedOnFreshController(t *testing.T) {
	fc := NewFocusController()
	err := fc.RequestFocus(Target{Position: common.Vec3{X: math.NaN()}})
	if err != ErrInvalidTarget {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
	if fc.State() != Idle {
		t.Fatalf("rejected request on idle controller changed state to %v", fc.State())
	}
}
