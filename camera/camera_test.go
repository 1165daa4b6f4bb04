package camera

import (
	"math"
	"testing"

	"orrery/common"
)

func TestProjectCentersLookAtPoint(t *testing.T) {
	cam := New(Pose{Position: common.Vec3{Z: 10}}, 1280, 720)

	sx, sy, depth, scale, visible := cam.Project(common.Vec3{})
	if !visible {
		t.Fatal("look-at point should be visible")
	}
	if sx != 640 || sy != 360 {
		t.Fatalf("look-at point projected to (%v, %v), want screen center", sx, sy)
	}
	if depth != 10 {
		t.Fatalf("depth %v, want 10", depth)
	}
	if scale != 72 {
		t.Fatalf("scale %v, want focal/depth = 72", scale)
	}
}

func TestProjectOrientation(t *testing.T) {
	cam := New(Pose{Position: common.Vec3{Z: 10}}, 1280, 720)

	// +X is screen right, +Y is screen up.
	sx, _, _, _, ok := cam.Project(common.Vec3{X: 1})
	if !ok || sx <= 640 {
		t.Fatalf("point on +X projected to sx=%v, want right of center", sx)
	}
	_, sy, _, _, ok := cam.Project(common.Vec3{Y: 1})
	if !ok || sy >= 360 {
		t.Fatalf("point on +Y projected to sy=%v, want above center", sy)
	}
}

func TestProjectCullsBehindCamera(t *testing.T) {
	cam := New(Pose{Position: common.Vec3{Z: 10}}, 1280, 720)

	if _, _, _, _, visible := cam.Project(common.Vec3{Z: 20}); visible {
		t.Fatal("point behind the camera should be culled")
	}
	if _, _, _, _, visible := cam.Project(common.Vec3{Z: 10}); visible {
		t.Fatal("point at the eye should be culled")
	}
}

func TestProjectDegeneratePose(t *testing.T) {
	cam := New(Pose{Position: common.Vec3{X: 5}, LookAt: common.Vec3{X: 5}}, 1280, 720)
	if _, _, _, _, visible := cam.Project(common.Vec3{X: 1}); visible {
		t.Fatal("degenerate pose should project nothing")
	}
}

func TestProjectScaleFallsWithDistance(t *testing.T) {
	cam := New(Pose{Position: common.Vec3{Z: 10}}, 1280, 720)

	_, _, _, near, _ := cam.Project(common.Vec3{})
	_, _, _, far, _ := cam.Project(common.Vec3{Z: -10})
	if math.Abs(near/far-2) > 1e-9 {
		t.Fatalf("doubling distance should halve scale: near=%v far=%v", near, far)
	}
}

func TestApplyPoseAndHome(t *testing.T) {
	home := Pose{Position: common.Vec3{Z: 10}}
	cam := New(home, 1280, 720)

	next := Pose{Position: common.Vec3{X: 3, Y: 2, Z: 1}, LookAt: common.Vec3{X: 3}}
	cam.ApplyPose(next)

	if cam.Pose() != next {
		t.Fatalf("pose %+v, want %+v", cam.Pose(), next)
	}
	if cam.Home() != home {
		t.Fatalf("home pose changed: %+v", cam.Home())
	}
}
