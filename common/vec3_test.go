package common

import (
	"math"
	"testing"
)

func TestVec3Basics(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	if got := a.Add(b); got != (Vec3{X: 0, Y: 2.5, Z: 5}) {
		t.Fatalf("Add: %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{X: 2, Y: 1.5, Z: 1}) {
		t.Fatalf("Sub: %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Fatalf("Scale: %+v", got)
	}
	if got := a.Dot(b); got != 6 {
		t.Fatalf("Dot: %v", got)
	}
	if got := (Vec3{X: 3, Y: 4}).Norm(); got != 5 {
		t.Fatalf("Norm: %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if got := x.Cross(y); got != (Vec3{Z: 1}) {
		t.Fatalf("x cross y = %+v, want +z", got)
	}
	if got := y.Cross(x); got != (Vec3{Z: -1}) {
		t.Fatalf("y cross x = %+v, want -z", got)
	}
}

func TestVec3Normalized(t *testing.T) {
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Fatalf("zero vector should normalize to zero, got %+v", got)
	}
	n := Vec3{X: 0, Y: 3, Z: 4}.Normalized()
	if math.Abs(n.Norm()-1) > 1e-12 {
		t.Fatalf("normalized norm %v", n.Norm())
	}
}

func TestVec3LerpTo(t *testing.T) {
	a := Vec3{}
	b := Vec3{X: 10, Y: -4, Z: 2}

	if got := a.LerpTo(b, 0); got != a {
		t.Fatalf("t=0 should return start, got %+v", got)
	}
	if got := a.LerpTo(b, 1); got != b {
		t.Fatalf("t=1 should return end, got %+v", got)
	}
	if got := a.LerpTo(b, 0.5); got != (Vec3{X: 5, Y: -2, Z: 1}) {
		t.Fatalf("t=0.5: %+v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{X: 1, Y: 2, Z: 3}).IsFinite() {
		t.Fatal("finite vector reported non-finite")
	}
	bad := []Vec3{
		{X: math.NaN()},
		{Y: math.Inf(1)},
		{Z: math.Inf(-1)},
	}
	for _, v := range bad {
		if v.IsFinite() {
			t.Fatalf("%+v reported finite", v)
		}
	}
}
