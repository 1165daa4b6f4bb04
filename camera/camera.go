package camera

import (
	"fmt"

	"orrery/common"
)

// nearPlane is the minimum depth along the view axis; points closer
// than this (or behind the eye) are culled.
const nearPlane = 0.05

// Camera is a perspective camera that projects world points onto the
// screen. It holds the live pose; the focus controller hands it new
// poses through ApplyPose each tick.
type Camera struct {
	pose    Pose
	home    Pose
	screenW float64
	screenH float64
	focal   float64
}

// New creates a camera at the given pose with the given logical screen
// size. The pose also becomes the home pose used by reset.
func New(pose Pose, screenW, screenH int) *Camera {
	return &Camera{
		pose:    pose,
		home:    pose,
		screenW: float64(screenW),
		screenH: float64(screenH),
		focal:   float64(screenH), // ~53 degree vertical field of view
	}
}

// Pose returns the camera's current placement.
func (c *Camera) Pose() Pose {
	return c.pose
}

// Home returns the pose the camera was created with.
func (c *Camera) Home() Pose {
	return c.home
}

// ApplyPose replaces the camera's placement.
func (c *Camera) ApplyPose(p Pose) {
	c.pose = p
}

// SetScreenSize updates the logical screen size used for projection.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = float64(w)
	c.screenH = float64(h)
	c.focal = float64(h)
}

// axes returns the camera's right, up, and forward basis vectors,
// derived from the pose the same way a LookAt matrix would be. Degenerate
// poses (position == lookAt, or looking straight up/down) return ok=false.
func (c *Camera) axes() (right, up, forward common.Vec3, ok bool) {
	back := c.pose.Position.Sub(c.pose.LookAt)
	if back.Norm() < 1e-8 {
		return
	}
	back = back.Normalized()

	worldUp := common.Vec3{Y: 1}
	right = worldUp.Cross(back)
	if right.Norm() < 1e-8 {
		return
	}
	right = right.Normalized()
	up = back.Cross(right)
	forward = back.Scale(-1)
	ok = true
	return
}

// Project maps a world point to screen coordinates. scale is the
// perspective shrink factor (focal length over depth) callers use to
// size sprites; visible is false for points at or behind the near plane
// or when the camera pose is degenerate.
func (c *Camera) Project(p common.Vec3) (sx, sy, depth, scale float64, visible bool) {
	right, up, forward, ok := c.axes()
	if !ok {
		return
	}

	d := p.Sub(c.pose.Position)
	cz := d.Dot(forward)
	if cz <= nearPlane {
		return
	}

	cx := d.Dot(right)
	cy := d.Dot(up)

	sx = c.screenW/2 + c.focal*cx/cz
	sy = c.screenH/2 - c.focal*cy/cz
	depth = cz
	scale = c.focal / cz
	visible = true
	return
}

// DescribePose formats the current pose for the debug overlay and the
// clipboard copy shortcut.
func (c *Camera) DescribePose() string {
	p := c.pose
	return fmt.Sprintf("pos=(%.2f, %.2f, %.2f) look=(%.2f, %.2f, %.2f)",
		p.Position.X, p.Position.Y, p.Position.Z,
		p.LookAt.X, p.LookAt.Y, p.LookAt.Z)
}
