package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const Tau = 2 * math32.Pi

// Home view. The orbit snaps back to these angles on Reset.
const (
	DefaultYaw   = 1.0
	DefaultPitch = -0.5
	DefaultZoom  = 2.0
)

// ReferenceRate is the frame rate the smoothing stiffness is expressed
// against. A stiffness s means: at ReferenceRate, each frame closes the
// fraction s of the remaining gap to the target.
const ReferenceRate = 60.0

// Camera is an orbit camera around a movable pivot. It is a plain value:
// the render loop keeps two copies, a live one mutated by input and a
// smoothed one pulled toward it every frame.
//
// Zoom stores the logarithm of the pivot distance, so multiplicative zoom
// gestures become additive updates and smoothing never crosses zero.
// Yaw and Pitch accumulate without bound; only Reset wraps them.
type Camera struct {
	Origin mgl32.Vec3
	Yaw    float32
	Pitch  float32
	Zoom   float32
}

func Default() Camera {
	return Camera{
		Yaw:   DefaultYaw,
		Pitch: DefaultPitch,
		Zoom:  DefaultZoom,
	}
}

// Orbit rotates the camera around the pivot. No clamping: a full vertical
// flip is allowed.
func (c *Camera) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
}

// ZoomBy changes the log-distance to the pivot. Positive deltas move the
// camera away.
func (c *Camera) ZoomBy(delta float32) {
	c.Zoom += delta
}

// Pan shifts the pivot by a screen-relative offset, so dragging always
// moves the scene along the current on-screen axes regardless of orbit.
func (c *Camera) Pan(rightwards, upwards float32) {
	c.Origin = c.Origin.Add(c.Rotation().Rotate(mgl32.Vec3{rightwards, upwards, 0}))
}

// Translate shifts the pivot by a world-space vector (fly-through movement).
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.Origin = c.Origin.Add(delta)
}

// Reset returns to the home view. Angles snap to the home angles plus the
// nearest whole number of turns, so a camera that has been orbited many
// times does not spin all the way back while the smoothing catches up.
func (c *Camera) Reset() {
	c.Yaw = math32.Round(c.Yaw/Tau)*Tau + DefaultYaw
	c.Pitch = math32.Round(c.Pitch/Tau)*Tau + DefaultPitch
	c.Zoom = DefaultZoom
	c.Origin = mgl32.Vec3{}
}

// Distance is the world-space distance between camera and pivot.
func (c *Camera) Distance() float32 {
	return math32.Exp(c.Zoom)
}

// Rotation is the camera orientation: yaw about the world up axis, then
// pitch about the resulting local right axis. Pan and fly translation both
// derive their axes from this quaternion.
func (c *Camera) Rotation() mgl32.Quat {
	yaw := mgl32.QuatRotate(c.Yaw, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(c.Pitch, mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Matrix is the view matrix: the inverse of translating to the pivot,
// rotating by Rotation and backing off along local +Z by Distance. The
// camera looks down -Z, so the default camera sees the pivot at view-space
// (0, 0, -Distance).
func (c *Camera) Matrix() mgl32.Mat4 {
	back := mgl32.Translate3D(0, 0, -c.Distance())
	rotation := c.Rotation().Inverse().Mat4()
	toPivot := mgl32.Translate3D(-c.Origin.X(), -c.Origin.Y(), -c.Origin.Z())
	return back.Mul4(rotation).Mul4(toPivot)
}

// LerpExp pulls the camera toward target with an exponential filter that is
// independent of the frame interval: splitting dt across several calls lands
// on the same trajectory as one call with the total. dt of zero leaves the
// camera untouched; large dt converges to the target.
func (c *Camera) LerpExp(target Camera, dt, stiffness float32) {
	rate := -ReferenceRate * math32.Log(1-stiffness)
	alpha := 1 - math32.Exp(-rate*dt)
	c.Yaw += alpha * (target.Yaw - c.Yaw)
	c.Pitch += alpha * (target.Pitch - c.Pitch)
	c.Zoom += alpha * (target.Zoom - c.Zoom)
	c.Origin = c.Origin.Add(target.Origin.Sub(c.Origin).Mul(alpha))
}
