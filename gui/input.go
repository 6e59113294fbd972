package gui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"cubeview/camera"
	"cubeview/config"
)

// InputState tracks the pressed keys, the active drag button, and the last
// cursor position. GLFW reports absolute cursor coordinates, so drag deltas
// are derived here against the previous position.
type InputState struct {
	pressed   map[glfw.Key]bool
	dragging  glfw.MouseButton
	hasDrag   bool
	lastX     float32
	lastY     float32
	hasCursor bool
}

func NewInputState() *InputState {
	return &InputState{pressed: make(map[glfw.Key]bool)}
}

func (s *InputState) KeyDown(key glfw.Key) { s.pressed[key] = true }
func (s *InputState) KeyUp(key glfw.Key)   { delete(s.pressed, key) }
func (s *InputState) IsDown(key glfw.Key) bool {
	return s.pressed[key]
}

func (s *InputState) BeginDrag(button glfw.MouseButton) {
	s.dragging = button
	s.hasDrag = true
}

func (s *InputState) EndDrag() {
	s.hasDrag = false
}

func (s *InputState) Drag() (glfw.MouseButton, bool) {
	return s.dragging, s.hasDrag
}

// CursorDelta updates the tracked cursor position and returns the movement
// since the previous call. The first observation anchors the position and
// reports no movement.
func (s *InputState) CursorDelta(x, y float32) (dx, dy float32) {
	if !s.hasCursor {
		s.lastX, s.lastY = x, y
		s.hasCursor = true
		return 0, 0
	}
	dx = x - s.lastX
	dy = y - s.lastY
	s.lastX, s.lastY = x, y
	return dx, dy
}

// Translation combines the held movement keys into one world-space step for
// this frame. W/S and A/D move in the camera's yaw plane (vertical component
// flattened so forward never climbs), Q/E move along world up. The combined
// direction is normalized, then scaled by speed and elapsed time; Shift
// speeds movement up, Alt slows it down.
func (s *InputState) Translation(cam camera.Camera, dt float32, cfg *config.Config) mgl32.Vec3 {
	var direction mgl32.Vec3
	rotation := cam.Rotation()

	planar := []struct {
		key, antiKey glfw.Key
		axis         mgl32.Vec3
	}{
		{glfw.KeyW, glfw.KeyS, mgl32.Vec3{0, 0, -1}},
		{glfw.KeyD, glfw.KeyA, mgl32.Vec3{1, 0, 0}},
	}
	for _, m := range planar {
		step := float32(keyStep(s.IsDown(m.key)) - keyStep(s.IsDown(m.antiKey)))
		if step == 0 {
			continue
		}
		d := rotation.Rotate(m.axis.Mul(step))
		d[1] = 0
		direction = direction.Add(d)
	}

	vertical := float32(keyStep(s.IsDown(glfw.KeyQ)) - keyStep(s.IsDown(glfw.KeyE)))
	direction = direction.Add(mgl32.Vec3{0, vertical, 0})

	if direction.Len() == 0 {
		return mgl32.Vec3{}
	}
	direction = direction.Normalize()

	speed := cfg.MoveSpeed
	if s.IsDown(glfw.KeyLeftShift) || s.IsDown(glfw.KeyRightShift) {
		speed *= cfg.FastMultiplier
	}
	if s.IsDown(glfw.KeyLeftAlt) || s.IsDown(glfw.KeyRightAlt) {
		speed /= cfg.SlowDivisor
	}
	return direction.Mul(speed * dt)
}

func keyStep(down bool) int {
	if down {
		return 1
	}
	return 0
}
