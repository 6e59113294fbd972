package gui

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubeview/camera"
	"cubeview/config"
)

func TestCursorDeltaAnchorsOnFirstSample(t *testing.T) {
	s := NewInputState()

	dx, dy := s.CursorDelta(100, 200)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = s.CursorDelta(103, 198)
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(-2), dy)
}

func TestDragBookkeeping(t *testing.T) {
	s := NewInputState()

	_, dragging := s.Drag()
	require.False(t, dragging)

	s.BeginDrag(glfw.MouseButtonRight)
	button, dragging := s.Drag()
	require.True(t, dragging)
	require.Equal(t, glfw.MouseButtonRight, button)

	s.EndDrag()
	_, dragging = s.Drag()
	require.False(t, dragging)
}

func TestKeyBookkeeping(t *testing.T) {
	s := NewInputState()
	require.False(t, s.IsDown(glfw.KeyW))

	s.KeyDown(glfw.KeyW)
	require.True(t, s.IsDown(glfw.KeyW))

	s.KeyUp(glfw.KeyW)
	require.False(t, s.IsDown(glfw.KeyW))
}

func TestTranslationIdleIsZero(t *testing.T) {
	s := NewInputState()
	v := s.Translation(camera.Default(), 0.1, config.Default())
	require.Zero(t, v.Len())
}

func TestTranslationOpposingKeysCancel(t *testing.T) {
	s := NewInputState()
	s.KeyDown(glfw.KeyW)
	s.KeyDown(glfw.KeyS)

	v := s.Translation(camera.Default(), 0.1, config.Default())
	require.Zero(t, v.Len())
}

func TestTranslationForwardStaysPlanar(t *testing.T) {
	cfg := config.Default()
	s := NewInputState()
	s.KeyDown(glfw.KeyW)

	cam := camera.Default()
	cam.Orbit(0.9, -0.7)

	v := s.Translation(cam, 0.1, cfg)
	assert.Zero(t, v.Y())
	assert.InDelta(t, cfg.MoveSpeed*0.1, v.Len(), 1e-5)
}

func TestTranslationVerticalKeys(t *testing.T) {
	cfg := config.Default()
	s := NewInputState()
	s.KeyDown(glfw.KeyQ)

	v := s.Translation(camera.Default(), 0.5, cfg)
	assert.Zero(t, v.X())
	assert.Zero(t, v.Z())
	assert.InDelta(t, cfg.MoveSpeed*0.5, v.Y(), 1e-5)
}

func TestTranslationModifiers(t *testing.T) {
	cfg := config.Default()
	cam := camera.Default()

	s := NewInputState()
	s.KeyDown(glfw.KeyW)
	base := s.Translation(cam, 0.1, cfg).Len()

	s.KeyDown(glfw.KeyLeftShift)
	fast := s.Translation(cam, 0.1, cfg).Len()
	assert.InDelta(t, cfg.FastMultiplier*base, fast, 1e-5)

	s.KeyUp(glfw.KeyLeftShift)
	s.KeyDown(glfw.KeyRightAlt)
	slow := s.Translation(cam, 0.1, cfg).Len()
	assert.InDelta(t, base/cfg.SlowDivisor, slow, 1e-5)
}

func TestTranslationZeroDt(t *testing.T) {
	s := NewInputState()
	s.KeyDown(glfw.KeyW)
	s.KeyDown(glfw.KeyD)

	v := s.Translation(camera.Default(), 0, config.Default())
	require.Zero(t, v.Len())
}
