package gui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func (ui *Gui) registerCallbacks() {
	w := ui.window

	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		ui.renderer.Resize(width, height)
	})

	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		// The browser-style back button snaps to the home view.
		if button == glfw.MouseButton4 {
			if action == glfw.Press {
				ui.cam.Reset()
				ui.log.Debug("camera reset")
			}
			return
		}
		switch action {
		case glfw.Press:
			ui.input.BeginDrag(button)
		case glfw.Release:
			ui.input.EndDrag()
		}
	})

	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		dx, dy := ui.input.CursorDelta(float32(x), float32(y))
		button, dragging := ui.input.Drag()
		if !dragging {
			return
		}
		switch button {
		case glfw.MouseButtonLeft:
			ui.cam.Orbit(ui.cfg.OrbitSensitivity*dx, ui.cfg.OrbitSensitivity*dy)
		case glfw.MouseButtonRight:
			ui.cam.Pan(ui.cfg.PanSensitivity*dx, -ui.cfg.PanSensitivity*dy)
		}
	})

	w.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		ui.cam.ZoomBy(-ui.cfg.ZoomSensitivity * float32(yoff))
	})

	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			ui.window.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press:
			ui.input.KeyDown(key)
		case glfw.Release:
			ui.input.KeyUp(key)
		}
	})

	// A drag must not survive focus loss; the release event may never arrive.
	w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			ui.input.EndDrag()
		}
	})

	w.SetCloseCallback(func(_ *glfw.Window) {
		ui.log.Info("close requested", zap.String("window", ui.cfg.Title))
	})
}
