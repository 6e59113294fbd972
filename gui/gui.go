package gui

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"cubeview/camera"
	"cubeview/config"
	"cubeview/render"
)

type lifecycle int

const (
	stateUninitialized lifecycle = iota
	stateReady
)

// Gui owns the window, the renderer and both camera copies. The live camera
// absorbs input events, the smoothed one chases it and is what gets drawn.
// Everything runs on the thread that calls Run; callbacks fire inside
// glfw.PollEvents on that same thread.
type Gui struct {
	cfg *config.Config
	log *zap.Logger

	window   *glfw.Window
	renderer *render.Renderer
	input    *InputState

	cam      camera.Camera
	smoothed camera.Camera

	lastRender  time.Time
	hasRendered bool

	state lifecycle
}

func New(cfg *config.Config, log *zap.Logger) *Gui {
	return &Gui{
		cfg:   cfg,
		log:   log,
		input: NewInputState(),
		cam:   camera.Default(),
		state: stateUninitialized,
	}
}

// Run initializes the window and renderer if needed, then drives the render
// loop until the window closes.
func (ui *Gui) Run() error {
	if ui.state != stateReady {
		if err := ui.init(); err != nil {
			return err
		}
	}
	defer ui.shutdown()

	for !ui.window.ShouldClose() {
		// Input first, then smoothing, then the draw: the frame must see
		// every delta that arrived before it.
		glfw.PollEvents()
		ui.frame()
		ui.window.SwapBuffers()
	}
	return nil
}

func (ui *Gui) init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("gui: init glfw: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := ui.cfg.Width, ui.cfg.Height
	if width == 0 || height == 0 {
		width, height = getWH()
	}
	window, err := glfw.CreateWindow(width, height, ui.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("gui: create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("gui: init gl: %w", err)
	}
	ui.log.Info("opengl ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	fbWidth, fbHeight := window.GetFramebufferSize()
	renderer, err := render.New(fbWidth, fbHeight)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return err
	}

	ui.window = window
	ui.renderer = renderer
	ui.registerCallbacks()
	ui.state = stateReady
	return nil
}

func (ui *Gui) shutdown() {
	if ui.state != stateReady {
		return
	}
	ui.log.Info("shutting down")
	ui.renderer.Close()
	ui.window.Destroy()
	glfw.Terminate()
	ui.state = stateUninitialized
}

// frame advances the cameras and draws. The first frame has no usable
// elapsed time, so the smoothed camera snaps to the live one instead of
// chasing it from its zero value.
func (ui *Gui) frame() {
	now := time.Now()
	if !ui.hasRendered {
		ui.smoothed = ui.cam
		ui.hasRendered = true
	} else {
		dt := float32(now.Sub(ui.lastRender).Seconds())
		ui.cam.Translate(ui.input.Translation(ui.cam, dt, ui.cfg))
		ui.smoothed.LerpExp(ui.cam, dt, ui.cfg.Smoothing)
	}
	ui.lastRender = now

	ui.renderer.Render(ui.smoothed.Matrix())
}

func getWH() (width, height int) {
	sw := glfw.GetPrimaryMonitor().GetVideoMode().Width
	sh := glfw.GetPrimaryMonitor().GetVideoMode().Height
	aspect := 16.0 / 9.0
	width = int(math.Min(float64(sw), float64(sh)*aspect)) - 80
	height = sh - 80
	return width, height
}
