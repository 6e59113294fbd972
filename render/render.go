package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cubeview/geometry"
)

const glFloat32Size = 4

// Projection constants.
const (
	fovyDegrees = 60.0
	nearPlane   = 0.1
	farPlane    = 100.0
)

// Renderer owns the cube's GL state for the process lifetime: one program,
// one VAO with a vertex buffer per attribute stream, and the current
// framebuffer size for the projection. It draws the fixed cube under a view
// matrix supplied each frame; it knows nothing about input or smoothing.
type Renderer struct {
	program     uint32
	vao         uint32
	positionVBO uint32
	colorVBO    uint32

	modelLoc      int32
	viewLoc       int32
	projectionLoc int32

	width, height int
	vertexCount   int32
}

// New compiles the pipeline and uploads the cube geometry. Requires a
// current GL context.
func New(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: framebuffer size %dx%d", width, height)
	}

	program, err := newProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	r := &Renderer{
		program: program,
		width:   width,
		height:  height,
	}
	r.modelLoc = gl.GetUniformLocation(program, gl.Str("model\x00"))
	r.viewLoc = gl.GetUniformLocation(program, gl.Str("view\x00"))
	r.projectionLoc = gl.GetUniformLocation(program, gl.Str("projection\x00"))

	positions, colors := geometry.Cube()
	r.vertexCount = int32(len(positions))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	r.positionVBO = makeStream(0, geometry.Flatten(positions))
	r.colorVBO = makeStream(1, geometry.Flatten(colors))

	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0.01, 0.01, 0.01, 1.0)
	gl.Viewport(0, 0, int32(width), int32(height))

	return r, nil
}

// makeStream uploads one packed vec3 stream and binds it to an attribute
// location of the VAO currently bound.
func makeStream(location uint32, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*glFloat32Size, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(location, 3, gl.FLOAT, false, 3*glFloat32Size, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(location)
	return vbo
}

// Render draws one frame under the given view matrix.
func (r *Renderer) Render(view mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	model := mgl32.Ident4()
	aspect := float32(r.width) / float32(r.height)
	projection := mgl32.Perspective(mgl32.DegToRad(fovyDegrees), aspect, nearPlane, farPlane)

	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &view[0])
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, &projection[0])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
}

// Resize tracks framebuffer size changes. Zero extents are ignored; a
// minimized window keeps the last usable viewport.
func (r *Renderer) Resize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Close() {
	gl.DeleteBuffers(1, &r.positionVBO)
	gl.DeleteBuffers(1, &r.colorVBO)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
