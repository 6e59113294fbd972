package geometry

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// VertexCount is 6 faces * 2 triangles * 3 vertices, drawn unindexed.
const VertexCount = 36

// One solid color per face, in face order (+X, -X, +Y, -Y, +Z, -Z).
var facePalette = [6]color.RGBA{
	colornames.Red,
	colornames.Lime,
	colornames.Blue,
	colornames.Yellow,
	colornames.Magenta,
	colornames.Cyan,
}

// Cube builds the vertex streams for a cube spanning [-1,1] on every axis,
// centered at the origin. Both slices are VertexCount long and index-aligned.
// Triangles wind counterclockwise seen from outside the cube, so back-face
// culling keeps exactly the outward side of each face.
func Cube() (positions, colors []mgl32.Vec3) {
	positions = make([]mgl32.Vec3, 0, VertexCount)
	colors = make([]mgl32.Vec3, 0, VertexCount)

	face := 0
	for axis := 0; axis < 3; axis++ {
		for _, sign := range [2]float32{1, -1} {
			// The face's own axis is fixed at sign, the next two axes
			// (cyclic) sweep the four corners of the square.
			u := (axis + 1) % 3
			v := (axis + 2) % 3
			corner := func(cu, cv float32) mgl32.Vec3 {
				var p mgl32.Vec3
				p[axis] = sign
				p[u] = cu
				p[v] = cv
				return p
			}
			a := corner(-1, -1)
			b := corner(1, -1)
			c := corner(1, 1)
			d := corner(-1, 1)

			// Mirroring one axis inverts handedness, so the negative face
			// of each axis winds in the opposite corner order.
			if sign > 0 {
				positions = append(positions, a, b, c, a, c, d)
			} else {
				positions = append(positions, a, c, b, a, d, c)
			}

			tint := rgb(facePalette[face])
			for i := 0; i < 6; i++ {
				colors = append(colors, tint)
			}
			face++
		}
	}
	return positions, colors
}

// Flatten lays vectors out as packed xyz float32 triples for buffer upload.
func Flatten(vectors []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vectors)*3)
	for _, v := range vectors {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}

func rgb(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
	}
}
