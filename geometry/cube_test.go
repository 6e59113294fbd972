package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func assertTrue(t *testing.T, value bool, msg string) {
	if !value {
		t.Errorf(msg)
	}
}

func TestCubeVertexCount(t *testing.T) {
	positions, colors := Cube()
	assertTrue(t, len(positions) == VertexCount, "36 positions")
	assertTrue(t, len(colors) == VertexCount, "36 colors")
}

func TestCubeCoordinatesAreUnit(t *testing.T) {
	positions, _ := Cube()
	for _, p := range positions {
		for i := 0; i < 3; i++ {
			assertTrue(t, p[i] == 1 || p[i] == -1, "coordinate is exactly +1 or -1")
		}
	}
}

// faceAxis finds the axis on which all six vertices of a face agree, and the
// shared sign.
func faceAxis(t *testing.T, face []mgl32.Vec3) (axis int, sign float32) {
	for a := 0; a < 3; a++ {
		same := true
		for _, p := range face {
			if p[a] != face[0][a] {
				same = false
				break
			}
		}
		if same {
			return a, face[0][a]
		}
	}
	t.Fatalf("face has no constant axis")
	return 0, 0
}

func TestCubeWindingFacesOutward(t *testing.T) {
	positions, _ := Cube()
	for f := 0; f < 6; f++ {
		face := positions[f*6 : f*6+6]
		axis, sign := faceAxis(t, face)

		for _, tri := range [][]mgl32.Vec3{face[0:3], face[3:6]} {
			normal := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
			assertTrue(t, normal[axis]*sign > 0, "edge cross product points along the face sign")
			assertTrue(t, normal[(axis+1)%3] == 0, "normal has no tangential component")
			assertTrue(t, normal[(axis+2)%3] == 0, "normal has no tangential component")
		}
	}
}

func TestCubeFacesCoverTheirSquares(t *testing.T) {
	positions, _ := Cube()
	for f := 0; f < 6; f++ {
		face := positions[f*6 : f*6+6]

		corners := map[mgl32.Vec3]int{}
		for _, p := range face {
			corners[p]++
		}
		assertTrue(t, len(corners) == 4, "face uses exactly four corners")
		shared := 0
		for _, n := range corners {
			assertTrue(t, n == 1 || n == 2, "corner used once or twice")
			if n == 2 {
				shared++
			}
		}
		assertTrue(t, shared == 2, "the two triangles share the diagonal")
	}
}

func TestCubeFaceColors(t *testing.T) {
	_, colors := Cube()
	seen := map[mgl32.Vec3]bool{}
	for f := 0; f < 6; f++ {
		face := colors[f*6 : f*6+6]
		for _, c := range face {
			assertTrue(t, c == face[0], "color constant across the face")
		}
		assertTrue(t, face[0] != mgl32.Vec3{}, "face color is not black")
		assertTrue(t, !seen[face[0]], "face colors are distinct")
		seen[face[0]] = true
	}
}

func TestFlatten(t *testing.T) {
	flat := Flatten([]mgl32.Vec3{{1, 2, 3}, {4, 5, 6}})
	assertTrue(t, len(flat) == 6, "three floats per vector")
	for i, want := range []float32{1, 2, 3, 4, 5, 6} {
		assertTrue(t, flat[i] == want, "packed xyz order")
	}
}
