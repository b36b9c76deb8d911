package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const testEpsilon = 1e-4

func approx(a, b float32) bool {
	return absf(a-b) <= testEpsilon
}

func vec(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func newTestGeometry(t *testing.T, shapes ...Shape) *Geometry {
	t.Helper()
	g := NewGeometry()
	for _, s := range shapes {
		if _, err := g.Register(s); err != nil {
			t.Fatalf("Register(%v) failed: %v", s, err)
		}
	}
	return g
}
