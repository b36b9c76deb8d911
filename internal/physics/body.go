package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Body is an actor's collision approximation: an upright box of side 2*HalfWidth and
// the given Height, standing on its feet position.
type Body struct {
	HalfWidth  float32
	Height     float32
	StepHeight float32
}

func NewBody(halfWidth, height float32) Body {
	return Body{
		HalfWidth:  halfWidth,
		Height:     height,
		StepHeight: DefaultStepHeight,
	}
}

// Box returns the body's box with its feet at the given position.
func (b Body) Box(feet rl.Vector3) OBB {
	center := rl.Vector3{X: feet.X, Y: feet.Y + b.Height/2, Z: feet.Z}
	return NewAABBasOBB(center, rl.Vector3{X: b.HalfWidth * 2, Y: b.Height, Z: b.HalfWidth * 2})
}
