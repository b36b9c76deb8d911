package physics

import (
	"errors"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrMalformedShape is returned when a shape has a non-positive or non-finite extent,
// or a non-finite position/rotation.
var ErrMalformedShape = errors.New("malformed shape")

// Kind identifies the hitbox variant of a Shape.
type Kind uint8

const (
	KindBox Kind = iota
	KindCylinder
	KindWedge
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindWedge:
		return "wedge"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a level-file name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "box":
		return KindBox, nil
	case "cylinder":
		return KindCylinder, nil
	case "wedge", "ramp":
		return KindWedge, nil
	}
	return 0, fmt.Errorf("unknown shape kind %q", name)
}

// Shape is a static collidable obstacle.
//
// Position is the center of the shape's local box (for cylinders, the center of the axis).
// Rotation is Euler degrees applied X, then Y, then Z. Cylinders are always vertical and
// ignore Rotation. Box and Wedge use Size {width, height, depth}; Cylinder uses Radius and Height.
//
// A wedge is a ramp whose surface rises linearly along local +Z, from the bottom face at
// local z = -depth/2 up to the full height at local z = +depth/2.
type Shape struct {
	Kind      Kind
	Position  rl.Vector3
	Rotation  rl.Vector3
	Size      rl.Vector3
	Radius    float32
	Height    float32
	Standable bool
}

func NewBox(position, size, rotation rl.Vector3) Shape {
	return Shape{Kind: KindBox, Position: position, Size: size, Rotation: rotation}
}

func NewWedge(position, size, rotation rl.Vector3) Shape {
	return Shape{Kind: KindWedge, Position: position, Size: size, Rotation: rotation}
}

func NewCylinder(position rl.Vector3, radius, height float32, standable bool) Shape {
	return Shape{Kind: KindCylinder, Position: position, Radius: radius, Height: height, Standable: standable}
}

// ValidateShape rejects shapes that would make the resolvers misbehave silently.
func ValidateShape(s Shape) error {
	if !finiteVec(s.Position) {
		return fmt.Errorf("%w: %s position %v is not finite", ErrMalformedShape, s.Kind, s.Position)
	}
	switch s.Kind {
	case KindBox, KindWedge:
		if !finiteVec(s.Rotation) {
			return fmt.Errorf("%w: %s rotation %v is not finite", ErrMalformedShape, s.Kind, s.Rotation)
		}
		if !positive(s.Size.X) || !positive(s.Size.Y) || !positive(s.Size.Z) {
			return fmt.Errorf("%w: %s size %v must be positive", ErrMalformedShape, s.Kind, s.Size)
		}
	case KindCylinder:
		if !positive(s.Radius) || !positive(s.Height) {
			return fmt.Errorf("%w: cylinder radius %v and height %v must be positive", ErrMalformedShape, s.Radius, s.Height)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrMalformedShape, uint8(s.Kind))
	}
	return nil
}

// OBB returns the oriented box enclosing a Box or Wedge. Cylinders get their axis-aligned bounding box.
func (s Shape) OBB() OBB {
	if s.Kind == KindCylinder {
		return NewAABBasOBB(s.Position, rl.Vector3{X: s.Radius * 2, Y: s.Height, Z: s.Radius * 2})
	}
	return NewOBB(s.Position, s.Size, s.Rotation)
}

// Bounds returns the world-space axis-aligned bounds of the shape.
func (s Shape) Bounds() AABB {
	return s.OBB().Bounds()
}

// Top is the highest world y the shape reaches.
func (s Shape) Top() float32 {
	return s.Bounds().Max.Y
}

// Bottom is the lowest world y the shape reaches.
func (s Shape) Bottom() float32 {
	return s.Bounds().Min.Y
}

func finiteVec(v rl.Vector3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func positive(f float32) bool {
	return finite(f) && f > 0
}
