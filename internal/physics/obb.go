package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// overlapEpsilon keeps touching faces from counting as an overlap, so an actor
// resting flush against a wall can still slide along it.
const overlapEpsilon = 1e-4

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	if rotation.X == 0 && rotation.Y == 0 && rotation.Z == 0 {
		return NewAABBasOBB(center, size)
	}

	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	// X, then Y, then Z
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes:     axes,
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes: [3]rl.Vector3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
	}
}

// ToLocal transforms a world-space point into the box's local frame.
func (o OBB) ToLocal(point rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(point, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// ToWorld transforms a local-frame point back into world space.
func (o OBB) ToWorld(local rl.Vector3) rl.Vector3 {
	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], local.X))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], local.Y))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], local.Z))
	return result
}

// WorldY is the world height of a local-frame point. Cheaper than ToWorld when only y matters.
func (o OBB) WorldY(local rl.Vector3) float32 {
	return o.Center.Y + o.Axes[0].Y*local.X + o.Axes[1].Y*local.Y + o.Axes[2].Y*local.Z
}

// ContainsPoint reports whether a world point lies inside the box (faces inclusive).
func (o OBB) ContainsPoint(point rl.Vector3) bool {
	l := o.ToLocal(point)
	return absf(l.X) <= o.HalfSize.X && absf(l.Y) <= o.HalfSize.Y && absf(l.Z) <= o.HalfSize.Z
}

// Bounds returns the world-space AABB enclosing the box.
func (o OBB) Bounds() AABB {
	ext := rl.Vector3{}
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}
	for i, axis := range o.Axes {
		ext.X += absf(axis.X) * half[i]
		ext.Y += absf(axis.Y) * half[i]
		ext.Z += absf(axis.Z) * half[i]
	}
	return AABB{
		Min: rl.Vector3Subtract(o.Center, ext),
		Max: rl.Vector3Add(o.Center, ext),
	}
}

// IntersectsOBB tests if two OBBs overlap using the Separating Axis Theorem.
// Boxes that only touch are not considered intersecting.
func (a OBB) IntersectsOBB(b OBB) bool {
	// Vector from A's center to B's center
	t := rl.Vector3Subtract(b.Center, a.Center)

	// 3 face normals from A, 3 from B, 9 edge cross products
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, a.Axes[i], t) {
			return false
		}
	}

	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, b.Axes[i], t) {
			return false
		}
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			// Skip near-zero axes (parallel edges)
			if rl.Vector3Length(axis) > 0.0001 {
				axis = rl.Vector3Normalize(axis)
				if !overlapOnAxis(a, b, axis, t) {
					return false
				}
			}
		}
	}

	return true
}

// overlapOnAxis checks if two OBBs overlap when projected onto a given axis
func overlapOnAxis(a, b OBB, axis, t rl.Vector3) bool {
	aProjection := a.HalfSize.X*absf(rl.Vector3DotProduct(a.Axes[0], axis)) +
		a.HalfSize.Y*absf(rl.Vector3DotProduct(a.Axes[1], axis)) +
		a.HalfSize.Z*absf(rl.Vector3DotProduct(a.Axes[2], axis))

	bProjection := b.HalfSize.X*absf(rl.Vector3DotProduct(b.Axes[0], axis)) +
		b.HalfSize.Y*absf(rl.Vector3DotProduct(b.Axes[1], axis)) +
		b.HalfSize.Z*absf(rl.Vector3DotProduct(b.Axes[2], axis))

	distance := absf(rl.Vector3DotProduct(t, axis))

	return distance < aProjection+bProjection-overlapEpsilon
}

// IntersectsSphere tests if an OBB intersects with a sphere. Grazing contact does not count.
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	d := rl.Vector3Subtract(center, ClosestPointOnOBB(o, center))
	return rl.Vector3DotProduct(d, d) < radius*radius
}

// ClosestPointOnOBB returns the closest point on (or inside) the OBB to the given point
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	local := o.ToLocal(point)
	return o.ToWorld(rl.Vector3{
		X: clamp(local.X, -o.HalfSize.X, o.HalfSize.X),
		Y: clamp(local.Y, -o.HalfSize.Y, o.HalfSize.Y),
		Z: clamp(local.Z, -o.HalfSize.Z, o.HalfSize.Z),
	})
}
