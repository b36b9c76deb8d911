package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HorizontalResolver moves actors across the ground plane against static geometry.
type HorizontalResolver struct {
	Geometry *Geometry
}

func NewHorizontalResolver(g *Geometry) *HorizontalResolver {
	return &HorizontalResolver{Geometry: g}
}

// Resolve returns where an actor with feet at pos ends up after trying to move by
// displacement (only X and Z are used). A blocked move is retried one axis at a time so
// the actor slides along walls instead of stopping dead.
func (r *HorizontalResolver) Resolve(pos, displacement rl.Vector3, body Body) rl.Vector3 {
	if displacement.X == 0 && displacement.Z == 0 {
		return pos
	}

	target := rl.Vector3{X: pos.X + displacement.X, Y: pos.Y, Z: pos.Z + displacement.Z}
	if !r.Blocked(target, body) {
		return target
	}

	alongX := rl.Vector3{X: target.X, Y: pos.Y, Z: pos.Z}
	alongZ := rl.Vector3{X: pos.X, Y: pos.Y, Z: target.Z}
	xOK := displacement.X != 0 && !r.Blocked(alongX, body)
	zOK := displacement.Z != 0 && !r.Blocked(alongZ, body)

	switch {
	case xOK && zOK:
		// Both slides are clear but the diagonal is not (an outside corner). Keep the
		// dominant axis so the actor does not re-enter the corner.
		if absf(displacement.X) >= absf(displacement.Z) {
			return alongX
		}
		return alongZ
	case xOK:
		return alongX
	case zOK:
		return alongZ
	}
	return pos
}

// Blocked reports whether a body standing at feet overlaps any shape it cannot walk over.
func (r *HorizontalResolver) Blocked(feet rl.Vector3, body Body) bool {
	box := body.Box(feet)
	reach := box.Bounds().Expand(groundEpsilon)
	for s := range r.Geometry.All() {
		if !reach.Intersects(s.Bounds()) {
			continue
		}
		if blocks(s, feet, box, body) {
			return true
		}
	}
	return false
}

func blocks(s Shape, feet rl.Vector3, box OBB, body Body) bool {
	if walkable(s, feet.Y, body.StepHeight) {
		return false
	}
	switch s.Kind {
	case KindBox:
		return box.IntersectsOBB(s.OBB())
	case KindWedge:
		if onRamp(s, feet.X, feet.Y, feet.Z) {
			return false
		}
		return box.IntersectsOBB(s.OBB())
	case KindCylinder:
		head := rl.Vector3{X: feet.X, Y: feet.Y + body.Height - groundEpsilon, Z: feet.Z}
		knee := rl.Vector3{X: feet.X, Y: feet.Y + body.StepHeight + groundEpsilon, Z: feet.Z}
		return CylinderLateralOverlap(feet, body.HalfWidth, s) ||
			CylinderLateralOverlap(knee, body.HalfWidth, s) ||
			CylinderLateralOverlap(head, body.HalfWidth, s)
	}
	return false
}
