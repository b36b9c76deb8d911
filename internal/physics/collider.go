package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultStepHeight is the tallest ledge an actor climbs without jumping.
	DefaultStepHeight float32 = 0.5

	// Wedge ground band around the ramp surface. Loose on purpose: a fast actor on a
	// steep ramp at a low frame rate must not fall through.
	wedgeBandBelow float32 = 1.0
	wedgeBandAbove float32 = 0.5

	// Walking up a ramp is never blocked while the feet are this close to its surface.
	wedgeWalkBand float32 = 0.5

	// A standable cylinder catches probes up to this far below its top.
	cylinderStandBand float32 = 1.0

	groundEpsilon float32 = 1e-3
)

// PointInsideOrientedBox reports whether point lies inside the shape's local box.
// For cylinders the test is against the vertical cylinder itself.
func PointInsideOrientedBox(point rl.Vector3, s Shape) bool {
	switch s.Kind {
	case KindBox, KindWedge:
		return s.OBB().ContainsPoint(point)
	case KindCylinder:
		half := s.Height / 2
		return horizontalDistance(point, s.Position) <= s.Radius &&
			point.Y >= s.Position.Y-half && point.Y <= s.Position.Y+half
	}
	return false
}

// GroundHeightUnderPoint returns the world height of the surface of s that supports
// a probe at point (the actor's feet), with the footprint padded by halfWidth.
//
// Box: the probe must not be below the box's bottom face. The top face height is
// returned at the probe's local (x, z), clamped into the footprint.
// Wedge: the probe must lie within [ramp-1, ramp+0.5] of the ramp surface.
// Cylinder: only when Standable; probe within the radius and no more than 1 unit below the top.
func GroundHeightUnderPoint(point rl.Vector3, halfWidth float32, s Shape) (float32, bool) {
	switch s.Kind {
	case KindBox:
		o := s.OBB()
		l := o.ToLocal(point)
		if !insideFootprint(o, l, halfWidth) {
			return 0, false
		}
		if l.Y < -o.HalfSize.Y-groundEpsilon {
			return 0, false
		}
		top := rl.Vector3{
			X: clamp(l.X, -o.HalfSize.X, o.HalfSize.X),
			Y: o.HalfSize.Y,
			Z: clamp(l.Z, -o.HalfSize.Z, o.HalfSize.Z),
		}
		return o.WorldY(top), true

	case KindWedge:
		o := s.OBB()
		l := o.ToLocal(point)
		if !insideFootprint(o, l, halfWidth) {
			return 0, false
		}
		ramp := rampHeight(o, l)
		if point.Y < ramp-wedgeBandBelow || point.Y > ramp+wedgeBandAbove {
			return 0, false
		}
		return ramp, true

	case KindCylinder:
		if !s.Standable {
			return 0, false
		}
		top := s.Position.Y + s.Height/2
		if horizontalDistance(point, s.Position) >= s.Radius {
			return 0, false
		}
		if point.Y < top-cylinderStandBand {
			return 0, false
		}
		return top, true
	}
	return 0, false
}

// CeilingHeightAbovePoint returns the world height of the underside of a Box or Wedge
// that lies strictly above point and no more than reach above it.
// Cylinders never act as ceilings.
func CeilingHeightAbovePoint(point rl.Vector3, halfWidth, reach float32, s Shape) (float32, bool) {
	switch s.Kind {
	case KindBox, KindWedge:
		o := s.OBB()
		l := o.ToLocal(point)
		if !insideFootprint(o, l, halfWidth) {
			return 0, false
		}
		underside := o.WorldY(rl.Vector3{
			X: clamp(l.X, -o.HalfSize.X, o.HalfSize.X),
			Y: -o.HalfSize.Y,
			Z: clamp(l.Z, -o.HalfSize.Z, o.HalfSize.Z),
		})
		if underside <= point.Y+groundEpsilon || underside-point.Y > reach {
			return 0, false
		}
		return underside, true
	case KindCylinder:
		return 0, false
	}
	return 0, false
}

// CylinderLateralOverlap reports whether a body of the given radius centered at point
// overlaps a cylinder: horizontal distance below the summed radii and point.Y inside
// the cylinder's vertical span.
func CylinderLateralOverlap(point rl.Vector3, radius float32, s Shape) bool {
	if s.Kind != KindCylinder {
		return false
	}
	half := s.Height / 2
	if point.Y < s.Position.Y-half || point.Y > s.Position.Y+half {
		return false
	}
	return horizontalDistance(point, s.Position) < s.Radius+radius
}

// SphereOverlap is the pathfinder's collision probe: closest point on the box within
// radius for Box/Wedge, radial distance plus a vertical band for Cylinder.
func SphereOverlap(point rl.Vector3, radius float32, s Shape) bool {
	switch s.Kind {
	case KindBox, KindWedge:
		return s.OBB().IntersectsSphere(point, radius)
	case KindCylinder:
		half := s.Height / 2
		if point.Y <= s.Position.Y-half-radius || point.Y >= s.Position.Y+half+radius {
			return false
		}
		return horizontalDistance(point, s.Position) < s.Radius+radius
	}
	return false
}

// WedgeSurfaceHeight returns the ramp surface height of a wedge under (x, z), with the
// local position clamped into the wedge footprint. ok is false for non-wedges.
func WedgeSurfaceHeight(s Shape, x, z float32) (height float32, ok bool) {
	if s.Kind != KindWedge {
		return 0, false
	}
	o := s.OBB()
	l := o.ToLocal(rl.Vector3{X: x, Y: s.Position.Y, Z: z})
	return rampHeight(o, l), true
}

// walkable reports whether s is low enough, relative to feet, for the actor to step over it.
func walkable(s Shape, feet, stepHeight float32) bool {
	return s.Top() <= feet+stepHeight+groundEpsilon
}

// onRamp reports whether feet are close enough to a wedge's surface under (x, z) that the
// actor is walking on the ramp rather than into its side.
func onRamp(s Shape, x, feet, z float32) bool {
	ramp, ok := WedgeSurfaceHeight(s, x, z)
	return ok && absf(feet-ramp) <= wedgeWalkBand
}

func insideFootprint(o OBB, local rl.Vector3, pad float32) bool {
	return absf(local.X) <= o.HalfSize.X+pad && absf(local.Z) <= o.HalfSize.Z+pad
}

// rampHeight is the world y of the ramp surface above a local-frame point.
func rampHeight(o OBB, local rl.Vector3) float32 {
	lz := clamp(local.Z, -o.HalfSize.Z, o.HalfSize.Z)
	t := (lz + o.HalfSize.Z) / (2 * o.HalfSize.Z)
	return o.WorldY(rl.Vector3{
		X: clamp(local.X, -o.HalfSize.X, o.HalfSize.X),
		Y: -o.HalfSize.Y + 2*o.HalfSize.Y*t,
		Z: lz,
	})
}
