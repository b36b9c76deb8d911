package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Shape    Shape
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast checks for intersection with all registered shapes and returns the closest hit.
// Wedges are treated as their bounding box.
func (g *Geometry) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for s := range g.All() {
		var hitInfo RaycastHit
		var ok bool
		switch s.Kind {
		case KindBox, KindWedge:
			hitInfo, ok = raycastOBB(origin, direction, s.OBB(), maxDistance)
		case KindCylinder:
			hitInfo, ok = raycastCylinder(origin, direction, s, maxDistance)
		}
		if ok && hitInfo.Distance < closestHit.Distance {
			closestHit = hitInfo
			closestHit.Shape = s
			hit = true
		}
	}

	return closestHit, hit
}

// raycastOBB runs the slab test in the box's local frame.
func raycastOBB(origin, direction rl.Vector3, o OBB, maxDistance float32) (RaycastHit, bool) {
	lo := o.ToLocal(origin)
	ld := rl.Vector3{
		X: rl.Vector3DotProduct(direction, o.Axes[0]),
		Y: rl.Vector3DotProduct(direction, o.Axes[1]),
		Z: rl.Vector3DotProduct(direction, o.Axes[2]),
	}
	origins := [3]float32{lo.X, lo.Y, lo.Z}
	dirs := [3]float32{ld.X, ld.Y, ld.Z}
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	enterAxis, enterSign := 0, float32(-1)

	for i := 0; i < 3; i++ {
		if dirs[i] == 0 {
			if origins[i] < -half[i] || origins[i] > half[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-half[i] - origins[i]) / dirs[i]
		t2 := (half[i] - origins[i]) / dirs[i]
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis, enterSign = i, sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Scale(o.Axes[enterAxis], enterSign)

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// raycastCylinder intersects the vertical side and the two caps.
func raycastCylinder(origin, direction rl.Vector3, s Shape, maxDistance float32) (RaycastHit, bool) {
	bottom := s.Position.Y - s.Height/2
	top := s.Position.Y + s.Height/2
	best := maxDistance
	var bestHit RaycastHit
	found := false

	// Side: solve |(o + t*d) - c|^2 = r^2 on the XZ plane
	ox := origin.X - s.Position.X
	oz := origin.Z - s.Position.Z
	a := direction.X*direction.X + direction.Z*direction.Z
	if a > 0 {
		b := 2 * (ox*direction.X + oz*direction.Z)
		c := ox*ox + oz*oz - s.Radius*s.Radius
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := float32(math.Sqrt(float64(disc)))
			for _, t := range [2]float32{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if t < 0 || t > best {
					continue
				}
				p := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
				if p.Y < bottom || p.Y > top {
					continue
				}
				n := rl.Vector3Normalize(rl.Vector3{X: p.X - s.Position.X, Z: p.Z - s.Position.Z})
				best = t
				bestHit = RaycastHit{Point: p, Normal: n, Distance: t}
				found = true
				break
			}
		}
	}

	// Caps
	if direction.Y != 0 {
		for _, face := range [2]struct {
			y float32
			n float32
		}{{top, 1}, {bottom, -1}} {
			t := (face.y - origin.Y) / direction.Y
			if t < 0 || t > best {
				continue
			}
			p := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
			if horizontalDistance(p, s.Position) > s.Radius {
				continue
			}
			best = t
			bestHit = RaycastHit{Point: p, Normal: rl.Vector3{Y: face.n}, Distance: t}
			found = true
		}
	}

	return bestHit, found
}
