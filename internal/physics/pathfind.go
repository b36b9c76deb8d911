package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	pathSampleStep float32 = 0.5 // distance between collision samples along a path
	deflectBlend   float32 = 0.5 // weight of the perpendicular in a deflected direction
	probeDistance  float32 = 2   // how far ahead deflected directions are tested
)

// Pathfinder steers actors toward a target around static geometry. It is a reactive
// local-avoidance heuristic with no path state: try the straight line, then a left and
// a right deflection, then sidestep.
type Pathfinder struct {
	Geometry   *Geometry
	StepHeight float32
}

func NewPathfinder(g *Geometry) *Pathfinder {
	return &Pathfinder{Geometry: g, StepHeight: DefaultStepHeight}
}

// FindDirection returns a unit direction for an actor of the given radius at start to
// move toward target. When start and target coincide the zero vector is returned.
//
// If everything is blocked the bare perpendicular is returned. It may still collide;
// the horizontal resolver stops the actor in that case.
func (p *Pathfinder) FindDirection(start, target rl.Vector3, radius float32) rl.Vector3 {
	direct := rl.Vector3Normalize(rl.Vector3Subtract(target, start))
	if !p.IsPathBlocked(start, target, radius) {
		return direct
	}

	perpendicular := rl.Vector3{X: -direct.Z, Y: 0, Z: direct.X}
	left := rl.Vector3Normalize(rl.Vector3Add(direct, rl.Vector3Scale(perpendicular, deflectBlend)))
	right := rl.Vector3Normalize(rl.Vector3Subtract(direct, rl.Vector3Scale(perpendicular, deflectBlend)))

	for _, candidate := range [2]rl.Vector3{left, right} {
		ahead := rl.Vector3Add(start, rl.Vector3Scale(candidate, probeDistance))
		if !p.IsPathBlocked(start, ahead, radius) {
			return candidate
		}
	}

	return perpendicular
}

// IsPathBlocked samples the segment a->b every half unit, plus the endpoint, and reports
// whether a sphere of the given radius at any sample touches a shape. The start point is
// not sampled, so an actor already pressed against a wall can still move away from it.
func (p *Pathfinder) IsPathBlocked(a, b rl.Vector3, radius float32) bool {
	delta := rl.Vector3Subtract(b, a)
	dist := rl.Vector3Length(delta)
	if dist == 0 {
		return false
	}
	dir := rl.Vector3Scale(delta, 1/dist)

	steps := int(dist / pathSampleStep)
	for i := 1; i <= steps; i++ {
		d := float32(i) * pathSampleStep
		if d >= dist {
			break
		}
		if p.CheckCollision(rl.Vector3Add(a, rl.Vector3Scale(dir, d)), radius) {
			return true
		}
	}
	return p.CheckCollision(b, radius)
}

// CheckCollision reports whether a sphere at point touches any shape the actor could not
// walk over from that height.
func (p *Pathfinder) CheckCollision(point rl.Vector3, radius float32) bool {
	reach := NewAABBFromCenter(point, rl.Vector3{X: 2 * radius, Y: 2 * radius, Z: 2 * radius})
	for s := range p.Geometry.All() {
		if !reach.Intersects(s.Bounds()) {
			continue
		}
		if walkable(s, point.Y, p.StepHeight) {
			continue
		}
		if s.Kind == KindWedge && onRamp(s, point.X, point.Y, point.Z) {
			continue
		}
		if SphereOverlap(point, radius, s) {
			return true
		}
	}
	return false
}
