package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ceilingBand is how far past the actor's head ceilings are looked for.
const ceilingBand float32 = 0.5

// VerticalResult is the outcome of one vertical resolution step.
type VerticalResult struct {
	Y                float32
	VerticalVelocity float32
	Grounded         bool
	Landed           bool // airborne last frame, grounded now
}

// GroundingResolver finds support heights and ceilings under and over an actor.
type GroundingResolver struct {
	Geometry *Geometry
}

func NewGroundingResolver(g *Geometry) *GroundingResolver {
	return &GroundingResolver{Geometry: g}
}

// StandingGroundHeight returns the highest surface under the feet at pos. The world
// floor at y=0 is the fallback.
//
// Box tops more than one step above the feet are skipped: the padded footprint reaches
// walls beside the actor. Ramps and standable cylinders keep their own tolerance bands.
func (r *GroundingResolver) StandingGroundHeight(pos rl.Vector3, body Body) float32 {
	best := float32(0)
	limit := pos.Y + body.StepHeight + groundEpsilon
	for s := range r.Geometry.All() {
		h, ok := GroundHeightUnderPoint(pos, body.HalfWidth, s)
		if !ok || (s.Kind == KindBox && h > limit) {
			continue
		}
		if h > best {
			best = h
		}
	}
	return best
}

// LowestCeiling returns the lowest underside strictly above the feet at pos and within
// reach of them, or +Inf when nothing is overhead.
func (r *GroundingResolver) LowestCeiling(pos rl.Vector3, body Body, reach float32) float32 {
	lowest := float32(math.Inf(1))
	for s := range r.Geometry.All() {
		h, ok := CeilingHeightAbovePoint(pos, body.HalfWidth, reach, s)
		if ok && h < lowest {
			lowest = h
		}
	}
	return lowest
}

// ResolveVertical integrates one frame of vertical motion for an actor whose feet are at
// pos, moving at verticalVelocity (positive is up) for dt seconds.
//
// Falling actors snap onto the ground when they would pass through it. Rising actors are
// clamped so their head touches the lowest ceiling. A grounded actor at rest follows the
// ground up or down by at most one step, and starts falling past that.
func (r *GroundingResolver) ResolveVertical(pos rl.Vector3, verticalVelocity float32, grounded bool, dt float32, body Body) VerticalResult {
	next := pos.Y + verticalVelocity*dt

	switch {
	case verticalVelocity > 0:
		reach := body.Height + (next - pos.Y) + ceilingBand
		ceiling := r.LowestCeiling(pos, body, reach)
		if next+body.Height >= ceiling {
			return VerticalResult{Y: ceiling - body.Height, VerticalVelocity: 0, Grounded: false}
		}
		return VerticalResult{Y: next, VerticalVelocity: verticalVelocity, Grounded: false}

	case verticalVelocity == 0 && grounded:
		best := r.StandingGroundHeight(pos, body)
		if best >= pos.Y-body.StepHeight-groundEpsilon {
			return VerticalResult{Y: best, VerticalVelocity: 0, Grounded: true}
		}
		// Walked off a ledge
		return VerticalResult{Y: pos.Y, VerticalVelocity: 0, Grounded: false}

	default:
		// Falling, or hanging at the apex of a jump
		best := r.StandingGroundHeight(pos, body)
		if next <= best {
			return VerticalResult{Y: best, VerticalVelocity: 0, Grounded: true, Landed: !grounded}
		}
		return VerticalResult{Y: next, VerticalVelocity: verticalVelocity, Grounded: false}
	}
}
