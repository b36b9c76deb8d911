package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// horizontalDistance is the distance between two points ignoring height.
func horizontalDistance(a, b rl.Vector3) float32 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

