package engine

import "platformer/internal/physics"

// WorldAccess provides components with access to world-level state
// without importing the world package.
type WorldAccess interface {
	Geometry() *physics.Geometry
	Player() *GameObject
}
