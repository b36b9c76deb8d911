package components

import (
	"math"

	"platformer/internal/engine"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// emptyGeometry stands in when the controller is not attached to a world.
var emptyGeometry = physics.NewGeometry()

// LandedEvent is fired when an airborne actor touches the ground.
type LandedEvent struct {
	Object      *engine.GameObject
	Position    rl.Vector3
	ImpactSpeed float32 // downward speed just before landing
}

// MoveResult reports what one Move call did.
type MoveResult struct {
	Position rl.Vector3
	Grounded bool
	Landed   bool
	Blocked  bool // horizontal motion was cut short
}

// CharacterController moves an actor against the world's static geometry: horizontal
// motion with wall sliding and step-up, then gravity, jumping, landing and ceilings.
// Player and enemies share it; only the tuning differs.
type CharacterController struct {
	engine.BaseComponent

	Body         physics.Body
	MoveSpeed    float32 // units per second at full input
	Gravity      float32 // positive = down
	JumpStrength float32 // initial upward speed of a jump

	OnLanded engine.EventWithArg[LandedEvent]

	verticalVelocity float32
	grounded         bool
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Body:         physics.NewBody(0.4, 1.8),
		MoveSpeed:    5,
		Gravity:      20,
		JumpStrength: 8,
	}
}

// Move advances the actor by one frame. direction is the desired heading on the ground
// plane; its length is clamped to 1 so analog input can walk slower. jump only takes
// effect while grounded.
func (c *CharacterController) Move(direction rl.Vector3, jump bool, dt float32) MoveResult {
	g := c.GetGameObject()
	if g == nil {
		return MoveResult{}
	}
	geometry := worldGeometry(c.World())

	pos := g.Transform.Position
	dir := rl.Vector3{X: direction.X, Z: direction.Z}
	if l := rl.Vector3Length(dir); l > 1 {
		dir = rl.Vector3Scale(dir, 1/l)
	}
	displacement := rl.Vector3Scale(dir, c.MoveSpeed*dt)

	moved := physics.NewHorizontalResolver(geometry).Resolve(pos, displacement, c.Body)
	blocked := moved.X != pos.X+displacement.X || moved.Z != pos.Z+displacement.Z

	if jump && c.grounded {
		c.verticalVelocity = c.JumpStrength
		c.grounded = false
	}
	if !c.grounded {
		c.verticalVelocity -= c.Gravity * dt
	}
	impact := -c.verticalVelocity

	res := physics.NewGroundingResolver(geometry).ResolveVertical(moved, c.verticalVelocity, c.grounded, dt, c.Body)
	moved.Y = res.Y
	c.verticalVelocity = res.VerticalVelocity
	c.grounded = res.Grounded

	g.Transform.Position = moved
	if dir.X != 0 || dir.Z != 0 {
		g.Transform.Rotation.Y = float32(math.Atan2(float64(dir.X), float64(dir.Z))) * rl.Rad2deg
	}

	if res.Landed {
		c.OnLanded.Invoke(LandedEvent{Object: g, Position: moved, ImpactSpeed: impact})
	}

	return MoveResult{Position: moved, Grounded: res.Grounded, Landed: res.Landed, Blocked: blocked}
}

// Reset clears velocity and grounded state; the actor falls onto whatever is below.
func (c *CharacterController) Reset() {
	c.verticalVelocity = 0
	c.grounded = false
}

// IsGrounded returns whether the character is on the ground
func (c *CharacterController) IsGrounded() bool {
	return c.grounded
}

func (c *CharacterController) VerticalVelocity() float32 {
	return c.verticalVelocity
}

// worldGeometry returns the world's collision geometry, or an empty set when the
// component is not attached to a world.
func worldGeometry(w engine.WorldAccess) *physics.Geometry {
	if w == nil {
		return emptyGeometry
	}
	if geo := w.Geometry(); geo != nil {
		return geo
	}
	return emptyGeometry
}
