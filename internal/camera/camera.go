package camera

import (
	"math"

	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	minDistance   float32 = 0.5 // never closer to the look point than this
	wallClearance float32 = 0.2 // gap kept between the camera and an occluding shape
)

// FollowCamera is a third-person camera orbiting behind a target. Geometry between the
// target and the camera pulls it in so the target stays visible.
type FollowCamera struct {
	Distance   float32 // from the look point, before occlusion
	Height     float32 // above the target's feet
	LookHeight float32 // look point above the target's feet
	Yaw        float32 // degrees; 0 looks along +Z
	LookSpeed  float32 // degrees per pixel of mouse movement
	Smoothing  float32 // 0 snaps; larger follows faster

	position rl.Vector3
	target   rl.Vector3
}

func New(distance float32) *FollowCamera {
	return &FollowCamera{
		Distance:   distance,
		Height:     3,
		LookHeight: 1,
		LookSpeed:  0.3,
		Smoothing:  10,
	}
}

// Orbit turns the camera around the target by a mouse delta in pixels.
func (c *FollowCamera) Orbit(dx float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw-dx*c.LookSpeed), 360))
}

// Forward is the camera's heading on the ground plane.
func (c *FollowCamera) Forward() rl.Vector3 {
	yaw := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{X: float32(math.Sin(yaw)), Z: float32(math.Cos(yaw))}
}

// Right is the screen-right direction on the ground plane.
func (c *FollowCamera) Right() rl.Vector3 {
	yaw := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{X: float32(-math.Cos(yaw)), Z: float32(math.Sin(yaw))}
}

// Update moves the camera toward its spot behind feet, pulled in front of any shape in
// geometry that would hide the target. geometry may be nil.
func (c *FollowCamera) Update(feet rl.Vector3, geometry *physics.Geometry, deltaTime float32) {
	desired := c.desired(feet, geometry)
	c.target = c.lookPoint(feet)

	if c.Smoothing <= 0 {
		c.position = desired
		return
	}
	t := 1 - float32(math.Exp(float64(-c.Smoothing*deltaTime)))
	c.position = rl.Vector3Lerp(c.position, desired, t)
}

// Snap places the camera at its spot immediately, as after a level load.
func (c *FollowCamera) Snap(feet rl.Vector3, geometry *physics.Geometry) {
	c.position = c.desired(feet, geometry)
	c.target = c.lookPoint(feet)
}

func (c *FollowCamera) Position() rl.Vector3 {
	return c.position
}

func (c *FollowCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.position,
		Target:     c.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (c *FollowCamera) lookPoint(feet rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: feet.X, Y: feet.Y + c.LookHeight, Z: feet.Z}
}

func (c *FollowCamera) desired(feet rl.Vector3, geometry *physics.Geometry) rl.Vector3 {
	look := c.lookPoint(feet)
	back := rl.Vector3Scale(c.Forward(), -c.Distance)
	spot := rl.Vector3{X: feet.X + back.X, Y: feet.Y + c.Height, Z: feet.Z + back.Z}

	if geometry == nil {
		return spot
	}
	offset := rl.Vector3Subtract(spot, look)
	full := rl.Vector3Length(offset)
	if full == 0 {
		return spot
	}
	hit, ok := geometry.Raycast(look, offset, full)
	if !ok {
		return spot
	}
	d := hit.Distance - wallClearance
	if d < minDistance {
		d = minDistance
	}
	return rl.Vector3Add(look, rl.Vector3Scale(offset, d/full))
}
