package camera

import (
	"testing"

	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}

func TestSnapBehindTarget(t *testing.T) {
	c := New(8)
	c.Snap(rl.Vector3{X: 1, Z: 2}, nil)

	pos := c.Position()
	if !near(pos.X, 1) || !near(pos.Y, 3) || !near(pos.Z, -6) {
		t.Errorf("Expected (1, 3, -6), got %v", pos)
	}

	cam := c.GetRaylibCamera()
	if !near(cam.Target.Y, 1) || !near(cam.Target.Z, 2) {
		t.Errorf("Expected to look at (1, 1, 2), got %v", cam.Target)
	}
}

func TestDirectionsFollowYaw(t *testing.T) {
	c := New(8)

	if f := c.Forward(); !near(f.Z, 1) || !near(f.X, 0) {
		t.Errorf("Expected +Z forward at yaw 0, got %v", f)
	}
	if r := c.Right(); !near(r.X, -1) {
		t.Errorf("Expected -X right at yaw 0, got %v", r)
	}

	c.Yaw = 90
	if f := c.Forward(); !near(f.X, 1) || !near(f.Z, 0) {
		t.Errorf("Expected +X forward at yaw 90, got %v", f)
	}
	if r := c.Right(); !near(r.Z, 1) {
		t.Errorf("Expected +Z right at yaw 90, got %v", r)
	}
}

func TestOrbit(t *testing.T) {
	c := New(8)
	c.LookSpeed = 0.5
	c.Orbit(-20)

	if !near(c.Yaw, 10) {
		t.Errorf("Expected yaw 10, got %f", c.Yaw)
	}
}

func TestOccludedCameraPullsIn(t *testing.T) {
	g := physics.NewGeometry()
	if _, err := g.Register(physics.NewBox(rl.Vector3{Y: 2, Z: -4}, rl.Vector3{X: 10, Y: 10, Z: 1}, rl.Vector3{})); err != nil {
		t.Fatal(err)
	}

	c := New(8)
	c.Snap(rl.Vector3{}, g)

	pos := c.Position()
	if pos.Z < -3.5 {
		t.Errorf("Camera should stay in front of the wall at z=-3.5, got %v", pos)
	}
	if pos.Z >= 0 {
		t.Errorf("Camera should still be behind the target, got %v", pos)
	}
}

func TestUpdateSmoothing(t *testing.T) {
	c := New(8)
	c.Snap(rl.Vector3{}, nil)

	c.Update(rl.Vector3{X: 10}, nil, 1.0/60)
	if x := c.Position().X; x <= 0 || x >= 10 {
		t.Errorf("Expected a partial move toward x=10, got %f", x)
	}

	c.Smoothing = 0
	c.Update(rl.Vector3{X: 10}, nil, 1.0/60)
	if !near(c.Position().X, 10) {
		t.Errorf("Expected to snap with smoothing off, got %f", c.Position().X)
	}
}
