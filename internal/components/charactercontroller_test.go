package components

import (
	"testing"

	"platformer/internal/engine"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const frame = float32(1.0 / 60)

type testWorld struct {
	geometry *physics.Geometry
	player   *engine.GameObject
}

func (w *testWorld) Geometry() *physics.Geometry { return w.geometry }

func (w *testWorld) Player() *engine.GameObject { return w.player }

func newTestScene(t *testing.T, shapes ...physics.Shape) *engine.Scene {
	t.Helper()
	g := physics.NewGeometry()
	if _, err := g.ReplaceAll(shapes); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	scene := engine.NewScene("Test")
	scene.World = &testWorld{geometry: g}
	return scene
}

func newTestActor(scene *engine.Scene, name string, pos rl.Vector3) (*engine.GameObject, *CharacterController) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	cc := NewCharacterController()
	obj.AddComponent(cc)
	scene.AddGameObject(obj)
	return obj, cc
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}

func TestCharacterControllerFallsAndLands(t *testing.T) {
	scene := newTestScene(t)
	obj, cc := newTestActor(scene, "Player", rl.Vector3{Y: 2})

	landings := 0
	cc.OnLanded.AddListener(func(e LandedEvent) {
		landings++
		if e.Object != obj {
			t.Error("LandedEvent should carry the landing object")
		}
		if e.ImpactSpeed <= 0 {
			t.Errorf("Expected a positive impact speed, got %f", e.ImpactSpeed)
		}
	})

	for i := 0; i < 120; i++ {
		cc.Move(rl.Vector3{}, false, frame)
	}

	if landings != 1 {
		t.Errorf("Expected exactly one landing, got %d", landings)
	}
	if !cc.IsGrounded() || obj.Transform.Position.Y != 0 {
		t.Errorf("Expected to rest on the floor, got y=%f grounded=%v", obj.Transform.Position.Y, cc.IsGrounded())
	}
}

func TestCharacterControllerJumpOnlyWhenGrounded(t *testing.T) {
	scene := newTestScene(t)
	obj, cc := newTestActor(scene, "Player", rl.Vector3{})

	cc.Move(rl.Vector3{}, false, frame) // settle
	if !cc.IsGrounded() {
		t.Fatal("Expected to be grounded on the floor")
	}

	res := cc.Move(rl.Vector3{}, true, frame)
	if res.Grounded || obj.Transform.Position.Y <= 0 {
		t.Fatalf("Expected to leave the ground, got %+v", res)
	}

	before := cc.VerticalVelocity()
	cc.Move(rl.Vector3{}, true, frame)
	if cc.VerticalVelocity() >= before {
		t.Errorf("Jumping mid-air should not add speed: %f -> %f", before, cc.VerticalVelocity())
	}
}

func TestCharacterControllerBlockedByWall(t *testing.T) {
	wall := physics.NewBox(rl.Vector3{X: 1.5, Y: 1, Z: 0}, rl.Vector3{X: 1, Y: 2, Z: 10}, rl.Vector3{})
	scene := newTestScene(t, wall)
	obj, cc := newTestActor(scene, "Player", rl.Vector3{})
	cc.Move(rl.Vector3{}, false, frame)

	var res MoveResult
	for i := 0; i < 60; i++ {
		res = cc.Move(rl.Vector3{X: 1}, false, frame)
	}

	if !res.Blocked {
		t.Error("Expected the wall to block the move")
	}
	if obj.Transform.Position.X+cc.Body.HalfWidth > 1+1e-3 {
		t.Errorf("Actor clipped into the wall: x=%f", obj.Transform.Position.X)
	}
}

func TestCharacterControllerStepsUp(t *testing.T) {
	ledge := physics.NewBox(rl.Vector3{X: 3, Y: 0.2, Z: 0}, rl.Vector3{X: 2, Y: 0.4, Z: 4}, rl.Vector3{})
	scene := newTestScene(t, ledge)
	obj, cc := newTestActor(scene, "Player", rl.Vector3{})
	cc.Move(rl.Vector3{}, false, frame)

	for i := 0; i < 40; i++ {
		cc.Move(rl.Vector3{X: 1}, false, frame)
	}

	if !cc.IsGrounded() || !near(obj.Transform.Position.Y, 0.4) {
		t.Errorf("Expected to stand on the ledge at 0.4, got y=%f grounded=%v", obj.Transform.Position.Y, cc.IsGrounded())
	}
}

func TestCharacterControllerCeiling(t *testing.T) {
	slab := physics.NewBox(rl.Vector3{Y: 3}, rl.Vector3{X: 4, Y: 1, Z: 4}, rl.Vector3{}) // underside 2.5
	scene := newTestScene(t, slab)
	obj, cc := newTestActor(scene, "Player", rl.Vector3{})
	cc.Move(rl.Vector3{}, false, frame)

	cc.Move(rl.Vector3{}, true, frame)
	for i := 0; i < 60; i++ {
		cc.Move(rl.Vector3{}, false, frame)
		if top := obj.Transform.Position.Y + cc.Body.Height; top > 2.5+1e-3 {
			t.Fatalf("frame %d: head at %f passed the ceiling", i, top)
		}
	}
}

func TestCharacterControllerFacesMoveDirection(t *testing.T) {
	scene := newTestScene(t)
	obj, cc := newTestActor(scene, "Player", rl.Vector3{})

	cc.Move(rl.Vector3{X: 3}, false, frame)

	if !near(obj.Transform.Rotation.Y, 90) {
		t.Errorf("Expected yaw 90, got %f", obj.Transform.Rotation.Y)
	}
	// Input longer than 1 is clamped to full speed
	if !near(obj.Transform.Position.X, cc.MoveSpeed*frame) {
		t.Errorf("Expected x=%f, got %f", cc.MoveSpeed*frame, obj.Transform.Position.X)
	}
}

func TestCharacterControllerDetached(t *testing.T) {
	cc := NewCharacterController()
	if res := cc.Move(rl.Vector3{X: 1}, true, frame); res != (MoveResult{}) {
		t.Errorf("Detached controller should not move, got %+v", res)
	}

	// Attached without a world: falls onto the default floor
	obj := engine.NewGameObject("Loose")
	obj.Transform.Position.Y = 0.1
	obj.AddComponent(cc)
	for i := 0; i < 10; i++ {
		cc.Move(rl.Vector3{}, false, frame)
	}
	if !cc.IsGrounded() {
		t.Error("Expected to land on the world floor")
	}
}
