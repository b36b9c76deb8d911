package components

import (
	"platformer/internal/engine"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// EnemyChaser steers its object's CharacterController toward a target around static
// geometry. The object must also carry a CharacterController.
type EnemyChaser struct {
	engine.BaseComponent

	Target      engine.GameObjectRef
	Speed       float32 // overrides the controller's MoveSpeed when > 0
	CatchRadius float32

	controller *CharacterController
	direction  rl.Vector3
}

func NewEnemyChaser(target *engine.GameObject, speed, catchRadius float32) *EnemyChaser {
	return &EnemyChaser{
		Target:      engine.RefTo(target),
		Speed:       speed,
		CatchRadius: catchRadius,
	}
}

func (e *EnemyChaser) Start() {
	e.controller = engine.GetComponent[*CharacterController](e.GetGameObject())
	if e.controller != nil && e.Speed > 0 {
		e.controller.MoveSpeed = e.Speed
	}
}

func (e *EnemyChaser) Update(deltaTime float32) {
	if e.controller == nil {
		return
	}
	target := e.target()
	if target == nil {
		e.direction = rl.Vector3{}
		e.controller.Move(rl.Vector3{}, false, deltaTime)
		return
	}

	start := e.GetGameObject().Transform.Position
	// Chase on the ground plane; height differences are for the resolvers
	goal := rl.Vector3{X: target.Transform.Position.X, Y: start.Y, Z: target.Transform.Position.Z}

	pf := physics.NewPathfinder(worldGeometry(e.World()))
	pf.StepHeight = e.controller.Body.StepHeight
	e.direction = pf.FindDirection(start, goal, e.controller.Body.HalfWidth)

	e.controller.Move(e.direction, false, deltaTime)
}

// IsCatching reports whether the target is within CatchRadius.
func (e *EnemyChaser) IsCatching() bool {
	target := e.target()
	if target == nil {
		return false
	}
	d := rl.Vector3Distance(e.GetGameObject().Transform.Position, target.Transform.Position)
	return d < e.CatchRadius
}

// Direction is the heading chosen on the last Update.
func (e *EnemyChaser) Direction() rl.Vector3 {
	return e.direction
}

func (e *EnemyChaser) Reset() {
	e.direction = rl.Vector3{}
}

func (e *EnemyChaser) target() *engine.GameObject {
	g := e.GetGameObject()
	if g == nil {
		return nil
	}
	return e.Target.Get(g.Scene)
}
