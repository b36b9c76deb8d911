package world

import (
	"fmt"
	"log"

	"platformer/internal/components"
	"platformer/internal/engine"
	"platformer/internal/level"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PlayerTag = "player"
	EnemyTag  = "enemy"
)

// PlayerInput is one frame of player intent.
type PlayerInput struct {
	Move rl.Vector3 // heading on the ground plane, length <= 1
	Jump bool
}

// CaptureEvent is fired when an enemy gets within its catch radius of the player.
type CaptureEvent struct {
	Enemy    *engine.GameObject
	Player   *engine.GameObject
	Position rl.Vector3 // player's feet when caught
}

// ExitEvent is fired once when the player reaches the level's exit.
type ExitEvent struct {
	Level string
	Next  string // empty on the last level
}

type actor struct {
	obj   *engine.GameObject
	spawn rl.Vector3
}

// World owns the static geometry and the actors of the current level and steps them
// one frame at a time.
type World struct {
	Scene *engine.Scene
	Level *level.Level

	OnCaptured engine.EventWithArg[CaptureEvent]
	OnLanded   engine.EventWithArg[components.LandedEvent]
	OnExit     engine.EventWithArg[ExitEvent]

	geometry    *physics.Geometry
	player      actor
	controller  *components.CharacterController
	enemies     []actor
	decorations []physics.Handle
	exited      bool
	elapsed     float32
}

func New() *World {
	w := &World{
		Scene:    engine.NewScene("Main"),
		geometry: physics.NewGeometry(),
	}
	w.Scene.World = w
	return w
}

// Geometry implements engine.WorldAccess
func (w *World) Geometry() *physics.Geometry {
	return w.geometry
}

// Player implements engine.WorldAccess
func (w *World) Player() *engine.GameObject {
	return w.player.obj
}

func (w *World) PlayerController() *components.CharacterController {
	return w.controller
}

func (w *World) Enemies() []*engine.GameObject {
	out := make([]*engine.GameObject, len(w.enemies))
	for i, e := range w.enemies {
		out[i] = e.obj
	}
	return out
}

// Elapsed is the simulated time since the level was loaded.
func (w *World) Elapsed() float32 {
	return w.elapsed
}

// LoadLevel tears down the current level and builds l in its place. The level is
// validated first; on error the current level keeps running.
func (w *World) LoadLevel(l *level.Level) error {
	shapes, err := l.CollisionShapes()
	if err != nil {
		return fmt.Errorf("world: load %s: %w", l.Name, err)
	}

	w.Unload()
	if _, err := w.geometry.ReplaceAll(shapes); err != nil {
		return fmt.Errorf("world: load %s: %w", l.Name, err)
	}

	w.Level = l
	w.Scene.Name = l.Name
	w.spawnPlayer(l)
	for i, spec := range l.Enemies {
		w.spawnEnemy(i, spec)
	}
	w.Scene.Start()

	log.Printf("World: loaded level %q (%d shapes, %d enemies)", l.Name, len(shapes), len(l.Enemies))
	return nil
}

// Unload drops every actor and shape. Listeners on the world's events are kept.
func (w *World) Unload() {
	w.Scene.Clear()
	w.geometry.Clear()
	w.Level = nil
	w.player = actor{}
	w.controller = nil
	w.enemies = nil
	w.decorations = nil
	w.exited = false
	w.elapsed = 0
}

func (w *World) spawnPlayer(l *level.Level) {
	obj := engine.NewGameObject("Player")
	obj.Tags = []string{PlayerTag}
	obj.Transform.Position = l.Player.Spawn.Vector3()

	cc := components.NewCharacterController()
	cc.Body = l.PlayerBody()
	cc.MoveSpeed = l.Tuning.MoveSpeed
	cc.Gravity = l.Tuning.Gravity
	cc.JumpStrength = l.Tuning.JumpStrength
	cc.OnLanded.AddListener(w.OnLanded.Invoke)
	obj.AddComponent(cc)

	w.Scene.AddGameObject(obj)
	w.player = actor{obj: obj, spawn: obj.Transform.Position}
	w.controller = cc
}

func (w *World) spawnEnemy(i int, spec level.EnemySpec) {
	obj := engine.NewGameObject(fmt.Sprintf("%s_%d", spec.Kind, i))
	obj.Tags = []string{EnemyTag, spec.Kind}
	obj.Transform.Position = spec.Position.Vector3()

	cc := components.NewCharacterController()
	cc.Body = spec.Body()
	cc.Gravity = w.Level.Tuning.Gravity
	obj.AddComponent(cc)
	obj.AddComponent(components.NewEnemyChaser(w.player.obj, spec.Speed, spec.CatchRadius))

	w.Scene.AddGameObject(obj)
	w.enemies = append(w.enemies, actor{obj: obj, spawn: obj.Transform.Position})
}

// AddDecoration registers an extra static shape into the running level, such as
// scenery that finished loading after the level started.
func (w *World) AddDecoration(s physics.Shape) (physics.Handle, error) {
	h, err := w.geometry.Register(s)
	if err != nil {
		return 0, fmt.Errorf("world: decoration: %w", err)
	}
	w.decorations = append(w.decorations, h)
	return h, nil
}

func (w *World) RemoveDecoration(h physics.Handle) bool {
	for i, d := range w.decorations {
		if d == h {
			w.decorations = append(w.decorations[:i], w.decorations[i+1:]...)
			return w.geometry.Unregister(h)
		}
	}
	return false
}

// Update steps the level by one frame: the player moves on input, then every scene
// object updates (enemies pick a direction and move), then captures and the exit are
// checked.
func (w *World) Update(deltaTime float32, input PlayerInput) {
	if w.player.obj == nil {
		return
	}
	w.elapsed += deltaTime

	w.controller.Move(input.Move, input.Jump, deltaTime)
	w.Scene.Update(deltaTime)

	if enemy := w.catcher(); enemy != nil {
		ev := CaptureEvent{Enemy: enemy, Player: w.player.obj, Position: w.player.obj.Transform.Position}
		log.Printf("World: player caught by %s", enemy.Name)
		w.OnCaptured.Invoke(ev)
		w.Respawn()
		return
	}

	w.checkExit()
}

// Respawn puts every actor back at its spawn point with fresh state.
func (w *World) Respawn() {
	for _, a := range append([]actor{w.player}, w.enemies...) {
		if a.obj == nil {
			continue
		}
		a.obj.Transform.Position = a.spawn
		a.obj.Reset()
	}
}

func (w *World) catcher() *engine.GameObject {
	for _, e := range w.enemies {
		if chaser := engine.GetComponent[*components.EnemyChaser](e.obj); chaser != nil && chaser.IsCatching() {
			return e.obj
		}
	}
	return nil
}

func (w *World) checkExit() {
	exit := w.Level.Exit
	if exit == nil || w.exited {
		return
	}
	if rl.Vector3Distance(w.player.obj.Transform.Position, exit.Position.Vector3()) >= exit.Radius {
		return
	}
	w.exited = true
	log.Printf("World: reached the exit of %q", w.Level.Name)
	w.OnExit.Invoke(ExitEvent{Level: w.Level.Name, Next: exit.Next})
}
