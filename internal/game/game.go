package game

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"platformer/internal/camera"
	"platformer/internal/components"
	"platformer/internal/level"
	"platformer/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frames longer than this are simulated as this long, so a stalled window does not
// launch actors through thin geometry.
const maxFrameTime = float32(1.0 / 20)

type Game struct {
	World     *world.World
	Camera    *camera.FollowCamera
	Renderer  *Renderer
	DebugMode bool

	levelRef string
	pending  string // level to load before the next frame
	watcher  *level.Watcher
	panel    tuningPanel

	message      string
	messageUntil float64
	lastImpact   float32

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New creates a game that starts on levelRef, a built-in level name or a path to a
// level file.
func New(levelRef string) *Game {
	g := &Game{
		World:    world.New(),
		Renderer: NewRenderer(),
		levelRef: levelRef,
	}

	g.World.OnExit.AddListener(func(e world.ExitEvent) {
		if e.Next == "" {
			g.say(fmt.Sprintf("%s cleared. That was the last level!", e.Level), 5)
			return
		}
		g.pending = e.Next
	})
	g.World.OnCaptured.AddListener(func(e world.CaptureEvent) {
		g.say(fmt.Sprintf("Caught by %s!", e.Enemy.Name), 2)
	})
	g.World.OnLanded.AddListener(func(e components.LandedEvent) {
		g.lastImpact = e.ImpactSpeed
	})
	return g
}

// Run loads the first level, opens the window and plays until it is closed.
func (g *Game) Run() error {
	if err := g.load(g.levelRef); err != nil {
		return err
	}
	g.watchLevelFile(g.levelRef)
	defer g.stopWatching()

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Platformer")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) load(ref string) error {
	l, err := level.Resolve(ref)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	distance := l.Tuning.CameraDistance
	if g.Camera != nil {
		// Keep the player's orbit across levels
		yaw := g.Camera.Yaw
		g.Camera = camera.New(distance)
		g.Camera.Yaw = yaw
	} else {
		g.Camera = camera.New(distance)
	}

	if err := g.World.LoadLevel(l); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.levelRef = ref
	g.Camera.Snap(g.World.Player().Transform.Position, g.World.Geometry())
	g.say(l.Name, 2)
	return nil
}

// watchLevelFile enables hot reload when ref names a level file on disk.
func (g *Game) watchLevelFile(ref string) {
	if filepath.Ext(ref) == "" {
		return
	}
	w, err := level.NewWatcher(filepath.Dir(ref))
	if err != nil {
		log.Printf("Game: hot reload disabled: %v", err)
		return
	}
	g.watcher = w
}

func (g *Game) stopWatching() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// pollWatcher drains pending file events without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Clean(path) == filepath.Clean(g.levelRef) {
				g.pending = g.levelRef
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Game: watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) say(msg string, seconds float64) {
	g.message = msg
	g.messageUntil = rl.GetTime() + seconds
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := min(rl.GetFrameTime(), maxFrameTime)

	g.pollWatcher()
	if g.pending != "" {
		ref := g.pending
		g.pending = ""
		if err := g.load(ref); err != nil {
			log.Printf("Game: %v", err)
			g.say("Could not load "+ref, 3)
		}
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Visible = !g.panel.Visible
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.World.Respawn()
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		g.Camera.Orbit(rl.GetMouseDelta().X)
	}

	input := world.PlayerInput{
		Move: steer(g.Camera.Forward(), g.Camera.Right(), axis(rl.KeyW, rl.KeyS), axis(rl.KeyD, rl.KeyA)),
		Jump: rl.IsKeyPressed(rl.KeySpace),
	}
	g.World.Update(deltaTime, input)

	if p := g.World.Player(); p != nil {
		g.Camera.Update(p.Transform.Position, g.World.Geometry(), deltaTime)
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func axis(positive, negative int32) float32 {
	var v float32
	if rl.IsKeyDown(positive) {
		v++
	}
	if rl.IsKeyDown(negative) {
		v--
	}
	return v
}

// steer turns forward/side key axes into a ground-plane heading relative to the camera.
// Diagonals are normalized so they are no faster than straight moves.
func steer(forward, right rl.Vector3, fwd, side float32) rl.Vector3 {
	dir := rl.Vector3Add(rl.Vector3Scale(forward, fwd), rl.Vector3Scale(right, side))
	dir.Y = 0
	if rl.Vector3Length(dir) > 1 {
		dir = rl.Vector3Normalize(dir)
	}
	return dir
}

func (g *Game) Draw() {
	camera := g.Camera.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(135, 170, 210, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.Renderer.Draw(g.World, ExtractFrustum(camera, aspect), g.DebugMode)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, right mouse to orbit", 10, 10, 20, rl.DarkGray)
	rl.DrawText("F1 debug view, Tab tuning, R respawn", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	if g.message != "" && rl.GetTime() < g.messageUntil {
		size := int32(36)
		w := rl.MeasureText(g.message, size)
		rl.DrawText(g.message, (int32(rl.GetScreenWidth())-w)/2, 120, size, rl.White)
	}

	g.DebugMode = g.panel.Draw(g.World.PlayerController(), g.Camera, g.DebugMode)

	if !g.DebugMode {
		return
	}
	x := int32(rl.GetScreenWidth()) - 260
	line := func(i int32, text string, color rl.Color) {
		rl.DrawText(text, x, 10+i*20, 16, color)
	}

	if p, cc := g.World.Player(), g.World.PlayerController(); p != nil && cc != nil {
		pos := p.Transform.Position
		line(0, fmt.Sprintf("Feet: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), rl.Yellow)
		line(1, fmt.Sprintf("Grounded: %v  vy: %.2f", cc.IsGrounded(), cc.VerticalVelocity()), rl.Yellow)
		line(2, fmt.Sprintf("Last landing: %.2f m/s", g.lastImpact), rl.Yellow)
	}
	line(3, fmt.Sprintf("Shapes: %d drawn, %d culled", g.Renderer.Drawn, g.Renderer.Culled), rl.Green)
	line(4, fmt.Sprintf("Update: %.2f ms", g.updateMs), rl.Green)
	line(5, fmt.Sprintf("Draw:   %.2f ms", g.drawMs), rl.Green)
	line(6, fmt.Sprintf("Level time: %.1f s", g.World.Elapsed()), rl.Lime)
}
