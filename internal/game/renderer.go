package game

import (
	"platformer/internal/components"
	"platformer/internal/engine"
	"platformer/internal/level"
	"platformer/internal/physics"
	"platformer/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorFloor     = rl.NewColor(60, 90, 60, 255)
	colorBox       = rl.NewColor(150, 140, 120, 255)
	colorWedge     = rl.NewColor(120, 150, 170, 255)
	colorCylinder  = rl.NewColor(170, 120, 90, 255)
	colorStandable = rl.NewColor(200, 170, 90, 255)
	colorEdge      = rl.NewColor(30, 30, 40, 255)
	colorPlayer    = rl.NewColor(108, 99, 255, 255)
	colorExit      = rl.NewColor(120, 255, 160, 255)
)

var enemyColors = map[string]rl.Color{
	"sheep":  rl.RayWhite,
	"spider": rl.NewColor(60, 40, 40, 255),
	"ghost":  rl.NewColor(200, 220, 255, 180),
}

// Renderer draws the collision geometry and actors as flat-shaded primitives.
type Renderer struct {
	FloorSize float32

	// Last frame's counts, for the debug overlay
	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{FloorSize: 60}
}

// Draw renders w. Must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(w *world.World, frustum Frustum, debug bool) {
	r.Drawn, r.Culled = 0, 0

	rl.DisableBackfaceCulling()
	defer rl.EnableBackfaceCulling()

	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: r.FloorSize, Y: r.FloorSize}, colorFloor)
	rl.DrawGrid(int32(r.FloorSize), 1)

	for s := range w.Geometry().All() {
		bounds := s.Bounds()
		if !frustum.ContainsAABB(bounds) {
			r.Culled++
			continue
		}
		r.Drawn++
		r.drawShape(s)
		if debug {
			rl.DrawBoundingBox(rl.NewBoundingBox(bounds.Min, bounds.Max), rl.Yellow)
		}
	}

	if w.Level != nil && w.Level.Exit != nil {
		exit := w.Level.Exit
		rl.DrawCylinderWires(exit.Position.Vector3(), exit.Radius, exit.Radius, 0.1, 24, colorExit)
	}

	if p := w.Player(); p != nil {
		r.drawActor(p, colorPlayer, debug)
	}
	for _, kind := range level.ArchetypeNames() {
		color, ok := enemyColors[kind]
		if !ok {
			color = rl.Red
		}
		for _, e := range w.Scene.FindByTag(kind) {
			r.drawActor(e, color, debug)
		}
	}
}

func (r *Renderer) drawShape(s physics.Shape) {
	switch s.Kind {
	case physics.KindBox:
		c := boxCorners(s.OBB())
		for _, f := range boxFaces {
			drawQuad(c[f[0]], c[f[1]], c[f[2]], c[f[3]], colorBox)
		}
		for _, e := range boxEdges {
			rl.DrawLine3D(c[e[0]], c[e[1]], colorEdge)
		}
	case physics.KindWedge:
		drawWedge(s.OBB())
	case physics.KindCylinder:
		base := rl.Vector3{X: s.Position.X, Y: s.Position.Y - s.Height/2, Z: s.Position.Z}
		color := colorCylinder
		if s.Standable {
			color = colorStandable
		}
		rl.DrawCylinder(base, s.Radius, s.Radius, s.Height, 16, color)
		rl.DrawCylinderWires(base, s.Radius, s.Radius, s.Height, 16, colorEdge)
	}
}

func (r *Renderer) drawActor(obj *engine.GameObject, color rl.Color, debug bool) {
	cc := engine.GetComponent[*components.CharacterController](obj)
	if cc == nil {
		return
	}
	feet := obj.Transform.Position
	hw, h := cc.Body.HalfWidth, cc.Body.Height

	rl.DrawCylinder(feet, hw, hw, h, 12, color)
	nose := rl.Vector3Add(feet, rl.Vector3{Y: h * 0.8})
	rl.DrawLine3D(nose, rl.Vector3Add(nose, obj.Forward()), colorEdge)

	if !debug {
		return
	}
	box := cc.Body.Box(feet).Bounds()
	rl.DrawBoundingBox(rl.NewBoundingBox(box.Min, box.Max), rl.Green)
	if chaser := engine.GetComponent[*components.EnemyChaser](obj); chaser != nil {
		mid := rl.Vector3Add(feet, rl.Vector3{Y: h / 2})
		rl.DrawLine3D(mid, rl.Vector3Add(mid, rl.Vector3Scale(chaser.Direction(), 2)), rl.Orange)
		rl.DrawCircle3D(feet, chaser.CatchRadius, rl.Vector3{X: 1}, 90, rl.Red)
	}
}

// Corner i has local signs x = bit 0, y = bit 1, z = bit 2 (set means +).
func boxCorners(o physics.OBB) [8]rl.Vector3 {
	var c [8]rl.Vector3
	for i := range c {
		local := o.HalfSize
		if i&1 == 0 {
			local.X = -local.X
		}
		if i&2 == 0 {
			local.Y = -local.Y
		}
		if i&4 == 0 {
			local.Z = -local.Z
		}
		c[i] = o.ToWorld(local)
	}
	return c
}

var boxFaces = [6][4]int{
	{0, 1, 3, 2}, // -z
	{4, 6, 7, 5}, // +z
	{0, 2, 6, 4}, // -x
	{1, 5, 7, 3}, // +x
	{0, 4, 5, 1}, // -y
	{2, 3, 7, 6}, // +y
}

var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// drawWedge draws the ramp from its box corners: the bottom face, the tall back face at
// +z, the slope from the bottom front edge to the top back edge, and two side triangles.
func drawWedge(o physics.OBB) {
	c := boxCorners(o)
	drawQuad(c[0], c[1], c[5], c[4], colorWedge) // bottom
	drawQuad(c[4], c[5], c[7], c[6], colorWedge) // back
	drawQuad(c[0], c[1], c[7], c[6], colorWedge) // slope
	rl.DrawTriangle3D(c[0], c[4], c[6], colorWedge)
	rl.DrawTriangle3D(c[1], c[5], c[7], colorWedge)

	for _, e := range [][2]int{{0, 1}, {4, 5}, {6, 7}, {0, 4}, {1, 5}, {4, 6}, {5, 7}, {0, 6}, {1, 7}} {
		rl.DrawLine3D(c[e[0]], c[e[1]], colorEdge)
	}
}

func drawQuad(a, b, c, d rl.Vector3, color rl.Color) {
	rl.DrawTriangle3D(a, b, c, color)
	rl.DrawTriangle3D(a, c, d, color)
}
