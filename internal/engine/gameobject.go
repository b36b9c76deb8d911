package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var lastUID atomic.Uint64

type Transform struct {
	Position rl.Vector3 // feet for actors
	Rotation rl.Vector3 // Euler angles in degrees
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        lastUID.Add(1),
		Name:       name,
		Active:     true,
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero T.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// Reset calls Reset on every component that keeps per-life state.
func (g *GameObject) Reset() {
	for _, c := range g.components {
		if r, ok := c.(Resetter); ok {
			r.Reset()
		}
	}
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Forward is the unit vector the object faces on the ground plane, from its yaw.
func (g *GameObject) Forward() rl.Vector3 {
	yaw := g.Transform.Rotation.Y * rl.Deg2rad
	return rl.Vector3Transform(rl.Vector3{Z: 1}, rl.MatrixRotateY(yaw))
}
