package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Resetter is implemented by components that hold per-life state (velocity, grounded,
// cooldowns). The world calls Reset when an actor is put back at its spawn point.
type Resetter interface {
	Reset()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// World returns the world the component's object lives in, or nil when detached.
func (b *BaseComponent) World() WorldAccess {
	if b.gameObject == nil || b.gameObject.Scene == nil {
		return nil
	}
	return b.gameObject.Scene.World
}
