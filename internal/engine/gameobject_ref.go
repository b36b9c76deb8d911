package engine

// GameObjectRef is a weak reference to a GameObject by UID. It resolves to nil once the
// object has left the scene, so holders never keep a torn-down actor alive.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or the empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	if g == nil {
		return GameObjectRef{}
	}
	return GameObjectRef{UID: g.UID}
}

// Get resolves the reference against scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}
