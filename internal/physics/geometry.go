package physics

import (
	"fmt"
	"iter"
	"log"
)

// Handle identifies a registered shape. The zero Handle is never issued.
type Handle uint32

type entry struct {
	handle Handle
	shape  Shape
}

// Geometry is the static geometry index: the flat list of collidable shapes for the
// current level. Queries are a linear scan; levels hold tens to low hundreds of shapes.
//
// Geometry is not safe for concurrent use. Register, Unregister and ReplaceAll must not
// run while a resolver is iterating.
type Geometry struct {
	entries    []entry
	nextHandle Handle
}

func NewGeometry() *Geometry {
	return &Geometry{
		entries:    make([]entry, 0),
		nextHandle: 1,
	}
}

// Register validates and appends a shape.
func (g *Geometry) Register(s Shape) (Handle, error) {
	if err := ValidateShape(s); err != nil {
		return 0, err
	}
	h := g.issue()
	g.entries = append(g.entries, entry{handle: h, shape: s})
	return h, nil
}

// Unregister removes the shape behind h. It reports false if h is unknown.
func (g *Geometry) Unregister(h Handle) bool {
	for i, e := range g.entries {
		if e.handle == h {
			g.entries = append(g.entries[:i], g.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceAll swaps in a whole new shape set, as on a level transition. Every shape is
// validated first; on error the current set is left untouched.
func (g *Geometry) ReplaceAll(shapes []Shape) ([]Handle, error) {
	for i, s := range shapes {
		if err := ValidateShape(s); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}

	entries := make([]entry, len(shapes))
	handles := make([]Handle, len(shapes))
	for i, s := range shapes {
		h := g.issue()
		entries[i] = entry{handle: h, shape: s}
		handles[i] = h
	}
	g.entries = entries

	log.Printf("Geometry: loaded %d shapes", len(shapes))
	return handles, nil
}

// Clear drops every shape.
func (g *Geometry) Clear() {
	g.entries = g.entries[:0]
}

// All iterates the registered shapes in registration order.
func (g *Geometry) All() iter.Seq[Shape] {
	return func(yield func(Shape) bool) {
		for _, e := range g.entries {
			if !yield(e.shape) {
				return
			}
		}
	}
}

// Get returns the shape behind h.
func (g *Geometry) Get(h Handle) (Shape, bool) {
	for _, e := range g.entries {
		if e.handle == h {
			return e.shape, true
		}
	}
	return Shape{}, false
}

func (g *Geometry) Len() int {
	return len(g.entries)
}

// Bounds returns the union of all shape bounds. ok is false when empty.
func (g *Geometry) Bounds() (AABB, bool) {
	if len(g.entries) == 0 {
		return AABB{}, false
	}
	b := g.entries[0].shape.Bounds()
	for _, e := range g.entries[1:] {
		b = b.Union(e.shape.Bounds())
	}
	return b, true
}

func (g *Geometry) issue() Handle {
	if g.nextHandle == 0 {
		g.nextHandle = 1
	}
	h := g.nextHandle
	g.nextHandle++
	return h
}
