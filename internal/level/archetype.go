package level

import (
	"fmt"
	"slices"
)

// Archetype is the default body and behavior for one enemy kind.
type Archetype struct {
	Name        string
	HalfWidth   float32
	Height      float32
	Speed       float32
	CatchRadius float32
}

var archetypes = map[string]Archetype{}

// RegisterArchetype adds an enemy kind. Registering a name twice panics.
func RegisterArchetype(a Archetype) {
	if _, exists := archetypes[a.Name]; exists {
		panic(fmt.Sprintf("archetype %q already registered", a.Name))
	}
	archetypes[a.Name] = a
}

func LookupArchetype(name string) (Archetype, bool) {
	a, ok := archetypes[name]
	return a, ok
}

// ArchetypeNames returns all registered kinds, sorted.
func ArchetypeNames() []string {
	names := make([]string, 0, len(archetypes))
	for name := range archetypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func init() {
	RegisterArchetype(Archetype{Name: "sheep", HalfWidth: 0.5, Height: 1.2, Speed: 2.5, CatchRadius: 1.2})
	RegisterArchetype(Archetype{Name: "spider", HalfWidth: 0.4, Height: 0.6, Speed: 3.5, CatchRadius: 1.0})
	RegisterArchetype(Archetype{Name: "ghost", HalfWidth: 0.45, Height: 1.6, Speed: 2, CatchRadius: 1.5})
}
