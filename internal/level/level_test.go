package level

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"platformer/internal/physics"
)

const minimalLevel = `
name: test
player:
  spawn: [1, 0, 2]
shapes:
  - kind: box
    position: [0, 1, 0]
    size: [2, 2, 2]
  - kind: ramp
    position: [4, 1, 0]
    size: [2, 2, 4]
    rotation: [0, 90, 0]
  - kind: cylinder
    position: [-4, 1, 0]
    radius: 0.5
    height: 2
    standable: true
`

func TestParseMinimal(t *testing.T) {
	l, err := Parse([]byte(minimalLevel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if l.Name != "test" {
		t.Errorf("Expected name 'test', got '%s'", l.Name)
	}
	if l.Player.Spawn != (Vec3{1, 0, 2}) {
		t.Errorf("Expected spawn [1 0 2], got %v", l.Player.Spawn)
	}

	shapes, err := l.CollisionShapes()
	if err != nil {
		t.Fatalf("CollisionShapes failed: %v", err)
	}
	if len(shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(shapes))
	}
	if shapes[1].Kind != physics.KindWedge || shapes[1].Rotation.Y != 90 {
		t.Errorf("Expected a wedge turned 90 degrees, got %+v", shapes[1])
	}
	if shapes[2].Kind != physics.KindCylinder || !shapes[2].Standable || shapes[2].Radius != 0.5 {
		t.Errorf("Expected a standable cylinder, got %+v", shapes[2])
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	l, err := Parse([]byte("name: bare\nenemies:\n  - kind: spider\n    position: [0, 0, 5]\n    speed: 9\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if l.Tuning.MoveSpeed != DefaultMoveSpeed || l.Tuning.Gravity != DefaultGravity {
		t.Errorf("Expected default tuning, got %+v", l.Tuning)
	}
	if l.Player.HalfWidth != DefaultPlayerHalfWidth || l.Player.Height != DefaultPlayerHeight {
		t.Errorf("Expected default player size, got %+v", l.Player)
	}

	spider, _ := LookupArchetype("spider")
	e := l.Enemies[0]
	if e.Speed != 9 {
		t.Errorf("Explicit speed should win over the archetype, got %f", e.Speed)
	}
	if e.CatchRadius != spider.CatchRadius || e.HalfWidth != spider.HalfWidth {
		t.Errorf("Expected archetype defaults, got %+v", e)
	}
	if b := e.Body(); b.HalfWidth != spider.HalfWidth || b.StepHeight != physics.DefaultStepHeight {
		t.Errorf("Unexpected enemy body %+v", b)
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"no name":         "tuning:\n  gravity: 10\n",
		"unknown field":   "name: x\ngravty: 10\n",
		"short vector":    "name: x\nplayer:\n  spawn: [1, 2]\n",
		"unknown enemy":   "name: x\nenemies:\n  - kind: dragon\n",
		"unknown shape":   "name: x\nshapes:\n  - kind: sphere\n    size: [1, 1, 1]\n",
		"negative speed":  "name: x\ntuning:\n  move_speed: -1\n",
		"negative radius": "name: x\nexit:\n  position: [0, 0, 0]\n  radius: -2\n",
	}

	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestParseMalformedShape(t *testing.T) {
	doc := "name: x\nshapes:\n  - kind: box\n    position: [0, 0, 0]\n    size: [1, 0, 1]\n"
	_, err := Parse([]byte(doc))

	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
	if !errors.Is(err, physics.ErrMalformedShape) {
		t.Errorf("Expected ErrMalformedShape in the chain, got %v", err)
	}
}

func TestEmbeddedLevels(t *testing.T) {
	names := Names()
	want := []string{"bedroom", "clocktower", "grassland"}
	if !slices.Equal(names, want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}

	for _, name := range names {
		l, err := LoadEmbedded(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if l.Name != name {
			t.Errorf("%s: level calls itself %q", name, l.Name)
		}
		if len(l.Shapes) == 0 || len(l.Enemies) == 0 {
			t.Errorf("%s: expected shapes and enemies", name)
		}
		if l.Exit != nil && l.Exit.Next != "" {
			if _, err := LoadEmbedded(l.Exit.Next); err != nil {
				t.Errorf("%s: exit leads to a missing level: %v", name, err)
			}
		}
	}
}

func TestLoadEmbeddedUnknown(t *testing.T) {
	_, err := LoadEmbedded("moon")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
}

func TestLoadAndResolveFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte(minimalLevel), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if l.Name != "test" {
		t.Errorf("Expected the disk level, got %q", l.Name)
	}

	if l, err := Resolve("grassland"); err != nil || l.Name != "grassland" {
		t.Errorf("Expected the embedded grassland, got %v", err)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("Expected an error naming the file, got %v", err)
	}
}

func TestRegisterArchetypeDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for a duplicate archetype")
		}
	}()
	RegisterArchetype(Archetype{Name: "sheep"})
}

func TestArchetypeNames(t *testing.T) {
	names := ArchetypeNames()
	for _, want := range []string{"ghost", "sheep", "spider"} {
		if !slices.Contains(names, want) {
			t.Errorf("Expected archetype %q in %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}
}
