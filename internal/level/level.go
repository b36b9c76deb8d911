package level

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLevel = errors.New("level: unknown level")
	ErrInvalid      = errors.New("level: invalid")
)

// Default tuning, used for any value a level leaves out.
const (
	DefaultMoveSpeed      float32 = 5
	DefaultGravity        float32 = 20
	DefaultJumpStrength   float32 = 8
	DefaultCameraDistance float32 = 8

	DefaultPlayerHalfWidth float32 = 0.4
	DefaultPlayerHeight    float32 = 2
)

// Vec3 is written as a flow sequence, [x, y, z].
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var xs []float32
	if err := node.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: want [x, y, z], got %d values", node.Line, len(xs))
	}
	copy(v[:], xs)
	return nil
}

type Level struct {
	Name    string      `yaml:"name"`
	Tuning  Tuning      `yaml:"tuning"`
	Player  PlayerSpec  `yaml:"player"`
	Exit    *ExitSpec   `yaml:"exit"`
	Enemies []EnemySpec `yaml:"enemies"`
	Shapes  []ShapeSpec `yaml:"shapes"`
}

// Tuning is the per-level feel of the player and camera.
type Tuning struct {
	MoveSpeed      float32 `yaml:"move_speed"`
	Gravity        float32 `yaml:"gravity"`
	JumpStrength   float32 `yaml:"jump_strength"`
	CameraDistance float32 `yaml:"camera_distance"`
}

type PlayerSpec struct {
	Spawn     Vec3    `yaml:"spawn"`
	HalfWidth float32 `yaml:"half_width"`
	Height    float32 `yaml:"height"`
}

// ExitSpec is a portal: reaching it moves the player on to Next.
type ExitSpec struct {
	Position Vec3    `yaml:"position"`
	Radius   float32 `yaml:"radius"`
	Next     string  `yaml:"next"`
}

// EnemySpec places one enemy. Zero values are filled from the kind's archetype.
type EnemySpec struct {
	Kind        string  `yaml:"kind"`
	Position    Vec3    `yaml:"position"`
	Speed       float32 `yaml:"speed"`
	HalfWidth   float32 `yaml:"half_width"`
	Height      float32 `yaml:"height"`
	CatchRadius float32 `yaml:"catch_radius"`
}

type ShapeSpec struct {
	Kind      string  `yaml:"kind"`
	Position  Vec3    `yaml:"position"`
	Rotation  Vec3    `yaml:"rotation"`
	Size      Vec3    `yaml:"size"`
	Radius    float32 `yaml:"radius"`
	Height    float32 `yaml:"height"`
	Standable bool    `yaml:"standable"`
}

// Shape converts the entry to a validated physics shape.
func (s ShapeSpec) Shape() (physics.Shape, error) {
	kind, err := physics.ParseKind(s.Kind)
	if err != nil {
		return physics.Shape{}, err
	}

	var shape physics.Shape
	switch kind {
	case physics.KindBox:
		shape = physics.NewBox(s.Position.Vector3(), s.Size.Vector3(), s.Rotation.Vector3())
	case physics.KindWedge:
		shape = physics.NewWedge(s.Position.Vector3(), s.Size.Vector3(), s.Rotation.Vector3())
	case physics.KindCylinder:
		shape = physics.NewCylinder(s.Position.Vector3(), s.Radius, s.Height, s.Standable)
	}
	if err := physics.ValidateShape(shape); err != nil {
		return physics.Shape{}, err
	}
	return shape, nil
}

// CollisionShapes converts every shape entry, in file order.
func (l *Level) CollisionShapes() ([]physics.Shape, error) {
	shapes := make([]physics.Shape, 0, len(l.Shapes))
	for i, spec := range l.Shapes {
		s, err := spec.Shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// PlayerBody is the player's collision body.
func (l *Level) PlayerBody() physics.Body {
	return physics.NewBody(l.Player.HalfWidth, l.Player.Height)
}

// Body is the enemy's collision body.
func (e EnemySpec) Body() physics.Body {
	return physics.NewBody(e.HalfWidth, e.Height)
}

// Parse decodes and validates a level document. Unknown fields are rejected so typos in
// hand-written levels surface at load time.
func Parse(data []byte) (*Level, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var l Level
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}

	l.applyDefaults()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a level file from disk.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func (l *Level) applyDefaults() {
	defaultTo(&l.Tuning.MoveSpeed, DefaultMoveSpeed)
	defaultTo(&l.Tuning.Gravity, DefaultGravity)
	defaultTo(&l.Tuning.JumpStrength, DefaultJumpStrength)
	defaultTo(&l.Tuning.CameraDistance, DefaultCameraDistance)
	defaultTo(&l.Player.HalfWidth, DefaultPlayerHalfWidth)
	defaultTo(&l.Player.Height, DefaultPlayerHeight)

	for i := range l.Enemies {
		e := &l.Enemies[i]
		a, ok := LookupArchetype(e.Kind)
		if !ok {
			continue // reported by Validate
		}
		defaultTo(&e.Speed, a.Speed)
		defaultTo(&e.HalfWidth, a.HalfWidth)
		defaultTo(&e.Height, a.Height)
		defaultTo(&e.CatchRadius, a.CatchRadius)
	}

	if l.Exit != nil {
		defaultTo(&l.Exit.Radius, 1)
	}
}

// Validate checks everything a world needs to run the level.
func (l *Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalid)
	}
	t := l.Tuning
	if t.MoveSpeed < 0 || t.Gravity < 0 || t.JumpStrength < 0 || t.CameraDistance < 0 {
		return fmt.Errorf("%w: negative tuning value", ErrInvalid)
	}
	if l.Player.HalfWidth < 0 || l.Player.Height < 0 {
		return fmt.Errorf("%w: negative player size", ErrInvalid)
	}
	for i, e := range l.Enemies {
		if _, ok := LookupArchetype(e.Kind); !ok {
			return fmt.Errorf("%w: enemy %d: unknown kind %q", ErrInvalid, i, e.Kind)
		}
		if e.Speed < 0 || e.HalfWidth < 0 || e.Height < 0 || e.CatchRadius < 0 {
			return fmt.Errorf("%w: enemy %d: negative value", ErrInvalid, i)
		}
	}
	if l.Exit != nil && l.Exit.Radius < 0 {
		return fmt.Errorf("%w: negative exit radius", ErrInvalid)
	}
	if _, err := l.CollisionShapes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func defaultTo(v *float32, def float32) {
	if *v == 0 {
		*v = def
	}
}
