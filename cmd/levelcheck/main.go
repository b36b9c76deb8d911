// Validates level files and plays them headless for a number of frames, printing every
// capture, landing and exit along the way.
package main

import (
	"flag"
	"fmt"
	"os"

	"platformer/internal/components"
	"platformer/internal/level"
	"platformer/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	frames := flag.Int("frames", 600, "frames to simulate per level (0 only validates)")
	walk := flag.Bool("walk", false, "walk the player toward the exit while simulating")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: levelcheck [flags] [level name or .yaml path ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	refs := flag.Args()
	if len(refs) == 0 {
		refs = level.Names()
	}

	failed := 0
	for _, ref := range refs {
		if err := check(ref, *frames, *walk); err != nil {
			fmt.Printf("FAIL %s: %v\n", ref, err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("%d of %d levels failed\n", failed, len(refs))
		os.Exit(1)
	}
}

func check(ref string, frames int, walk bool) error {
	l, err := level.Resolve(ref)
	if err != nil {
		return err
	}

	w := world.New()
	if err := w.LoadLevel(l); err != nil {
		return err
	}
	bounds, _ := w.Geometry().Bounds()
	fmt.Printf("ok   %s: %d shapes, %d enemies, bounds %v..%v\n", l.Name, len(l.Shapes), len(l.Enemies), bounds.Min, bounds.Max)

	w.OnCaptured.AddListener(func(e world.CaptureEvent) {
		fmt.Printf("     %6.2fs caught by %s at (%.2f, %.2f, %.2f)\n", w.Elapsed(), e.Enemy.Name, e.Position.X, e.Position.Y, e.Position.Z)
	})
	w.OnLanded.AddListener(func(e components.LandedEvent) {
		fmt.Printf("     %6.2fs %s landed at y=%.2f (%.2f m/s)\n", w.Elapsed(), e.Object.Name, e.Position.Y, e.ImpactSpeed)
	})
	w.OnExit.AddListener(func(e world.ExitEvent) {
		fmt.Printf("     %6.2fs reached the exit (next %q)\n", w.Elapsed(), e.Next)
	})

	const dt = float32(1.0 / 60)
	for i := 0; i < frames; i++ {
		w.Update(dt, world.PlayerInput{Move: heading(w, walk)})
	}

	if frames > 0 {
		p := w.Player().Transform.Position
		fmt.Printf("     after %d frames the player is at (%.2f, %.2f, %.2f)\n", frames, p.X, p.Y, p.Z)
		if p.Y < 0 {
			return fmt.Errorf("player fell below the floor")
		}
	}
	return nil
}

func heading(w *world.World, walk bool) rl.Vector3 {
	if !walk || w.Level.Exit == nil {
		return rl.Vector3{}
	}
	d := rl.Vector3Subtract(w.Level.Exit.Position.Vector3(), w.Player().Transform.Position)
	d.Y = 0
	if rl.Vector3Length(d) < 1e-3 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(d)
}
