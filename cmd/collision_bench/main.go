// Times the collision queries one frame of enemy and player movement makes, against
// generated levels of increasing shape count.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	actors := flag.Int("actors", 50, "actors queried per frame")
	iterations := flag.Int("iterations", 20, "frames timed per shape count")
	flag.Parse()

	shapeCounts := []int{10, 50, 100, 500, 1000, 5000}
	for _, count := range shapeCounts {
		benchShapes(count, *actors, *iterations)
	}
}

func benchShapes(count, actors, iterations int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results

	// Area grows with the count to keep density reasonable
	spawnSize := float32(40.0) + float32(count)/10.0

	g := physics.NewGeometry()
	if _, err := g.ReplaceAll(generateShapes(rng, count, spawnSize)); err != nil {
		fmt.Printf("%5d shapes: ERROR: %v\n", count, err)
		return
	}

	body := physics.NewBody(0.4, 1.8)
	pathfinder := physics.NewPathfinder(g)
	horizontal := physics.NewHorizontalResolver(g)
	grounding := physics.NewGroundingResolver(g)

	starts := make([]rl.Vector3, actors)
	for i := range starts {
		starts[i] = rl.Vector3{X: randRange(rng, spawnSize), Z: randRange(rng, spawnSize)}
	}
	target := rl.Vector3{}
	const dt = float32(1.0 / 60)

	// Warm up
	for _, s := range starts {
		pathfinder.FindDirection(s, target, body.HalfWidth)
	}

	pathStart := time.Now()
	for iter := 0; iter < iterations; iter++ {
		for _, s := range starts {
			pathfinder.FindDirection(s, target, body.HalfWidth)
		}
	}
	pathTime := time.Since(pathStart) / time.Duration(iterations)

	moveStart := time.Now()
	blocked := 0
	for iter := 0; iter < iterations; iter++ {
		blocked = 0
		for _, s := range starts {
			disp := rl.Vector3Scale(rl.Vector3Normalize(rl.Vector3Subtract(target, s)), 5*dt)
			if next := horizontal.Resolve(s, disp, body); next == s {
				blocked++
			}
		}
	}
	moveTime := time.Since(moveStart) / time.Duration(iterations)

	groundStart := time.Now()
	for iter := 0; iter < iterations; iter++ {
		for _, s := range starts {
			grounding.ResolveVertical(s, -1, false, dt, body)
		}
	}
	groundTime := time.Since(groundStart) / time.Duration(iterations)

	total := pathTime + moveTime + groundTime
	fmt.Printf("%5d shapes: path %9v | horizontal %9v (%3d blocked) | vertical %9v | frame %9v (%.1f%% of 60Hz)\n",
		count,
		pathTime.Round(time.Microsecond),
		moveTime.Round(time.Microsecond), blocked,
		groundTime.Round(time.Microsecond),
		total.Round(time.Microsecond),
		100*total.Seconds()*60)
}

func generateShapes(rng *rand.Rand, count int, spawnSize float32) []physics.Shape {
	shapes := make([]physics.Shape, count)
	for i := range shapes {
		pos := rl.Vector3{X: randRange(rng, spawnSize), Z: randRange(rng, spawnSize)}
		switch rng.Intn(3) {
		case 0:
			size := rl.Vector3{X: 0.5 + rng.Float32()*3, Y: 0.2 + rng.Float32()*3, Z: 0.5 + rng.Float32()*3}
			pos.Y = size.Y / 2
			shapes[i] = physics.NewBox(pos, size, rl.Vector3{Y: rng.Float32() * 90})
		case 1:
			size := rl.Vector3{X: 2, Y: 0.5 + rng.Float32()*2, Z: 3 + rng.Float32()*3}
			pos.Y = size.Y / 2
			shapes[i] = physics.NewWedge(pos, size, rl.Vector3{Y: float32(rng.Intn(4)) * 90})
		default:
			height := 0.5 + rng.Float32()*4
			pos.Y = height / 2
			shapes[i] = physics.NewCylinder(pos, 0.2+rng.Float32(), height, rng.Intn(2) == 0)
		}
	}
	return shapes
}

func randRange(rng *rand.Rand, size float32) float32 {
	return rng.Float32()*size - size/2
}
