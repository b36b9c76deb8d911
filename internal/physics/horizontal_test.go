package physics

import "testing"

func TestResolveStepsOntoLowLedge(t *testing.T) {
	ledge := NewBox(vec(2, 0.2, 0), vec(2, 0.4, 2), vec(0, 0, 0))
	g := newTestGeometry(t, ledge)
	body := NewBody(0.5, 2)

	pos := NewHorizontalResolver(g).Resolve(vec(0, 0, 0), vec(1, 0, 0), body)
	if !approx(pos.X, 1) {
		t.Fatalf("Expected to move onto the 0.4 ledge, stopped at %v", pos)
	}

	res := NewGroundingResolver(g).ResolveVertical(pos, 0, true, 1.0/60, body)
	if !res.Grounded || !approx(res.Y, 0.4) {
		t.Errorf("Expected to stand on the ledge at 0.4, got %+v", res)
	}
}

func TestResolveBlocksHighLedge(t *testing.T) {
	ledge := NewBox(vec(2, 0.3, 0), vec(2, 0.6, 2), vec(0, 0, 0))
	r := NewHorizontalResolver(newTestGeometry(t, ledge))

	pos := r.Resolve(vec(0, 0, 0), vec(1, 0, 0), NewBody(0.5, 2))
	if pos.X != 0 || pos.Z != 0 {
		t.Errorf("Expected the 0.6 ledge to stop the actor, got %v", pos)
	}
}

func TestResolveSlidesAlongWall(t *testing.T) {
	wall := NewBox(vec(2, 1, 0), vec(2, 2, 10), vec(0, 0, 0))
	r := NewHorizontalResolver(newTestGeometry(t, wall))

	pos := r.Resolve(vec(0, 0, 0), vec(1, 0, 0.5), NewBody(0.5, 2))
	if !approx(pos.X, 0) || !approx(pos.Z, 0.5) {
		t.Errorf("Expected to slide to (0, 0, 0.5), got %v", pos)
	}
}

func TestResolveOutsideCornerKeepsDominantAxis(t *testing.T) {
	corner := NewBox(vec(2, 1, 2), vec(2, 2, 2), vec(0, 0, 0))
	r := NewHorizontalResolver(newTestGeometry(t, corner))

	pos := r.Resolve(vec(0, 0, 0), vec(0.8, 0, 0.6), NewBody(0.5, 2))
	if !approx(pos.X, 0.8) || !approx(pos.Z, 0) {
		t.Errorf("Expected to keep the X slide, got %v", pos)
	}
}

func TestResolveBlocksOnCylinder(t *testing.T) {
	tree := NewCylinder(vec(2, 2, 0), 0.5, 4, false)
	r := NewHorizontalResolver(newTestGeometry(t, tree))
	body := NewBody(0.4, 2)

	if pos := r.Resolve(vec(0, 0, 0), vec(1.2, 0, 0), body); pos.X != 0 {
		t.Errorf("Expected the trunk to stop the actor, got %v", pos)
	}
	if pos := r.Resolve(vec(0, 0, 0), vec(0.9, 0, 0), body); !approx(pos.X, 0.9) {
		t.Errorf("Expected to stop short of the trunk freely, got %v", pos)
	}
}

func TestResolveCylinderAtHeadHeight(t *testing.T) {
	// Hanging sign: bottom at 1.5, below the actor's head
	sign := NewCylinder(vec(1, 2, 0), 0.5, 1, false)
	r := NewHorizontalResolver(newTestGeometry(t, sign))

	if !r.Blocked(vec(1, 0, 0), NewBody(0.4, 2)) {
		t.Error("Expected the head probe to hit the sign")
	}
}

func TestResolveWalksUpRamp(t *testing.T) {
	// Ramp rises 0 -> 3 along +Z between z=-2 and z=2
	wedge := NewWedge(vec(0, 1.5, 0), vec(2, 3, 4), vec(0, 0, 0))
	g := newTestGeometry(t, wedge)
	horizontal := NewHorizontalResolver(g)
	vertical := NewGroundingResolver(g)
	body := NewBody(0.4, 2)

	pos := vec(0, 0, -2.5)
	grounded := true
	for i := 0; i < 18; i++ {
		next := horizontal.Resolve(pos, vec(0, 0, 0.25), body)
		if !approx(next.Z, pos.Z+0.25) {
			t.Fatalf("step %d: blocked at %v", i, pos)
		}
		res := vertical.ResolveVertical(next, 0, grounded, 1.0/60, body)
		if !res.Grounded {
			t.Fatalf("step %d: lost the ramp at %v", i, next)
		}
		pos = next
		pos.Y = res.Y
		grounded = res.Grounded
	}

	if !approx(pos.Z, 2) || !approx(pos.Y, 3) {
		t.Errorf("Expected to reach the top of the ramp at (0, 3, 2), got %v", pos)
	}
}

func TestResolveBlocksRampHighFace(t *testing.T) {
	wedge := NewWedge(vec(0, 1.5, 0), vec(2, 3, 4), vec(0, 0, 0))
	r := NewHorizontalResolver(newTestGeometry(t, wedge))

	pos := r.Resolve(vec(0, 0, 3), vec(0, 0, -1), NewBody(0.4, 2))
	if !approx(pos.Z, 3) {
		t.Errorf("Expected the tall end of the ramp to block, got %v", pos)
	}
}

func TestResolveZeroDisplacement(t *testing.T) {
	r := NewHorizontalResolver(NewGeometry())
	start := vec(1, 2, 3)
	if pos := r.Resolve(start, vec(0, 5, 0), NewBody(0.4, 2)); pos != start {
		t.Errorf("Expected no horizontal motion, got %v", pos)
	}
}
