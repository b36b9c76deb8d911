package physics

import "testing"

func TestRaycastBox(t *testing.T) {
	g := newTestGeometry(t, NewBox(vec(0, 1, 0), vec(2, 2, 2), vec(0, 0, 0)))

	hit, ok := g.Raycast(vec(0, 1, -10), vec(0, 0, 1), 100)
	if !ok {
		t.Fatal("Expected ray to hit the box")
	}
	if !approx(hit.Distance, 9) {
		t.Errorf("Expected distance 9, got %f", hit.Distance)
	}
	if !approx(hit.Normal.Z, -1) {
		t.Errorf("Expected normal facing -Z, got %v", hit.Normal)
	}

	if _, ok := g.Raycast(vec(0, 1, -10), vec(0, 0, 1), 5); ok {
		t.Error("Box beyond max distance should not be hit")
	}
	if _, ok := g.Raycast(vec(0, 1, -10), vec(0, 0, -1), 100); ok {
		t.Error("Ray pointing away should miss")
	}
}

func TestRaycastCylinderSide(t *testing.T) {
	g := newTestGeometry(t, NewCylinder(vec(0, 1, 0), 1, 2, false))

	hit, ok := g.Raycast(vec(-10, 1, 0), vec(1, 0, 0), 100)
	if !ok {
		t.Fatal("Expected ray to hit the cylinder")
	}
	if !approx(hit.Distance, 9) || !approx(hit.Normal.X, -1) {
		t.Errorf("Expected side hit at 9 with normal -X, got %+v", hit)
	}
}

func TestRaycastCylinderCap(t *testing.T) {
	g := newTestGeometry(t, NewCylinder(vec(0, 1, 0), 1, 2, true))

	hit, ok := g.Raycast(vec(0.2, 10, 0), vec(0, -1, 0), 100)
	if !ok {
		t.Fatal("Expected ray to hit the top cap")
	}
	if !approx(hit.Distance, 8) || !approx(hit.Normal.Y, 1) {
		t.Errorf("Expected cap hit at 8 with normal +Y, got %+v", hit)
	}
}

func TestRaycastReturnsClosest(t *testing.T) {
	far := NewBox(vec(0, 1, 5), vec(2, 2, 2), vec(0, 0, 0))
	near := NewBox(vec(0, 1, 0), vec(2, 2, 2), vec(0, 0, 0))
	g := newTestGeometry(t, far, near)

	hit, ok := g.Raycast(vec(0, 1, -10), vec(0, 0, 1), 100)
	if !ok || !approx(hit.Distance, 9) {
		t.Fatalf("Expected the near box at 9, got %+v", hit)
	}
	if hit.Shape.Position != near.Position {
		t.Errorf("Expected the near box to be reported, got %v", hit.Shape.Position)
	}
}
