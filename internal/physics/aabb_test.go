package physics

import "testing"

func TestNewAABBFromCenter(t *testing.T) {
	a := NewAABBFromCenter(vec(1, 2, 3), vec(2, 4, 6))
	if a.Min != vec(0, 0, 0) || a.Max != vec(2, 4, 6) {
		t.Errorf("Expected (0,0,0)-(2,4,6), got %v-%v", a.Min, a.Max)
	}
}

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(vec(0, 0, 0), vec(2, 2, 2))

	if !a.Intersects(NewAABBFromCenter(vec(1.5, 0, 0), vec(2, 2, 2))) {
		t.Error("Overlapping boxes should intersect")
	}
	if !a.Intersects(NewAABBFromCenter(vec(2, 0, 0), vec(2, 2, 2))) {
		t.Error("Touching boxes should intersect")
	}
	if a.Intersects(NewAABBFromCenter(vec(0, 3, 0), vec(2, 2, 2))) {
		t.Error("Boxes apart on Y should not intersect")
	}
}

func TestAABBExpand(t *testing.T) {
	a := NewAABBFromCenter(vec(0, 0, 0), vec(2, 2, 2))
	far := NewAABBFromCenter(vec(2.2, 0, 0), vec(0.2, 0.2, 0.2)) // Min.X = 2.1

	if a.Intersects(far) {
		t.Fatal("Expected no contact before expanding")
	}
	if !a.Expand(1.2).Intersects(far) {
		t.Error("Expected contact after expanding by 1.2")
	}
	if e := a.Expand(0.5); e.Min != vec(-1.5, -1.5, -1.5) || e.Max != vec(1.5, 1.5, 1.5) {
		t.Errorf("Unexpected expanded box %v-%v", e.Min, e.Max)
	}
}

func TestAABBUnion(t *testing.T) {
	u := NewAABBFromCenter(vec(0, 0, 0), vec(2, 2, 2)).Union(NewAABBFromCenter(vec(5, 1, -3), vec(2, 2, 2)))
	if u.Min != vec(-1, -1, -4) || u.Max != vec(6, 2, 1) {
		t.Errorf("Expected (-1,-1,-4)-(6,2,1), got %v-%v", u.Min, u.Max)
	}
}
