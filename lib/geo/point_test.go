package geo

import (
	"testing"
)

func TestPointDistanceTo(t *testing.T) {
	p1 := &Point{0, 0}
	p2 := &Point{100, 0}

	p := &Point{50, 70}

	d := p.DistanceToLine(p1, p2)

	if d != 70.0 {
		t.Fatalf("Expected 70.0 and got %v", d)
	}
}

func TestAddVector(t *testing.T) {
	start := &Point{1.5, 5.3}
	c := NewVector(-3.5, -2.3)
	p2 := start.AddVector(c)

	if p2.X != -2 || p2.Y != 3 {
		t.Fatalf("Expected resulting point to be (-2, 3), got %+v", p2)
	}
}

func TestVectorTo(t *testing.T) {
	p1 := &Point{1.5, 5.3}
	p2 := &Point{-2, 3}
	c := p1.VectorTo(p2)
	if !c.equals(NewVector(-3.5, -2.3)) {
		t.Fatalf("Expected Vector to be (-3.5, -2.3), got %v", c)
	}
}

func TestIntersectionPoint(t *testing.T) {
	p := IntersectionPoint(
		&Point{0, 0}, &Point{10, 0},
		&Point{5, -5}, &Point{5, 5},
	)
	if p == nil {
		t.Fatal("Expected segments to intersect")
	}
	if p.X != 5 || p.Y != 0 {
		t.Fatalf("Expected intersection at (5, 0), got %v", p.ToString())
	}

	p = IntersectionPoint(
		&Point{0, 0}, &Point{10, 0},
		&Point{0, 1}, &Point{10, 1},
	)
	if p != nil {
		t.Fatalf("Expected parallel segments not to intersect, got %v", p.ToString())
	}

	p = IntersectionPoint(
		&Point{0, 0}, &Point{10, 0},
		&Point{20, -5}, &Point{20, 5},
	)
	if p != nil {
		t.Fatalf("Expected intersection outside segments to be discarded, got %v", p.ToString())
	}
}

func TestInterpolate(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{10, 20}

	mid := a.Interpolate(b, 0.5)
	if mid.X != 5 || mid.Y != 10 {
		t.Fatalf("Expected midpoint at (5, 10), got %v", mid.ToString())
	}

	if !a.Interpolate(b, 0).Equals(a) {
		t.Fatal("Expected t=0 to return the start point")
	}
	if !a.Interpolate(b, 1).Equals(b) {
		t.Fatal("Expected t=1 to return the end point")
	}
}
