package geo

import (
	"testing"
)

func TestCircleIntersections(t *testing.T) {
	c := NewCircle(NewPoint(0, 0), 1)

	// segment through the center crosses the border twice
	seg := *NewSegment(NewPoint(-2, 0), NewPoint(2, 0))
	pts := c.Intersections(seg)
	if len(pts) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(pts))
	}
	for _, p := range pts {
		d := c.Center.DistanceTo(p)
		if PrecisionCompare(d, c.Radius, PRECISION) != 0 {
			t.Fatalf("Expected intersection on the border, got distance %v", d)
		}
	}

	// segment from the center to outside crosses once
	seg = *NewSegment(NewPoint(0, 0), NewPoint(2, 0))
	pts = c.Intersections(seg)
	if len(pts) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(pts))
	}
	if pts[0].X != 1 || pts[0].Y != 0 {
		t.Fatalf("Expected intersection at (1, 0), got %v", pts[0].ToString())
	}

	// segment that misses the circle
	seg = *NewSegment(NewPoint(-2, 5), NewPoint(2, 5))
	if pts := c.Intersections(seg); len(pts) != 0 {
		t.Fatalf("Expected no intersections, got %d", len(pts))
	}

	// tangent segment touches once
	seg = *NewSegment(NewPoint(-2, 1), NewPoint(2, 1))
	pts = c.Intersections(seg)
	if len(pts) != 1 {
		t.Fatalf("Expected 1 tangent intersection, got %d", len(pts))
	}
}

func TestBoxIntersections(t *testing.T) {
	b := NewBox(NewPoint(0, 0), 2, 2)

	seg := *NewSegment(NewPoint(1, 1), NewPoint(5, 1))
	pts := b.Intersections(seg)
	if len(pts) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(pts))
	}
	if pts[0].X != 2 || pts[0].Y != 1 {
		t.Fatalf("Expected intersection at (2, 1), got %v", pts[0].ToString())
	}

	seg = *NewSegment(NewPoint(-1, 1), NewPoint(3, 1))
	pts = b.Intersections(seg)
	if len(pts) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(pts))
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBoxFromCenter(NewPoint(0, 0), 2, 2)
	if !b.Contains(NewPoint(0, 0)) {
		t.Fatal("Expected box to contain its center")
	}
	if b.Contains(NewPoint(1, 1)) {
		t.Fatal("Expected box not to contain its corner (borders excluded)")
	}
	if b.Contains(NewPoint(3, 0)) {
		t.Fatal("Expected box not to contain an outside point")
	}
}
