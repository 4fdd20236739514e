package geo

import (
	"math"
)

type Circle struct {
	Center *Point
	Radius float64
}

func NewCircle(center *Point, radius float64) *Circle {
	return &Circle{
		Center: center,
		Radius: radius,
	}
}

// Intersections returns the points where segment crosses the circle border.
// The segment is parametrized as start + t*(end-start); solutions of
// |p - center| = radius form a quadratic in t, and only roots with t in
// [0, 1] are on the segment.
func (c Circle) Intersections(segment Segment) []*Point {
	if c.Radius <= 0 {
		return nil
	}

	dx := segment.End.X - segment.Start.X
	dy := segment.End.Y - segment.Start.Y
	fx := segment.Start.X - c.Center.X
	fy := segment.Start.Y - c.Center.Y

	a := dx*dx + dy*dy
	if a == 0 {
		// zero-length segment
		return nil
	}
	b := 2 * (fx*dx + fy*dy)
	cc := fx*fx + fy*fy - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}

	intersections := []*Point{}
	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	if t1 >= 0 && t1 <= 1 {
		intersections = append(intersections, NewPoint(segment.Start.X+t1*dx, segment.Start.Y+t1*dy))
	}
	// when the discriminant is 0 the segment is tangent and t2 duplicates t1
	if discriminant > 0 && t2 >= 0 && t2 <= 1 {
		intersections = append(intersections, NewPoint(segment.Start.X+t2*dx, segment.Start.Y+t2*dy))
	}
	return intersections
}
