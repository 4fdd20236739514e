// Package shape models the drawable outline of a diagram element. Its main
// job is boundary anchoring: finding the point on an element's border where a
// connector should visually start or end.
package shape

import (
	"oss.mustex.org/mustex/lib/geo"
)

const (
	CIRCLE_TYPE = "circle"
	RECT_TYPE   = "rect"
	TEXT_TYPE   = "text"
)

type Shape interface {
	Is(shape string) bool
	GetType() string

	GetBox() *geo.Box

	// Perimeter returns a slice of geo.Intersectables that together constitute the shape border
	Perimeter() []geo.Intersectable
}

type baseShape struct {
	Type string
	Box  *geo.Box
}

func (s baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s baseShape) GetType() string {
	return s.Type
}

func (s baseShape) GetBox() *geo.Box {
	return s.Box
}

func NewShape(shapeType string, box *geo.Box) Shape {
	switch shapeType {
	case CIRCLE_TYPE:
		return NewCircle(box)
	case TEXT_TYPE:
		return NewText(box)
	default:
		return NewRect(box)
	}
}

// TraceToBorder walks the segment from the border of s towards the segment
// end and returns the border crossing nearest to the outside endpoint. The
// segment is expected to start inside the shape (usually at its center).
// Returns nil when the segment never leaves the shape.
func TraceToBorder(s Shape, seg *geo.Segment) *geo.Point {
	var nearest *geo.Point
	for _, border := range s.Perimeter() {
		for _, p := range border.Intersections(*seg) {
			if nearest == nil || p.DistanceTo(seg.End) < nearest.DistanceTo(seg.End) {
				nearest = p
			}
		}
	}
	return nearest
}
