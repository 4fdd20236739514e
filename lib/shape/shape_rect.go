package shape

import (
	"oss.mustex.org/mustex/lib/geo"
)

type shapeRect struct {
	*baseShape
}

func NewRect(box *geo.Box) Shape {
	return shapeRect{
		baseShape: &baseShape{
			Type: RECT_TYPE,
			Box:  box,
		},
	}
}

func (s shapeRect) Perimeter() []geo.Intersectable {
	return []geo.Intersectable{s.Box}
}
