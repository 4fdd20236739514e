package shape

import (
	"oss.mustex.org/mustex/lib/geo"
)

type shapeCircle struct {
	*baseShape
}

func NewCircle(box *geo.Box) Shape {
	return shapeCircle{
		baseShape: &baseShape{
			Type: CIRCLE_TYPE,
			Box:  box,
		},
	}
}

func (s shapeCircle) Perimeter() []geo.Intersectable {
	// circles are laid out with equal width and height, so width/2 is the radius
	return []geo.Intersectable{geo.NewCircle(s.Box.Center(), s.Box.Width/2)}
}
