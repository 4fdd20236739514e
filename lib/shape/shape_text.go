package shape

import (
	"oss.mustex.org/mustex/lib/geo"
)

// Plain text nodes still anchor connectors at the edge of their bounding box
// so arrows never overlap the glyphs.
type shapeText struct {
	*baseShape
}

func NewText(box *geo.Box) Shape {
	return shapeText{
		baseShape: &baseShape{
			Type: TEXT_TYPE,
			Box:  box,
		},
	}
}

func (s shapeText) Perimeter() []geo.Intersectable {
	return []geo.Intersectable{s.Box}
}
