package geo

import "fmt"

// Box is an axis-aligned rectangle. Since the y axis points up in diagram
// space, it is anchored at its bottom-left corner.
type Box struct {
	BottomLeft *Point
	Width      float64
	Height     float64
}

func NewBox(bl *Point, width, height float64) *Box {
	return &Box{
		BottomLeft: bl,
		Width:      width,
		Height:     height,
	}
}

// NewBoxFromCenter is a convenience for layouts, which position element
// centers and derive the box from the element's size.
func NewBoxFromCenter(center *Point, width, height float64) *Box {
	return &Box{
		BottomLeft: NewPoint(center.X-width/2, center.Y-height/2),
		Width:      width,
		Height:     height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.BottomLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.BottomLeft.X+b.Width/2, b.BottomLeft.Y+b.Height/2)
}

func (b *Box) Contains(p *Point) bool {
	return p.X > b.BottomLeft.X &&
		p.X < b.BottomLeft.X+b.Width &&
		p.Y > b.BottomLeft.Y &&
		p.Y < b.BottomLeft.Y+b.Height
}

func (b *Box) Intersections(s Segment) []*Point {
	pts := []*Point{}

	bl := b.BottomLeft
	br := NewPoint(bl.X+b.Width, bl.Y)
	tr := NewPoint(br.X, br.Y+b.Height)
	tl := NewPoint(bl.X, tr.Y)

	if p := IntersectionPoint(s.Start, s.End, bl, br); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, br, tr); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, tr, tl); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, tl, bl); p != nil {
		pts = append(pts, p)
	}
	return pts
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{BottomLeft: %s, Width: %.0f, Height: %.0f}", b.BottomLeft.ToString(), b.Width, b.Height)
}
