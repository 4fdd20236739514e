// Package mxtarget is the output model of the engine: a fully positioned
// diagram that renderers walk in a stable order. It carries no behaviour
// beyond plain accessors so that any renderer target stays decoupled from
// layout.
package mxtarget

import (
	"oss.mustex.org/mustex/lib/geo"
)

const (
	ShapeCircle = "circle"
	ShapeRect   = "rect"
	ShapeText   = "text"
)

const (
	StyleLine          = "line"
	StyleStraight      = "straight"
	StyleCurved        = "curved"
	StyleDoubleHeaded  = "double-headed"
	StyleBidirectional = "bidirectional"
)

const (
	ArrowheadNone     = "none"
	ArrowheadTriangle = "triangle"
)

const (
	GuideCircle = "circle"
	GuideRect   = "rect"
)

type Diagram struct {
	Name string `json:"name"`

	Guides      []Guide      `json:"guides,omitempty"`
	Shapes      []Shape      `json:"shapes"`
	Connections []Connection `json:"connections"`
}

// Guide is a decoration drawn behind the shapes, e.g. the ring circle of a
// cycle figure.
type Guide struct {
	Kind   string     `json:"kind"`
	Center *geo.Point `json:"center,omitempty"`
	Radius float64    `json:"radius,omitempty"`
	Box    *geo.Box   `json:"box,omitempty"`
	Dashed bool       `json:"dashed,omitempty"`
}

// Shape is a positioned element. Pos is the element center.
type Shape struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	Pos    *geo.Point `json:"pos"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`

	Label  string `json:"label"`
	Filled bool   `json:"filled,omitempty"`

	// AngleDeg is set for cycle-family shapes only: the angular coordinate
	// on the ring, also used as the label direction hint.
	AngleDeg *float64 `json:"angleDeg,omitempty"`
}

// Connection joins two shape borders. SrcAnchor and DstAnchor lie on the
// respective shape boundaries, never at their centers.
type Connection struct {
	Src string `json:"src"`
	Dst string `json:"dst"`

	Style string `json:"style"`
	Label string `json:"label,omitempty"`

	SrcAnchor *geo.Point `json:"srcAnchor"`
	DstAnchor *geo.Point `json:"dstAnchor"`
	// Control is the bezier control point of curved connections, nil otherwise.
	Control *geo.Point `json:"control,omitempty"`

	SrcArrow string `json:"srcArrow"`
	DstArrow string `json:"dstArrow"`
}

func (d *Diagram) GetShape(id string) *Shape {
	for i := range d.Shapes {
		if d.Shapes[i].ID == id {
			return &d.Shapes[i]
		}
	}
	return nil
}
