// Package mxgraph holds the description model of a diagram: named elements,
// connectors between them, and the layout family with its parameters. A
// Diagram is built once by the caller, positioned in place by one layout
// strategy, then exported and never mutated again.
package mxgraph

import (
	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/lib/go2"
)

const (
	ShapeCircle = "circle"
	ShapeRect   = "rect"
	ShapeText   = "text"
)

const (
	// StyleLine is a tipless segment, used for the interval lines and ring
	// crossings of cycle figures.
	StyleLine          = "line"
	StyleStraight      = "straight"
	StyleCurved        = "curved"
	StyleDoubleHeaded  = "double-headed"
	StyleBidirectional = "bidirectional"
)

const (
	FamilySchema      = "schema"
	FamilyCycle       = "cycle"
	FamilyDoubleCycle = "double_cycle"
	FamilyTable       = "table"
)

const (
	RingInner = 0
	RingOuter = 1
)

const (
	// DEFAULT_SIZE is roughly the footprint of a 1.5em circle node in cm.
	DEFAULT_SIZE    = 0.6
	DEFAULT_GUTTER  = 0.4
	DEFAULT_PADDING = 0.2
	DEFAULT_RADIUS  = 1.0

	// two concentric rings, as in pitch-class-within-meter figures
	DEFAULT_INNER_RADIUS = 1.5
	DEFAULT_OUTER_RADIUS = 2.0
)

// Cell is a logical grid position. Row 0 is the top row.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Element struct {
	// Name is the unique identity connectors refer to.
	Name string `json:"name"`
	// Label is the display text. Empty label renders an empty node.
	Label  string  `json:"label"`
	Shape  string  `json:"shape"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Filled marks the element for full-black highlight rendering.
	Filled bool `json:"filled,omitempty"`

	// Cell pins the element to a schema/table grid cell. Untagged schema
	// elements are auto-assigned in reading order.
	Cell *Cell `json:"cell,omitempty"`
	// Pos places the element freely, bypassing grid assignment (schema only).
	Pos *geo.Point `json:"pos,omitempty"`
	// Ring selects the inner or outer ring in a double cycle.
	Ring int `json:"ring,omitempty"`

	// Box is assigned by the layout strategy and nil before layout.
	Box *geo.Box `json:"-"`
	// AngleDeg is the angular coordinate, set by cycle layouts only.
	AngleDeg *float64 `json:"-"`
}

// Center returns the element's positioned center. Panics before layout; the
// pipeline guarantees layout runs before anything asks for positions.
func (el *Element) Center() *geo.Point {
	return el.Box.Center()
}

type Connector struct {
	Src   string `json:"src"`
	Dst   string `json:"dst"`
	Style string `json:"style"`
	Label string `json:"label,omitempty"`
	// Bow is the signed perpendicular control point distance for curved
	// connectors. Positive bows to the left of the src->dst direction.
	Bow float64 `json:"bow,omitempty"`
}

// LayoutOpts carries every layout family's tunables. Callers set what their
// family uses; ApplyDefaults fills the rest. Explicit per-call options keep
// repeated or concurrent generation calls from interfering.
//
// Gutter, Padding and OffsetDeg are pointers because zero is a meaningful
// setting for each: nil means default.
type LayoutOpts struct {
	// schema/table
	Columns int      `json:"columns,omitempty"`
	Rows    int      `json:"rows,omitempty"`
	Gutter  *float64 `json:"gutter,omitempty"`
	Headers bool     `json:"headers,omitempty"`

	// cycles
	Radius      float64  `json:"radius,omitempty"`
	InnerRadius float64  `json:"inner_radius,omitempty"`
	OuterRadius float64  `json:"outer_radius,omitempty"`
	OffsetDeg   *float64 `json:"offset_deg,omitempty"`
	Padding     *float64 `json:"padding,omitempty"`

	// AdjacencyChain auto-generates connectors between clockwise neighbours.
	// Opt-in: double cycles typically want explicit ring-crossing connectors
	// instead.
	AdjacencyChain bool `json:"adjacency_chain,omitempty"`
	// ClosingEdge adds the last->first connector, closing the polygon.
	ClosingEdge bool `json:"closing_edge,omitempty"`
}

func (o *LayoutOpts) ApplyDefaults() {
	if o.Gutter == nil {
		o.Gutter = go2.Pointer(DEFAULT_GUTTER)
	}
	if o.Padding == nil {
		o.Padding = go2.Pointer(DEFAULT_PADDING)
	}
	if o.Radius == 0 {
		o.Radius = DEFAULT_RADIUS
	}
	if o.InnerRadius == 0 {
		o.InnerRadius = DEFAULT_INNER_RADIUS
	}
	if o.OuterRadius == 0 {
		o.OuterRadius = DEFAULT_OUTER_RADIUS
	}
	if o.OffsetDeg == nil {
		o.OffsetDeg = go2.Pointer(geo.TopOffsetDeg)
	}
}

const (
	GuideCircle = "circle"
	GuideRect   = "rect"
)

// Guide is a non-element decoration drawn behind the nodes: the ring circle
// of a cycle figure, or the dashed enclosure around a chord schema. Layouts
// and builders append guides; they never participate in anchoring.
type Guide struct {
	Kind   string     `json:"kind"`
	Center *geo.Point `json:"center,omitempty"`
	Radius float64    `json:"radius,omitempty"`
	Box    *geo.Box   `json:"box,omitempty"`
	Dashed bool       `json:"dashed,omitempty"`
}

type Diagram struct {
	Name   string `json:"name"`
	Family string `json:"family"`

	Opts LayoutOpts `json:"opts"`

	Elements   []*Element   `json:"elements"`
	Connectors []*Connector `json:"connectors,omitempty"`
	Guides     []Guide      `json:"guides,omitempty"`

	index map[string]*Element
}

func NewDiagram(name, family string) *Diagram {
	return &Diagram{
		Name:   name,
		Family: family,
		index:  make(map[string]*Element),
	}
}

// NewElement validates shape kind and size eagerly, before any layout runs.
func NewElement(name, label, shapeType string, width, height float64) (*Element, error) {
	switch shapeType {
	case ShapeCircle, ShapeRect, ShapeText:
	default:
		return nil, &InvalidShapeError{Name: name, Reason: "unrecognized shape kind " + shapeType}
	}
	if width <= 0 || height <= 0 {
		return nil, &InvalidShapeError{Name: name, Reason: "size must be positive"}
	}
	return &Element{
		Name:   name,
		Label:  label,
		Shape:  shapeType,
		Width:  width,
		Height: height,
	}, nil
}

func (d *Diagram) AddElement(el *Element) error {
	if d.index == nil {
		d.index = make(map[string]*Element)
	}
	if _, ok := d.index[el.Name]; ok {
		return &InvalidShapeError{Name: el.Name, Reason: "duplicate element name"}
	}
	d.index[el.Name] = el
	d.Elements = append(d.Elements, el)
	return nil
}

func (d *Diagram) AddConnector(c *Connector) error {
	switch c.Style {
	case "":
		c.Style = StyleStraight
	case StyleLine, StyleStraight, StyleCurved, StyleDoubleHeaded, StyleBidirectional:
	default:
		return &InvalidShapeError{Name: c.Src + " -> " + c.Dst, Reason: "unrecognized connector style " + c.Style}
	}
	d.Connectors = append(d.Connectors, c)
	return nil
}

// Lookup returns the element with the given name, or nil.
func (d *Diagram) Lookup(name string) *Element {
	if d.index == nil {
		d.reindex()
	}
	return d.index[name]
}

func (d *Diagram) reindex() {
	d.index = make(map[string]*Element, len(d.Elements))
	for _, el := range d.Elements {
		d.index[el.Name] = el
	}
}

// Validate fails fast on the whole diagram before any layout or markup work:
// element shapes and sizes, connector references and styles, and the layout
// constraints of the diagram's family.
func (d *Diagram) Validate() error {
	switch d.Family {
	case FamilySchema, FamilyCycle, FamilyDoubleCycle, FamilyTable:
	default:
		return &LayoutConstraintError{Reason: "unrecognized layout family " + d.Family}
	}

	seen := make(map[string]struct{}, len(d.Elements))
	for _, el := range d.Elements {
		switch el.Shape {
		case ShapeCircle, ShapeRect, ShapeText:
		default:
			return &InvalidShapeError{Name: el.Name, Reason: "unrecognized shape kind " + el.Shape}
		}
		if el.Width <= 0 || el.Height <= 0 {
			return &InvalidShapeError{Name: el.Name, Reason: "size must be positive"}
		}
		if _, ok := seen[el.Name]; ok {
			return &InvalidShapeError{Name: el.Name, Reason: "duplicate element name"}
		}
		seen[el.Name] = struct{}{}
	}

	for _, c := range d.Connectors {
		if _, ok := seen[c.Src]; !ok {
			return &UnknownElementError{Name: c.Src}
		}
		if _, ok := seen[c.Dst]; !ok {
			return &UnknownElementError{Name: c.Dst}
		}
		// a connector from an element to itself has no anchor direction
		if c.Src == c.Dst {
			return &InvalidShapeError{Name: c.Src, Reason: "connector endpoints must differ"}
		}
	}

	return d.validateFamily()
}

func (d *Diagram) validateFamily() error {
	switch d.Family {
	case FamilyCycle:
		if len(d.Elements) == 0 {
			return &LayoutConstraintError{Reason: "cycle layout needs at least one element"}
		}
	case FamilyDoubleCycle:
		inner, outer := 0, 0
		for _, el := range d.Elements {
			switch el.Ring {
			case RingInner:
				inner++
			case RingOuter:
				outer++
			default:
				return &LayoutConstraintError{Reason: "element " + el.Name + " is on an unknown ring"}
			}
		}
		if inner == 0 || outer == 0 {
			return &LayoutConstraintError{Reason: "double cycle layout needs elements on both rings"}
		}
		opts := d.Opts
		opts.ApplyDefaults()
		if opts.OuterRadius <= opts.InnerRadius {
			return &LayoutConstraintError{Reason: "outer radius must exceed inner radius"}
		}
	case FamilySchema:
		if d.Opts.Columns < 0 || d.Opts.Rows < 0 {
			return &LayoutConstraintError{Reason: "grid dimensions must be non-negative"}
		}
		if d.Opts.Rows > 0 && d.Opts.Columns > 0 {
			capacity := d.Opts.Rows * d.Opts.Columns
			gridded := 0
			for _, el := range d.Elements {
				if el.Pos == nil {
					gridded++
				}
			}
			if gridded > capacity {
				return &LayoutConstraintError{Reason: "grid too small for element count"}
			}
		}
	case FamilyTable:
		// tables are connector-free by construction; use schema for arrows on a grid
		if len(d.Connectors) > 0 {
			return &LayoutConstraintError{Reason: "table layout does not support connectors"}
		}
		for _, el := range d.Elements {
			if el.Cell == nil {
				return &LayoutConstraintError{Reason: "table element " + el.Name + " has no cell"}
			}
			if el.Cell.Row < 0 || el.Cell.Col < 0 {
				return &LayoutConstraintError{Reason: "table cell coordinates must be non-negative"}
			}
		}
	}
	return nil
}
