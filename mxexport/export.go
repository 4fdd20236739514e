// Package mxexport turns a laid-out mxgraph.Diagram into the renderable
// mxtarget model. This is where connector anchors are resolved: always on
// the boundary of each endpoint's shape, never at its center, so arrows
// terminate at the node edge.
package mxexport

import (
	"context"
	"fmt"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/lib/shape"
	"oss.mustex.org/mustex/mxgraph"
	"oss.mustex.org/mustex/mxtarget"
)

// DEFAULT_BOW is the perpendicular control point distance used when a curved
// connector does not set one.
const DEFAULT_BOW = 0.5

func Export(ctx context.Context, d *mxgraph.Diagram) (*mxtarget.Diagram, error) {
	diagram := &mxtarget.Diagram{
		Name: d.Name,
	}

	for _, g := range d.Guides {
		diagram.Guides = append(diagram.Guides, mxtarget.Guide{
			Kind:   guideKind(g.Kind),
			Center: g.Center,
			Radius: g.Radius,
			Box:    g.Box,
			Dashed: g.Dashed,
		})
	}

	for _, el := range d.Elements {
		if el.Box == nil {
			return nil, fmt.Errorf("element %q has no position: layout must run before export", el.Name)
		}
		diagram.Shapes = append(diagram.Shapes, mxtarget.Shape{
			ID:       el.Name,
			Type:     el.Shape,
			Pos:      el.Center(),
			Width:    el.Width,
			Height:   el.Height,
			Label:    exportLabel(d, el),
			Filled:   el.Filled,
			AngleDeg: el.AngleDeg,
		})
	}

	// fail fast: every connector is resolved before any markup exists, so a
	// bad reference can never leave partial output behind
	for _, c := range d.Connectors {
		conn, err := exportConnector(d, c)
		if err != nil {
			return nil, err
		}
		diagram.Connections = append(diagram.Connections, *conn)
	}

	return diagram, nil
}

func guideKind(kind string) string {
	if kind == mxgraph.GuideRect {
		return mxtarget.GuideRect
	}
	return mxtarget.GuideCircle
}

func exportLabel(d *mxgraph.Diagram, el *mxgraph.Element) string {
	if d.Family == mxgraph.FamilyTable && d.Opts.Headers && el.Cell != nil && el.Label != "" {
		// row headers live in the first column
		if el.Cell.Col == 0 {
			return `\textbf{` + el.Label + `}`
		}
	}
	return el.Label
}

func exportConnector(d *mxgraph.Diagram, c *mxgraph.Connector) (*mxtarget.Connection, error) {
	src := d.Lookup(c.Src)
	if src == nil {
		return nil, &mxgraph.UnknownElementError{Name: c.Src}
	}
	dst := d.Lookup(c.Dst)
	if dst == nil {
		return nil, &mxgraph.UnknownElementError{Name: c.Dst}
	}

	srcAnchor, dstAnchor := resolveAnchors(src, dst)

	conn := &mxtarget.Connection{
		Src:       c.Src,
		Dst:       c.Dst,
		Style:     c.Style,
		Label:     c.Label,
		SrcAnchor: srcAnchor,
		DstAnchor: dstAnchor,
		SrcArrow:  mxtarget.ArrowheadNone,
		DstArrow:  mxtarget.ArrowheadTriangle,
	}

	switch c.Style {
	case mxgraph.StyleLine:
		conn.DstArrow = mxtarget.ArrowheadNone
	case mxgraph.StyleBidirectional:
		conn.SrcArrow = mxtarget.ArrowheadTriangle
	case mxgraph.StyleCurved:
		bow := c.Bow
		if bow == 0 {
			bow = DEFAULT_BOW
		}
		conn.Control = controlPoint(srcAnchor, dstAnchor, bow)
	}

	return conn, nil
}

// resolveAnchors intersects the center-to-center line with each endpoint's
// shape boundary. When the shapes overlap and the line never crosses a
// border, the center is the only sensible fallback.
func resolveAnchors(src, dst *mxgraph.Element) (srcAnchor, dstAnchor *geo.Point) {
	srcCenter := src.Center()
	dstCenter := dst.Center()

	srcShape := shape.NewShape(src.Shape, src.Box)
	dstShape := shape.NewShape(dst.Shape, dst.Box)

	srcAnchor = shape.TraceToBorder(srcShape, geo.NewSegment(srcCenter, dstCenter))
	if srcAnchor == nil {
		srcAnchor = srcCenter
	}
	dstAnchor = shape.TraceToBorder(dstShape, geo.NewSegment(dstCenter, srcCenter))
	if dstAnchor == nil {
		dstAnchor = dstCenter
	}
	return srcAnchor, dstAnchor
}

// controlPoint offsets the anchor midpoint perpendicular to the connector
// direction. Positive bow bends left of src->dst. Coincident anchors have no
// direction to bend off, so the midpoint itself is the control point.
func controlPoint(srcAnchor, dstAnchor *geo.Point, bow float64) *geo.Point {
	mid := srcAnchor.Interpolate(dstAnchor, 0.5)
	if srcAnchor.DistanceTo(dstAnchor) < geo.PRECISION {
		return mid
	}
	nx, ny := geo.UnitNormal(srcAnchor.X, srcAnchor.Y, dstAnchor.X, dstAnchor.Y)
	return geo.NewPoint(mid.X+nx*bow, mid.Y+ny*bow)
}
