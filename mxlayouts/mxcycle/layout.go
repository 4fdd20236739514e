// Package mxcycle places elements evenly on one circle, or on two concentric
// rings sharing the same angular offset so ring elements align radially.
// Used for pitch-class and beat-class figures.
package mxcycle

import (
	"context"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/lib/go2"
	"oss.mustex.org/mustex/lib/log"
	"oss.mustex.org/mustex/mxgraph"

	"cdr.dev/slog"
)

// Layout positions the diagram's elements on their circles and, when the
// opt-in flags ask for it, appends the adjacency chain connectors.
func Layout(ctx context.Context, d *mxgraph.Diagram) error {
	opts := d.Opts
	opts.ApplyDefaults()

	switch d.Family {
	case mxgraph.FamilyDoubleCycle:
		return layoutDouble(ctx, d, opts)
	default:
		return layoutSingle(ctx, d, opts)
	}
}

func layoutSingle(ctx context.Context, d *mxgraph.Diagram, opts mxgraph.LayoutOpts) error {
	n := len(d.Elements)
	if n <= 0 {
		return &mxgraph.LayoutConstraintError{Reason: "cycle layout needs at least one element"}
	}

	radius := cycleRadius(d.Elements, n, opts.Radius, *opts.Padding)
	log.Debug(ctx, "cycle layout", slog.F("n", n), slog.F("radius", radius))

	placeRing(d.Elements, radius, *opts.OffsetDeg)
	d.Guides = append(d.Guides, mxgraph.Guide{
		Kind:   mxgraph.GuideCircle,
		Center: geo.NewPoint(0, 0),
		Radius: radius,
	})

	if opts.AdjacencyChain || opts.ClosingEdge {
		appendChain(d, d.Elements, opts.AdjacencyChain, opts.ClosingEdge)
	}
	return nil
}

func layoutDouble(ctx context.Context, d *mxgraph.Diagram, opts mxgraph.LayoutOpts) error {
	var inner, outer []*mxgraph.Element
	for _, el := range d.Elements {
		if el.Ring == mxgraph.RingOuter {
			outer = append(outer, el)
		} else {
			inner = append(inner, el)
		}
	}
	if len(inner) == 0 || len(outer) == 0 {
		return &mxgraph.LayoutConstraintError{Reason: "double cycle layout needs elements on both rings"}
	}

	innerRadius := cycleRadius(inner, len(inner), opts.InnerRadius, *opts.Padding)
	outerRadius := cycleRadius(outer, len(outer), opts.OuterRadius, *opts.Padding)
	if outerRadius <= innerRadius {
		return &mxgraph.LayoutConstraintError{Reason: "outer radius must exceed inner radius"}
	}
	log.Debug(ctx, "double cycle layout",
		slog.F("inner_n", len(inner)), slog.F("inner_radius", innerRadius),
		slog.F("outer_n", len(outer)), slog.F("outer_radius", outerRadius))

	// both rings share the offset so element 0 of each lies on one radial line
	placeRing(inner, innerRadius, *opts.OffsetDeg)
	placeRing(outer, outerRadius, *opts.OffsetDeg)
	origin := geo.NewPoint(0, 0)
	d.Guides = append(d.Guides,
		mxgraph.Guide{Kind: mxgraph.GuideCircle, Center: origin, Radius: innerRadius},
		mxgraph.Guide{Kind: mxgraph.GuideCircle, Center: origin, Radius: outerRadius},
	)

	if opts.AdjacencyChain || opts.ClosingEdge {
		appendChain(d, inner, opts.AdjacencyChain, opts.ClosingEdge)
		appendChain(d, outer, opts.AdjacencyChain, opts.ClosingEdge)
	}
	return nil
}

// cycleRadius grows the requested radius until neighbouring elements cannot
// collide: the chord between centers must fit the largest element plus
// padding.
func cycleRadius(elements []*mxgraph.Element, n int, requested, padding float64) float64 {
	maxSize := 0.0
	for _, el := range elements {
		maxSize = go2.Max(maxSize, go2.Max(el.Width, el.Height))
	}
	return go2.Max(requested, geo.MinCycleRadius(n, maxSize, padding))
}

func placeRing(elements []*mxgraph.Element, radius, offsetDeg float64) {
	origin := geo.NewPoint(0, 0)
	n := len(elements)
	for i, el := range elements {
		angle := geo.RadialAngle(i, n, offsetDeg)
		center := geo.PointOnCircle(origin, radius, angle)
		el.Box = geo.NewBoxFromCenter(center, el.Width, el.Height)
		el.AngleDeg = go2.Pointer(angle)
	}
}

// appendChain links each element to its clockwise neighbour, optionally
// closing the polygon with a last->first edge.
func appendChain(d *mxgraph.Diagram, ring []*mxgraph.Element, chain, closing bool) {
	if chain {
		for i := 0; i+1 < len(ring); i++ {
			d.Connectors = append(d.Connectors, &mxgraph.Connector{
				Src:   ring[i].Name,
				Dst:   ring[i+1].Name,
				Style: mxgraph.StyleLine,
			})
		}
	}
	if closing && len(ring) > 1 {
		d.Connectors = append(d.Connectors, &mxgraph.Connector{
			Src:   ring[len(ring)-1].Name,
			Dst:   ring[0].Name,
			Style: mxgraph.StyleLine,
		})
	}
}
