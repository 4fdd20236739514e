// Package mxschema arranges elements on a logical grid (or at caller-given
// free positions) and leaves connector anchoring to the exporter. Placement
// and connection are two separate passes so a connector can reference an
// element that is laid out after it.
package mxschema

import (
	"context"
	"fmt"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/lib/go2"
	"oss.mustex.org/mustex/lib/log"
	"oss.mustex.org/mustex/mxgraph"

	"cdr.dev/slog"
)

func Layout(ctx context.Context, d *mxgraph.Diagram) error {
	opts := d.Opts
	opts.ApplyDefaults()

	// uniform cell size: the largest element plus the gutter, so no two
	// cells can overlap
	cellW, cellH := cellSize(d.Elements, *opts.Gutter)

	columns := opts.Columns
	if columns <= 0 {
		columns = go2.Max(1, len(d.Elements))
	}

	occupied := map[mxgraph.Cell]string{}
	for _, el := range d.Elements {
		if el.Pos != nil || el.Cell == nil {
			continue
		}
		if prev, ok := occupied[*el.Cell]; ok {
			return &mxgraph.LayoutConstraintError{
				Reason: fmt.Sprintf("elements %q and %q share cell (%d, %d)", prev, el.Name, el.Cell.Row, el.Cell.Col),
			}
		}
		occupied[*el.Cell] = el.Name
	}

	// assign untagged elements in reading order, skipping taken cells
	next := mxgraph.Cell{}
	advance := func() {
		next.Col++
		if next.Col >= columns {
			next.Col = 0
			next.Row++
		}
	}
	for _, el := range d.Elements {
		if el.Pos != nil || el.Cell != nil {
			continue
		}
		for {
			if _, ok := occupied[next]; !ok {
				break
			}
			advance()
		}
		cell := next
		el.Cell = &cell
		occupied[cell] = el.Name
		advance()
	}

	if opts.Rows > 0 {
		for cell, name := range occupied {
			if cell.Row >= opts.Rows {
				return &mxgraph.LayoutConstraintError{
					Reason: fmt.Sprintf("element %q overflows the requested %d rows", name, opts.Rows),
				}
			}
		}
	}

	log.Debug(ctx, "schema layout", slog.F("elements", len(d.Elements)), slog.F("columns", columns))

	for _, el := range d.Elements {
		var center *geo.Point
		if el.Pos != nil {
			center = el.Pos.Copy()
		} else {
			// row 0 is the top row, so rows grow downward
			center = geo.NewPoint(float64(el.Cell.Col)*cellW, -float64(el.Cell.Row)*cellH)
		}
		el.Box = geo.NewBoxFromCenter(center, el.Width, el.Height)
	}
	return nil
}

func cellSize(elements []*mxgraph.Element, gutter float64) (w, h float64) {
	for _, el := range elements {
		w = go2.Max(w, el.Width)
		h = go2.Max(h, el.Height)
	}
	return w + gutter, h + gutter
}
