// Package mxtable places (row, column)-tagged cells on a uniform grid with
// no connectors. Ragged input is legitimate: a missing cell leaves its grid
// position empty. Callers wanting arrows on a grid should use the schema
// layout instead.
package mxtable

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
	if len(d.Connectors) > 0 {
		return &mxgraph.LayoutConstraintError{Reason: "table layout does not support connectors"}
	}

	opts := d.Opts
	opts.ApplyDefaults()

	occupied := map[mxgraph.Cell]string{}
	rows, cols := opts.Rows, opts.Columns
	for _, el := range d.Elements {
		if el.Cell == nil {
			return &mxgraph.LayoutConstraintError{Reason: "table element " + el.Name + " has no cell"}
		}
		if prev, ok := occupied[*el.Cell]; ok {
			return &mxgraph.LayoutConstraintError{
				Reason: fmt.Sprintf("elements %q and %q share cell (%d, %d)", prev, el.Name, el.Cell.Row, el.Cell.Col),
			}
		}
		occupied[*el.Cell] = el.Name
		rows = go2.Max(rows, el.Cell.Row+1)
		cols = go2.Max(cols, el.Cell.Col+1)
	}

	if opts.Rows > 0 && rows > opts.Rows {
		return &mxgraph.LayoutConstraintError{Reason: fmt.Sprintf("cells overflow the requested %d rows", opts.Rows)}
	}
	if opts.Columns > 0 && cols > opts.Columns {
		return &mxgraph.LayoutConstraintError{Reason: fmt.Sprintf("cells overflow the requested %d columns", opts.Columns)}
	}

	log.Debug(ctx, "table layout", slog.F("rows", rows), slog.F("cols", cols), slog.F("cells", len(d.Elements)))

	cellW, cellH := cellSize(d.Elements, *opts.Gutter)
	for _, el := range d.Elements {
		center := geo.NewPoint(float64(el.Cell.Col)*cellW, -float64(el.Cell.Row)*cellH)
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
