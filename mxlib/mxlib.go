// Package mxlib ties the pipeline together: validate the description, run
// the family's layout strategy, resolve connector anchors, and emit TikZ.
// The engine does no I/O; callers own reading descriptions and writing the
// returned markup.
package mxlib

import (
	"context"

	"oss.mustex.org/mustex/mxexport"
	"oss.mustex.org/mustex/mxgraph"
	"oss.mustex.org/mustex/mxlayouts/mxcycle"
	"oss.mustex.org/mustex/mxlayouts/mxschema"
	"oss.mustex.org/mustex/mxlayouts/mxtable"
	"oss.mustex.org/mustex/mxrenderers/mxtikz"
	"oss.mustex.org/mustex/mxtarget"
)

// Compile validates, lays out and exports a diagram description. The
// description is consumed: layout assigns positions in place and may append
// the opted-in cycle connectors. Errors are always raised before any markup
// exists, so a failed Compile never leaves partial output.
func Compile(ctx context.Context, d *mxgraph.Diagram) (*mxtarget.Diagram, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var err error
	switch d.Family {
	case mxgraph.FamilyCycle, mxgraph.FamilyDoubleCycle:
		err = mxcycle.Layout(ctx, d)
	case mxgraph.FamilyTable:
		err = mxtable.Layout(ctx, d)
	default:
		err = mxschema.Layout(ctx, d)
	}
	if err != nil {
		return nil, err
	}

	return mxexport.Export(ctx, d)
}

// Render compiles the description and serializes it to TikZ source.
func Render(ctx context.Context, d *mxgraph.Diagram, opts *mxtikz.RenderOpts) (string, error) {
	diagram, err := Compile(ctx, d)
	if err != nil {
		return "", err
	}
	return mxtikz.Render(diagram, opts)
}
