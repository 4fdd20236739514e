package mxexport_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/lib/log"
	"oss.mustex.org/mustex/mxexport"
	"oss.mustex.org/mustex/mxgraph"
	"oss.mustex.org/mustex/mxtarget"
)

func testContext(t *testing.T) context.Context {
	return log.WithTB(context.Background(), t, nil)
}

// placed builds an element with its box already set, as a layout would.
func placed(t *testing.T, d *mxgraph.Diagram, name, kind string, cx, cy, w, h float64) *mxgraph.Element {
	t.Helper()
	el, err := mxgraph.NewElement(name, name, kind, w, h)
	require.NoError(t, err)
	el.Box = geo.NewBoxFromCenter(geo.NewPoint(cx, cy), w, h)
	require.NoError(t, d.AddElement(el))
	return el
}

func TestExportCircleAnchors(t *testing.T) {
	d := mxgraph.NewDiagram("anchors", mxgraph.FamilySchema)
	placed(t, d, "a", mxgraph.ShapeCircle, 0, 0, 1, 1)
	placed(t, d, "b", mxgraph.ShapeCircle, 4, 0, 1, 1)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "b"}))

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	require.Len(t, out.Connections, 1)

	conn := out.Connections[0]
	// anchors sit on each circle's boundary along the center line
	assert.InDelta(t, 0.5, conn.SrcAnchor.X, 1e-9)
	assert.InDelta(t, 0, conn.SrcAnchor.Y, 1e-9)
	assert.InDelta(t, 3.5, conn.DstAnchor.X, 1e-9)
	assert.InDelta(t, 0, conn.DstAnchor.Y, 1e-9)

	assert.Equal(t, mxtarget.ArrowheadNone, conn.SrcArrow)
	assert.Equal(t, mxtarget.ArrowheadTriangle, conn.DstArrow)
	assert.Nil(t, conn.Control)
}

func TestExportRectAnchorsOnFacingEdges(t *testing.T) {
	d := mxgraph.NewDiagram("anchors", mxgraph.FamilySchema)
	placed(t, d, "l", mxgraph.ShapeRect, 0, 0, 2, 1)
	placed(t, d, "r", mxgraph.ShapeRect, 5, 0, 2, 1)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "l", Dst: "r"}))

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	conn := out.Connections[0]

	// right edge of l, left edge of r
	assert.InDelta(t, 1, conn.SrcAnchor.X, 1e-9)
	assert.InDelta(t, 0, conn.SrcAnchor.Y, 1e-9)
	assert.InDelta(t, 4, conn.DstAnchor.X, 1e-9)
	assert.InDelta(t, 0, conn.DstAnchor.Y, 1e-9)
}

func TestExportOverlappingShapesFallBackToCenters(t *testing.T) {
	d := mxgraph.NewDiagram("anchors", mxgraph.FamilySchema)
	placed(t, d, "a", mxgraph.ShapeCircle, 0, 0, 2, 2)
	placed(t, d, "b", mxgraph.ShapeCircle, 0.1, 0, 2, 2)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "b"}))

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	conn := out.Connections[0]
	assert.InDelta(t, 0, conn.SrcAnchor.X, 1e-9)
	assert.InDelta(t, 0, conn.SrcAnchor.Y, 1e-9)
	assert.InDelta(t, 0.1, conn.DstAnchor.X, 1e-9)
	assert.InDelta(t, 0, conn.DstAnchor.Y, 1e-9)
}

func TestExportCurvedCoincidentAnchors(t *testing.T) {
	d := mxgraph.NewDiagram("stacked", mxgraph.FamilySchema)
	placed(t, d, "a", mxgraph.ShapeCircle, 1, 1, 2, 2)
	placed(t, d, "b", mxgraph.ShapeCircle, 1, 1, 2, 2)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "b", Style: mxgraph.StyleCurved, Bow: 1}))

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	conn := out.Connections[0]
	require.NotNil(t, conn.Control)

	// no direction to bend off: the control point stays at the midpoint,
	// never a NaN
	assert.InDelta(t, 1, conn.Control.X, 1e-9)
	assert.InDelta(t, 1, conn.Control.Y, 1e-9)
	assert.False(t, math.IsNaN(conn.Control.X))
	assert.False(t, math.IsNaN(conn.Control.Y))
}

func TestExportCurvedControlPoint(t *testing.T) {
	d := mxgraph.NewDiagram("curved", mxgraph.FamilySchema)
	placed(t, d, "a", mxgraph.ShapeCircle, 0, 0, 1, 1)
	placed(t, d, "b", mxgraph.ShapeCircle, 0, 4, 1, 1)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "b", Style: mxgraph.StyleCurved, Bow: 1}))

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	conn := out.Connections[0]
	require.NotNil(t, conn.Control)

	// midpoint of the anchors is (0, 2); positive bow bends left of the
	// upward direction, toward negative x
	assert.InDelta(t, -1, conn.Control.X, 1e-9)
	assert.InDelta(t, 2, conn.Control.Y, 1e-9)
}

func TestExportCurvedDefaultBow(t *testing.T) {
	d := mxgraph.NewDiagram("curved", mxgraph.FamilySchema)
	placed(t, d, "a", mxgraph.ShapeCircle, 0, 0, 1, 1)
	placed(t, d, "b", mxgraph.ShapeCircle, 4, 0, 1, 1)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "b", Style: mxgraph.StyleCurved}))

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	conn := out.Connections[0]
	require.NotNil(t, conn.Control)
	assert.InDelta(t, 2, conn.Control.X, 1e-9)
	assert.InDelta(t, mxexport.DEFAULT_BOW, conn.Control.Y, 1e-9)
}

func TestExportGuideKinds(t *testing.T) {
	d := mxgraph.NewDiagram("guides", mxgraph.FamilySchema)
	d.Guides = append(d.Guides,
		mxgraph.Guide{Kind: mxgraph.GuideCircle, Center: geo.NewPoint(0, 0), Radius: 2},
		mxgraph.Guide{Kind: mxgraph.GuideRect, Box: geo.NewBox(geo.NewPoint(-1, -1), 2, 2), Dashed: true},
	)

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	require.Len(t, out.Guides, 2)
	assert.Equal(t, mxtarget.GuideCircle, out.Guides[0].Kind)
	assert.Equal(t, mxtarget.GuideRect, out.Guides[1].Kind)
	assert.True(t, out.Guides[1].Dashed)
}

func TestExportLineHasNoArrowheads(t *testing.T) {
	d := mxgraph.NewDiagram("line", mxgraph.FamilySchema)
	placed(t, d, "a", mxgraph.ShapeCircle, 0, 0, 1, 1)
	placed(t, d, "b", mxgraph.ShapeCircle, 3, 0, 1, 1)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "b", Style: mxgraph.StyleLine}))

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	assert.Equal(t, mxtarget.ArrowheadNone, out.Connections[0].SrcArrow)
	assert.Equal(t, mxtarget.ArrowheadNone, out.Connections[0].DstArrow)
}

func TestExportBidirectionalArrowheads(t *testing.T) {
	d := mxgraph.NewDiagram("bidi", mxgraph.FamilySchema)
	placed(t, d, "a", mxgraph.ShapeCircle, 0, 0, 1, 1)
	placed(t, d, "b", mxgraph.ShapeCircle, 3, 0, 1, 1)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "b", Style: mxgraph.StyleBidirectional}))

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	assert.Equal(t, mxtarget.ArrowheadTriangle, out.Connections[0].SrcArrow)
	assert.Equal(t, mxtarget.ArrowheadTriangle, out.Connections[0].DstArrow)
}

func TestExportUnknownEndpointProducesNothing(t *testing.T) {
	d := mxgraph.NewDiagram("bad", mxgraph.FamilySchema)
	placed(t, d, "a", mxgraph.ShapeCircle, 0, 0, 1, 1)
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "ghost"}))

	out, err := mxexport.Export(testContext(t), d)
	var uee *mxgraph.UnknownElementError
	require.True(t, errors.As(err, &uee))
	assert.Equal(t, "ghost", uee.Name)
	assert.Nil(t, out)
}

func TestExportRequiresLayout(t *testing.T) {
	d := mxgraph.NewDiagram("unplaced", mxgraph.FamilySchema)
	el, err := mxgraph.NewElement("a", "a", mxgraph.ShapeCircle, 1, 1)
	require.NoError(t, err)
	require.NoError(t, d.AddElement(el))

	_, err = mxexport.Export(testContext(t), d)
	require.Error(t, err)
}

func TestExportBoldsRowHeaders(t *testing.T) {
	d := mxgraph.NewDiagram("table", mxgraph.FamilyTable)
	d.Opts.Headers = true
	head := placed(t, d, "head", mxgraph.ShapeText, 0, 0, 1, 0.5)
	head.Label = "MIDI"
	head.Cell = &mxgraph.Cell{Row: 0, Col: 0}
	val := placed(t, d, "val", mxgraph.ShapeText, 1.2, 0, 1, 0.5)
	val.Label = "60"
	val.Cell = &mxgraph.Cell{Row: 0, Col: 1}

	out, err := mxexport.Export(testContext(t), d)
	require.NoError(t, err)
	assert.Equal(t, `\textbf{MIDI}`, out.GetShape("head").Label)
	assert.Equal(t, "60", out.GetShape("val").Label)
}
