package mxlib_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/lib/log"
	"oss.mustex.org/mustex/mxgraph"
	"oss.mustex.org/mustex/mxlib"
	"oss.mustex.org/mustex/mxmusic"
	"oss.mustex.org/mustex/mxrenderers/mxtikz"
	"oss.mustex.org/mustex/mxtarget"
)

func testContext(t *testing.T) context.Context {
	return log.WithTB(context.Background(), t, nil)
}

func TestCompileSevenNoteCycle(t *testing.T) {
	names := []string{"C", "D", "E", "F", "G", "A", "B"}
	d := mxgraph.NewDiagram("scale", mxgraph.FamilyCycle)
	d.Opts.AdjacencyChain = true
	d.Opts.ClosingEdge = true
	for i, name := range names {
		el, err := mxgraph.NewElement(fmt.Sprintf("n%d", i), name, mxgraph.ShapeCircle, 0.6, 0.6)
		require.NoError(t, err)
		require.NoError(t, d.AddElement(el))
	}

	out, err := mxlib.Compile(testContext(t), d)
	require.NoError(t, err)

	assert.Len(t, out.Shapes, 7)
	// 6 chain edges plus the closing edge
	assert.Len(t, out.Connections, 7)
	require.Len(t, out.Guides, 1)

	// every anchor sits strictly inside the ring circle and the chain
	// renders as plain lines, no arrowheads
	for _, c := range out.Connections {
		r := out.Guides[0].Radius
		origin := geo.NewPoint(0, 0)
		assert.Less(t, c.SrcAnchor.DistanceTo(origin), r)
		assert.Less(t, c.DstAnchor.DistanceTo(origin), r)
		assert.Equal(t, mxtarget.ArrowheadNone, c.SrcArrow)
		assert.Equal(t, mxtarget.ArrowheadNone, c.DstArrow)
	}
}

func TestRenderChordSchema(t *testing.T) {
	d, err := mxmusic.ChordSchema("C", []mxmusic.TaggedNote{
		{Name: "E", Tag: 4},
		{Name: "G", Tag: 7},
	})
	require.NoError(t, err)

	out, err := mxlib.Render(testContext(t), d, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "rounded corners=5pt, dashed")
	assert.Contains(t, out, "{C}")
	// one straight and one curved arrow, both annotated
	assert.Contains(t, out, "node[midway, left] {4}")
	assert.Contains(t, out, ".. controls ")
	assert.Equal(t, 2, strings.Count(out, "\\draw[->]"))
}

func TestRenderMIDITable(t *testing.T) {
	d, err := mxmusic.MIDITable(4, 5, false)
	require.NoError(t, err)

	out, err := mxlib.Render(testContext(t), d, nil)
	require.NoError(t, err)

	assert.Contains(t, out, `\textbf{MIDI}`)
	assert.Contains(t, out, "{48}")
	assert.Contains(t, out, `{E$\flat$}`)
	assert.NotContains(t, out, "\\draw[->]")
}

func TestRenderFailsBeforeMarkup(t *testing.T) {
	d := mxgraph.NewDiagram("bad", mxgraph.FamilySchema)
	el, err := mxgraph.NewElement("a", "a", mxgraph.ShapeCircle, 0.6, 0.6)
	require.NoError(t, err)
	require.NoError(t, d.AddElement(el))
	require.NoError(t, d.AddConnector(&mxgraph.Connector{Src: "a", Dst: "missing"}))

	out, err := mxlib.Render(testContext(t), d, &mxtikz.RenderOpts{IncludePreamble: true})
	var uee *mxgraph.UnknownElementError
	require.True(t, errors.As(err, &uee))
	assert.Equal(t, "", out)
}

func TestRenderScaledStandalone(t *testing.T) {
	d, err := mxmusic.SingleCycle(mxmusic.SingleCycleOpts{N: 16})
	require.NoError(t, err)

	out, err := mxlib.Render(testContext(t), d, &mxtikz.RenderOpts{
		IncludePreamble: true,
		Scale:           mxmusic.CycleScale(16),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "\\documentclass"))
	assert.Contains(t, out, "[scale=3.00]")
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
}
