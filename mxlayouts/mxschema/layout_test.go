package mxschema_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/lib/go2"
	"oss.mustex.org/mustex/lib/log"
	"oss.mustex.org/mustex/mxgraph"
	"oss.mustex.org/mustex/mxlayouts/mxschema"
)

func testContext(t *testing.T) context.Context {
	return log.WithTB(context.Background(), t, nil)
}

func addElement(t *testing.T, d *mxgraph.Diagram, name string) *mxgraph.Element {
	t.Helper()
	el, err := mxgraph.NewElement(name, name, mxgraph.ShapeCircle, 0.6, 0.6)
	require.NoError(t, err)
	require.NoError(t, d.AddElement(el))
	return el
}

func TestLayoutReadingOrder(t *testing.T) {
	d := mxgraph.NewDiagram("schema", mxgraph.FamilySchema)
	d.Opts.Columns = 2
	for i := 0; i < 5; i++ {
		addElement(t, d, fmt.Sprintf("e%d", i))
	}
	require.NoError(t, mxschema.Layout(testContext(t), d))

	// cell = 0.6 + default gutter
	cell := 0.6 + mxgraph.DEFAULT_GUTTER

	// e0 e1 / e2 e3 / e4, rows growing downward
	wants := []struct {
		name string
		x, y float64
	}{
		{"e0", 0, 0},
		{"e1", cell, 0},
		{"e2", 0, -cell},
		{"e3", cell, -cell},
		{"e4", 0, -2 * cell},
	}
	for _, want := range wants {
		el := d.Lookup(want.name)
		require.NotNil(t, el.Box, want.name)
		assert.InDelta(t, want.x, el.Center().X, 1e-9, want.name)
		assert.InDelta(t, want.y, el.Center().Y, 1e-9, want.name)
	}
}

func TestLayoutZeroGutter(t *testing.T) {
	d := mxgraph.NewDiagram("schema", mxgraph.FamilySchema)
	d.Opts.Columns = 2
	d.Opts.Gutter = go2.Pointer(0.0)
	addElement(t, d, "a")
	addElement(t, d, "b")
	require.NoError(t, mxschema.Layout(testContext(t), d))

	// no gutter packs the cells edge to edge
	assert.InDelta(t, 0, d.Lookup("a").Center().X, 1e-9)
	assert.InDelta(t, 0.6, d.Lookup("b").Center().X, 1e-9)
}

func TestLayoutSkipsOccupiedCells(t *testing.T) {
	d := mxgraph.NewDiagram("schema", mxgraph.FamilySchema)
	d.Opts.Columns = 2
	pinned := addElement(t, d, "pinned")
	pinned.Cell = &mxgraph.Cell{Row: 0, Col: 1}
	free := addElement(t, d, "free")
	other := addElement(t, d, "other")
	require.NoError(t, mxschema.Layout(testContext(t), d))

	assert.Equal(t, mxgraph.Cell{Row: 0, Col: 0}, *free.Cell)
	// (0, 1) is taken by the pinned element
	assert.Equal(t, mxgraph.Cell{Row: 1, Col: 0}, *other.Cell)
}

func TestLayoutFreePositions(t *testing.T) {
	d := mxgraph.NewDiagram("schema", mxgraph.FamilySchema)
	el := addElement(t, d, "floating")
	el.Pos = geo.NewPoint(2.5, -1.25)
	require.NoError(t, mxschema.Layout(testContext(t), d))

	require.NotNil(t, el.Box)
	assert.Equal(t, 2.5, el.Center().X)
	assert.Equal(t, -1.25, el.Center().Y)
}

func TestLayoutDuplicateCell(t *testing.T) {
	d := mxgraph.NewDiagram("schema", mxgraph.FamilySchema)
	a := addElement(t, d, "a")
	a.Cell = &mxgraph.Cell{Row: 0, Col: 0}
	b := addElement(t, d, "b")
	b.Cell = &mxgraph.Cell{Row: 0, Col: 0}

	err := mxschema.Layout(testContext(t), d)
	var lce *mxgraph.LayoutConstraintError
	require.True(t, errors.As(err, &lce))
}

func TestLayoutRowOverflow(t *testing.T) {
	d := mxgraph.NewDiagram("schema", mxgraph.FamilySchema)
	d.Opts.Columns = 2
	d.Opts.Rows = 1
	for i := 0; i < 3; i++ {
		addElement(t, d, fmt.Sprintf("e%d", i))
	}
	err := mxschema.Layout(testContext(t), d)
	var lce *mxgraph.LayoutConstraintError
	require.True(t, errors.As(err, &lce))
}
