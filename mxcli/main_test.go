package mxcli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.mustex.org/mustex/lib/log"
	"oss.mustex.org/mustex/mxmusic"
)

// The full command loop (flags, watch, stdio) is exercised by hand and kept
// thin; these cover the decisions the command makes on its own.

func TestRenameExt(t *testing.T) {
	assert.Equal(t, "figure.tex", renameExt("figure.yaml", ".tex"))
	assert.Equal(t, "figure.tex", renameExt("figure", ".tex"))
	assert.Equal(t, "a/b/figure.tex", renameExt("a/b/figure.json", ".tex"))
}

func TestRenderAutoScale(t *testing.T) {
	ctx := log.WithTB(context.Background(), t, nil)

	d, err := mxmusic.SingleCycle(mxmusic.SingleCycleOpts{N: 16})
	require.NoError(t, err)
	out, err := render(ctx, d, false, -1)
	require.NoError(t, err)
	assert.Contains(t, out, "[scale=3.00]")

	// explicit scale wins over the per-family pick
	d, err = mxmusic.SingleCycle(mxmusic.SingleCycleOpts{N: 16})
	require.NoError(t, err)
	out, err = render(ctx, d, false, 2)
	require.NoError(t, err)
	assert.Contains(t, out, "[scale=2.00]")

	// schemas stay at scale 1
	d, err = mxmusic.ChordSchema("C", []mxmusic.TaggedNote{{Name: "G", Tag: 7}})
	require.NoError(t, err)
	out, err = render(ctx, d, false, -1)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "\\begin{tikzpicture}\n"))
}
