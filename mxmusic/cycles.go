package mxmusic

import (
	"fmt"
	"math"

	"oss.mustex.org/mustex/mxgraph"
)

// SingleCycleOpts describes a k-in-n cycle figure: n nodes evenly spaced on
// a circle, a highlighted subset drawn full black, and optional lines
// between the highlighted nodes.
type SingleCycleOpts struct {
	N int
	// Highlight lists the indices drawn full black. Nil highlights all.
	Highlight []int
	Radius    float64
	// Lines draws connectors between highlighted nodes.
	Lines bool
	// AdjacentNotAll restricts lines to neighbouring highlights (plus the
	// closing edge); false connects all pairs.
	AdjacentNotAll bool
	// Tonality labels nodes with pitch class names; requires N == 12.
	Tonality bool
	// DenominatorInLabel labels count nodes "i/n" instead of "i".
	DenominatorInLabel bool
}

// SingleCycle builds the description of a k-in-n cycle.
func SingleCycle(opts SingleCycleOpts) (*mxgraph.Diagram, error) {
	if opts.N <= 0 {
		return nil, &mxgraph.LayoutConstraintError{Reason: "cycle length must be positive"}
	}
	if opts.Tonality && opts.N != 12 {
		return nil, &mxgraph.LayoutConstraintError{
			Reason: fmt.Sprintf("pitch class labels need a cycle length of 12, not %d", opts.N),
		}
	}

	ks := opts.Highlight
	if ks == nil {
		ks = make([]int, opts.N)
		for i := range ks {
			ks[i] = i
		}
	}
	highlighted := make(map[int]struct{}, len(ks))
	for _, k := range ks {
		if k < 0 || k >= opts.N {
			return nil, &mxgraph.LayoutConstraintError{
				Reason: fmt.Sprintf("highlighted index %d is outside the cycle of %d", k, opts.N),
			}
		}
		highlighted[k] = struct{}{}
	}

	d := mxgraph.NewDiagram("cycle", mxgraph.FamilyCycle)
	d.Opts.Radius = opts.Radius

	for i := 0; i < opts.N; i++ {
		el, err := mxgraph.NewElement(
			fmt.Sprintf("n%d", i),
			cycleLabel(i, opts),
			mxgraph.ShapeCircle,
			mxgraph.DEFAULT_SIZE, mxgraph.DEFAULT_SIZE,
		)
		if err != nil {
			return nil, err
		}
		_, el.Filled = highlighted[i]
		if err := d.AddElement(el); err != nil {
			return nil, err
		}
	}

	if opts.Lines {
		if err := highlightLines(d, ks, opts.AdjacentNotAll); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func cycleLabel(i int, opts SingleCycleOpts) string {
	if opts.Tonality {
		return PitchClassName(i)
	}
	if opts.DenominatorInLabel {
		return fmt.Sprintf("%d/%d", i, opts.N)
	}
	return fmt.Sprintf("%d", i)
}

// highlightLines connects the highlighted nodes: neighbouring pairs plus the
// closing last->first edge, or every pair.
func highlightLines(d *mxgraph.Diagram, ks []int, adjacentNotAll bool) error {
	name := func(k int) string { return fmt.Sprintf("n%d", k) }

	if adjacentNotAll {
		for i := 0; i+1 < len(ks); i++ {
			if err := d.AddConnector(&mxgraph.Connector{Src: name(ks[i]), Dst: name(ks[i+1]), Style: mxgraph.StyleLine}); err != nil {
				return err
			}
		}
		if len(ks) > 1 {
			if err := d.AddConnector(&mxgraph.Connector{Src: name(ks[len(ks)-1]), Dst: name(ks[0]), Style: mxgraph.StyleLine}); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < len(ks); i++ {
		for j := i + 1; j < len(ks); j++ {
			if err := d.AddConnector(&mxgraph.Connector{Src: name(ks[i]), Dst: name(ks[j]), Style: mxgraph.StyleLine}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Crossing maps an inner ring index to an outer ring index. Ring alignment
// is semantic, not geometric, so the caller spells it out.
type Crossing struct {
	Inner int
	Outer int
}

type DoubleCycleOpts struct {
	InnerN, OuterN                 int
	InnerHighlight, OuterHighlight []int
	InnerRadius, OuterRadius       float64
	// Crossings become tipless ring-crossing lines.
	Crossings []Crossing
}

// DoubleCycle builds the description of two concentric k-in-n rings.
func DoubleCycle(opts DoubleCycleOpts) (*mxgraph.Diagram, error) {
	if opts.InnerN <= 0 || opts.OuterN <= 0 {
		return nil, &mxgraph.LayoutConstraintError{Reason: "ring lengths must be positive"}
	}

	d := mxgraph.NewDiagram("double_cycle", mxgraph.FamilyDoubleCycle)
	d.Opts.InnerRadius = opts.InnerRadius
	d.Opts.OuterRadius = opts.OuterRadius

	if err := addRing(d, "i", opts.InnerN, opts.InnerHighlight, mxgraph.RingInner); err != nil {
		return nil, err
	}
	if err := addRing(d, "o", opts.OuterN, opts.OuterHighlight, mxgraph.RingOuter); err != nil {
		return nil, err
	}

	for _, cr := range opts.Crossings {
		if cr.Inner < 0 || cr.Inner >= opts.InnerN || cr.Outer < 0 || cr.Outer >= opts.OuterN {
			return nil, &mxgraph.LayoutConstraintError{
				Reason: fmt.Sprintf("crossing (%d, %d) is outside the rings", cr.Inner, cr.Outer),
			}
		}
		err := d.AddConnector(&mxgraph.Connector{
			Src:   fmt.Sprintf("i%d", cr.Inner),
			Dst:   fmt.Sprintf("o%d", cr.Outer),
			Style: mxgraph.StyleLine,
		})
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func addRing(d *mxgraph.Diagram, prefix string, n int, ks []int, ring int) error {
	highlighted := make(map[int]struct{}, len(ks))
	if ks == nil {
		for i := 0; i < n; i++ {
			highlighted[i] = struct{}{}
		}
	}
	for _, k := range ks {
		if k < 0 || k >= n {
			return &mxgraph.LayoutConstraintError{
				Reason: fmt.Sprintf("highlighted index %d is outside the ring of %d", k, n),
			}
		}
		highlighted[k] = struct{}{}
	}

	for i := 0; i < n; i++ {
		el, err := mxgraph.NewElement(
			fmt.Sprintf("%s%d", prefix, i),
			fmt.Sprintf("%d", i),
			mxgraph.ShapeCircle,
			mxgraph.DEFAULT_SIZE, mxgraph.DEFAULT_SIZE,
		)
		if err != nil {
			return err
		}
		el.Ring = ring
		_, el.Filled = highlighted[i]
		if err := d.AddElement(el); err != nil {
			return err
		}
	}
	return nil
}

// CycleScale mirrors the hand-tuned picture scaling of the original figures:
// larger cycles render at a larger tikzpicture scale so node labels stay
// readable.
func CycleScale(n int) float64 {
	return math.Max(1, math.Log2(float64(n))-1)
}
