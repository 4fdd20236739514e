package mxmusic

import (
	"sort"

	"oss.mustex.org/mustex/mxgraph"
)

// Tresillo is the 3-in-8 tresillo rhythm as an onset cycle with its adjacent
// interval lines drawn.
func Tresillo() (*mxgraph.Diagram, error) {
	return SingleCycle(SingleCycleOpts{
		N:              8,
		Highlight:      []int{0, 3, 6},
		Lines:          true,
		AdjacentNotAll: true,
	})
}

// DoubleTresilloAllIntervals is the 6-in-16 double tresillo with every
// pairwise interval between onsets drawn.
func DoubleTresilloAllIntervals() (*mxgraph.Diagram, error) {
	return SingleCycle(SingleCycleOpts{
		N:         16,
		Highlight: []int{0, 3, 6, 8, 11, 14},
		Lines:     true,
	})
}

// TonalityExample highlights a diminished seventh chord on the chromatic
// circle with pitch names as labels.
func TonalityExample() (*mxgraph.Diagram, error) {
	return SingleCycle(SingleCycleOpts{
		N:         12,
		Highlight: []int{2, 5, 8, 11},
		Lines:     true,
		Tonality:  true,
	})
}

// TwoCircles3in8 nests a full 3-cycle inside an 8-cycle with the tresillo
// onsets highlighted on the outer ring.
func TwoCircles3in8() (*mxgraph.Diagram, error) {
	return DoubleCycle(DoubleCycleOpts{
		InnerN:         3,
		OuterN:         8,
		OuterHighlight: []int{0, 3, 5},
	})
}

// MinorTriad is the chord schema of a C minor triad with tagged intervals
// above the root.
func MinorTriad() (*mxgraph.Diagram, error) {
	return ChordSchema("C", []TaggedNote{
		{Name: `E$\flat$`, Tag: 3},
		{Name: "G", Tag: 7},
	})
}

// MIDIOctaves is the MIDI comparison table over octaves 4 and 5 with open
// ends.
func MIDIOctaves() (*mxgraph.Diagram, error) {
	return MIDITable(4, 6, true)
}

// Sixteenths is the grid/tatum demonstration down to sixteenth divisions of
// a four-unit span.
func Sixteenths() (*mxgraph.Diagram, error) {
	return GridTatum(4, 4)
}

// Examples maps example names to their builders.
var Examples = map[string]func() (*mxgraph.Diagram, error){
	"tresillo":        Tresillo,
	"double-tresillo": DoubleTresilloAllIntervals,
	"tonality":        TonalityExample,
	"two-circles":     TwoCircles3in8,
	"minor-triad":     MinorTriad,
	"midi-octaves":    MIDIOctaves,
	"sixteenths":      Sixteenths,
}

// ExampleNames returns the registered example names sorted.
func ExampleNames() []string {
	names := make([]string, 0, len(Examples))
	for name := range Examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
