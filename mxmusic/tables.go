package mxmusic

import (
	"fmt"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/mxgraph"
)

const (
	tableCellWidth  = 0.8
	tableCellHeight = 0.5
)

// MIDITable builds a MIDI number / pitch name / pitch class comparison table
// covering startOctave up to but not including endOctave. With openEnded the
// rows start and end with an ellipsis instead of carrying bold row headers.
func MIDITable(startOctave, endOctave int, openEnded bool) (*mxgraph.Diagram, error) {
	if endOctave <= startOctave {
		return nil, &mxgraph.LayoutConstraintError{Reason: "end octave must exceed start octave"}
	}

	d := mxgraph.NewDiagram("midi", mxgraph.FamilyTable)
	d.Opts.Headers = !openEnded

	addCell := func(row, col int, name, label string) error {
		el, err := mxgraph.NewElement(name, label, mxgraph.ShapeText, tableCellWidth, tableCellHeight)
		if err != nil {
			return err
		}
		el.Cell = &mxgraph.Cell{Row: row, Col: col}
		return d.AddElement(el)
	}

	headers := []string{"MIDI", "Name", "Class"}
	for row, header := range headers {
		if openEnded {
			if err := addCell(row, 0, fmt.Sprintf("r%dstart", row), `\dots`); err != nil {
				return nil, err
			}
		} else {
			if err := addCell(row, 0, fmt.Sprintf("r%dhead", row), header); err != nil {
				return nil, err
			}
		}
	}

	col := 1
	for midi := startOctave * 12; midi < endOctave*12; midi++ {
		if err := addCell(0, col, fmt.Sprintf("midi%d", midi), fmt.Sprintf("%d", midi)); err != nil {
			return nil, err
		}
		if err := addCell(1, col, fmt.Sprintf("name%d", midi), PitchClassName(midi)); err != nil {
			return nil, err
		}
		if err := addCell(2, col, fmt.Sprintf("pc%d", midi), fmt.Sprintf("%d", midi%12)); err != nil {
			return nil, err
		}
		col++
	}

	if openEnded {
		for row := range headers {
			if err := addCell(row, col, fmt.Sprintf("r%dend", row), `\dots`); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// GridTatum builds a grid/tatum demonstration: one row per division 1/1
// through 1/nDivs, each splitting a span of lengthUnit into n equal cells
// labeled with the division. Rows stack upward so the coarsest division sits
// at the bottom.
func GridTatum(nDivs int, lengthUnit float64) (*mxgraph.Diagram, error) {
	if nDivs <= 0 {
		return nil, &mxgraph.LayoutConstraintError{Reason: "division count must be positive"}
	}
	if lengthUnit <= 0 {
		return nil, &mxgraph.LayoutConstraintError{Reason: "unit length must be positive"}
	}

	d := mxgraph.NewDiagram("grid_tatum", mxgraph.FamilySchema)

	for n := 1; n <= nDivs; n++ {
		cellWidth := lengthUnit / float64(n)
		for i := 0; i < n; i++ {
			el, err := mxgraph.NewElement(
				fmt.Sprintf("div%dcell%d", n, i),
				fmt.Sprintf("1/%d", n),
				mxgraph.ShapeRect,
				cellWidth, 1,
			)
			if err != nil {
				return nil, err
			}
			el.Pos = geo.NewPoint(cellWidth*(float64(i)+0.5), float64(n)-0.5)
			if err := d.AddElement(el); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
