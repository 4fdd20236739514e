package mxmusic

import (
	"fmt"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/mxgraph"
)

// chordBowStep is how much further each successive arrow bows out, so the
// arrows from the root to ever-higher circles never collide.
const chordBowStep = 0.4

// TaggedNote is one upper note of a chord schema with its interval tag.
type TaggedNote struct {
	Name string
	Tag  int
}

// ChordSchema builds a chord demonstration figure: the root as a filled
// circle at the bottom, the upper notes stacked above it inside a dashed
// enclosure, and an annotated curved arrow from the root to each note. The
// arrows alternate sides and bow progressively wider.
func ChordSchema(rootName string, upper []TaggedNote) (*mxgraph.Diagram, error) {
	if len(upper) == 0 {
		return nil, &mxgraph.LayoutConstraintError{Reason: "chord schema needs at least one upper note"}
	}
	for i := 0; i+1 < len(upper); i++ {
		if upper[i].Tag > upper[i+1].Tag {
			return nil, &mxgraph.LayoutConstraintError{Reason: "tags must be in increasing order"}
		}
	}

	d := mxgraph.NewDiagram("schema", mxgraph.FamilySchema)

	root, err := mxgraph.NewElement("bottom", rootName, mxgraph.ShapeCircle, mxgraph.DEFAULT_SIZE, mxgraph.DEFAULT_SIZE)
	if err != nil {
		return nil, err
	}
	root.Filled = true
	root.Pos = geo.NewPoint(0, 0)
	if err := d.AddElement(root); err != nil {
		return nil, err
	}

	for i, note := range upper {
		el, err := mxgraph.NewElement(
			fmt.Sprintf("top%d", i+1),
			note.Name,
			mxgraph.ShapeCircle,
			mxgraph.DEFAULT_SIZE, mxgraph.DEFAULT_SIZE,
		)
		if err != nil {
			return nil, err
		}
		el.Pos = geo.NewPoint(0, float64(i+1))
		if err := d.AddElement(el); err != nil {
			return nil, err
		}
	}

	// dashed rounded enclosure around the whole stack
	d.Guides = append(d.Guides, mxgraph.Guide{
		Kind:   mxgraph.GuideRect,
		Box:    geo.NewBox(geo.NewPoint(-0.5, -0.5), 1, float64(len(upper))+1),
		Dashed: true,
	})

	for i, note := range upper {
		c := &mxgraph.Connector{
			Src:   "bottom",
			Dst:   fmt.Sprintf("top%d", i+1),
			Label: fmt.Sprintf("%d", note.Tag),
		}
		if i == 0 {
			// the nearest arrow goes straight up
			c.Style = mxgraph.StyleStraight
		} else {
			c.Style = mxgraph.StyleCurved
			// alternate left and right, bowing wider as the target gets further
			bow := chordBowStep * float64(i)
			if i%2 == 1 {
				bow = -bow
			}
			c.Bow = bow
		}
		if err := d.AddConnector(c); err != nil {
			return nil, err
		}
	}

	return d, nil
}
