// Package mxdesc decodes diagram description files into mxgraph diagrams.
// Three formats are accepted, chosen by file extension: YAML, TOML and JSON.
// Decoding is strict: an unknown key is an error, not a silent no-op, so a
// typoed option never produces a subtly wrong figure.
package mxdesc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"oss.mustex.org/mustex/lib/geo"
	"oss.mustex.org/mustex/mxgraph"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath maps a file extension to its description format. YAML is the
// default for unrecognized extensions, stdin included.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// description is the file-level model. It is deliberately separate from
// mxgraph so the file format can default and validate without loosening the
// in-memory model.
type description struct {
	Name       string          `json:"name" yaml:"name" toml:"name"`
	Family     string          `json:"family" yaml:"family" toml:"family"`
	Opts       opts            `json:"opts" yaml:"opts" toml:"opts"`
	Elements   []elementDesc   `json:"elements" yaml:"elements" toml:"elements"`
	Connectors []connectorDesc `json:"connectors" yaml:"connectors" toml:"connectors"`
}

type opts struct {
	Columns        int      `json:"columns" yaml:"columns" toml:"columns"`
	Rows           int      `json:"rows" yaml:"rows" toml:"rows"`
	Gutter         *float64 `json:"gutter" yaml:"gutter" toml:"gutter"`
	Headers        bool     `json:"headers" yaml:"headers" toml:"headers"`
	Radius         float64  `json:"radius" yaml:"radius" toml:"radius"`
	InnerRadius    float64  `json:"inner_radius" yaml:"inner_radius" toml:"inner_radius"`
	OuterRadius    float64  `json:"outer_radius" yaml:"outer_radius" toml:"outer_radius"`
	OffsetDeg      *float64 `json:"offset_deg" yaml:"offset_deg" toml:"offset_deg"`
	Padding        *float64 `json:"padding" yaml:"padding" toml:"padding"`
	AdjacencyChain bool     `json:"adjacency_chain" yaml:"adjacency_chain" toml:"adjacency_chain"`
	ClosingEdge    bool     `json:"closing_edge" yaml:"closing_edge" toml:"closing_edge"`
}

type elementDesc struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Label  *string `json:"label" yaml:"label" toml:"label"`
	Shape  string  `json:"shape" yaml:"shape" toml:"shape"`
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
	Filled bool    `json:"filled" yaml:"filled" toml:"filled"`
	Cell   *cell   `json:"cell" yaml:"cell" toml:"cell"`
	Pos    *pos    `json:"pos" yaml:"pos" toml:"pos"`
	Ring   string  `json:"ring" yaml:"ring" toml:"ring"`
}

type cell struct {
	Row int `json:"row" yaml:"row" toml:"row"`
	Col int `json:"col" yaml:"col" toml:"col"`
}

type pos struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

type connectorDesc struct {
	Src   string  `json:"src" yaml:"src" toml:"src"`
	Dst   string  `json:"dst" yaml:"dst" toml:"dst"`
	Style string  `json:"style" yaml:"style" toml:"style"`
	Label string  `json:"label" yaml:"label" toml:"label"`
	Bow   float64 `json:"bow" yaml:"bow" toml:"bow"`
}

// Decode parses a description in the given format and builds the diagram.
// The result is validated; a nil error means the description is ready to
// compile.
func Decode(data []byte, format Format) (*mxgraph.Diagram, error) {
	var desc description
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &desc)
		if err != nil {
			return nil, fmt.Errorf("decoding toml description: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q in toml description", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&desc); err != nil {
			return nil, fmt.Errorf("decoding json description: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&desc); err != nil {
			return nil, fmt.Errorf("decoding yaml description: %w", err)
		}
	}
	return build(&desc)
}

func build(desc *description) (*mxgraph.Diagram, error) {
	family := desc.Family
	if family == "" {
		family = mxgraph.FamilySchema
	}
	name := desc.Name
	if name == "" {
		name = family
	}

	d := mxgraph.NewDiagram(name, family)
	d.Opts = mxgraph.LayoutOpts{
		Columns:        desc.Opts.Columns,
		Rows:           desc.Opts.Rows,
		Gutter:         desc.Opts.Gutter,
		Headers:        desc.Opts.Headers,
		Radius:         desc.Opts.Radius,
		InnerRadius:    desc.Opts.InnerRadius,
		OuterRadius:    desc.Opts.OuterRadius,
		OffsetDeg:      desc.Opts.OffsetDeg,
		Padding:        desc.Opts.Padding,
		AdjacencyChain: desc.Opts.AdjacencyChain,
		ClosingEdge:    desc.Opts.ClosingEdge,
	}

	for _, ed := range desc.Elements {
		el, err := buildElement(ed)
		if err != nil {
			return nil, err
		}
		if err := d.AddElement(el); err != nil {
			return nil, err
		}
	}

	for _, cd := range desc.Connectors {
		err := d.AddConnector(&mxgraph.Connector{
			Src:   cd.Src,
			Dst:   cd.Dst,
			Style: cd.Style,
			Label: cd.Label,
			Bow:   cd.Bow,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func buildElement(ed elementDesc) (*mxgraph.Element, error) {
	shapeKind := ed.Shape
	if shapeKind == "" {
		shapeKind = mxgraph.ShapeCircle
	}
	width, height := ed.Width, ed.Height
	if width == 0 {
		width = mxgraph.DEFAULT_SIZE
	}
	if height == 0 {
		height = mxgraph.DEFAULT_SIZE
	}
	// the label defaults to the name; an explicit empty label stays empty
	label := ed.Name
	if ed.Label != nil {
		label = *ed.Label
	}

	el, err := mxgraph.NewElement(ed.Name, label, shapeKind, width, height)
	if err != nil {
		return nil, err
	}
	el.Filled = ed.Filled
	if ed.Cell != nil {
		el.Cell = &mxgraph.Cell{Row: ed.Cell.Row, Col: ed.Cell.Col}
	}
	if ed.Pos != nil {
		el.Pos = geo.NewPoint(ed.Pos.X, ed.Pos.Y)
	}
	switch ed.Ring {
	case "", "inner":
		el.Ring = mxgraph.RingInner
	case "outer":
		el.Ring = mxgraph.RingOuter
	default:
		return nil, &mxgraph.InvalidShapeError{Name: ed.Name, Reason: "unrecognized ring " + ed.Ring}
	}
	return el, nil
}
