// Package mxtikz serializes a positioned diagram to TikZ source. The output
// is verbose on purpose: one fully-spelled statement per node and per
// connector, in insertion order, so the generated file diffs cleanly and can
// be hand-tuned afterwards.
package mxtikz

import (
	"fmt"
	"math"
	"strings"

	"oss.mustex.org/mustex/mxtarget"
)

type RenderOpts struct {
	// IncludePreamble wraps the picture in a standalone document so the file
	// compiles on its own instead of being \input into a larger one.
	IncludePreamble bool
	// Scale is the tikzpicture scale factor; 0 means 1.
	Scale float64
}

const (
	documentPreamble = `\documentclass[tikz,border=10pt]{standalone}
\usepackage{tikz}
\usetikzlibrary{shapes.misc, arrows.meta, bending}
\begin{document}
`
	documentPostamble = `\end{document}
`
)

// Render emits the diagram. Output is byte-identical across runs on the same
// input: insertion order is preserved, nothing is reordered for looks, and
// all coordinates go through one fixed-precision formatter.
func Render(diagram *mxtarget.Diagram, opts *RenderOpts) (string, error) {
	if opts == nil {
		opts = &RenderOpts{}
	}

	sb := &strings.Builder{}

	if opts.IncludePreamble {
		sb.WriteString(documentPreamble)
	}

	if opts.Scale != 0 && opts.Scale != 1 {
		fmt.Fprintf(sb, "\\begin{tikzpicture}[scale=%s]\n", coord(opts.Scale))
	} else {
		sb.WriteString("\\begin{tikzpicture}\n")
	}

	for _, g := range diagram.Guides {
		sb.WriteString(guideStatement(g))
	}
	for _, s := range diagram.Shapes {
		sb.WriteString(shapeStatement(s))
	}
	for _, c := range diagram.Connections {
		sb.WriteString(connectionStatement(c))
	}

	sb.WriteString("\\end{tikzpicture}\n")

	if opts.IncludePreamble {
		sb.WriteString(documentPostamble)
	}

	return sb.String(), nil
}

func guideStatement(g mxtarget.Guide) string {
	switch g.Kind {
	case mxtarget.GuideRect:
		style := ""
		if g.Dashed {
			style = "[rounded corners=5pt, dashed]"
		}
		bl := g.Box.BottomLeft
		return fmt.Sprintf("    \\draw%s (%s, %s) rectangle (%s, %s);\n",
			style, coord(bl.X), coord(bl.Y), coord(bl.X+g.Box.Width), coord(bl.Y+g.Box.Height))
	default:
		return fmt.Sprintf("    \\draw (%s, %s) circle (%s);\n",
			coord(g.Center.X), coord(g.Center.Y), coord(g.Radius))
	}
}

// shapeStatement dispatches on the closed set of shape kinds. Each kind maps
// to one fixed template so the same logical diagram always serializes
// identically.
func shapeStatement(s mxtarget.Shape) string {
	at := fmt.Sprintf("(%s, %s)", coord(s.Pos.X), coord(s.Pos.Y))

	switch s.Type {
	case mxtarget.ShapeText:
		return fmt.Sprintf("    \\node (%s) at %s {%s};\n", s.ID, at, s.Label)
	case mxtarget.ShapeRect:
		style := fmt.Sprintf("rectangle, draw=black, minimum width=%scm, minimum height=%scm", coord(s.Width), coord(s.Height))
		if s.Filled {
			style = fmt.Sprintf("rectangle, fill=black, text=white, minimum width=%scm, minimum height=%scm", coord(s.Width), coord(s.Height))
		}
		return fmt.Sprintf("    \\node (%s) at %s [%s] {%s};\n", s.ID, at, style, s.Label)
	default:
		fill := "white"
		if s.Filled {
			fill = "black"
		}
		if s.AngleDeg != nil {
			// ring nodes keep their body empty and push the label outward
			// along the node's own angle, clock-diagram style
			label := ""
			if s.Label != "" {
				label = fmt.Sprintf(", label=%s:%s", coord(*s.AngleDeg), s.Label)
			}
			return fmt.Sprintf("    \\node (%s) at %s [circle, draw, fill=%s, minimum width=%scm%s] {};\n",
				s.ID, at, fill, coord(s.Width), label)
		}
		if s.Filled {
			return fmt.Sprintf("    \\node (%s) at %s [circle, fill=black, text=white, minimum width=%scm] {%s};\n",
				s.ID, at, coord(s.Width), s.Label)
		}
		return fmt.Sprintf("    \\node (%s) at %s [circle, draw=black, thick, minimum width=%scm] {%s};\n",
			s.ID, at, coord(s.Width), s.Label)
	}
}

func connectionStatement(c mxtarget.Connection) string {
	tips := arrowTips(c)

	from := fmt.Sprintf("(%s, %s)", coord(c.SrcAnchor.X), coord(c.SrcAnchor.Y))
	to := fmt.Sprintf("(%s, %s)", coord(c.DstAnchor.X), coord(c.DstAnchor.Y))

	midway := ""
	if c.Label != "" {
		midway = fmt.Sprintf("node[midway, %s] {%s} ", labelSide(c), c.Label)
	}

	if c.Control != nil {
		return fmt.Sprintf("    \\draw[%s] %s .. controls (%s, %s) .. %s%s;\n",
			tips, from, coord(c.Control.X), coord(c.Control.Y), midway, to)
	}
	return fmt.Sprintf("    \\draw[%s] %s -- %s%s;\n", tips, from, midway, to)
}

func arrowTips(c mxtarget.Connection) string {
	if c.Style == mxtarget.StyleDoubleHeaded {
		return "-{>>}"
	}
	if c.SrcArrow == mxtarget.ArrowheadTriangle && c.DstArrow == mxtarget.ArrowheadTriangle {
		return "<->"
	}
	if c.DstArrow == mxtarget.ArrowheadTriangle {
		return "->"
	}
	return "-"
}

// labelSide places midway labels on the bow side of curved connectors and
// left otherwise, matching how the hand-written figures annotate arrows.
func labelSide(c mxtarget.Connection) string {
	if c.Control == nil {
		return "left"
	}
	// the control point is left of src->dst when the cross product of the
	// direction and the offset is positive
	dx := c.DstAnchor.X - c.SrcAnchor.X
	dy := c.DstAnchor.Y - c.SrcAnchor.Y
	mx := c.Control.X - c.SrcAnchor.X
	my := c.Control.Y - c.SrcAnchor.Y
	if dx*my-dy*mx >= 0 {
		return "left"
	}
	return "right"
}

// coord formats a coordinate with fixed 2-decimal precision, the contract
// that keeps output stable across platforms and locales.
func coord(v float64) string {
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}
