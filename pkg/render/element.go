package render

import (
	"fmt"
	"strings"

	"github.com/mapforge/mapforge/pkg/geometry"
)

// svgNamespace is the fixed namespace declaration of every document.
const svgNamespace = "http://www.w3.org/2000/svg"

// ElementKind discriminates the closed set of SVG primitives the renderer
// emits. Keeping the set closed lets writeElement stay exhaustive instead
// of dispatching through an open interface.
type ElementKind int

const (
	// ElemRect is an axis-aligned rectangle.
	ElemRect ElementKind = iota
	// ElemPath is an open polyline.
	ElemPath
	// ElemCircle is a circle.
	ElemCircle
	// ElemPolygon is a closed polygon.
	ElemPolygon
)

// Element is one SVG primitive, tagged by Kind. Only the fields of the
// tagged variant are meaningful. An empty Fill or Stroke omits the
// attribute (paths, polygons and circles default to fill "none").
type Element struct {
	Kind ElementKind

	// Rect fields.
	X, Y          int
	Width, Height int

	// Circle fields.
	CX, CY, R int

	// Path and polygon vertices, already in pixel space.
	Points []geometry.Point

	Fill   string
	Stroke string
}

// writeElement serializes one element as a single line.
func writeElement(sb *strings.Builder, e Element) {
	switch e.Kind {
	case ElemRect:
		fmt.Fprintf(sb, `<rect x="%d" y="%d" width="%d" height="%d"`, e.X, e.Y, e.Width, e.Height)
		writePaint(sb, e)
		sb.WriteString("/>\n")
	case ElemPath:
		sb.WriteString(`<path d="`)
		for i, p := range e.Points {
			if i == 0 {
				fmt.Fprintf(sb, "M%d %d", p.X, p.Y)
			} else {
				fmt.Fprintf(sb, " L%d %d", p.X, p.Y)
			}
		}
		sb.WriteString(`"`)
		writePaint(sb, e)
		sb.WriteString("/>\n")
	case ElemCircle:
		fmt.Fprintf(sb, `<circle cx="%d" cy="%d" r="%d"`, e.CX, e.CY, e.R)
		writePaint(sb, e)
		sb.WriteString("/>\n")
	case ElemPolygon:
		sb.WriteString(`<polygon points="`)
		for i, p := range e.Points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%d,%d", p.X, p.Y)
		}
		sb.WriteString(`"`)
		writePaint(sb, e)
		sb.WriteString("/>\n")
	}
}

func writePaint(sb *strings.Builder, e Element) {
	if e.Stroke != "" {
		fmt.Fprintf(sb, ` stroke="%s"`, e.Stroke)
	}
	fill := e.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(sb, ` fill="%s"`, fill)
}

// document wraps elements in an <svg> root of the given pixel size.
func document(width, height int, elements []Element) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg version="1.1" width="%d" height="%d" xmlns="%s">`+"\n",
		width, height, svgNamespace)
	for _, e := range elements {
		writeElement(&sb, e)
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
