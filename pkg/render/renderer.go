// Package render turns a populated grid map into an SVG document.
//
// Rendering is a pure function of the map: background cell rectangles,
// one polygon per closed room (a cycle in the point graph), one open path
// per dangling corridor chain, and one glyph per entity, wrapped in a
// single <svg> root. It cannot fail on a valid map.
package render

import (
	"slices"

	"github.com/mapforge/mapforge/pkg/geometry"
	"github.com/mapforge/mapforge/pkg/graph"
	"github.com/mapforge/mapforge/pkg/grid"
)

// DefaultCellSize is the pixel edge length of one grid cell.
const DefaultCellSize = 10

// Option configures a render pass.
type Option func(*renderer)

// WithCellSize sets the pixel dimension of one grid cell.
func WithCellSize(dim int) Option {
	return func(r *renderer) { r.dim = dim }
}

// WithTheme sets the document colours.
func WithTheme(theme Theme) Option {
	return func(r *renderer) { r.theme = theme }
}

type renderer struct {
	dim   int
	theme Theme
}

// Map renders m to a complete SVG document string.
func Map(m *grid.Map, opts ...Option) string {
	r := renderer{dim: DefaultCellSize, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&r)
	}

	var elements []Element
	elements = append(elements, r.cells(m)...)

	cycles := m.Graph().FindCycles()
	elements = append(elements, r.rooms(m, cycles)...)
	elements = append(elements, r.corridors(m, cycles)...)
	elements = append(elements, r.glyphs(m)...)

	return document(r.dim*m.Width(), r.dim*m.Height(), elements)
}

// cells emits the background rectangle of every grid cell.
func (r *renderer) cells(m *grid.Map) []Element {
	elements := make([]Element, 0, m.Width()*m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			elements = append(elements, Element{
				Kind:  ElemRect,
				X:     x * r.dim,
				Y:     y * r.dim,
				Width: r.dim, Height: r.dim,
				Fill: r.theme.GridFill,
			})
		}
	}
	return elements
}

// rooms emits one stroked, unfilled polygon per extracted cycle, visiting
// the cycle's points in cycle order. Cycle nodes are in range by
// construction; the filter guards against a graph reused beyond the grid.
func (r *renderer) rooms(m *grid.Map, cycles [][]graph.Handle) []Element {
	var elements []Element
	for _, cycle := range cycles {
		var points []geometry.Point
		for _, h := range cycle {
			p := m.PointAt(h)
			if !m.PointExists(p) {
				continue
			}
			points = append(points, p.Scale(r.dim))
		}
		elements = append(elements, Element{
			Kind:   ElemPolygon,
			Points: points,
			Stroke: r.theme.Stroke,
		})
	}
	return elements
}

// corridors emits one open path per non-cyclic chain. A chain is what is
// left of a multi-node connected component once all cycle members are
// removed; the room it may share a component with is already drawn as a
// polygon. The chain point farthest from the grid origin anchors the path
// and the rest follow by ascending taxicab distance from that anchor,
// giving a deterministic traversal without true path reconstruction.
func (r *renderer) corridors(m *grid.Map, cycles [][]graph.Handle) []Element {
	inRoom := make(map[geometry.Point]bool)
	for _, cycle := range cycles {
		for _, h := range cycle {
			inRoom[m.PointAt(h)] = true
		}
	}

	var elements []Element
	for _, component := range m.Graph().ConnectedComponents() {
		if len(component) < 2 {
			continue
		}
		var chain []geometry.Point
		for _, h := range component {
			if p := m.PointAt(h); !inRoom[p] {
				chain = append(chain, p)
			}
		}
		if len(chain) == 0 {
			continue
		}

		origin := geometry.Pt(0, 0)
		anchor := chain[0]
		for _, p := range chain[1:] {
			if p.Taxicab(origin) > anchor.Taxicab(origin) {
				anchor = p
			}
		}

		points := []geometry.Point{anchor}
		rest := slices.DeleteFunc(slices.Clone(chain), func(p geometry.Point) bool {
			return p == anchor
		})
		slices.SortStableFunc(rest, func(a, b geometry.Point) int {
			return a.Taxicab(anchor) - b.Taxicab(anchor)
		})
		points = append(points, rest...)

		for i, p := range points {
			points[i] = p.Scale(r.dim)
		}
		elements = append(elements, Element{
			Kind:   ElemPath,
			Points: points,
			Stroke: r.theme.Stroke,
		})
	}
	return elements
}

// glyphs emits entity primitives in insertion order. Glyph geometry uses
// fixed fractions of the cell dimension: 60% bodies inset 20% on each side.
func (r *renderer) glyphs(m *grid.Map) []Element {
	var elements []Element
	for _, e := range m.Entities() {
		switch e.Shape.Kind {
		case geometry.ShapeCircle:
			elements = append(elements, r.circleGlyph(e))
		case geometry.ShapeSquare:
			elements = append(elements, r.squareGlyph(e))
		case geometry.ShapeStair:
			elements = append(elements, r.stairGlyph(e))
		case geometry.ShapeLadder:
			elements = append(elements, r.ladderGlyph(e)...)
		case geometry.ShapeX:
			elements = append(elements, r.xGlyph(e)...)
		}
	}
	return elements
}

func (r *renderer) circleGlyph(e grid.Entity) Element {
	var cx, cy, radius int
	switch e.Position {
	case grid.Within:
		mid := r.dim / 2
		center := e.Point.Scale(r.dim).Add(geometry.Pt(mid, mid))
		cx, cy, radius = center.X, center.Y, mid-1
	case grid.At:
		center := e.Point.Scale(r.dim)
		cx, cy, radius = center.X, center.Y, e.Shape.Radius*r.dim
	}
	return Element{Kind: ElemCircle, CX: cx, CY: cy, R: radius, Stroke: r.theme.Stroke}
}

func (r *renderer) squareGlyph(e grid.Entity) Element {
	side := r.dim * 3 / 5
	offset := (r.dim - side) / 2
	p := e.Point.Scale(r.dim).Add(geometry.Pt(offset, offset))
	return Element{
		Kind: ElemRect,
		X:    p.X, Y: p.Y,
		Width: side, Height: side,
		Fill: r.theme.Stroke,
	}
}

// stairGlyph inscribes an 8-vertex zig-zag in a 60% box with 20% risers.
func (r *renderer) stairGlyph(e grid.Entity) Element {
	size := r.dim * 3 / 5
	offset := (r.dim - size) / 2
	riser := r.dim / 5
	origin := e.Point.Scale(r.dim).Add(geometry.Pt(offset, offset))

	steps := []geometry.Point{
		{X: 0, Y: 2 * riser},
		{X: 0, Y: 3 * riser},
		{X: size, Y: size},
		{X: size, Y: 0},
		{X: 2 * riser, Y: 0},
		{X: 2 * riser, Y: riser},
		{X: riser, Y: riser},
		{X: riser, Y: 2 * riser},
	}
	points := make([]geometry.Point, len(steps))
	for i, p := range steps {
		points[i] = p.Add(origin)
	}
	return Element{Kind: ElemPolygon, Points: points, Stroke: r.theme.Stroke}
}

// ladderGlyph draws two vertical rails and two rungs, inset 20% per side.
func (r *renderer) ladderGlyph(e grid.Entity) []Element {
	inset := r.dim / 5
	origin := e.Point.Scale(r.dim)

	top := origin.Y + inset
	bottom := origin.Y + r.dim - inset
	leftRail := origin.X + inset
	rightRail := origin.X + r.dim - inset

	rail := func(x int) Element {
		return r.strokePath(geometry.Pt(x, top), geometry.Pt(x, bottom))
	}
	rung := func(y int) Element {
		return r.strokePath(geometry.Pt(leftRail, y), geometry.Pt(rightRail, y))
	}
	return []Element{
		rail(leftRail),
		rail(rightRail),
		rung(origin.Y + 2*inset),
		rung(origin.Y + 3*inset),
	}
}

// xGlyph crosses two diagonals inset 20% per side.
func (r *renderer) xGlyph(e grid.Entity) []Element {
	inset := r.dim / 5
	origin := e.Point.Scale(r.dim)

	near := inset
	far := r.dim - inset
	return []Element{
		r.strokePath(origin.Add(geometry.Pt(near, near)), origin.Add(geometry.Pt(far, far))),
		r.strokePath(origin.Add(geometry.Pt(far, near)), origin.Add(geometry.Pt(near, far))),
	}
}

func (r *renderer) strokePath(p1, p2 geometry.Point) Element {
	return Element{
		Kind:   ElemPath,
		Points: []geometry.Point{p1, p2},
		Stroke: r.theme.Stroke,
	}
}
