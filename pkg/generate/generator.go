// Package generate is the semantic pass of the compiler: it walks a parsed
// declaration list and mutates a grid map, connecting and disconnecting
// perimeter edges under Or/Xor policy, validating bounds, and attaching
// entities. Generation is first-failure-wins; a failed run discards the
// whole map so no partial result ever escapes.
package generate

import (
	"github.com/mapforge/mapforge/pkg/geometry"
	"github.com/mapforge/mapforge/pkg/grid"
	"github.com/mapforge/mapforge/pkg/lang"
)

// Map builds a populated grid map from ast. Declarations are processed in
// source order, which is observable: a later Xor over an existing edge
// removes it. The returned error is always a *lang.Error carrying the
// offending declaration's source position.
func Map(ast *lang.AST) (*grid.Map, *lang.Error) {
	dims := findGridDimensions(ast)
	if dims == nil {
		return nil, lang.NewError(lang.NoGridDimensions, lang.Position{Line: 1, Col: 1})
	}

	m := grid.New(dims.Width, dims.Height)

	for _, node := range ast.Nodes {
		var err *lang.Error
		switch node.Kind {
		case lang.NodeGrid:
			// Consumed above; the parser guarantees there is only one.
		case lang.NodeRect:
			err = applyRect(m, node.Rect, node.Pos)
		case lang.NodeLine:
			err = applyLine(m, node.Line, node.Pos)
		case lang.NodeEntity:
			err = applyEntity(m, node.Entity, node.Pos)
		}
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func findGridDimensions(ast *lang.AST) *lang.GridNode {
	for _, node := range ast.Nodes {
		if node.Kind == lang.NodeGrid {
			return node.Grid
		}
	}
	return nil
}

// applyRect connects the four unit-edge perimeter chains of r: top, left,
// bottom, right, one unit segment at a time, left-to-right / top-to-bottom.
func applyRect(m *grid.Map, r *geometry.Rect, pos lang.Position) *lang.Error {
	x, y := r.Point.X, r.Point.Y

	for i := 0; i < r.Width; i++ {
		if err := applySegment(m, r.Op, geometry.Pt(x+i, y), geometry.Pt(x+i+1, y), pos); err != nil {
			return err
		}
	}
	for i := 0; i < r.Height; i++ {
		if err := applySegment(m, r.Op, geometry.Pt(x, y+i), geometry.Pt(x, y+i+1), pos); err != nil {
			return err
		}
	}
	for i := 0; i < r.Width; i++ {
		if err := applySegment(m, r.Op, geometry.Pt(x+i, y+r.Height), geometry.Pt(x+i+1, y+r.Height), pos); err != nil {
			return err
		}
	}
	for i := 0; i < r.Height; i++ {
		if err := applySegment(m, r.Op, geometry.Pt(x+r.Width, y+i), geometry.Pt(x+r.Width, y+i+1), pos); err != nil {
			return err
		}
	}
	return nil
}

// applyLine walks l.Length unit steps from the line's effective start.
// Lines along the right or bottom edge of a cell shift one step so they
// trace the adjacent column or row's frame; left/top lines start unshifted.
func applyLine(m *grid.Map, l *geometry.Line, pos lang.Position) *lang.Error {
	p := l.Start
	switch l.Orientation {
	case geometry.OrientRight:
		p = p.Right()
	case geometry.OrientBottom:
		p = p.Down()
	}

	for i := 0; i < l.Length; i++ {
		var next geometry.Point
		switch l.Orientation {
		case geometry.OrientLeft, geometry.OrientRight:
			next = p.Down()
		default:
			next = p.Right()
		}
		if err := applySegment(m, l.Op, p, next, pos); err != nil {
			return err
		}
		p = next
	}
	return nil
}

// applySegment applies one unit edge under the boolean policy: Or always
// connects, Xor toggles. Both endpoints must be on the grid.
func applySegment(m *grid.Map, op geometry.BoolOp, p1, p2 geometry.Point, pos lang.Position) *lang.Error {
	if !m.PointExists(p1) || !m.PointExists(p2) {
		return lang.NewError(lang.OutOfBounds, pos)
	}
	if op == geometry.Xor && m.AreConnected(p1, p2) {
		if err := m.Disconnect(p1, p2); err != nil {
			return lang.NewError(lang.OutOfBounds, pos)
		}
		return nil
	}
	if err := m.Connect(p1, p2); err != nil {
		return lang.NewError(lang.OutOfBounds, pos)
	}
	return nil
}

// applyEntity validates shape-specific bounds and attaches the entity.
// A circle anchored at an intersection needs its center and all four
// cardinal extent points on the grid; every other placement relies on the
// parser constraining coordinates to non-negative integers.
func applyEntity(m *grid.Map, e *lang.EntityNode, pos lang.Position) *lang.Error {
	if e.Shape.Kind == geometry.ShapeCircle && e.Position == grid.At {
		r := e.Shape.Radius
		center := e.Point
		if r > center.X || r > center.Y {
			return lang.NewError(lang.OutOfBounds, pos)
		}
		extents := []geometry.Point{
			center,
			geometry.Pt(center.X-r, center.Y),
			geometry.Pt(center.X, center.Y-r),
			geometry.Pt(center.X+r, center.Y),
			geometry.Pt(center.X, center.Y+r),
		}
		for _, p := range extents {
			if !m.PointExists(p) {
				return lang.NewError(lang.OutOfBounds, pos)
			}
		}
	}

	m.AddEntity(grid.Entity{Shape: e.Shape, Point: e.Point, Position: e.Position})
	return nil
}
