package lang

import (
	"github.com/mapforge/mapforge/pkg/geometry"
	"github.com/mapforge/mapforge/pkg/grid"
)

// NodeKind discriminates the AST node variants.
type NodeKind int

const (
	// NodeGrid is the single grid-dimension declaration.
	NodeGrid NodeKind = iota
	// NodeRect is a rectangle shape declaration.
	NodeRect
	// NodeLine is a line shape declaration.
	NodeLine
	// NodeEntity is an entity placement.
	NodeEntity
)

// GridNode carries the declared grid dimensions in cells.
type GridNode struct {
	Width  int
	Height int
}

// EntityNode carries a parsed entity placement.
type EntityNode struct {
	Shape    geometry.Shape
	Point    geometry.Point
	Position grid.Position
}

// Node is one declaration, tagged by Kind; exactly one of the payload
// fields is set. Pos locates the declaration's first token for diagnostics.
type Node struct {
	Kind   NodeKind
	Pos    Position
	Grid   *GridNode
	Rect   *geometry.Rect
	Line   *geometry.Line
	Entity *EntityNode
}

// AST is the ordered declaration list of one program: a grid declaration
// followed by zero or more shapes and entities, in source order. Order is
// observable because later Xor operations can undo earlier edges.
type AST struct {
	Nodes []Node
}
