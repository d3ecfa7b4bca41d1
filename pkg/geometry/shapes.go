package geometry

// ShapeKind discriminates the closed set of entity shapes.
type ShapeKind int

const (
	// ShapeCircle is a circle, optionally with a grid-unit radius when
	// anchored at an intersection.
	ShapeCircle ShapeKind = iota
	// ShapeSquare is a filled square glyph centered in a cell.
	ShapeSquare
	// ShapeStair is a zig-zag staircase glyph.
	ShapeStair
	// ShapeLadder is a two-rail, two-rung ladder glyph.
	ShapeLadder
	// ShapeX is a diagonal cross glyph.
	ShapeX
)

// Shape is an entity shape. Radius is meaningful only for circles anchored
// at a grid intersection; it is measured in grid units.
type Shape struct {
	Kind   ShapeKind
	Radius int
}

// Circle returns a circle shape with the given grid-unit radius.
func Circle(radius int) Shape { return Shape{Kind: ShapeCircle, Radius: radius} }

// BoolOp is the policy combining a requested edge with any edge already
// present at the same location.
type BoolOp int

const (
	// Or always connects; repeated applications are idempotent.
	Or BoolOp = iota
	// Xor toggles: it disconnects an existing edge and connects a missing
	// one. Two adjacent rooms erase their shared wall by XOR-ing over it.
	Xor
)

// Orientation selects which side of a cell a line traces.
type Orientation int

const (
	OrientLeft Orientation = iota
	OrientTop
	OrientRight
	OrientBottom
)

// Rect declares an axis-aligned rectangle anchored at its top-left grid
// point, measured in cells.
type Rect struct {
	Point  Point
	Width  int
	Height int
	Op     BoolOp
}

// Line declares a straight wall segment along one side of a cell column or
// row. The effective start shifts one step right (OrientRight) or down
// (OrientBottom) so lines along the far edge of a cell trace the adjacent
// frame; the line then walks Length unit steps downward (left/right
// orientations) or rightward (top/bottom orientations).
type Line struct {
	Orientation Orientation
	Start       Point
	Length      int
	Op          BoolOp
}
