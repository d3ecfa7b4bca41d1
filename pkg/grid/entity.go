package grid

import "github.com/mapforge/mapforge/pkg/geometry"

// Position is the anchoring mode of a placed entity.
type Position int

const (
	// Within centers the entity inside the cell at its point.
	Within Position = iota
	// At anchors the entity to the grid intersection itself, with
	// shape-specific extent such as a circle radius.
	At
)

// Entity is a placed glyph, independent of edge connectivity.
// Entities are immutable once created.
type Entity struct {
	Shape    geometry.Shape
	Point    geometry.Point
	Position Position
}
