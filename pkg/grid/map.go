// Package grid models a tabletop map as a planar graph of grid
// intersections.
//
// A Map with W×H cells owns (W+1)×(H+1) point nodes, one per integer grid
// intersection, created once at construction and never resized. Edges exist
// only where a generator has explicitly connected two taxicab-adjacent
// points; the Map itself does not enforce adjacency. Entities are appended
// during generation and read-only afterwards.
package grid

import (
	"errors"

	"github.com/mapforge/mapforge/pkg/geometry"
	"github.com/mapforge/mapforge/pkg/graph"
)

// ErrPointOutOfRange is returned by Connect and Disconnect when a coordinate
// falls outside the map's grid.
var ErrPointOutOfRange = errors.New("point out of range")

// Map binds one graph node per grid intersection, keyed by coordinate.
type Map struct {
	width    int
	height   int
	g        *graph.Graph[geometry.Point]
	nodes    map[int]graph.Handle
	entities []Entity
}

// New builds a map with width×height cells and a node for every grid
// intersection in [0,width]×[0,height], in row-major order.
func New(width, height int) *Map {
	g := graph.New[geometry.Point]()
	nodes := make(map[int]graph.Handle, (width+1)*(height+1))
	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			p := geometry.Pt(x, y)
			nodes[x+(width+1)*y] = g.AddNode(p)
		}
	}
	return &Map{width: width, height: height, g: g, nodes: nodes}
}

// Width returns the number of grid cells per row.
func (m *Map) Width() int { return m.width }

// Height returns the number of grid cells per column.
func (m *Map) Height() int { return m.height }

// PointExists reports whether p is a grid intersection of this map.
func (m *Map) PointExists(p geometry.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= m.width && p.Y <= m.height
}

// Connect adds the edge between p1 and p2. Connecting already-connected
// points is a no-op, so repeated unions never duplicate adjacency entries.
// It returns ErrPointOutOfRange if either point is outside the grid.
func (m *Map) Connect(p1, p2 geometry.Point) error {
	h1, h2, err := m.handlePair(p1, p2)
	if err != nil {
		return err
	}
	if !m.g.HasEdge(h1, h2) {
		m.g.AddEdge(h1, h2)
	}
	return nil
}

// Disconnect removes the edge between p1 and p2; removing an absent edge is
// a no-op. It returns ErrPointOutOfRange if either point is outside the grid.
func (m *Map) Disconnect(p1, p2 geometry.Point) error {
	h1, h2, err := m.handlePair(p1, p2)
	if err != nil {
		return err
	}
	m.g.RemoveEdge(h1, h2)
	return nil
}

// AreConnected reports whether an edge exists between p1 and p2.
// Out-of-range points are never connected.
func (m *Map) AreConnected(p1, p2 geometry.Point) bool {
	h1, h2, err := m.handlePair(p1, p2)
	if err != nil {
		return false
	}
	return m.g.HasEdge(h1, h2)
}

// AddEntity appends e to the map's entity list. No validation is applied;
// bounds checks belong to the generator.
func (m *Map) AddEntity(e Entity) {
	m.entities = append(m.entities, e)
}

// Entities returns the placed entities in insertion order.
// The returned slice is owned by the map and must not be modified.
func (m *Map) Entities() []Entity {
	return m.entities
}

// Graph exposes the underlying point graph for rendering and analysis.
func (m *Map) Graph() *graph.Graph[geometry.Point] {
	return m.g
}

// PointAt maps a node handle of this map's graph back to its grid point.
func (m *Map) PointAt(h graph.Handle) geometry.Point {
	return m.g.Data(h)
}

func (m *Map) handlePair(p1, p2 geometry.Point) (graph.Handle, graph.Handle, error) {
	h1, ok := m.handle(p1)
	if !ok {
		return 0, 0, ErrPointOutOfRange
	}
	h2, ok := m.handle(p2)
	if !ok {
		return 0, 0, ErrPointOutOfRange
	}
	return h1, h2, nil
}

func (m *Map) handle(p geometry.Point) (graph.Handle, bool) {
	if !m.PointExists(p) {
		return 0, false
	}
	h, ok := m.nodes[p.X+(m.width+1)*p.Y]
	return h, ok
}
