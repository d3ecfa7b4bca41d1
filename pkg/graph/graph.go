// Package graph provides a generic undirected graph over an arena of nodes
// addressed by opaque integer handles.
//
// A [Handle] is only valid against the [Graph] instance that produced it;
// handles are creation indexes and are never invalidated because nodes are
// never removed. Edges are stored symmetrically in both endpoints' adjacency
// lists and may be added and removed freely.
//
// The package also implements the traversal queries a planar grid model
// needs: connected components, shortest paths, and representative cycle
// extraction (one cycle per closed region).
//
// Graph is not safe for concurrent use without external synchronization.
package graph

// Handle identifies a node within exactly one Graph instance.
// It is the node's creation index and is not portable across graphs.
type Handle int

type node[T any] struct {
	data  T
	edges []Handle
}

// Graph is an undirected graph over payloads of type T.
// The zero value is usable and empty; New is provided for symmetry.
type Graph[T any] struct {
	nodes []node[T]
}

// New creates an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// AddNode appends a node holding data and returns its handle. O(1).
func (g *Graph[T]) AddNode(data T) Handle {
	h := Handle(len(g.nodes))
	g.nodes = append(g.nodes, node[T]{data: data})
	return h
}

// AddEdge connects a and b by updating both adjacency lists.
// Adding an edge that already exists duplicates the adjacency entries;
// callers are expected to check HasEdge first.
func (g *Graph[T]) AddEdge(a, b Handle) {
	g.nodes[a].edges = append(g.nodes[a].edges, b)
	g.nodes[b].edges = append(g.nodes[b].edges, a)
}

// RemoveEdge disconnects a and b. Removing an absent edge is a no-op.
func (g *Graph[T]) RemoveEdge(a, b Handle) {
	g.nodes[a].edges = removeFirst(g.nodes[a].edges, b)
	g.nodes[b].edges = removeFirst(g.nodes[b].edges, a)
}

// HasEdge reports whether a and b are connected. O(degree).
func (g *Graph[T]) HasEdge(a, b Handle) bool {
	for _, h := range g.nodes[a].edges {
		if h == b {
			return true
		}
	}
	return false
}

// Data returns the payload stored at h.
func (g *Graph[T]) Data(h Handle) T {
	return g.nodes[h].data
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Degree returns the number of adjacency entries at h.
func (g *Graph[T]) Degree(h Handle) int {
	return len(g.nodes[h].edges)
}

// Neighbors returns the adjacency list of h in insertion order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph[T]) Neighbors(h Handle) []Handle {
	return g.nodes[h].edges
}

func removeFirst(edges []Handle, h Handle) []Handle {
	for i, e := range edges {
		if e == h {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}
