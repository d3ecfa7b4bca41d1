package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwoConnectedNodes(t *testing.T) {
	g := New[int]()
	n1 := g.AddNode(123)
	n2 := g.AddNode(456)
	g.AddEdge(n1, n2)

	assert.True(t, g.HasEdge(n1, n2))
	assert.True(t, g.HasEdge(n2, n1))
	assert.Equal(t, 123, g.Data(n1))
	assert.Equal(t, 456, g.Data(n2))
}

func TestRemoveEdge(t *testing.T) {
	g := New[int]()
	n1 := g.AddNode(123)
	n2 := g.AddNode(456)
	g.AddEdge(n1, n2)
	g.RemoveEdge(n1, n2)

	assert.False(t, g.HasEdge(n1, n2))
	assert.False(t, g.HasEdge(n2, n1))
}

func TestRemoveMissingEdgeIsNoop(t *testing.T) {
	g := New[int]()
	n1 := g.AddNode(1)
	n2 := g.AddNode(2)
	n3 := g.AddNode(3)
	g.AddEdge(n1, n2)

	g.RemoveEdge(n1, n3)

	assert.True(t, g.HasEdge(n1, n2))
	assert.Equal(t, 1, g.Degree(n1))
}

func TestHandlesAreCreationIndexes(t *testing.T) {
	g := New[string]()
	for i, want := range []Handle{0, 1, 2} {
		h := g.AddNode("node")
		if h != want {
			t.Fatalf("node %d: handle %d, want %d", i, h, want)
		}
	}
	assert.Equal(t, 3, g.Len())
}

func TestNeighborsInsertionOrder(t *testing.T) {
	g := New[int]()
	a := g.AddNode(0)
	b := g.AddNode(1)
	c := g.AddNode(2)
	g.AddEdge(a, b)
	g.AddEdge(a, c)

	assert.Equal(t, []Handle{b, c}, g.Neighbors(a))
}
