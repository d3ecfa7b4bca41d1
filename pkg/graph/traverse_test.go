package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectedComponentsPartition(t *testing.T) {
	g := New[int]()
	a := g.AddNode(0)
	b := g.AddNode(1)
	c := g.AddNode(2)
	d := g.AddNode(3)
	e := g.AddNode(4)
	g.AddEdge(a, b)
	g.AddEdge(d, e)

	components := g.ConnectedComponents()
	require.Len(t, components, 3)
	assert.Equal(t, []Handle{a, b}, components[0])
	assert.Equal(t, []Handle{c}, components[1])
	assert.Equal(t, []Handle{d, e}, components[2])
}

func TestConnectedComponentsEmptyGraph(t *testing.T) {
	g := New[int]()
	assert.Empty(t, g.ConnectedComponents())
}

func TestFindPathAlongChain(t *testing.T) {
	g := New[int]()
	var handles []Handle
	for i := 0; i < 5; i++ {
		handles = append(handles, g.AddNode(i))
	}
	for i := 0; i < 4; i++ {
		g.AddEdge(handles[i], handles[i+1])
	}

	path, ok := g.FindPath(handles[0], handles[4])
	require.True(t, ok)
	assert.Equal(t, handles, path)
}

func TestFindPathPicksShortestRoute(t *testing.T) {
	// Triangle: the direct a-c edge beats the a-b-c detour.
	g := New[int]()
	a := g.AddNode(0)
	b := g.AddNode(1)
	c := g.AddNode(2)
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(a, c)

	path, ok := g.FindPath(a, c)
	require.True(t, ok)
	assert.Equal(t, []Handle{a, c}, path)
}

func TestFindPathDisconnected(t *testing.T) {
	g := New[int]()
	a := g.AddNode(0)
	b := g.AddNode(1)

	_, ok := g.FindPath(a, b)
	assert.False(t, ok)
}

func TestFindPathSameNode(t *testing.T) {
	g := New[int]()
	a := g.AddNode(0)

	path, ok := g.FindPath(a, a)
	require.True(t, ok)
	assert.Equal(t, []Handle{a}, path)
}
