package graph

// ConnectedComponents partitions all nodes into connected components via
// breadth-first traversal. Components are emitted in ascending order of
// their lowest-numbered node, and each component lists its handles in
// traversal order, so the result is deterministic for a given graph.
func (g *Graph[T]) ConnectedComponents() [][]Handle {
	visited := make([]bool, len(g.nodes))
	var components [][]Handle

	for root := range g.nodes {
		if visited[root] {
			continue
		}
		var component []Handle
		queue := []Handle{Handle(root)}
		visited[root] = true
		for len(queue) > 0 {
			h := queue[0]
			queue = queue[1:]
			component = append(component, h)
			for _, nb := range g.nodes[h].edges {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		components = append(components, component)
	}
	return components
}

// FindPath returns a shortest simple path from a to b, inclusive of both
// endpoints, or ok=false if they are not in the same component.
// FindPath(a, a) returns the single-node path.
func (g *Graph[T]) FindPath(a, b Handle) (path []Handle, ok bool) {
	if a == b {
		return []Handle{a}, true
	}

	parent := make(map[Handle]Handle, len(g.nodes))
	parent[a] = a
	queue := []Handle{a}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		for _, nb := range g.nodes[h].edges {
			if _, seen := parent[nb]; seen {
				continue
			}
			parent[nb] = h
			if nb == b {
				return buildPath(parent, a, b), true
			}
			queue = append(queue, nb)
		}
	}
	return nil, false
}

func buildPath(parent map[Handle]Handle, a, b Handle) []Handle {
	var rev []Handle
	for h := b; ; h = parent[h] {
		rev = append(rev, h)
		if h == a {
			break
		}
	}
	path := make([]Handle, len(rev))
	for i, h := range rev {
		path[len(rev)-1-i] = h
	}
	return path
}
