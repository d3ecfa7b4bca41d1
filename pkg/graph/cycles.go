package graph

// FindCycles extracts one representative cycle per closed region of the
// graph. For the planar grids this package models (axis-aligned perimeters,
// possibly unioned or toggled against each other) every simple closed room
// yields exactly one cycle.
//
// The search is a depth-first traversal carrying the current DFS stack and a
// set of fully-explored nodes. A back edge to a node already on the stack
// closes a cycle, unless that node is the immediate predecessor (the edge
// just walked) or already fully explored; the cycle is the stack slice from
// the matched ancestor to the top, reversed. A node joins the explored set
// only after its whole subtree finishes, so still-open branches can keep
// finding back edges. The explored set is shared across all roots: once a
// root's DFS finishes, no later root can walk back into that subtree and
// report the same region again, so a tail node hanging off a loop never
// re-yields the loop. Nodes that appeared in a cycle are never reused as
// search roots either; acyclic nodes in unvisited components remain
// eligible so every component is examined.
//
// The traversal uses an explicit stack rather than recursion so large grids
// cannot exhaust goroutine stack depth.
func (g *Graph[T]) FindCycles() [][]Handle {
	inCycle := make([]bool, len(g.nodes))
	explored := make(map[Handle]bool)
	var cycles [][]Handle

	for root := range g.nodes {
		if inCycle[root] || explored[Handle(root)] {
			continue
		}
		for _, cycle := range g.cyclesFrom(Handle(root), explored) {
			for _, h := range cycle {
				inCycle[h] = true
			}
			cycles = append(cycles, cycle)
		}
	}
	return cycles
}

// frame is one level of the iterative depth-first search.
type frame struct {
	handle Handle
	pred   Handle // handle we arrived from; -1 at the root
	next   int    // index of the next neighbor to examine
}

func (g *Graph[T]) cyclesFrom(root Handle, explored map[Handle]bool) [][]Handle {
	var cycles [][]Handle

	stack := []Handle{root}          // current DFS path, root first
	depth := map[Handle]int{root: 0} // handle -> index in stack
	frames := []frame{{handle: root, pred: -1}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		edges := g.nodes[f.handle].edges

		if f.next >= len(edges) {
			// Subtree finished: only now does the node become explored.
			explored[f.handle] = true
			delete(depth, f.handle)
			stack = stack[:len(stack)-1]
			frames = frames[:len(frames)-1]
			continue
		}

		nb := edges[f.next]
		f.next++

		if nb == f.pred || explored[nb] {
			continue
		}
		if at, onStack := depth[nb]; onStack {
			// Back edge: the cycle runs from the matched ancestor to the
			// top of the stack, reported top-first.
			cycle := make([]Handle, 0, len(stack)-at)
			for i := len(stack) - 1; i >= at; i-- {
				cycle = append(cycle, stack[i])
			}
			cycles = append(cycles, cycle)
			continue
		}

		depth[nb] = len(stack)
		stack = append(stack, nb)
		frames = append(frames, frame{handle: nb, pred: f.handle})
	}
	return cycles
}
