package core

// Clone returns a deep copy with the same mode.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.copyAs(g.weighted)
}

// Projection returns the unweighted projection: same nodes and arcs, in the
// same order, with weights dropped. It is what the precedence graph would
// be if built from the same rooms and weight source.
// Complexity: O(V+E).
func (g *Graph) Projection() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.copyAs(false)
}

// copyAs duplicates the arena. Caller holds at least a read lock.
func (g *Graph) copyAs(weighted bool) *Graph {
	c := &Graph{
		weighted: weighted,
		ids:      append([]int(nil), g.ids...),
		index:    make(map[int]int, len(g.index)),
		floors:   append([]int(nil), g.floors...),
		out:      make([][]arc, len(g.out)),
		inDeg:    append([]int(nil), g.inDeg...),
		edges:    g.edges,
	}
	for id, idx := range g.index {
		c.index[id] = idx
	}
	for i, arcs := range g.out {
		if len(arcs) == 0 {
			continue
		}
		c.out[i] = make([]arc, len(arcs))
		for j, a := range arcs {
			if !weighted {
				a.weight = 0
			}
			c.out[i][j] = a
		}
	}
	return c
}
