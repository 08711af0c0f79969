package core

import (
	"fmt"
	"sort"
)

// AddNode registers a room number with no arcs.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, err := g.addNode(id)
	return err
}

// AddArc adds from→to. Unlike Build it does not enforce floor layering,
// which makes it the hook for hand-made graphs (including cyclic ones).
//
// Weighted graphs require weight > 0; unweighted graphs require weight == 0.
// Complexity: O(1) amortized.
func (g *Graph) AddArc(from, to, weight int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if fi == ti {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	if g.weighted && weight <= 0 {
		return fmt.Errorf("%w: %d on %d->%d", ErrBadWeight, weight, from, to)
	}
	if !g.weighted && weight != 0 {
		return fmt.Errorf("%w: %d on unweighted %d->%d", ErrBadWeight, weight, from, to)
	}
	g.link(fi, ti, weight)
	return nil
}

// HasNode reports whether id is a node.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// EdgeCount returns the number of arcs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// NodeIDs returns all room numbers in insertion order.
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.ids))
	copy(out, g.ids)
	return out
}

// FloorOf returns the floor of a node.
func (g *Graph) FloorOf(id int) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]
	if !ok {
		return 0, false
	}
	return g.floors[idx], true
}

// Floors returns the occupied floors in ascending order.
func (g *Graph) Floors() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[int]struct{}, len(g.floors))
	out := make([]int, 0)
	for _, f := range g.floors {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// Neighbors returns the targets of id's arcs in insertion order.
// Unknown ids and sinks yield an empty, non-nil slice.
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]
	if !ok {
		return []int{}
	}
	out := make([]int, len(g.out[idx]))
	for i, a := range g.out[idx] {
		out[i] = g.ids[a.to]
	}
	return out
}

// Arcs returns id's arcs with weights in insertion order.
// Unknown ids and sinks yield an empty, non-nil slice.
func (g *Graph) Arcs(id int) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]
	if !ok {
		return []Arc{}
	}
	out := make([]Arc, len(g.out[idx]))
	for i, a := range g.out[idx] {
		out[i] = Arc{To: g.ids[a.to], Weight: a.weight}
	}
	return out
}

// InDegree returns the number of arcs ending at id; 0 for unknown ids.
func (g *Graph) InDegree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]
	if !ok {
		return 0
	}
	return g.inDeg[idx]
}

// InDegrees returns a copy of the in-degree table keyed by room number.
func (g *Graph) InDegrees() map[int]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]int, len(g.ids))
	for i, id := range g.ids {
		out[id] = g.inDeg[i]
	}
	return out
}

// Edges returns every arc sorted by From, then To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edges)
	for from, arcs := range g.out {
		for _, a := range arcs {
			out = append(out, Edge{From: g.ids[from], To: g.ids[a.to], Weight: a.weight})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
