package topo

import "slices"

// Visitation states for cycle search.
const (
	white = iota // unvisited
	gray         // on the current path
	black        // fully explored
)

// FindCycle returns one directed cycle of g as a closed walk
// [v0, v1, ..., v0] rotated so that v0 is the smallest ID on it, or nil
// when g is acyclic. Roots are tried in NodeIDs order, so the result is
// deterministic for a given graph.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g Digraph) []int {
	if g == nil {
		return nil
	}
	return findCycle(g, g.NodeIDs())
}

// findCycle runs a three-color DFS from each white root in turn and stops
// at the first back-arc.
func findCycle(g Digraph, roots []int) []int {
	state := make(map[int]int, len(roots))
	path := make([]int, 0, len(roots))

	var visit func(u int) []int
	visit = func(u int) []int {
		state[u] = gray
		path = append(path, u)
		for _, v := range g.Neighbors(u) {
			switch state[v] {
			case white:
				if c := visit(v); c != nil {
					return c
				}
			case gray:
				return closeCycle(path, v)
			}
		}
		path = path[:len(path)-1]
		state[u] = black
		return nil
	}

	for _, r := range roots {
		if state[r] != white {
			continue
		}
		if c := visit(r); c != nil {
			return c
		}
	}
	return nil
}

// closeCycle cuts the cycle starting at start out of path, rotates it to
// its smallest ID and repeats that ID at the end.
func closeCycle(path []int, start int) []int {
	seq := path[slices.Index(path, start):]
	lo := 0
	for i, id := range seq {
		if id < seq[lo] {
			lo = i
		}
	}
	out := make([]int, 0, len(seq)+1)
	out = append(out, seq[lo:]...)
	out = append(out, seq[:lo]...)
	return append(out, out[0])
}
