package topo

import (
	"sort"
)

// Sort returns a topological order of g or a *CycleError.
// g is only read; the in-degree table is copied before being consumed.
func Sort(g Digraph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.NodeIDs()
	remaining := make(map[int]int, len(ids))
	queue := make([]int, 0, len(ids))
	for _, id := range ids {
		d := g.InDegree(id)
		remaining[id] = d
		if d == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]int, 0, len(ids))
	for head := 0; head < len(queue); head++ {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		u := queue[head]
		order = append(order, u)
		for _, v := range g.Neighbors(u) {
			remaining[v]--
			if remaining[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) < len(ids) {
		pending := make([]int, 0, len(ids)-len(order))
		for _, id := range ids {
			if remaining[id] > 0 {
				pending = append(pending, id)
			}
		}
		sort.Ints(pending)
		// Successors of pending nodes are pending too, so a cycle is
		// reachable from them without touching the ordered prefix.
		return nil, &CycleError{Pending: pending, Ordered: len(order), Cycle: findCycle(g, pending)}
	}

	return order, nil
}

// Reverse returns a reversed copy of order.
func Reverse(order []int) []int {
	out := make([]int, len(order))
	for i, id := range order {
		out[len(order)-1-i] = id
	}
	return out
}

// Respects reports whether order is a permutation of g's nodes in which
// every arc u→v has u before v.
func Respects(g Digraph, order []int) bool {
	ids := g.NodeIDs()
	if len(order) != len(ids) {
		return false
	}
	pos := make(map[int]int, len(order))
	for i, id := range order {
		if _, dup := pos[id]; dup {
			return false
		}
		pos[id] = i
	}
	for _, u := range ids {
		pu, ok := pos[u]
		if !ok {
			return false
		}
		for _, v := range g.Neighbors(u) {
			if pv, ok := pos[v]; !ok || pu >= pv {
				return false
			}
		}
	}
	return true
}
