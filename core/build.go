package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/roomgraph/room"
)

// Build discards any previous content and rebuilds the graph from rooms
// using the floor layering rule described in the package doc.
//
// Steps:
//  1. Reset arena state (mode flags are kept).
//  2. Register every room as a node, rejecting duplicates.
//  3. Group node indices by floor, preserving room-list order per floor.
//  4. Sort occupied floors ascending.
//  5. For each consecutive pair of occupied floors, query w for every
//     (a, b) cross pair and add a→b when the weight is positive.
//
// On error the graph is left empty.
//
// Complexity: O(V log V + Σ|F_i|·|F_i+1|).
func (g *Graph) Build(rooms []room.Room, w WeightSource) error {
	if w == nil {
		return ErrNilWeightSource
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.reset(len(rooms))

	byFloor := make(map[int][]int)
	for _, r := range rooms {
		idx, err := g.addNode(r.ID)
		if err != nil {
			g.reset(0)
			return err
		}
		f := g.floors[idx]
		byFloor[f] = append(byFloor[f], idx)
	}

	occupied := make([]int, 0, len(byFloor))
	for f := range byFloor {
		occupied = append(occupied, f)
	}
	sort.Ints(occupied)

	for i := 0; i+1 < len(occupied); i++ {
		current, next := byFloor[occupied[i]], byFloor[occupied[i+1]]
		for _, a := range current {
			for _, b := range next {
				weight := w.WeightOf(g.ids[a], g.ids[b])
				if weight <= 0 {
					continue
				}
				if !g.weighted {
					weight = 0
				}
				g.link(a, b, weight)
			}
		}
	}

	return nil
}

// BuildGraph is a convenience for NewGraph(opts...) followed by Build.
func BuildGraph(rooms []room.Room, w WeightSource, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if err := g.Build(rooms, w); err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	return g, nil
}

// reset clears arena state, pre-sizing for n nodes. Caller holds mu.
func (g *Graph) reset(n int) {
	g.ids = make([]int, 0, n)
	g.index = make(map[int]int, n)
	g.floors = make([]int, 0, n)
	g.out = make([][]arc, 0, n)
	g.inDeg = make([]int, 0, n)
	g.edges = 0
}

// addNode appends id to the arena and returns its index. Caller holds mu.
func (g *Graph) addNode(id int) (int, error) {
	if _, ok := g.index[id]; ok {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	idx := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = idx
	g.floors = append(g.floors, room.FloorOf(id))
	g.out = append(g.out, nil)
	g.inDeg = append(g.inDeg, 0)
	return idx, nil
}

// link records from→to and bumps the target's in-degree. Caller holds mu.
func (g *Graph) link(from, to, weight int) {
	g.out[from] = append(g.out[from], arc{to: to, weight: weight})
	g.inDeg[to]++
	g.edges++
}
