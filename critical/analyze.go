package critical

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roomgraph/topo"
)

// Analyze computes event times and critical activities for g.
// A cyclic graph yields an error matching topo.ErrCycleDetected and no result.
func Analyze(g WeightedDigraph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	// 1. order
	order, err := topo.Sort(g, topo.WithContext(o.ctx))
	if err != nil {
		return nil, fmt.Errorf("critical: %w", err)
	}

	// 2. forward pass
	ve := make(map[int]int, len(order))
	for _, id := range order {
		ve[id] = 0
	}
	for _, u := range order {
		for _, a := range g.Arcs(u) {
			if t := ve[u] + a.Weight; t > ve[a.To] {
				ve[a.To] = t
			}
		}
	}

	// 3. completion time
	completion := 0
	for _, t := range ve {
		if t > completion {
			completion = t
		}
	}

	// 4. backward pass
	vl := make(map[int]int, len(order))
	for _, id := range order {
		vl[id] = completion
	}
	for _, u := range topo.Reverse(order) {
		for _, a := range g.Arcs(u) {
			if t := vl[a.To] - a.Weight; t < vl[u] {
				vl[u] = t
			}
		}
	}

	// 5. activities
	res := &Result{
		Order:          order,
		CompletionTime: completion,
		Earliest:       ve,
		Latest:         vl,
	}
	for _, u := range order {
		for _, a := range g.Arcs(u) {
			act := Activity{
				From:     u,
				To:       a.To,
				Weight:   a.Weight,
				Earliest: ve[u],
				Latest:   vl[a.To] - a.Weight,
			}
			res.Activities = append(res.Activities, act)
			if act.IsCritical() {
				res.Critical = append(res.Critical, act)
			}
		}
	}

	return res, nil
}

// CriticalPath walks one source-to-sink chain of critical activities: it
// starts at the first critical activity and keeps taking the first critical
// activity leaving the current node. The returned node list is empty when
// there is no critical activity. Its arc weights sum to CompletionTime.
func (r *Result) CriticalPath() []int {
	if len(r.Critical) == 0 {
		return []int{}
	}
	next := make(map[int]Activity, len(r.Critical))
	for _, a := range r.Critical {
		if _, ok := next[a.From]; !ok {
			next[a.From] = a
		}
	}

	path := []int{r.Critical[0].From}
	cur := r.Critical[0].From
	for {
		a, ok := next[cur]
		if !ok {
			return path
		}
		path = append(path, a.To)
		cur = a.To
	}
}

// CriticalNodes returns the nodes touched by critical activities in the
// order they first appear.
func (r *Result) CriticalNodes() []int {
	seen := make(map[int]bool)
	out := make([]int, 0)
	for _, a := range r.Critical {
		for _, id := range [2]int{a.From, a.To} {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
