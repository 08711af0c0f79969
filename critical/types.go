package critical

import (
	"context"
	"errors"

	"github.com/katalvlaran/roomgraph/core"
	"github.com/katalvlaran/roomgraph/topo"
)

// ErrGraphNil is returned when Analyze receives a nil graph.
var ErrGraphNil = errors.New("critical: graph is nil")

// WeightedDigraph is the read-only view Analyze needs. *core.Graph built
// with core.WithWeighted() satisfies it.
type WeightedDigraph interface {
	topo.Digraph
	Arcs(id int) []core.Arc
}

// Activity is one arc with its timing.
type Activity struct {
	From   int
	To     int
	Weight int

	// Earliest is the earliest start e = ve[From].
	Earliest int

	// Latest is the latest start l = vl[To] - Weight.
	Latest int
}

// Slack is l - e.
func (a Activity) Slack() int { return a.Latest - a.Earliest }

// IsCritical reports zero slack.
func (a Activity) IsCritical() bool { return a.Earliest == a.Latest }

// Result is the outcome of Analyze.
type Result struct {
	// Order is the topological order the passes ran in.
	Order []int

	// CompletionTime is the maximum earliest event time.
	CompletionTime int

	// Earliest maps each node to ve.
	Earliest map[int]int

	// Latest maps each node to vl.
	Latest map[int]int

	// Activities lists every arc in forward traversal order.
	Activities []Activity

	// Critical is the zero-slack subset of Activities, same order.
	Critical []Activity
}

// Option configures Analyze.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext forwards a cancellation context to the topological sort.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
