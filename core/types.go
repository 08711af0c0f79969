package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilWeightSource indicates Build was called with a nil WeightSource.
	ErrNilWeightSource = errors.New("core: nil weight source")

	// ErrDuplicateNode indicates a room number that is already a node.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a weight that does not fit the graph mode.
	ErrBadWeight = errors.New("core: bad weight")
)

// WeightSource yields the weight for an ordered pair of room numbers.
// *weights.Cache satisfies it; tests may pass any deterministic stub.
type WeightSource interface {
	WeightOf(from, to int) int
}

// WeightFunc adapts a plain function to WeightSource.
type WeightFunc func(from, to int) int

// WeightOf calls f(from, to).
func (f WeightFunc) WeightOf(from, to int) int { return f(from, to) }

// Arc is an outgoing arc as seen from its source node.
type Arc struct {
	// To is the target room number.
	To int

	// Weight is the travel time; always 0 on an unweighted graph.
	Weight int
}

// Edge is a fully qualified arc.
type Edge struct {
	From   int
	To     int
	Weight int
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithWeighted keeps arc weights (activity graph mode).
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// arc is the arena-internal form: target by dense index.
type arc struct {
	to     int
	weight int
}

// Graph is a directed graph over room numbers stored as an arena.
//
// ids[i] is the room number of node i; index is its inverse. out[i] lists
// node i's arcs in insertion order; inDeg[i] counts arcs ending at i.
type Graph struct {
	mu sync.RWMutex

	weighted bool

	ids    []int
	index  map[int]int
	floors []int
	out    [][]arc
	inDeg  []int
	edges  int
}

// NewGraph creates an empty Graph. By default arcs are unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[int]int)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Weighted reports whether arcs keep their weights.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}
