package topo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrGraphNil is returned when Sort receives a nil graph.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrCycleDetected reports that not every node could be ordered.
	ErrCycleDetected = errors.New("topo: cycle detected")
)

// Digraph is the read-only view Sort needs. *core.Graph satisfies it.
type Digraph interface {
	NodeIDs() []int
	Neighbors(id int) []int
	InDegree(id int) int
}

// CycleError carries the nodes whose in-degree never reached zero.
type CycleError struct {
	// Pending lists the unordered nodes, ascending.
	Pending []int

	// Ordered is how many nodes were ordered before the queue ran dry.
	Ordered int

	// Cycle is one witness cycle among Pending, closed as [v0 ... v0].
	Cycle []int
}

// Error implements error.
func (e *CycleError) Error() string {
	msg := fmt.Sprintf("%s: %d of %d nodes never became ready [%s]",
		ErrCycleDetected, len(e.Pending), len(e.Pending)+e.Ordered, join(e.Pending, " "))
	if len(e.Cycle) > 0 {
		msg += ", e.g. " + join(e.Cycle, " -> ")
	}
	return msg
}

func join(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, sep)
}

// Is makes errors.Is(err, ErrCycleDetected) true.
func (e *CycleError) Is(target error) bool { return target == ErrCycleDetected }

// Option configures Sort.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a cancellation context checked once per dequeued node.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
