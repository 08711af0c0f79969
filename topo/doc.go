// Package topo orders the nodes of a precedence graph with Kahn's algorithm.
//
// What:
//
//	Sort copies the graph's in-degree table, seeds a FIFO ready-queue with
//	every zero in-degree node (in NodeIDs order), and repeatedly removes the
//	queue head, appends it to the order, and decrements the in-degree of
//	each of its neighbors, enqueueing those that reach zero.
//
//	Each node moves pending → ready → ordered exactly once. If some nodes
//	never become ready the graph has a cycle and Sort returns a *CycleError
//	listing them; no partial order is returned.
//
//	The *CycleError also carries one witness cycle, found by a three-color
//	DFS over the pending nodes. FindCycle runs the same search over a whole
//	graph.
//
// Determinism:
//
//	Ties between simultaneously ready nodes are broken FIFO by the time they
//	became ready, so a fixed graph always yields the same order.
//
// Errors:
//
//	ErrGraphNil       - nil graph.
//	ErrCycleDetected  - matched by errors.Is on any *CycleError.
//	context errors    - when WithContext is cancelled mid-sort.
//
// Complexity:
//
//	Time O(V + E), memory O(V).
package topo
