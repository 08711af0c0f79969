// Package roomgraph models a hotel's rooms as a layered directed graph and
// answers two questions about it: in what order can the rooms be inspected,
// and how long does the slowest inspection chain take.
//
// Every room links to every room on the next occupied floor above it. Each
// link draws a travel time from [-20, 41); links that draw a non-positive
// time are omitted. Times are cached per ordered pair, so the precedence
// graph (AOV) and the weighted activity graph (AOE) built from one room list
// always agree on which links exist.
//
// Packages:
//
//	room/     - Room records, floor derivation, the thread-safe Catalog
//	weights/  - weight sources and the memoizing Cache
//	core/     - arena-backed directed graph, floor-layered construction
//	topo/     - Kahn topological sort with FIFO tie-breaking
//	critical/ - event times, slack and the critical path of an AOE graph
//	report/   - text and table rendering of orders, paths and weights
//	metrics/  - prometheus counters for cache and analysis phases
//	config/   - YAML configuration
//	lab/      - one analysis run end to end
//	cmd/roomgraph - the console: analyze, weights, rooms, shell
//
// Quick picture (floors 1, 2, 3; weights on arcs):
//
//	101 ──5──► 201 ──4──► 301
//	102 ──3──► 201
//
// Topological order: 101 -> 102 -> 201 -> 301. Completion time: 9.
// Critical path: 101 -> 201 -> 301.
//
//	go install github.com/katalvlaran/roomgraph/cmd/roomgraph@latest
package roomgraph
