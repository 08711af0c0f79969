// Package core provides the layered room graph used by the hotel lab: an
// arena of room nodes with index-based outgoing arc lists and a cached
// in-degree table.
//
// One type serves both networks of the lab:
//
//   - Precedence graph (AOV): NewGraph(). Arcs record presence only and carry
//     Weight 0; Weighted() reports false.
//   - Activity graph (AOE): NewGraph(WithWeighted()). Arcs keep the positive
//     weight that justified them.
//
// Construction rule (Build):
//
//	Rooms are grouped by floor (id / 100). Occupied floors are sorted
//	ascending; gaps are skipped. For every consecutive pair of occupied
//	floors (F, F'), every room a on F is tested against every room b on F'
//	through the WeightSource; an arc a→b is added iff weight(a, b) > 0.
//	Arcs never join rooms on one floor and never skip an occupied floor,
//	so a built graph is acyclic by construction.
//
// Iteration order is part of the contract:
//
//   - NodeIDs() follows the order rooms were given to Build (or AddNode).
//   - Neighbors(id) and Arcs(id) follow arc insertion order, which for a
//     built graph is the room-list order of the next floor.
//   - Edges() is sorted by From, then To.
//
// Concurrency:
//
//	All methods take an internal RWMutex. Build holds the write lock for its
//	whole run, so readers never observe a half-built graph; callers should
//	still not race reads against a rebuild they depend on.
//
// Errors:
//
//	ErrNilWeightSource - Build called without a weight source.
//	ErrDuplicateNode   - the same room number appears twice.
//	ErrNodeNotFound    - an arc endpoint is not a node of the graph.
//	ErrLoopNotAllowed  - an arc from a node to itself.
//	ErrBadWeight       - a non-positive weight on a weighted graph, or a
//	                     non-zero weight on an unweighted one.
//
// Complexity:
//
//   - Build: O(V log V + Σ |F_i|·|F_i+1|) weight lookups.
//   - Neighbors, Arcs: O(d) copy; InDegree, HasNode: O(1).
package core
