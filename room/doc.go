// Package room holds the hotel room records that feed the graph packages.
//
// A Room is identified by an integer number whose hundreds digit(s) encode
// the floor: FloorOf(id) == id / 100. The graph builders in core only ever
// read the ID and the derived floor; Category and Area belong to the
// inventory side and are carried along for reporting.
//
// Catalog is a small insertion-ordered, concurrency-safe inventory used by
// the lab and the console. Its order is the order rooms are fed to the
// graph builders, which in turn fixes adjacency iteration order.
//
// Errors:
//
//	ErrInvalidRoom    - record failed validation (non-positive ID or area, empty category).
//	ErrDuplicateRoom  - a room with the same ID is already in the catalog.
//	ErrRoomNotFound   - lookup or removal of an unknown ID.
package room
