// Package critical runs critical-path analysis over a weighted activity
// graph: earliest and latest event times per node, earliest and latest
// start per activity (arc), and the set of critical activities.
//
// Algorithm:
//
//  1. Order the nodes with topo.Sort over the same adjacency. A cycle
//     aborts the analysis with an error wrapping topo.ErrCycleDetected.
//  2. Forward pass in topological order: ve[v] = max(ve[v], ve[u] + w).
//  3. Completion time T = max ve (0 for an empty graph).
//  4. Backward pass in reverse order, seeded with vl = T:
//     vl[u] = min(vl[u], vl[v] - w).
//  5. For every arc u→v in forward order: e = ve[u], l = vl[v] - w;
//     the arc is critical iff e == l.
//
// The graph is only read. The forward order is reversed into a separate
// slice for step 4 and reused as-is for step 5.
//
// Isolated nodes keep ve = 0 and vl = T and contribute no activity.
//
// Complexity:
//
//	Time O(V + E), memory O(V + E).
package critical
