// Package weights assigns and memoizes synthetic "inspection travel time"
// weights for ordered pairs of room numbers.
//
// What:
//
//   - Source generates a weight for a Pair. UniformSource draws uniformly
//     from [MinWeight, MaxWeight); Fixed returns table-driven values and is
//     meant for tests and reproducible scenarios.
//   - Cache wraps a Source and guarantees that each ordered Pair is
//     generated at most once until Reset. (a,b) and (b,a) are distinct keys.
//
// Why:
//
//   - The graph builders in core query the same pair from two independent
//     builds (precedence and activity graphs); memoization makes both builds
//     see the same edge set.
//
// Concurrency:
//
//   - Cache serializes check-then-insert under a single mutex, so concurrent
//     callers racing on an unpopulated pair all observe one value and the
//     Source is consulted exactly once for it.
//
// Complexity:
//
//   - WeightOf: O(1) amortized.
//   - Snapshot: O(P log P) for P cached pairs.
package weights
