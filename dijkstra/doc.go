// Package dijkstra provides single-source shortest paths over a mesh edge
// graph (meshgraph.Graph) with an optional cancel distance.
//
// Overview:
//
//   - ShortestPaths computes, for one source vertex, the shortest-path distance
//     along mesh edges to every vertex of the graph.
//   - The frontier is a binary-heap priority queue ordered by tentative
//     distance; equal distances are broken by the lower vertex index, so the
//     settle order is fully deterministic.
//   - Lazy decrease-key: an improved vertex is pushed again and the stale
//     entry is skipped when popped.
//
// Cancel distance:
//
//   - WithCancelDistance(d) bounds the search. A candidate path longer than d
//     is never relaxed, and the search stops once the smallest frontier entry
//     exceeds d. Every vertex whose true distance exceeds d is reported as
//     exactly +Inf; every vertex at or below d carries its exact value.
//   - The default is +Inf (unbounded search).
//
// Reuse:
//
//   - Solver keeps its scratch state (visited flags, queue) between runs and
//     writes results into a caller-owned slice. One Solver per goroutine; the
//     graph itself is shared read-only.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: a nil *meshgraph.Graph was passed.
//   - ErrVertexNotFound: the source is not a vertex of the graph. It wraps
//     surface.ErrVertexOutOfRange (and therefore surface.ErrConfiguration).
//   - ErrBufferSize: Solver.Run received a destination of the wrong length.
//   - ErrBadCancelDistance: WithCancelDistance got a negative or NaN value
//     (reported by panic, like every option constructor in this module).
//
// Complexity:
//
//   - Time:  O((V + E) log V) per source.
//   - Space: O(V) for the distance and visited arrays, O(E) worst-case heap.
//
// Thread safety:
//
//   - ShortestPaths and ShortestPathTree have no shared mutable state and may
//     run concurrently on the same graph with distinct sources.
//   - A Solver must not be used by two goroutines at once.
package dijkstra
