// Package distmap computes surface-constrained distance matrices: one
// single-source Dijkstra run per requested source vertex, spread over a fixed
// pool of workers.
//
// Overview:
//
//   - Compute(s, opts...) builds the mesh edge graph of s and fills a
//     rows×columns matrix where rows are the effective sources and columns are
//     all vertices of s. ComputeGraph does the same for an already built graph.
//   - The effective sources are the subset (WithSubset) when non-empty, else
//     every vertex in ascending order. Row i of the result belongs to
//     source[i].
//   - Distances above the cancel distance (WithCancelDistance) are +Inf.
//
// Concurrency:
//
//   - The row range [0, rows) is cut into contiguous chunks, one per worker;
//     the first rows%workers chunks carry one extra row.
//   - Each worker owns a dijkstra.Solver and writes straight into its rows of
//     the shared matrix. Chunks never overlap, so the writes need no locks; the
//     errgroup join is the only synchronization point.
//   - The graph is shared read-only. Results do not depend on the worker count.
//
// Errors:
//
//   - surface.ErrConfiguration (via surface.ErrVertexOutOfRange or
//     surface.ErrNilSurface) for a malformed surface or subset.
//   - ErrComputationFailure when a worker fails or panics. The partially
//     written matrix is dropped; the caller gets nil.
//
// Empty input (zero sources, zero vertices) yields an empty matrix and no error.
package distmap
