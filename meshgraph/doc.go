// Package meshgraph builds the mesh edge graph of a triangulated surface.
//
// Overview:
//
//   - Vertices of the graph are the surface vertices (same 0-based ids).
//   - Two vertices are adjacent iff some triangle has them as an edge.
//   - The edge weight is the Euclidean distance between the two endpoint
//     coordinates, so it does not depend on which triangle contributed it.
//   - The graph is undirected: v lists u with weight w iff u lists v with w.
//
// Construction walks the triangles in order and, for each triangle (a,b,c),
// records the edges (a,b), (b,c), (c,a) in both directions. An edge shared by
// adjacent triangles is recorded once: a neighbor already present in a
// vertex's list is skipped. Degenerate triangles that repeat a vertex never
// produce self loops.
//
// A Graph is immutable after Build and safe for concurrent readers; the
// distance computer shares one Graph across all its workers.
//
// Complexity:
//
//   - Build: O(T·d) time where T = |triangles| and d is the maximum vertex
//     degree (duplicate detection scans the short neighbor list), O(V+E) space.
//   - Neighbors/Degree: O(1). Weight: O(d).
package meshgraph
