// Package surface defines the triangulated 3-D surface consumed by every other
// package in surfdist, together with plain-text readers and writers for it.
//
// A Surface is an ordered list of vertex coordinates (the index is the vertex
// id, 0-based and stable) and an ordered list of triangles, each a triple of
// vertex indices into that list. Surfaces are treated as read-only input: the
// graph builder, the distance computer and the sensor projector only read them.
//
// Error handling (sentinel errors):
//
//   - ErrConfiguration:
//     Root of the malformed-input class. Every other sentinel below wraps it,
//     so errors.Is(err, ErrConfiguration) holds for all of them.
//   - ErrVertexOutOfRange:
//     A triangle (or a caller-supplied vertex index) is outside [0, NumVertices).
//   - ErrEmptySurface:
//     An operation that needs at least one vertex received an empty surface.
//   - ErrMalformedInput:
//     A text input (OFF mesh or point list) could not be parsed.
//
// File formats:
//
//   - OFF: the "OFF" header, a "nv nf ne" count line, nv lines of "x y z" and nf
//     lines of "3 a b c". Lines starting with '#' and blank lines are ignored.
//   - Points: one "x y z" triple per non-empty line.
//
// Example:
//
//	s, err := surface.LoadOFF("head.off")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.NumVertices(), s.NumTriangles())
package surface
