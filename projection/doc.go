// Package projection maps free 3-D points (sensor positions) onto the nearest
// vertex of a surface by straight-line Euclidean distance.
//
// Project scans every vertex for every sensor. Ties go to the lowest vertex
// index: the scan is ascending and only a strictly closer vertex replaces the
// current best. The result has one index per sensor, in input order.
//
// An empty surface is a configuration error (surface.ErrEmptySurface); there
// is no vertex to project onto. Zero sensors against a non-empty surface is
// an empty, successful result.
package projection
