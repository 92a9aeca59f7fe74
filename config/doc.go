// Package config holds the run configuration of the surfdist command: which
// surface and sensor files to read, the distance computation parameters and
// where to write the results.
//
// Configuration is a YAML document:
//
//	surface: head.off          # OFF mesh, required
//	sensors: sensors.txt       # optional, "x y z" per line
//	subset: [0, 5, 9]          # optional, empty = all vertices
//	cancel-distance: inf       # number, or inf/unbounded
//	workers: 0                 # 0 = one per CPU
//	output:
//	  matrix: distances.txt
//	  projection: projection.txt
//	log:
//	  level: info              # debug | info | warn | error
//
// Load starts from Default and overlays the file, so every key is optional
// except surface. Unknown keys are rejected. Validate reports the first bad
// field wrapped in ErrInvalidConfig.
package config
