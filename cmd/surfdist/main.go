// Command surfdist computes surface-constrained distance matrices for a
// triangulated mesh and projects sensor positions onto its vertices.
//
// Usage:
//
//	surfdist -config run.yaml
//	surfdist -surface head.off -sensors sensors.txt -cancel 40 -out distances.txt
//	surfdist -generate icosahedron -surface ico.off
//
// Flags override values from the config file.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/surfdist/builder"
	"github.com/katalvlaran/surfdist/config"
	"github.com/katalvlaran/surfdist/distmap"
	"github.com/katalvlaran/surfdist/matrix"
	"github.com/katalvlaran/surfdist/meshgraph"
	"github.com/katalvlaran/surfdist/projection"
	"github.com/katalvlaran/surfdist/surface"
	"golang.org/x/exp/slog"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // computation or I/O failure
	exitUsage   = 2 // bad flags, config or input data
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("surfdist", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		surfPath   = fs.String("surface", "", "OFF mesh to read (or write, with -generate)")
		sensors    = fs.String("sensors", "", "sensor positions, one \"x y z\" per line")
		out        = fs.String("out", "", "distance matrix output file")
		projOut    = fs.String("projection", "", "sensor projection output file")
		workers    = fs.Int("workers", 0, "worker count, 0 = one per CPU")
		level      = fs.String("log-level", "", "debug | info | warn | error")
		generate   = fs.String("generate", "", "write a test mesh to -surface and exit: tetrahedron, octahedron, icosahedron or grid:RxC")
		verify     = fs.Bool("verify", false, "reload the written matrix and check it")
		cancel     config.Distance
		subset     intList
	)
	fs.Var(&cancel, "cancel", "cancel distance, a number or inf")
	fs.Var(&subset, "subset", "comma-separated source vertices, empty = all")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Read(*configPath); err != nil {
			fmt.Fprintln(stderr, "surfdist:", err)
			return exitUsage
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "surface":
			cfg.Surface = *surfPath
		case "sensors":
			cfg.Sensors = *sensors
		case "out":
			cfg.Output.Matrix = *out
		case "projection":
			cfg.Output.Projection = *projOut
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.Log.Level = *level
		case "cancel":
			cfg.CancelDistance = cancel
		case "subset":
			cfg.Subset = subset
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "surfdist:", err)
		return exitUsage
	}

	lvl, _ := config.ParseLevel(cfg.Log.Level) // checked by Validate
	logger := slog.New(NewLogHandler(stderr, &slog.HandlerOptions{Level: lvl})).
		With("run", uuid.NewString())

	var err error
	if *generate != "" {
		err = generateMesh(logger, *generate, cfg.Surface)
	} else {
		err = compute(logger, cfg, *verify)
	}
	if err != nil {
		logger.Error("run failed", "err", err)
		if errors.Is(err, surface.ErrConfiguration) {
			return exitUsage
		}
		return exitFailure
	}

	return exitOK
}

// compute is the main pipeline: load, build, compute, dump, project.
func compute(logger *slog.Logger, cfg config.Config, verify bool) error {
	s, err := surface.LoadOFF(cfg.Surface)
	if err != nil {
		return err
	}
	g, err := meshgraph.Build(s)
	if err != nil {
		return err
	}
	comps := g.Components()
	logger.Info("surface loaded", "path", cfg.Surface,
		"vertices", s.NumVertices(), "triangles", s.NumTriangles(),
		"edges", g.NumEdges(), "components", len(comps))
	if len(comps) > 1 {
		logger.Warn("surface is not connected, cross-component distances will be +Inf",
			"components", len(comps))
	}

	opts := []distmap.Option{
		distmap.WithSubset(cfg.Subset),
		distmap.WithCancelDistance(float64(cfg.CancelDistance)),
	}
	if cfg.Workers > 0 {
		opts = append(opts, distmap.WithWorkers(cfg.Workers))
	}
	start := time.Now()
	m, err := distmap.ComputeGraph(g, opts...)
	if err != nil {
		return err
	}
	logger.Info("distance matrix computed", "rows", m.Rows(), "cols", m.Cols(),
		"cancel", cfg.CancelDistance.String(), "elapsed", time.Since(start))

	if err = matrix.Dump(cfg.Output.Matrix, m); err != nil {
		return err
	}
	logger.Info("distance matrix written", "path", cfg.Output.Matrix)

	if verify {
		if err = verifyDump(logger, cfg, m); err != nil {
			return err
		}
	}

	if cfg.Sensors == "" {
		return nil
	}
	pts, err := surface.LoadPoints(cfg.Sensors)
	if err != nil {
		return err
	}
	idx, err := projection.Project(s, pts)
	if err != nil {
		return err
	}
	if err = writeIndices(cfg.Output.Projection, idx); err != nil {
		return err
	}
	logger.Info("sensors projected", "sensors", len(idx), "path", cfg.Output.Projection)

	return nil
}

// verifyDump reloads the written matrix and compares it with m. A full,
// unbounded matrix must also be symmetric with a zero diagonal.
func verifyDump(logger *slog.Logger, cfg config.Config, m *matrix.Dense) error {
	back, err := matrix.Load(cfg.Output.Matrix)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if back.Rows() != m.Rows() || back.Cols() != m.Cols() {
		return fmt.Errorf("verify: reloaded %dx%d, computed %dx%d",
			back.Rows(), back.Cols(), m.Rows(), m.Cols())
	}
	for i := 0; i < m.Rows(); i++ {
		want, _ := m.Row(i)
		got, _ := back.Row(i)
		for j := range want {
			if want[j] != got[j] {
				return fmt.Errorf("verify: entry (%d,%d) reloaded as %v, computed %v", i, j, got[j], want[j])
			}
		}
	}
	if len(cfg.Subset) == 0 && cfg.CancelDistance.Unbounded() {
		if err = matrix.ValidateSymmetric(m, 1e-9); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if err = matrix.ValidateZeroDiagonal(m, 0); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	}
	logger.Debug("matrix verified", "path", cfg.Output.Matrix)

	return nil
}

// generateMesh writes one of the built-in test meshes as OFF.
func generateMesh(logger *slog.Logger, kind, path string) error {
	var (
		s   *surface.Surface
		err error
	)
	switch {
	case kind == "tetrahedron":
		s = builder.CornerTetrahedron()
	case kind == "octahedron":
		s, err = builder.Platonic(builder.Octahedron)
	case kind == "icosahedron":
		s, err = builder.Platonic(builder.Icosahedron)
	case strings.HasPrefix(kind, "grid:"):
		var r, c int
		if _, err = fmt.Sscanf(kind, "grid:%dx%d", &r, &c); err != nil {
			return fmt.Errorf("%w: generate %q: want grid:RxC", surface.ErrConfiguration, kind)
		}
		s, err = builder.Grid(r, c)
	default:
		return fmt.Errorf("%w: generate: unknown mesh %q", surface.ErrConfiguration, kind)
	}
	if err != nil {
		return fmt.Errorf("%w: generate %q: %w", surface.ErrConfiguration, kind, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = surface.WriteOFF(f, s); err != nil {
		return errors.Join(err, f.Close())
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Info("mesh generated", "kind", kind, "path", path, "vertices", s.NumVertices())

	return nil
}

// writeIndices writes one vertex index per line.
func writeIndices(path string, idx []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, v := range idx {
		w.WriteString(strconv.Itoa(v))
		w.WriteByte('\n')
	}

	return w.Flush()
}

// intList is a flag.Value for "1,2,3".
type intList []int

func (l *intList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	*l = (*l)[:0]
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("bad vertex index %q", p)
		}
		*l = append(*l, v)
	}
	return nil
}
