package config_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/surfdist/config"
	"github.com/katalvlaran/surfdist/surface"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const full = `
surface: head.off
sensors: sensors.txt
subset: [0, 5, 9]
cancel-distance: 12.5
workers: 3
output:
  matrix: out/d.txt
  projection: out/p.txt
log:
  level: debug
`

func TestParse_Full(t *testing.T) {
	cfg, err := config.Parse([]byte(full))
	require.NoError(t, err)
	require.Equal(t, "head.off", cfg.Surface)
	require.Equal(t, "sensors.txt", cfg.Sensors)
	require.Equal(t, []int{0, 5, 9}, cfg.Subset)
	require.Equal(t, config.Distance(12.5), cfg.CancelDistance)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, config.Output{Matrix: "out/d.txt", Projection: "out/p.txt"}, cfg.Output)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestParse_DefaultsFillMissingKeys(t *testing.T) {
	cfg, err := config.Parse([]byte("surface: a.off\n"))
	require.NoError(t, err)

	want := config.Default()
	want.Surface = "a.off"
	require.Equal(t, want, cfg)
	require.True(t, cfg.CancelDistance.Unbounded())
}

func TestParse_CancelDistanceKeywords(t *testing.T) {
	for _, s := range []string{"inf", "INF", "+inf", ".inf", "infinity", "unbounded"} {
		cfg, err := config.Parse([]byte("surface: a.off\ncancel-distance: " + s + "\n"))
		require.NoError(t, err, s)
		require.True(t, math.IsInf(float64(cfg.CancelDistance), 1), s)
	}

	cfg, err := config.Parse([]byte("surface: a.off\ncancel-distance: 0\n"))
	require.NoError(t, err)
	require.Zero(t, cfg.CancelDistance)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"Empty":            "",
		"MissingSurface":   "workers: 2\n",
		"NegativeCancel":   "surface: a.off\ncancel-distance: -1\n",
		"NaNCancel":        "surface: a.off\ncancel-distance: nan\n",
		"ListCancel":       "surface: a.off\ncancel-distance: [1]\n",
		"NegativeWorkers":  "surface: a.off\nworkers: -2\n",
		"NegativeSubset":   "surface: a.off\nsubset: [1, -1]\n",
		"UnknownKey":       "surface: a.off\nthreads: 4\n",
		"BadLevel":         "surface: a.off\nlog:\n  level: loud\n",
		"NoMatrixOutput":   "surface: a.off\noutput:\n  matrix: \"\"\n",
		"NoProjectionPath": "surface: a.off\nsensors: s.txt\noutput:\n  projection: \"\"\n",
		"NotYAML":          "surface: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			require.ErrorIs(t, err, surface.ErrConfiguration)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surfdist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(full), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "head.off", cfg.Surface)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_ParsesBack(t *testing.T) {
	cfg := config.Default()
	cfg.Surface = "mesh.off"
	cfg.Subset = []int{3, 1}

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	require.Contains(t, buf.String(), "cancel-distance: inf")

	back, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}

func TestDistance_Flag(t *testing.T) {
	var d config.Distance
	require.NoError(t, d.Set("2.25"))
	require.Equal(t, "2.25", d.String())
	require.NoError(t, d.Set("unbounded"))
	require.Equal(t, "inf", d.String())
	require.Error(t, d.Set("-3"))
	require.Error(t, d.Set("far"))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := config.ParseLevel("trace")
	require.Error(t, err)
}

func TestRead_SkipsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 4\n"), 0o644))

	cfg, err := config.Read(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Workers)
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
