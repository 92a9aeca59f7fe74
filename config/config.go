package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// Config is one surfdist run.
type Config struct {
	Surface        string   `yaml:"surface"`
	Sensors        string   `yaml:"sensors,omitempty"`
	Subset         []int    `yaml:"subset,omitempty"`
	CancelDistance Distance `yaml:"cancel-distance"`
	Workers        int      `yaml:"workers"`
	Output         Output   `yaml:"output"`
	Log            Log      `yaml:"log"`
}

// Output names the result files.
type Output struct {
	Matrix     string `yaml:"matrix"`
	Projection string `yaml:"projection"`
}

// Log configures the command's logger.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns a configuration with every optional key filled.
func Default() Config {
	return Config{
		CancelDistance: Distance(math.Inf(1)),
		Output: Output{
			Matrix:     "distances.txt",
			Projection: "projection.txt",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Read is Load without validation, for callers that still overlay values
// (command-line flags) before calling Validate.
func Read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Decode(data)
}

// Parse is Load for an in-memory document. An empty document yields Default,
// which then fails validation for the missing surface.
func Parse(data []byte) (Config, error) {
	cfg, err := Decode(data)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode overlays the YAML document data on Default. Unknown keys and
// malformed values are errors; field constraints are left to Validate.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Surface) == "" {
		return fieldErrorf("surface", "required")
	}
	d := float64(c.CancelDistance)
	if math.IsNaN(d) || d < 0 {
		return fieldErrorf("cancel-distance", "must be >= 0, got %v", d)
	}
	if c.Workers < 0 {
		return fieldErrorf("workers", "must be >= 0, got %d", c.Workers)
	}
	for i, v := range c.Subset {
		if v < 0 {
			return fieldErrorf("subset", "entry %d is negative (%d)", i, v)
		}
	}
	if c.Output.Matrix == "" {
		return fieldErrorf("output.matrix", "required")
	}
	if c.Sensors != "" && c.Output.Projection == "" {
		return fieldErrorf("output.projection", "required when sensors is set")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fieldErrorf("log.level", "%v", err)
	}

	return nil
}

// Write encodes c as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return enc.Close()
}

//**********************************************************
// enums
//**********************************************************

// Distance is a non-negative length that may be unbounded. In YAML and on the
// command line it is a number or one of inf, +inf, infinity, unbounded.
type Distance float64

// Unbounded reports whether d is +Inf.
func (d Distance) Unbounded() bool { return math.IsInf(float64(d), 1) }

func (d Distance) String() string {
	if d.Unbounded() {
		return "inf"
	}
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

// Set implements flag.Value.
func (d *Distance) Set(s string) error {
	v, err := DistanceFromString(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Distance) MarshalYAML() (any, error) {
	if d.Unbounded() {
		return "inf", nil
	}
	return float64(d), nil
}

func (d *Distance) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cancel distance must be a scalar", value.Line)
	}
	v, err := DistanceFromString(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = v
	return nil
}

// DistanceFromString parses a number or an unbounded keyword.
func DistanceFromString(s string) (Distance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf", ".inf", "infinity", "unbounded":
		return Distance(math.Inf(1)), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0, fmt.Errorf("invalid distance %q", s)
	}
	return Distance(v), nil
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.New("unknown log level " + strconv.Quote(s))
	}
}
