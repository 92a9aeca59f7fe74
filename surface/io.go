// SPDX-License-Identifier: MIT

package surface

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	tagReadOFF    = "ReadOFF"
	tagReadPoints = "ReadPoints"
	offHeader     = "OFF"
)

// lineScanner yields trimmed, non-empty, non-comment lines with their number.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &lineScanner{sc: sc}
}

// next returns the fields of the next meaningful line, or io.EOF.
func (ls *lineScanner) next() ([]string, error) {
	for ls.sc.Scan() {
		ls.line++
		text := strings.TrimSpace(ls.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}

		return strings.Fields(text), nil
	}
	if err := ls.sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

func parseVec3(fields []string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("want 3 coordinates, got %d", len(fields))
	}
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return v, err
		}
		v[k] = f
	}

	return v, nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

// maxPrealloc caps the capacity reserved from a declared OFF count.
const maxPrealloc = 1 << 16

// ReadOFF parses an ASCII OFF triangle mesh.
//
// Only triangular faces are accepted; any other polygon size is reported as
// ErrMalformedInput. Triangle indices are validated against the vertex count.
func ReadOFF(r io.Reader) (*Surface, error) {
	ls := newLineScanner(r)

	fields, err := ls.next()
	if err != nil {
		return nil, fmt.Errorf("%s: missing header: %w", tagReadOFF, ErrMalformedInput)
	}
	if fields[0] != offHeader {
		return nil, lineErrorf(tagReadOFF, ls.line, ErrMalformedInput, "header %q", fields[0])
	}
	// Counts may share the header line ("OFF 4 4 6").
	fields = fields[1:]
	if len(fields) == 0 {
		if fields, err = ls.next(); err != nil {
			return nil, fmt.Errorf("%s: missing counts: %w", tagReadOFF, ErrMalformedInput)
		}
	}
	counts, err := parseInts(fields)
	if err != nil || len(counts) < 2 || counts[0] < 0 || counts[1] < 0 {
		return nil, lineErrorf(tagReadOFF, ls.line, ErrMalformedInput, "counts %v", fields)
	}
	nv, nf := counts[0], counts[1]

	// Counts come from the input; slices grow past this as lines arrive.
	s := &Surface{
		Vertices:  make([]mgl64.Vec3, 0, min(nv, maxPrealloc)),
		Triangles: make([]Triangle, 0, min(nf, maxPrealloc)),
	}
	for i := 0; i < nv; i++ {
		if fields, err = ls.next(); err != nil {
			return nil, fmt.Errorf("%s: vertex %d: %w", tagReadOFF, i, ErrMalformedInput)
		}
		v, perr := parseVec3(fields)
		if perr != nil {
			return nil, lineErrorf(tagReadOFF, ls.line, ErrMalformedInput, "vertex %d: %v", i, perr)
		}
		s.Vertices = append(s.Vertices, v)
	}
	for i := 0; i < nf; i++ {
		if fields, err = ls.next(); err != nil {
			return nil, fmt.Errorf("%s: face %d: %w", tagReadOFF, i, ErrMalformedInput)
		}
		idx, perr := parseInts(fields)
		if perr != nil || len(idx) < 4 || idx[0] != 3 {
			return nil, lineErrorf(tagReadOFF, ls.line, ErrMalformedInput, "face %d is not a triangle", i)
		}
		s.Triangles = append(s.Triangles, Triangle{idx[1], idx[2], idx[3]})
	}
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tagReadOFF, err)
	}

	return s, nil
}

// LoadOFF opens path and parses it with ReadOFF.
func LoadOFF(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tagReadOFF, err)
	}
	defer f.Close()

	return ReadOFF(f)
}

// WriteOFF writes s in the format accepted by ReadOFF.
func WriteOFF(w io.Writer, s *Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d 0\n", offHeader, len(s.Vertices), len(s.Triangles))
	for _, v := range s.Vertices {
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
	}
	for _, t := range s.Triangles {
		fmt.Fprintf(bw, "3 %d %d %d\n", t[0], t[1], t[2])
	}

	return bw.Flush()
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// ReadPoints parses one "x y z" position per non-empty line.
func ReadPoints(r io.Reader) ([]mgl64.Vec3, error) {
	ls := newLineScanner(r)
	var pts []mgl64.Vec3
	for {
		fields, err := ls.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tagReadPoints, err)
		}
		v, perr := parseVec3(fields)
		if perr != nil {
			return nil, lineErrorf(tagReadPoints, ls.line, ErrMalformedInput, "%v", perr)
		}
		pts = append(pts, v)
	}

	return pts, nil
}

// LoadPoints opens path and parses it with ReadPoints.
func LoadPoints(path string) ([]mgl64.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tagReadPoints, err)
	}
	defer f.Close()

	return ReadPoints(f)
}
