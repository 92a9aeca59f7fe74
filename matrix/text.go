// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	opWriteText = "WriteText"
	opDump      = "Dump"
	opReadText  = "ReadText"
	opLoad      = "Load"
)

// WriteText writes m as plain text: one row per line, values separated by a
// single space, row-major order, no header. +Inf is written as "+Inf".
//
// Any write or flush failure is returned; nothing is dropped silently.
func WriteText(w io.Writer, m Matrix) error {
	if m == nil {
		return matrixErrorf(opWriteText, ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(opWriteText, err)
			}
			buf = buf[:0]
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = appendValue(buf, v)
			if _, err = bw.Write(buf); err != nil {
				return matrixErrorf(opWriteText, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return matrixErrorf(opWriteText, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opWriteText, err)
	}

	return nil
}

func appendValue(dst []byte, v float64) []byte {
	if math.IsInf(v, 1) {
		return append(dst, "+Inf"...)
	}

	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}

// Dump creates (or truncates) the file at path and writes m into it with
// WriteText. A failed close is reported like any other write failure.
func Dump(path string, m Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return matrixErrorf(opDump, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = matrixErrorf(opDump, cerr)
		}
	}()

	return WriteText(f, m)
}

// ReadText parses the WriteText format into a distance matrix (+Inf allowed).
// Blank lines are skipped; all rows must have the same number of values.
func ReadText(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var (
		data []float64
		rows int
		cols = -1
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cols >= 0 && len(fields) != cols {
			return nil, fmt.Errorf("%s: line %d: %d values, want %d: %w", opReadText, line, len(fields), cols, ErrRaggedRows)
		}
		cols = len(fields)
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: %w", opReadText, line, err)
			}
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return nil, fmt.Errorf("%s: line %d: %w", opReadText, line, ErrNaNInf)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(opReadText, err)
	}
	if cols < 0 {
		cols = 0
	}
	m, err := NewDistances(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opReadText, err)
	}
	copy(m.data, data)

	return m, nil
}

// Load opens path and parses it with ReadText.
func Load(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, matrixErrorf(opLoad, err)
	}
	defer f.Close()

	return ReadText(f)
}
