// Package grid provides the dense two-dimensional real array used for
// images, filter responses, and feature maps.
//
// Samples are stored row-major: the value at row y, column x lives at
// Data[y*Cols+x]. Rows corresponds to image height and Cols to image width.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Grid errors.
var (
	ErrInvalidSize    = errors.New("grid: invalid size")
	ErrLengthMismatch = errors.New("grid: data length mismatch")
	ErrRaggedRows     = errors.New("grid: ragged rows")
)

// Grid is a row-major 2-D array of float64 samples.
type Grid struct {
	Rows int
	Cols int
	Data []float64
}

// New allocates a zero-filled grid of the given size.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}

	return &Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// FromSlice wraps data as a rows x cols grid without copying.
func FromSlice(rows, cols int, data []float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(data), rows*cols)
	}

	return &Grid{Rows: rows, Cols: cols, Data: data}, nil
}

// FromRows copies a slice of equal-length rows into a new grid.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidSize)
	}

	cols := len(rows[0])
	g := &Grid{Rows: len(rows), Cols: cols, Data: make([]float64, len(rows)*cols)}
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, y, len(row), cols)
		}
		copy(g.Data[y*cols:], row)
	}

	return g, nil
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) {
	return g.Rows, g.Cols
}

// Len returns the number of samples.
func (g *Grid) Len() int {
	return g.Rows * g.Cols
}

// Empty reports whether g holds no samples. A nil grid is empty.
func (g *Grid) Empty() bool {
	return g == nil || g.Rows <= 0 || g.Cols <= 0 || len(g.Data) == 0
}

// Valid reports whether the data length matches the declared size.
func (g *Grid) Valid() bool {
	return !g.Empty() && len(g.Data) == g.Rows*g.Cols
}

// SameSize reports whether g and other have identical dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return g.Rows == other.Rows && g.Cols == other.Cols
}

// At returns the sample at row y, column x.
func (g *Grid) At(y, x int) float64 {
	return g.Data[y*g.Cols+x]
}

// Set stores v at row y, column x.
func (g *Grid) Set(y, x int, v float64) {
	g.Data[y*g.Cols+x] = v
}

// Row returns row y as a sub-slice of Data.
func (g *Grid) Row(y int) []float64 {
	return g.Data[y*g.Cols : (y+1)*g.Cols]
}

// Col copies column x into a new slice.
func (g *Grid) Col(x int) []float64 {
	out := make([]float64, g.Rows)
	for y := range out {
		out[y] = g.Data[y*g.Cols+x]
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.Data))
	copy(data, g.Data)
	return &Grid{Rows: g.Rows, Cols: g.Cols, Data: data}
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// Scale multiplies every sample by s in place.
func (g *Grid) Scale(s float64) {
	vecmath.ScaleBlock(g.Data, g.Data, s)
}

// Add accumulates other into g in place. Sizes must match.
func (g *Grid) Add(other *Grid) error {
	if !g.SameSize(other) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrLengthMismatch, g.Rows, g.Cols, other.Rows, other.Cols)
	}

	vecmath.AddBlockInPlace(g.Data, other.Data)
	return nil
}

// MinMax returns the smallest and largest finite samples.
// NaN samples are skipped. If no finite sample exists both results are NaN.
func (g *Grid) MinMax() (lo, hi float64) {
	if floats.HasNaN(g.Data) {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range g.Data {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if lo > hi {
			return math.NaN(), math.NaN()
		}
		return lo, hi
	}
	if len(g.Data) == 0 {
		return math.NaN(), math.NaN()
	}

	return floats.Min(g.Data), floats.Max(g.Data)
}

// Normalize returns a copy of g linearly mapped so its minimum becomes lo
// and its maximum becomes hi. A flat grid maps to lo. NaN samples stay NaN.
func (g *Grid) Normalize(lo, hi float64) *Grid {
	out := g.Clone()
	mn, mx := g.MinMax()
	if math.IsNaN(mn) {
		return out
	}

	span := mx - mn
	for i, v := range out.Data {
		switch {
		case math.IsNaN(v):
		case span == 0:
			out.Data[i] = lo
		default:
			out.Data[i] = lo + (v-mn)/span*(hi-lo)
		}
	}

	return out
}
