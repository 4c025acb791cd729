package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-monogenic/dsp/grid"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Constant returns a rows x cols image filled with value.
func Constant(rows, cols int, value float64) *grid.Grid {
	return &grid.Grid{Rows: rows, Cols: cols, Data: DC(value, rows*cols)}
}

// NoiseImage returns a rows x cols image of deterministic uniform noise.
func NoiseImage(seed int64, rows, cols int, amplitude float64) *grid.Grid {
	return &grid.Grid{Rows: rows, Cols: cols, Data: DeterministicNoise(seed, amplitude, rows*cols)}
}

// StepEdgeX returns an image that is lo left of column edge and hi from
// column edge onwards: a vertical edge with a horizontal gradient.
func StepEdgeX(rows, cols, edge int, lo, hi float64) *grid.Grid {
	g := Constant(rows, cols, lo)
	for y := 0; y < rows; y++ {
		for x := edge; x < cols; x++ {
			g.Set(y, x, hi)
		}
	}
	return g
}

// StepEdgeY returns an image that is lo above row edge and hi from row edge
// downwards: a horizontal edge with a vertical gradient.
func StepEdgeY(rows, cols, edge int, lo, hi float64) *grid.Grid {
	g := Constant(rows, cols, lo)
	for y := edge; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.Set(y, x, hi)
		}
	}
	return g
}

// LineX returns a zero image with a one-pixel vertical line of the given
// value at column x.
func LineX(rows, cols, x int, value float64) *grid.Grid {
	g := Constant(rows, cols, 0)
	for y := 0; y < rows; y++ {
		g.Set(y, x, value)
	}
	return g
}

// Impulse returns a zero image with a single unit sample at (y, x).
// Out-of-range positions yield an all-zero image.
func Impulse(rows, cols, y, x int) *grid.Grid {
	g := Constant(rows, cols, 0)
	if y >= 0 && y < rows && x >= 0 && x < cols {
		g.Set(y, x, 1)
	}
	return g
}
