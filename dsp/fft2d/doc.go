// Package fft2d provides two-dimensional discrete Fourier transforms over
// row-major complex grids.
//
// Transforms are separable: every row is transformed with a 1-D plan of
// length cols, then every column with a 1-D plan of length rows. Two 1-D
// engines are available:
//
//   - [BackendAlgoFFT]: plans from algo-fft (the default).
//   - [BackendGonum]: gonum's dsp/fourier, which accepts any length.
//
// [BackendAuto] uses algo-fft per axis and falls back to gonum for lengths
// algo-fft cannot plan.
//
// # Conventions
//
// Forward computes X[k,l] = sum x[m,n] exp(-2*pi*i*(k*m/rows + l*n/cols)).
// Inverse applies the conjugate kernel and divides by rows*cols, so
// Inverse(Forward(x)) == x up to rounding. dst and src may alias.
//
// # Usage
//
//	t, err := fft2d.New(rows, cols)
//	spec := make([]complex128, rows*cols)
//	err = fft2d.ForwardReal(t, spec, pixels)
//	err = t.Inverse(spec, spec)
//
// Row and column passes can be spread over goroutines with [WithWorkers].
// Each worker owns private plans and scratch, so a single [Separable] is
// still not safe for concurrent calls.
package fft2d
