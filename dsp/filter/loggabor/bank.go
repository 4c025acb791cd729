package loggabor

import (
	"errors"
	"fmt"
	"math"
)

// Bank errors.
var (
	ErrInvalidParameter = errors.New("loggabor: invalid parameter")
	ErrLengthMismatch   = errors.New("loggabor: buffer length mismatch")
)

// Bank holds the even and odd frequency kernels for one image size.
type Bank struct {
	rows, cols int

	wavelength float64
	shapeSigma float64

	even []complex128
	oddY []complex128
	oddX []complex128
}

// NewBank builds the kernels for a rows x cols image.
//
// wavelength is the center wavelength in pixels. shapeSigma is the ratio of
// the Gaussian's standard deviation to the center frequency on the log axis;
// 0.75 gives roughly one octave, 0.55 two and 0.41 three. It must differ
// from 1, where the bandwidth collapses.
func NewBank(rows, cols int, wavelength, shapeSigma float64) (*Bank, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidParameter, rows, cols)
	}
	if !(wavelength > 0) || math.IsInf(wavelength, 0) {
		return nil, fmt.Errorf("%w: wavelength %v must be positive and finite", ErrInvalidParameter, wavelength)
	}
	if !(shapeSigma > 0) || math.IsInf(shapeSigma, 0) || shapeSigma == 1 {
		return nil, fmt.Errorf("%w: shape sigma %v must be positive, finite and != 1", ErrInvalidParameter, shapeSigma)
	}

	b := &Bank{
		rows:       rows,
		cols:       cols,
		wavelength: wavelength,
		shapeSigma: shapeSigma,
		even:       make([]complex128, rows*cols),
		oddY:       make([]complex128, rows*cols),
		oddX:       make([]complex128, rows*cols),
	}
	b.build()

	return b, nil
}

func (b *Bank) build() {
	f0 := 1 / b.wavelength
	logSigma := math.Log(b.shapeSigma)
	denom := 2 * logSigma * logSigma

	// Column frequencies are shared by every row.
	us := make([]float64, b.cols)
	for x := range us {
		us[x] = Frequency(x, b.cols)
	}

	for y := 0; y < b.rows; y++ {
		v := Frequency(y, b.rows)
		row := y * b.cols
		for x, u := range us {
			f := math.Hypot(u, v)
			if f == 0 {
				// even/odd already zero at DC
				continue
			}

			lr := math.Log(f / f0)
			g := math.Exp(-lr * lr / denom)

			b.even[row+x] = complex(g, 0)
			b.oddX[row+x] = complex(0, g*u/f)
			b.oddY[row+x] = complex(0, g*v/f)
		}
	}
}

// Frequency returns the normalized frequency of DFT bin k out of n, in
// cycles per sample: k/n for the first ceil(n/2) bins and (k-n)/n above.
func Frequency(k, n int) float64 {
	if k < (n+1)/2 {
		return float64(k) / float64(n)
	}
	return float64(k-n) / float64(n)
}

// Rows returns the kernel height.
func (b *Bank) Rows() int { return b.rows }

// Cols returns the kernel width.
func (b *Bank) Cols() int { return b.cols }

// Wavelength returns the center wavelength in pixels.
func (b *Bank) Wavelength() float64 { return b.wavelength }

// ShapeSigma returns the log-bandwidth shape parameter.
func (b *Bank) ShapeSigma() float64 { return b.shapeSigma }

// CenterFrequency returns 1/wavelength in cycles per pixel.
func (b *Bank) CenterFrequency() float64 { return 1 / b.wavelength }

// Even returns a copy of the even kernel.
func (b *Bank) Even() []complex128 { return cloneKernel(b.even) }

// OddY returns a copy of the vertical odd kernel.
func (b *Bank) OddY() []complex128 { return cloneKernel(b.oddY) }

// OddX returns a copy of the horizontal odd kernel.
func (b *Bank) OddX() []complex128 { return cloneKernel(b.oddX) }

func cloneKernel(k []complex128) []complex128 {
	out := make([]complex128, len(k))
	copy(out, k)
	return out
}

// Apply multiplies spectrum elementwise by each kernel, writing the products
// to even, oddY and oddX. All slices must have length Rows()*Cols().
// spectrum is not modified.
func (b *Bank) Apply(spectrum, even, oddY, oddX []complex128) error {
	n := b.rows * b.cols
	if len(spectrum) != n || len(even) != n || len(oddY) != n || len(oddX) != n {
		return fmt.Errorf("%w: lengths %d/%d/%d/%d, want %d",
			ErrLengthMismatch, len(spectrum), len(even), len(oddY), len(oddX), n)
	}

	for i, s := range spectrum {
		even[i] = s * b.even[i]
		oddY[i] = s * b.oddY[i]
		oddX[i] = s * b.oddX[i]
	}

	return nil
}
