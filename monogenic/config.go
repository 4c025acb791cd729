package monogenic

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-monogenic/dsp/fft2d"
)

const (
	// DefaultShapeSigma gives a log-Gabor bandwidth of roughly two octaves.
	DefaultShapeSigma = 0.5
	// DefaultSymThresh is the noise floor as a fraction of the energy scale.
	DefaultSymThresh = 0.16
	// DefaultNoiseScale uses the image's peak local energy as the scale.
	DefaultNoiseScale = 1.0
	// DefaultEpsilon keeps flat regions from dividing by zero.
	DefaultEpsilon = 1e-4
	// DefaultOrientationFloor is the asymmetry below which orientation is NaN.
	DefaultOrientationFloor = 1e-6
)

// Config holds processor parameters.
type Config struct {
	// Wavelength is the log-Gabor center wavelength in pixels. Required.
	// Shorter wavelengths keep finer detail.
	Wavelength float64

	// ShapeSigma sets the log-Gabor bandwidth. Must be positive and != 1.
	ShapeSigma float64

	// SymThresh is the noise floor applied to the feature numerators, as a
	// fraction of the local energy scale. Zero disables the floor.
	SymThresh float64

	// NoiseScale is the fraction of the image's maximum local energy used as
	// the local energy scale.
	NoiseScale float64

	// Epsilon is added to the local energy in every normalization.
	Epsilon float64

	// OrientationFloor is the asymmetry that must be exceeded for
	// OrientedAsymmetry to report an orientation.
	OrientationFloor float64

	// Backend selects the FFT engine.
	Backend fft2d.Backend

	// Workers is the number of goroutines used by the FFT passes.
	// Zero means one.
	Workers int
}

// DefaultConfig returns the default configuration. Wavelength is left zero
// and must be set, for example with [Config.WithWavelength].
func DefaultConfig() Config {
	return Config{
		ShapeSigma:       DefaultShapeSigma,
		SymThresh:        DefaultSymThresh,
		NoiseScale:       DefaultNoiseScale,
		Epsilon:          DefaultEpsilon,
		OrientationFloor: DefaultOrientationFloor,
		Backend:          fft2d.BackendAuto,
		Workers:          1,
	}
}

// WithWavelength returns a copy of c with Wavelength set.
func (c Config) WithWavelength(wavelength float64) Config {
	c.Wavelength = wavelength
	return c
}

// WithShapeSigma returns a copy of c with ShapeSigma set.
func (c Config) WithShapeSigma(sigma float64) Config {
	c.ShapeSigma = sigma
	return c
}

// WithSymThresh returns a copy of c with SymThresh set.
func (c Config) WithSymThresh(thresh float64) Config {
	c.SymThresh = thresh
	return c
}

// Validate reports the first invalid field, wrapped in ErrInvalidParameter.
func (c Config) Validate() error {
	switch {
	case !positive(c.Wavelength):
		return fmt.Errorf("%w: wavelength %v must be positive", ErrInvalidParameter, c.Wavelength)
	case !positive(c.ShapeSigma) || c.ShapeSigma == 1:
		return fmt.Errorf("%w: shape sigma %v must be positive and != 1", ErrInvalidParameter, c.ShapeSigma)
	case !nonNegative(c.SymThresh):
		return fmt.Errorf("%w: sym thresh %v must be >= 0", ErrInvalidParameter, c.SymThresh)
	case !nonNegative(c.NoiseScale):
		return fmt.Errorf("%w: noise scale %v must be >= 0", ErrInvalidParameter, c.NoiseScale)
	case !positive(c.Epsilon):
		return fmt.Errorf("%w: epsilon %v must be positive", ErrInvalidParameter, c.Epsilon)
	case !nonNegative(c.OrientationFloor):
		return fmt.Errorf("%w: orientation floor %v must be >= 0", ErrInvalidParameter, c.OrientationFloor)
	case c.Backend < fft2d.BackendAuto || c.Backend > fft2d.BackendGonum:
		return fmt.Errorf("%w: %w: %v", ErrInvalidParameter, fft2d.ErrUnknownBackend, c.Backend)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must be >= 0", ErrInvalidParameter, c.Workers)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
