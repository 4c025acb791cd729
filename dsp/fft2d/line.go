package fft2d

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// line is a 1-D complex FFT of fixed length.
type line interface {
	transform(dst, src []complex128, inverse bool) error
}

func newLine(n int, backend Backend) (line, Backend, error) {
	if n == 1 {
		// The length-1 DFT is the identity in both directions.
		return identityLine{}, backend, nil
	}

	switch backend {
	case BackendGonum:
		return newGonumLine(n), BackendGonum, nil
	case BackendAlgoFFT:
		l, err := newAlgoLine(n)
		if err != nil {
			return nil, backend, err
		}
		return l, BackendAlgoFFT, nil
	default:
		l, err := newAlgoLine(n)
		if err != nil {
			return newGonumLine(n), BackendGonum, nil
		}
		return l, BackendAlgoFFT, nil
	}
}

type identityLine struct{}

func (identityLine) transform(dst, src []complex128, _ bool) error {
	copy(dst, src)
	return nil
}

type algoLine struct {
	plan *algofft.Plan[complex128]
}

func newAlgoLine(n int) (*algoLine, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("failed to create FFT plan: %w", err)
	}

	return &algoLine{plan: plan}, nil
}

func (l *algoLine) transform(dst, src []complex128, inverse bool) error {
	if inverse {
		return l.plan.Inverse(dst, src)
	}
	return l.plan.Forward(dst, src)
}

// gonumLine wraps fourier.CmplxFFT. Its inverse is unnormalized, so the
// result is scaled by 1/n here to match algo-fft.
type gonumLine struct {
	fft   *fourier.CmplxFFT
	tmp   []complex128
	scale complex128
}

func newGonumLine(n int) *gonumLine {
	return &gonumLine{
		fft:   fourier.NewCmplxFFT(n),
		tmp:   make([]complex128, n),
		scale: complex(1/float64(n), 0),
	}
}

func (l *gonumLine) transform(dst, src []complex128, inverse bool) error {
	if len(dst) != len(l.tmp) || len(src) != len(l.tmp) {
		return fmt.Errorf("%w: dst %d, src %d, want %d", ErrLengthMismatch, len(dst), len(src), len(l.tmp))
	}

	copy(l.tmp, src)
	if !inverse {
		l.fft.Coefficients(dst, l.tmp)
		return nil
	}

	l.fft.Sequence(dst, l.tmp)
	for i := range dst {
		dst[i] *= l.scale
	}
	return nil
}
