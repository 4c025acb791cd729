package monogenic

import (
	"fmt"

	"github.com/cwbudde/algo-monogenic/dsp/grid"
)

// ComputeFeatureAsymmetry builds a processor sized to img, computes its
// monogenic signal and returns the feature asymmetry map. Use a Processor
// directly when several images of one size are processed.
func ComputeFeatureAsymmetry(img *grid.Grid, cfg Config) (*grid.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !img.Valid() {
		return nil, fmt.Errorf("%w: empty or malformed image", ErrInvalidInput)
	}

	p, err := New(img.Rows, img.Cols, cfg)
	if err != nil {
		return nil, err
	}
	if err := p.FindMonogenicSignal(img); err != nil {
		return nil, err
	}
	return p.FeatureAsymmetry()
}
