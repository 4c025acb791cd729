package monogenic

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-monogenic/dsp/grid"
)

// energies holds per-pixel magnitudes derived from the stored responses.
type energies struct {
	odd   []float64 // sqrt(oddY² + oddX²)
	local []float64 // sqrt(even² + oddY² + oddX²)

	// floor is the noise threshold T subtracted from feature numerators.
	floor float64
	// inv is 1 / (local + Epsilon).
	inv []float64
}

func (p *Processor) energies() energies {
	n := len(p.cur.even)
	e := energies{
		odd:   make([]float64, n),
		local: make([]float64, n),
		inv:   make([]float64, n),
	}

	vecmath.Magnitude(e.odd, p.cur.oddX, p.cur.oddY)
	vecmath.Magnitude(e.local, p.cur.even, e.odd)

	e.floor = p.cfg.SymThresh * p.cfg.NoiseScale * floats.Max(e.local)
	for i, v := range e.local {
		e.inv[i] = 1 / (v + p.cfg.Epsilon)
	}

	return e
}

// normalize turns numerators into feature values in place: subtract the noise
// floor, clamp at zero, divide by local energy and clamp at one.
func (e energies) normalize(num []float64) {
	for i, v := range num {
		num[i] = math.Max(v-e.floor, 0)
	}
	vecmath.MulBlockInPlace(num, e.inv)
	for i, v := range num {
		if v > 1 {
			num[i] = 1
		}
	}
}

// LocalEnergy returns the amplitude of the monogenic signal,
// sqrt(even² + oddY² + oddX²).
func (p *Processor) LocalEnergy() (*grid.Grid, error) {
	if err := p.requireReady(); err != nil {
		return nil, err
	}

	return p.newMap(p.energies().local), nil
}

// LocalPhase returns atan2(oddEnergy, even) in [0, π]. Zero marks a pure
// positive line, π a pure negative line and π/2 an edge.
func (p *Processor) LocalPhase() (*grid.Grid, error) {
	if err := p.requireReady(); err != nil {
		return nil, err
	}

	out := make([]float64, len(p.cur.even))
	vecmath.Magnitude(out, p.cur.oddX, p.cur.oddY)
	for i, odd := range out {
		out[i] = math.Atan2(odd, p.cur.even[i])
	}
	return p.newMap(out), nil
}

// FeatureSymmetry returns the phase symmetry map. Values near one mark
// line-like features of either polarity.
func (p *Processor) FeatureSymmetry() (*grid.Grid, error) {
	if err := p.requireReady(); err != nil {
		return nil, err
	}

	e := p.energies()
	out := make([]float64, len(p.cur.even))
	for i, v := range p.cur.even {
		out[i] = math.Abs(v)
	}
	e.normalize(out)
	return p.newMap(out), nil
}

// FeatureAsymmetry returns the phase asymmetry map. Values near one mark
// step edges.
func (p *Processor) FeatureAsymmetry() (*grid.Grid, error) {
	if err := p.requireReady(); err != nil {
		return nil, err
	}

	e := p.energies()
	e.normalize(e.odd)
	return p.newMap(e.odd), nil
}

// SignedSymmetry returns symmetry split by polarity: pos responds to bright
// lines and neg to dark lines. At every pixel at least one of them is zero,
// and pos - neg is the signed symmetry.
func (p *Processor) SignedSymmetry() (pos, neg *grid.Grid, err error) {
	if err := p.requireReady(); err != nil {
		return nil, nil, err
	}

	e := p.energies()
	n := len(p.cur.even)
	posData := make([]float64, n)
	negData := make([]float64, n)
	for i, v := range p.cur.even {
		if v > 0 {
			posData[i] = v
		} else {
			negData[i] = -v
		}
	}
	e.normalize(posData)
	e.normalize(negData)
	return p.newMap(posData), p.newMap(negData), nil
}

// OrientedAsymmetry returns the asymmetry map together with the local
// orientation atan2(oddY, oddX) in (-π, π]. Orientation is NaN wherever the
// asymmetry does not exceed Config.OrientationFloor.
func (p *Processor) OrientedAsymmetry() (fa, orientation *grid.Grid, err error) {
	if err := p.requireReady(); err != nil {
		return nil, nil, err
	}

	e := p.energies()
	e.normalize(e.odd)

	theta := make([]float64, len(e.odd))
	for i, a := range e.odd {
		if a <= p.cfg.OrientationFloor {
			theta[i] = math.NaN()
			continue
		}
		t := math.Atan2(p.cur.oddY[i], p.cur.oddX[i])
		if t == -math.Pi {
			t = math.Pi
		}
		theta[i] = t
	}
	return p.newMap(e.odd), p.newMap(theta), nil
}
