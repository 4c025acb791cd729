package monogenic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-monogenic/dsp/fft2d"
	"github.com/cwbudde/algo-monogenic/dsp/filter/loggabor"
	"github.com/cwbudde/algo-monogenic/dsp/grid"
)

// Processor errors.
var (
	ErrInvalidParameter  = errors.New("monogenic: invalid parameter")
	ErrDimensionMismatch = errors.New("monogenic: image dimension mismatch")
	ErrInvalidInput      = errors.New("monogenic: invalid input image")
	ErrNotReady          = errors.New("monogenic: no monogenic signal computed")
)

// State is the lifecycle stage of a Processor.
type State int

const (
	// StateConstructed means no signal has been computed yet.
	StateConstructed State = iota
	// StateReady means responses from the last successful image are stored.
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// responses are the spatial filter outputs for one image.
type responses struct {
	even []float64
	oddY []float64
	oddX []float64
}

func newResponses(n int) responses {
	return responses{
		even: make([]float64, n),
		oddY: make([]float64, n),
		oddX: make([]float64, n),
	}
}

// Processor computes monogenic signals for images of one fixed size.
type Processor struct {
	rows, cols int
	cfg        Config

	bank *loggabor.Bank
	fft  fft2d.Transform

	state State
	cur   responses
	next  responses

	spectrum []complex128
	evenSpec []complex128
	oddYSpec []complex128
	oddXSpec []complex128
}

// New creates a processor for rows x cols images.
func New(rows, cols int, cfg Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidParameter, rows, cols)
	}

	t, err := fft2d.New(rows, cols,
		fft2d.WithBackend(cfg.Backend),
		fft2d.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, fmt.Errorf("monogenic: failed to create transform: %w", err)
	}

	return NewWithTransform(rows, cols, cfg, t)
}

// NewWithTransform creates a processor that uses t for the forward and
// inverse transforms. t must be sized rows x cols. cfg.Backend and
// cfg.Workers are ignored.
func NewWithTransform(rows, cols int, cfg Config, t fft2d.Transform) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil transform", ErrInvalidParameter)
	}
	if t.Rows() != rows || t.Cols() != cols {
		return nil, fmt.Errorf("%w: transform is %dx%d, want %dx%d",
			ErrInvalidParameter, t.Rows(), t.Cols(), rows, cols)
	}

	bank, err := loggabor.NewBank(rows, cols, cfg.Wavelength, cfg.ShapeSigma)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	n := rows * cols
	return &Processor{
		rows:     rows,
		cols:     cols,
		cfg:      cfg,
		bank:     bank,
		fft:      t,
		state:    StateConstructed,
		cur:      newResponses(n),
		next:     newResponses(n),
		spectrum: make([]complex128, n),
		evenSpec: make([]complex128, n),
		oddYSpec: make([]complex128, n),
		oddXSpec: make([]complex128, n),
	}, nil
}

// Rows returns the image height this processor accepts.
func (p *Processor) Rows() int { return p.rows }

// Cols returns the image width this processor accepts.
func (p *Processor) Cols() int { return p.cols }

// Config returns the configuration the processor was built with.
func (p *Processor) Config() Config { return p.cfg }

// State returns the current lifecycle state.
func (p *Processor) State() State { return p.state }

// Bank returns the processor's filter bank.
func (p *Processor) Bank() *loggabor.Bank { return p.bank }

// FindMonogenicSignal filters img and stores its even and odd responses,
// replacing those of any previous image. img must be Rows() x Cols().
//
// On error the stored responses and the state are unchanged.
func (p *Processor) FindMonogenicSignal(img *grid.Grid) error {
	if err := p.checkImage(img); err != nil {
		return err
	}

	if err := fft2d.ForwardReal(p.fft, p.spectrum, img.Data); err != nil {
		return fmt.Errorf("monogenic: forward transform: %w", err)
	}

	if err := p.bank.Apply(p.spectrum, p.evenSpec, p.oddYSpec, p.oddXSpec); err != nil {
		return fmt.Errorf("monogenic: apply filters: %w", err)
	}

	// Results land in the back buffer and are swapped in only once all three
	// inverse transforms have succeeded.
	outputs := []struct {
		spec []complex128
		dst  []float64
	}{
		{p.evenSpec, p.next.even},
		{p.oddYSpec, p.next.oddY},
		{p.oddXSpec, p.next.oddX},
	}
	for _, o := range outputs {
		if err := p.fft.Inverse(o.spec, o.spec); err != nil {
			return fmt.Errorf("monogenic: inverse transform: %w", err)
		}
		if err := fft2d.RealPart(o.dst, o.spec); err != nil {
			return fmt.Errorf("monogenic: inverse transform: %w", err)
		}
	}

	for _, r := range [][]float64{p.next.even, p.next.oddY, p.next.oddX} {
		if !allFinite(r) {
			return fmt.Errorf("%w: response overflow, sample magnitudes too large", ErrInvalidInput)
		}
	}

	p.cur, p.next = p.next, p.cur
	p.state = StateReady
	return nil
}

func (p *Processor) checkImage(img *grid.Grid) error {
	if img.Empty() {
		return fmt.Errorf("%w: empty image", ErrInvalidInput)
	}
	if img.Rows != p.rows || img.Cols != p.cols {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDimensionMismatch, img.Rows, img.Cols, p.rows, p.cols)
	}
	if !img.Valid() {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidInput, len(img.Data), img.Rows, img.Cols)
	}
	for i, v := range img.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite sample %v at (%d,%d)", ErrInvalidInput, v, i/p.cols, i%p.cols)
		}
	}
	return nil
}

func allFinite(data []float64) bool {
	if floats.HasNaN(data) {
		return false
	}
	for _, v := range data {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p *Processor) requireReady() error {
	if p.state != StateReady {
		return fmt.Errorf("%w: call FindMonogenicSignal first", ErrNotReady)
	}
	return nil
}

// newMap wraps data as a feature map of the processor's size.
func (p *Processor) newMap(data []float64) *grid.Grid {
	return &grid.Grid{Rows: p.rows, Cols: p.cols, Data: data}
}

func (p *Processor) copyMap(src []float64) *grid.Grid {
	data := make([]float64, len(src))
	copy(data, src)
	return p.newMap(data)
}

// EvenFilt returns a copy of the even (band-pass) response.
func (p *Processor) EvenFilt() (*grid.Grid, error) {
	if err := p.requireReady(); err != nil {
		return nil, err
	}
	return p.copyMap(p.cur.even), nil
}

// OddFiltCartesian returns copies of the vertical and horizontal odd
// responses.
func (p *Processor) OddFiltCartesian() (oddY, oddX *grid.Grid, err error) {
	if err := p.requireReady(); err != nil {
		return nil, nil, err
	}
	return p.copyMap(p.cur.oddY), p.copyMap(p.cur.oddX), nil
}
