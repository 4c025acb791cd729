package fft2d

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Transform errors.
var (
	ErrInvalidSize    = errors.New("fft2d: invalid size")
	ErrLengthMismatch = errors.New("fft2d: buffer length mismatch")
	ErrUnknownBackend = errors.New("fft2d: unknown backend")
)

// Transform is a 2-D spectral transform of fixed size over row-major buffers
// of length Rows()*Cols().
type Transform interface {
	Rows() int
	Cols() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// Backend selects the 1-D FFT engine.
type Backend int

const (
	// BackendAuto uses algo-fft and falls back to gonum per axis.
	BackendAuto Backend = iota
	// BackendAlgoFFT requires algo-fft plans for both axes.
	BackendAlgoFFT
	// BackendGonum uses gonum's dsp/fourier for both axes.
	BackendGonum
)

// String returns the flag-style backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendAlgoFFT:
		return "algofft"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps a backend name ("auto", "algofft", "gonum") to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return BackendAuto, nil
	case "algofft", "algo-fft":
		return BackendAlgoFFT, nil
	case "gonum":
		return BackendGonum, nil
	default:
		return BackendAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Option configures a transform.
type Option func(*config)

type config struct {
	backend Backend
	workers int
}

func defaultConfig() config {
	return config{
		backend: BackendAuto,
		workers: 1,
	}
}

// WithBackend selects the 1-D engine. Unknown values are ignored.
func WithBackend(b Backend) Option {
	return func(c *config) {
		if b >= BackendAuto && b <= BackendGonum {
			c.backend = b
		}
	}
}

// WithWorkers sets how many goroutines share the row and column passes.
// Values below 1 are ignored; defaults to 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// Separable is a row-column 2-D FFT.
type Separable struct {
	rows, cols int

	rowBackend Backend
	colBackend Backend

	workers []*worker
}

type worker struct {
	row     line // length cols
	col     line // length rows
	scratch []complex128
}

// New creates a rows x cols transform.
func New(rows, cols int, opts ...Option) (*Separable, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// More workers than rows or columns would sit idle in one of the passes.
	n := min(cfg.workers, max(rows, cols))

	s := &Separable{
		rows:    rows,
		cols:    cols,
		workers: make([]*worker, n),
	}

	for i := range s.workers {
		row, rowBackend, err := newLine(cols, cfg.backend)
		if err != nil {
			return nil, fmt.Errorf("fft2d: row plan (length %d): %w", cols, err)
		}

		col, colBackend, err := newLine(rows, cfg.backend)
		if err != nil {
			return nil, fmt.Errorf("fft2d: column plan (length %d): %w", rows, err)
		}

		s.workers[i] = &worker{
			row:     row,
			col:     col,
			scratch: make([]complex128, rows),
		}
		s.rowBackend = rowBackend
		s.colBackend = colBackend
	}

	return s, nil
}

// Rows returns the number of rows.
func (s *Separable) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Separable) Cols() int { return s.cols }

// Workers returns the number of goroutines used per pass.
func (s *Separable) Workers() int { return len(s.workers) }

// Backends reports the engine resolved for the row pass and the column pass.
func (s *Separable) Backends() (row, col Backend) {
	return s.rowBackend, s.colBackend
}

// Forward computes the 2-D DFT of src into dst.
func (s *Separable) Forward(dst, src []complex128) error {
	return s.run(dst, src, false)
}

// Inverse computes the normalized inverse 2-D DFT of src into dst.
func (s *Separable) Inverse(dst, src []complex128) error {
	return s.run(dst, src, true)
}

func (s *Separable) run(dst, src []complex128, inverse bool) error {
	n := s.rows * s.cols
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst %d, src %d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}

	err := s.parallel(s.rows, func(w *worker, start, end int) error {
		for r := start; r < end; r++ {
			off := r * s.cols
			if err := w.row.transform(dst[off:off+s.cols], src[off:off+s.cols], inverse); err != nil {
				return fmt.Errorf("fft2d: row %d: %w", r, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.parallel(s.cols, func(w *worker, start, end int) error {
		col := w.scratch
		for c := start; c < end; c++ {
			for r := range col {
				col[r] = dst[r*s.cols+c]
			}
			if err := w.col.transform(col, col, inverse); err != nil {
				return fmt.Errorf("fft2d: column %d: %w", c, err)
			}
			for r, v := range col {
				dst[r*s.cols+c] = v
			}
		}
		return nil
	})
}

// parallel splits [0, n) into contiguous chunks, one per worker.
func (s *Separable) parallel(n int, fn func(w *worker, start, end int) error) error {
	if len(s.workers) == 1 {
		return fn(s.workers[0], 0, n)
	}

	chunk := (n + len(s.workers) - 1) / len(s.workers)

	var g errgroup.Group
	for i, w := range s.workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}
		g.Go(func() error {
			return fn(w, start, end)
		})
	}

	return g.Wait()
}

// ForwardReal promotes real samples to complex and runs t.Forward into dst.
func ForwardReal(t Transform, dst []complex128, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	for i, v := range src {
		dst[i] = complex(v, 0)
	}

	return t.Forward(dst, dst)
}

// RealPart copies the real component of src into dst.
func RealPart(dst []float64, src []complex128) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	for i, v := range src {
		dst[i] = real(v)
	}

	return nil
}
