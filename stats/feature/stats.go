// Package feature computes summary statistics of 2-D feature maps such as
// symmetry, asymmetry and local energy.
//
// NaN samples (for example undefined orientations) are counted but excluded
// from every other statistic.
package feature

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-monogenic/dsp/grid"
)

// Stats holds feature-map statistics.
type Stats struct {
	Count    int     // finite samples
	NaNCount int     // NaN samples
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	RMS      float64
	Min      float64
	MinPos   int // row-major index
	Max      float64
	MaxPos   int
	Coverage float64 // fraction of finite samples > 0
}

// Summarize computes statistics over the samples of g. A nil or empty grid,
// or one holding only NaN, yields a zero Stats with NaN extrema.
func Summarize(g *grid.Grid) Stats {
	if g == nil {
		return emptyStats()
	}
	return Calculate(g.Data)
}

// Calculate computes statistics over a row-major sample slice.
func Calculate(data []float64) Stats {
	finite := make([]float64, 0, len(data))
	s := emptyStats()

	var positive int
	var sumSq float64
	for i, x := range data {
		if math.IsNaN(x) {
			s.NaNCount++
			continue
		}
		if len(finite) == 0 || x > s.Max {
			s.Max, s.MaxPos = x, i
		}
		if len(finite) == 0 || x < s.Min {
			s.Min, s.MinPos = x, i
		}
		if x > 0 {
			positive++
		}
		sumSq += x * x
		finite = append(finite, x)
	}

	if len(finite) == 0 {
		return s
	}

	n := float64(len(finite))
	s.Count = len(finite)
	s.Mean, s.Variance = stat.PopMeanVariance(finite, nil)
	s.StdDev = math.Sqrt(s.Variance)
	s.RMS = math.Sqrt(sumSq / n)
	s.Coverage = float64(positive) / n
	return s
}

func emptyStats() Stats {
	return Stats{Min: math.NaN(), Max: math.NaN()}
}

// StreamingStats accumulates feature statistics across several maps, for
// example every frame of a sequence. Positions are indices into the
// concatenation of all updates.
type StreamingStats struct {
	seen     int
	n        int
	nan      int
	mean     float64
	m2       float64
	sumSq    float64
	positive int
	minVal   float64
	minPos   int
	maxVal   float64
	maxPos   int
}

// NewStreamingStats creates an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds the samples of g.
func (s *StreamingStats) Update(g *grid.Grid) {
	if g == nil {
		return
	}
	s.UpdateSamples(g.Data)
}

// UpdateSamples adds a block of samples.
func (s *StreamingStats) UpdateSamples(samples []float64) {
	for _, x := range samples {
		pos := s.seen
		s.seen++
		if math.IsNaN(x) {
			s.nan++
			continue
		}

		s.n++
		delta := x - s.mean
		s.mean += delta / float64(s.n)
		s.m2 += delta * (x - s.mean)
		s.sumSq += x * x

		if x > 0 {
			s.positive++
		}
		if s.n == 1 || x > s.maxVal {
			s.maxVal, s.maxPos = x, pos
		}
		if s.n == 1 || x < s.minVal {
			s.minVal, s.minPos = x, pos
		}
	}
}

// Reset clears all accumulated data.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}

// Result returns the statistics of everything seen so far.
func (s *StreamingStats) Result() Stats {
	out := emptyStats()
	out.NaNCount = s.nan
	if s.n == 0 {
		return out
	}

	n := float64(s.n)
	out.Count = s.n
	out.Mean = s.mean
	out.Variance = s.m2 / n
	out.StdDev = math.Sqrt(out.Variance)
	out.RMS = math.Sqrt(s.sumSq / n)
	out.Min, out.MinPos = s.minVal, s.minPos
	out.Max, out.MaxPos = s.maxVal, s.maxPos
	out.Coverage = float64(s.positive) / n
	return out
}
