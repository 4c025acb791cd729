package feature_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-monogenic/dsp/grid"
	"github.com/cwbudde/algo-monogenic/stats/feature"
)

func ExampleSummarize() {
	g, _ := grid.FromRows([][]float64{
		{0, 0.5},
		{1, math.NaN()},
	})
	s := feature.Summarize(g)
	fmt.Printf("n=%d nan=%d mean=%.2f max=%.1f coverage=%.2f\n", s.Count, s.NaNCount, s.Mean, s.Max, s.Coverage)

	// Output:
	// n=3 nan=1 mean=0.50 max=1.0 coverage=0.67
}
