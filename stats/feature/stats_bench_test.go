package feature

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-monogenic/internal/testutil"
)

func BenchmarkSummarize(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		g := testutil.NoiseImage(1, n, n, 1)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * n * 8))
			for range b.N {
				Summarize(g)
			}
		})
	}
}
