package monogenic

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-monogenic/dsp/fft2d"
	"github.com/cwbudde/algo-monogenic/internal/testutil"
)

func BenchmarkFindMonogenicSignal(b *testing.B) {
	for _, workers := range []int{1, 4} {
		for _, n := range []int{128, 512} {
			b.Run(fmt.Sprintf("workers=%d/%dx%d", workers, n, n), func(b *testing.B) {
				cfg := DefaultConfig().WithWavelength(16)
				cfg.Workers = workers
				p, err := New(n, n, cfg)
				if err != nil {
					b.Fatal(err)
				}
				img := testutil.NoiseImage(1, n, n, 1)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := p.FindMonogenicSignal(img); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkFeatureAsymmetry(b *testing.B) {
	cfg := DefaultConfig().WithWavelength(16)
	cfg.Backend = fft2d.BackendAuto
	p, err := New(256, 256, cfg)
	if err != nil {
		b.Fatal(err)
	}
	if err := p.FindMonogenicSignal(testutil.NoiseImage(2, 256, 256, 1)); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.FeatureAsymmetry(); err != nil {
			b.Fatal(err)
		}
	}
}
