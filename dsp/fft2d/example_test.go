package fft2d_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-monogenic/dsp/fft2d"
)

func ExampleForwardReal() {
	const rows, cols = 4, 8

	// A horizontal cosine with two cycles across the image.
	pixels := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pixels[y*cols+x] = math.Cos(2 * math.Pi * 2 * float64(x) / cols)
		}
	}

	t, err := fft2d.New(rows, cols)
	if err != nil {
		fmt.Println(err)
		return
	}

	spec := make([]complex128, rows*cols)
	if err := fft2d.ForwardReal(t, spec, pixels); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("bin (0,2): %.1f\n", real(spec[2]))
	fmt.Printf("bin (0,6): %.1f\n", real(spec[6]))

	// Output:
	// bin (0,2): 16.0
	// bin (0,6): 16.0
}
