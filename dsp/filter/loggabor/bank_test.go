package loggabor

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestNewBankValidation(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wavelength float64
		sigma      float64
	}{
		{"zero rows", 0, 8, 4, 0.5},
		{"negative cols", 8, -2, 4, 0.5},
		{"negative wavelength", 8, 8, -1, 0.5},
		{"zero wavelength", 8, 8, 0, 0.5},
		{"nan wavelength", 8, 8, math.NaN(), 0.5},
		{"inf wavelength", 8, 8, math.Inf(1), 0.5},
		{"zero sigma", 8, 8, 4, 0},
		{"negative sigma", 8, 8, 4, -0.5},
		{"unit sigma", 8, 8, 4, 1},
		{"nan sigma", 8, 8, 4, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBank(tt.rows, tt.cols, tt.wavelength, tt.sigma)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		k, n int
		want float64
	}{
		{0, 8, 0},
		{1, 8, 0.125},
		{3, 8, 0.375},
		{4, 8, -0.5},
		{7, 8, -0.125},
		{2, 5, 0.4},
		{3, 5, -0.4},
		{0, 1, 0},
	}

	for _, tt := range tests {
		if got := Frequency(tt.k, tt.n); got != tt.want {
			t.Errorf("Frequency(%d, %d) = %v, want %v", tt.k, tt.n, got, tt.want)
		}
	}
}

func TestEvenKernelShape(t *testing.T) {
	const n = 64
	b, err := NewBank(n, n, 16, 0.5)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	even := b.Even()

	if even[0] != 0 {
		t.Fatalf("DC = %v, want 0", even[0])
	}

	// f0 = 1/16 = 4/64 lands exactly on bin 4 of either axis.
	for _, idx := range []int{4, 4 * n, n - 4, (n - 4) * n} {
		if even[idx] != 1 {
			t.Fatalf("even[%d] = %v, want 1 at the center frequency", idx, even[idx])
		}
	}

	// Spot-check the closed form off-axis.
	y, x := 5, 61
	f := math.Hypot(Frequency(x, n), Frequency(y, n))
	lr := math.Log(f * 16)
	want := math.Exp(-lr * lr / (2 * math.Log(0.5) * math.Log(0.5)))
	if got := real(even[y*n+x]); math.Abs(got-want) > 1e-15 {
		t.Fatalf("even(%d,%d) = %v, want %v", y, x, got, want)
	}

	for i, v := range even {
		if imag(v) != 0 || real(v) < 0 || real(v) > 1 {
			t.Fatalf("even[%d] = %v outside real [0, 1]", i, v)
		}
	}
}

func TestEvenKernelIsotropic(t *testing.T) {
	const n = 32
	b, err := NewBank(n, n, 6, 0.55)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	even := b.Even()

	// Transposing a square bank must not change the even kernel.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if even[y*n+x] != even[x*n+y] {
				t.Fatalf("even(%d,%d) = %v != even(%d,%d) = %v", y, x, even[y*n+x], x, y, even[x*n+y])
			}
		}
	}
}

func TestOddKernelsAreRiesz(t *testing.T) {
	const rows, cols = 24, 40
	b, err := NewBank(rows, cols, 8, 0.5)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	even, oy, ox := b.Even(), b.OddY(), b.OddX()

	for i := range even {
		if real(oy[i]) != 0 || real(ox[i]) != 0 {
			t.Fatalf("odd kernels must be purely imaginary at %d: %v %v", i, oy[i], ox[i])
		}

		// |OddX|^2 + |OddY|^2 == |Even|^2 since (u/f)^2 + (v/f)^2 == 1.
		g := real(even[i])
		sum := imag(oy[i])*imag(oy[i]) + imag(ox[i])*imag(ox[i])
		if math.Abs(sum-g*g) > 1e-15 {
			t.Fatalf("index %d: odd energy %v != even energy %v", i, sum, g*g)
		}
	}

	// Horizontal-only frequencies carry no vertical odd response and
	// vice versa.
	for x := 1; x < cols; x++ {
		if oy[x] != 0 {
			t.Fatalf("oddY(0,%d) = %v, want 0", x, oy[x])
		}
	}
	for y := 1; y < rows; y++ {
		if ox[y*cols] != 0 {
			t.Fatalf("oddX(%d,0) = %v, want 0", y, ox[y*cols])
		}
	}
}

func TestOddKernelsAntisymmetric(t *testing.T) {
	const rows, cols = 15, 21
	b, err := NewBank(rows, cols, 5, 0.5)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	ox, oy := b.OddX(), b.OddY()

	// Odd sizes have no Nyquist bin, so (-v,-u) always exists.
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			my, mx := (rows-y)%rows, (cols-x)%cols
			i, j := y*cols+x, my*cols+mx
			if cmplx.Abs(ox[i]+ox[j]) > 1e-15 || cmplx.Abs(oy[i]+oy[j]) > 1e-15 {
				t.Fatalf("odd kernels not antisymmetric at (%d,%d)", y, x)
			}
		}
	}
}

func TestBankDeterministic(t *testing.T) {
	a, err := NewBank(17, 30, 7.5, 0.6)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	b, err := NewBank(17, 30, 7.5, 0.6)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	for name, pair := range map[string][2][]complex128{
		"even": {a.Even(), b.Even()},
		"oddY": {a.OddY(), b.OddY()},
		"oddX": {a.OddX(), b.OddX()},
	} {
		for i := range pair[0] {
			if pair[0][i] != pair[1][i] {
				t.Fatalf("%s[%d]: %v != %v", name, i, pair[0][i], pair[1][i])
			}
		}
	}
}

func TestKernelAccessorsCopy(t *testing.T) {
	b, err := NewBank(4, 4, 2, 0.5)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	k := b.Even()
	k[1] = 42
	if b.Even()[1] == 42 {
		t.Fatal("Even() exposes internal storage")
	}
}

func TestApply(t *testing.T) {
	const rows, cols = 8, 8
	b, err := NewBank(rows, cols, 4, 0.5)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	spec := make([]complex128, rows*cols)
	for i := range spec {
		spec[i] = complex(float64(i), -float64(i)/2)
	}
	even := make([]complex128, rows*cols)
	oy := make([]complex128, rows*cols)
	ox := make([]complex128, rows*cols)

	if err := b.Apply(spec, even, oy, ox); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	ke, ky, kx := b.Even(), b.OddY(), b.OddX()
	for i := range spec {
		if even[i] != spec[i]*ke[i] || oy[i] != spec[i]*ky[i] || ox[i] != spec[i]*kx[i] {
			t.Fatalf("Apply mismatch at %d", i)
		}
		if spec[i] != complex(float64(i), -float64(i)/2) {
			t.Fatalf("Apply modified the spectrum at %d", i)
		}
	}

	if err := b.Apply(spec[:10], even, oy, ox); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestAccessors(t *testing.T) {
	b, err := NewBank(3, 5, 10, 0.4)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	if b.Rows() != 3 || b.Cols() != 5 {
		t.Fatalf("size = %dx%d, want 3x5", b.Rows(), b.Cols())
	}
	if b.Wavelength() != 10 || b.ShapeSigma() != 0.4 || b.CenterFrequency() != 0.1 {
		t.Fatalf("parameters = %v %v %v", b.Wavelength(), b.ShapeSigma(), b.CenterFrequency())
	}
}
