package velocity

import (
	"math"
	"testing"
)

// TestGaussianKernel_Normalized checks symmetry and unit mass.
func TestGaussianKernel_Normalized(t *testing.T) {
	for _, sigma := range []float64{1, 2, 3} {
		w := gaussianKernel(sigma)
		if len(w)%2 != 1 {
			t.Fatalf("sigma %g: kernel length %d is even", sigma, len(w))
		}

		var sum float64
		for _, v := range w {
			sum += v
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("sigma %g: kernel mass = %v; want 1", sigma, sum)
		}

		for k := 0; k < len(w)/2; k++ {
			if w[k] != w[len(w)-1-k] {
				t.Errorf("sigma %g: kernel not symmetric at %d", sigma, k)
			}
		}
		mid := len(w) / 2
		if w[mid] <= w[0] {
			t.Errorf("sigma %g: kernel not peaked at center", sigma)
		}
	}
}

// TestReflect folds out-of-range indices back by edge mirroring.
func TestReflect(t *testing.T) {
	cases := []struct {
		idx, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 0},
		{-2, 5, 1},
		{5, 5, 4},
		{6, 5, 3},
		{-7, 5, 3},
		{12, 5, 2},
		{3, 1, 0},
	}
	for _, tc := range cases {
		if got := reflect(tc.idx, tc.n); got != tc.want {
			t.Errorf("reflect(%d,%d) = %d; want %d", tc.idx, tc.n, got, tc.want)
		}
	}
}
