package velocity

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// kernelTruncate bounds the Gaussian kernel support at 4 sigma; beyond
// that the weights are negligible.
const kernelTruncate = 4.0

// gaussianKernel returns normalized Gaussian weights sampled at whole
// cells over [-radius, radius], radius = round(truncate·sigma).
// Normalization keeps the convolution a convex combination, so smoothed
// values never leave the [min, max] range of the input.
func gaussianKernel(sigma float64) []float64 {
	radius := int(kernelTruncate*sigma + 0.5)
	n := distuv.Normal{Mu: 0, Sigma: sigma}
	w := make([]float64, 2*radius+1)
	for k := -radius; k <= radius; k++ {
		w[k+radius] = n.Prob(float64(k))
	}
	floats.Scale(1/floats.Sum(w), w)

	return w
}

// reflect folds an out-of-range index back into [0,n) by mirroring about
// the array edges (half-sample reflection: -1→0, n→n-1).
func reflect(idx, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	idx = ((idx % period) + period) % period
	if idx >= n {
		idx = period - 1 - idx
	}

	return idx
}

// smooth applies a separable Gaussian blur to f in place: one horizontal
// pass into a scratch field, one vertical pass back. Boundary cells use
// reflected samples. Complexity: O(rows·cols·k) for kernel width k.
func smooth(f *mat.Dense, sigma float64) {
	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2
	rows, cols := f.Dims()
	tmp := mat.NewDense(rows, cols, nil)

	// Horizontal pass: f → tmp.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * f.At(i, reflect(j+k, cols))
			}
			tmp.Set(i, j, acc)
		}
	}

	// Vertical pass: tmp → f.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * tmp.At(reflect(i+k, rows), j)
			}
			f.Set(i, j, acc)
		}
	}
}
