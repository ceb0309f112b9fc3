package field

import "math"

// GaussianBlur smooths a field with a separable Gaussian of the given sigma
// and returns the result. With sigma <= 0 the input is returned unchanged.
//
// The 1D kernel has half-width max(1, round(3*sigma)) and weights
// exp(-k^2 / 2*sigma^2) normalized to sum 1. The kernel is applied in two
// passes, down the rows (y) and then across the columns (x), per channel.
//
// Edge policy: zero-padding. Samples beyond the array bounds contribute
// nothing, so values near the border are attenuated. The two-pass result is
// identical, up to float rounding, to a direct 2D convolution with the same
// zero-padded kernel.
func GaussianBlur(f *Field, sigma float64) *Field {
	if sigma <= 0 {
		return f
	}

	radius := int(math.Round(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		w := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		weights[k+radius] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}

	vertical := convolveVertical(f, weights, radius)
	return convolveHorizontal(vertical, weights, radius)
}

// convolveVertical applies the kernel along the row axis (y).
func convolveVertical(f *Field, weights []float64, radius int) *Field {
	out := New(f.W, f.H, f.C)
	for y := 0; y < f.H; y++ {
		k0 := -radius
		if y+k0 < 0 {
			k0 = -y
		}
		k1 := radius
		if y+k1 > f.H-1 {
			k1 = f.H - 1 - y
		}
		for x := 0; x < f.W; x++ {
			di := out.Idx(x, y)
			for k := k0; k <= k1; k++ {
				w := weights[k+radius]
				si := f.Idx(x, y+k)
				for c := 0; c < f.C; c++ {
					out.Data[di+c] += w * f.Data[si+c]
				}
			}
		}
	}
	return out
}

// convolveHorizontal applies the kernel along the column axis (x).
func convolveHorizontal(f *Field, weights []float64, radius int) *Field {
	out := New(f.W, f.H, f.C)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			k0 := -radius
			if x+k0 < 0 {
				k0 = -x
			}
			k1 := radius
			if x+k1 > f.W-1 {
				k1 = f.W - 1 - x
			}
			di := out.Idx(x, y)
			for k := k0; k <= k1; k++ {
				w := weights[k+radius]
				si := f.Idx(x+k, y)
				for c := 0; c < f.C; c++ {
					out.Data[di+c] += w * f.Data[si+c]
				}
			}
		}
	}
	return out
}
