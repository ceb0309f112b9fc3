package sim

import (
	"github.com/pthm-cable/waterflow/field"
)

// velocityBlurSigma smooths the raw finite-difference field just enough to
// keep the motion fluid without losing the curls.
const velocityBlurSigma = 1.0

// Velocity builds the n×n 2-channel velocity field at time t. Channel 0 is u
// (horizontal), channel 1 is v (vertical), in pixel-index displacement per
// unit time.
//
// The field is the discrete curl of the stream function: u = dψ/dy and
// v = -dψ/dx, scaled by strength and the resolution. Taking the curl makes
// the field divergence-free up to finite-difference error, so no
// incompressibility projection is needed. The trailing Gaussian smoothing can
// reintroduce a small residual divergence near the borders.
//
// Pure function of (n, t, strength); repeated calls are bit-identical and
// nothing is cached across calls.
func Velocity(n int, t, strength float64) *field.Field {
	psi := StreamField(n, t)
	vel := field.New(n, n, 2)

	scale := strength * float64(n)
	parallelRows(n, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < n; x++ {
				dpdy := gradient(psi, x, y, 0, 1, n)
				dpdx := gradient(psi, x, y, 1, 0, n)
				i := vel.Idx(x, y)
				vel.Data[i] = dpdy * scale
				vel.Data[i+1] = -dpdx * scale
			}
		}
	})

	return field.GaussianBlur(vel, velocityBlurSigma)
}

// gradient takes the finite-difference partial derivative of a scalar field
// at (x, y) along the axis selected by the (dx, dy) unit step: central in the
// interior, one-sided at the boundaries.
func gradient(f *field.Field, x, y, dx, dy, n int) float64 {
	lo := x*dx + y*dy // position along the differentiated axis
	switch {
	case n == 1:
		return 0
	case lo == 0:
		return f.At(x+dx, y+dy, 0) - f.At(x, y, 0)
	case lo == n-1:
		return f.At(x, y, 0) - f.At(x-dx, y-dy, 0)
	default:
		return (f.At(x+dx, y+dy, 0) - f.At(x-dx, y-dy, 0)) / 2
	}
}
