// Package sim implements the procedural flow pipeline: a time-varying stream
// function, the divergence-free velocity field derived from it, semi-Lagrangian
// dye advection and the frame-producing run loop.
package sim

import (
	"math"

	"github.com/pthm-cable/waterflow/field"
)

// StreamFunc evaluates the time-varying stream function at normalized
// coordinates (x, y). Three sinusoidal terms at different spatial frequencies
// and phase velocities give a continuously evolving multiscale swirl without
// solving any PDE.
func StreamFunc(x, y, t float64) float64 {
	base := math.Sin(2*math.Pi*(3*x+0.7*t)) * math.Sin(2*math.Pi*(3*y-0.5*t))
	swirl := math.Cos(2*math.Pi*(2*x-0.3*t)) * math.Cos(2*math.Pi*(2*y+0.4*t))
	ripple := math.Sin(2 * math.Pi * (4*x + y + 0.2*t))
	return base + 0.6*swirl + 0.25*ripple
}

// StreamField evaluates the stream function over the normalized n×n
// coordinate grid at time t.
func StreamField(n int, t float64) *field.Field {
	x, y := field.Coords(n)
	psi := field.New(n, n, 1)
	parallelRows(n, func(y0, y1 int) {
		for i := y0; i < y1; i++ {
			row := i * n
			for j := 0; j < n; j++ {
				psi.Data[row+j] = StreamFunc(x.Data[row+j], y.Data[row+j], t)
			}
		}
	})
	return psi
}
