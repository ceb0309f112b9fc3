package sim

import (
	"github.com/pthm-cable/waterflow/field"
)

// Advect transports f through vel for one step of length dt using first-order
// semi-Lagrangian advection: every destination pixel is traced backward along
// the velocity to its source position and the field is bilinearly resampled
// there. The traced position is clamped to the valid index range.
//
// Unconditionally stable for any dt, at the cost of numerical diffusion from
// the repeated interpolation. Returns a new field; the input is not modified.
func Advect(f, vel *field.Field, dt float64) *field.Field {
	out := field.New(f.W, f.H, f.C)
	parallelRows(f.H, func(y0, y1 int) {
		dst := make([]float64, f.C)
		for y := y0; y < y1; y++ {
			for x := 0; x < f.W; x++ {
				vi := vel.Idx(x, y)
				xb := float64(x) - dt*vel.Data[vi]
				yb := float64(y) - dt*vel.Data[vi+1]
				xb = field.Clamp(xb, 0, float64(f.W-1))
				yb = field.Clamp(yb, 0, float64(f.H-1))

				f.Sample(xb, yb, dst)
				copy(out.Data[out.Idx(x, y):], dst)
			}
		}
	})
	return out
}
