package field

import "math"

// Sample bilinearly interpolates the field at fractional coordinates (x, y),
// writing one value per channel into dst (len(dst) must be f.C).
//
// Edge contract: the integer corners are clamped to the field bounds before
// the fractional offsets are taken, so an out-of-range coordinate collapses
// to the nearest edge cell. Sampling at an exact in-range integer coordinate
// returns the cell value unchanged.
func (f *Field) Sample(x, y float64, dst []float64) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := clampInt(x0+1, 0, f.W-1)
	y1 := clampInt(y0+1, 0, f.H-1)
	x0 = clampInt(x0, 0, f.W-1)
	y0 = clampInt(y0, 0, f.H-1)

	// Offsets from the clamped corners. Out of range both corners coincide,
	// so the sample collapses to the nearest edge cell.
	fx := x - float64(x0)
	fy := y - float64(y0)

	i00 := f.Idx(x0, y0)
	i10 := f.Idx(x1, y0)
	i01 := f.Idx(x0, y1)
	i11 := f.Idx(x1, y1)

	for c := 0; c < f.C; c++ {
		top := f.Data[i00+c]*(1-fx) + f.Data[i10+c]*fx
		bottom := f.Data[i01+c]*(1-fx) + f.Data[i11+c]*fx
		dst[c] = top*(1-fy) + bottom*fy
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
