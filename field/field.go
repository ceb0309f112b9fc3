// Package field provides the grid buffer primitives for the flow pipeline:
// a flat multi-channel cell buffer, normalized coordinate grids, bilinear
// resampling and separable Gaussian smoothing.
package field

// Field is a W×H grid of C-channel float64 cells stored row-major.
// Cell (x, y) channel c lives at Data[(y*W+x)*C+c].
type Field struct {
	W, H, C int
	Data    []float64
}

// New creates a zeroed field of the given dimensions.
func New(w, h, c int) *Field {
	return &Field{
		W: w, H: h, C: c,
		Data: make([]float64, w*h*c),
	}
}

// Idx returns the index of the first channel of cell (x, y).
func (f *Field) Idx(x, y int) int {
	return (y*f.W + x) * f.C
}

// At returns channel c of cell (x, y).
func (f *Field) At(x, y, c int) float64 {
	return f.Data[(y*f.W+x)*f.C+c]
}

// Set writes channel c of cell (x, y).
func (f *Field) Set(x, y, c int, v float64) {
	f.Data[(y*f.W+x)*f.C+c] = v
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	out := New(f.W, f.H, f.C)
	copy(out.Data, f.Data)
	return out
}
