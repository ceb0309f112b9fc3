package field

// Coords returns normalized coordinate grids for an n×n resolution:
// X[i,j] = j/n and Y[i,j] = i/n, half-open on [0,1) with step 1/n.
// Pure function of n; callers always get fresh buffers.
func Coords(n int) (x, y *Field) {
	x = New(n, n, 1)
	y = New(n, n, 1)
	inv := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		yv := float64(i) * inv
		for j := 0; j < n; j++ {
			x.Data[i*n+j] = float64(j) * inv
			y.Data[i*n+j] = yv
		}
	}
	return x, y
}
