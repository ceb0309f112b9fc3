package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoords(t *testing.T) {
	const n = 4
	x, y := Coords(n)
	assert.Equal(t, n, x.W)
	assert.Equal(t, n, x.H)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, float64(j)/n, x.At(j, i, 0), "X[%d,%d]", i, j)
			assert.Equal(t, float64(i)/n, y.At(j, i, 0), "Y[%d,%d]", i, j)
		}
	}

	// Half-open on [0,1): the last coordinate is (n-1)/n, never 1.
	assert.Less(t, x.At(n-1, 0, 0), 1.0)
	assert.Less(t, y.At(0, n-1, 0), 1.0)
}

func TestCoordsNeverCached(t *testing.T) {
	x1, _ := Coords(3)
	x2, _ := Coords(3)
	if x1 == x2 {
		t.Fatal("Coords returned a cached buffer")
	}
	assert.Equal(t, x1.Data, x2.Data)
}
