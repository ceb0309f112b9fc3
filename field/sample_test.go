package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testField builds a w×h×c field with distinct values per cell and channel.
func testField(w, h, c int) *Field {
	f := New(w, h, c)
	for i := range f.Data {
		f.Data[i] = float64(i)*0.5 + 1
	}
	return f
}

func TestSampleIntegerCoords(t *testing.T) {
	f := testField(5, 4, 3)
	dst := make([]float64, 3)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			f.Sample(float64(x), float64(y), dst)
			for c := 0; c < 3; c++ {
				assert.Equal(t, f.At(x, y, c), dst[c], "cell (%d,%d) channel %d", x, y, c)
			}
		}
	}
}

func TestSampleInterpolatesMidpoint(t *testing.T) {
	f := New(2, 2, 1)
	f.Data = []float64{0, 1, 2, 3}
	dst := make([]float64, 1)

	f.Sample(0.5, 0.5, dst)
	assert.InDelta(t, 1.5, dst[0], 1e-12, "center of a 2x2 ramp")

	f.Sample(0.5, 0, dst)
	assert.InDelta(t, 0.5, dst[0], 1e-12, "midpoint of top edge")

	f.Sample(0, 0.5, dst)
	assert.InDelta(t, 1.0, dst[0], 1e-12, "midpoint of left edge")
}

func TestSampleClampsOutOfRange(t *testing.T) {
	f := testField(6, 5, 2)
	got := make([]float64, 2)
	want := make([]float64, 2)

	f.Sample(-5, -5, got)
	f.Sample(0, 0, want)
	assert.Equal(t, want, got, "far negative clamps to (0,0)")

	f.Sample(float64(f.W)+5, float64(f.H)+5, got)
	f.Sample(float64(f.W-1), float64(f.H-1), want)
	assert.Equal(t, want, got, "far positive clamps to (W-1,H-1)")
}

func TestSampleChannelDepths(t *testing.T) {
	// The sampler must behave identically for velocity-like (2-channel) and
	// dye-like (3-channel) data.
	for _, channels := range []int{1, 2, 3} {
		f := testField(4, 4, channels)
		dst := make([]float64, channels)
		f.Sample(1.25, 2.75, dst)
		for c := 0; c < channels; c++ {
			top := f.At(1, 2, c)*0.75 + f.At(2, 2, c)*0.25
			bottom := f.At(1, 3, c)*0.75 + f.At(2, 3, c)*0.25
			want := top*0.25 + bottom*0.75
			assert.InDelta(t, want, dst[c], 1e-12, "%d channels, channel %d", channels, c)
		}
	}
}
