package sim

import (
	"math"
	"testing"
)

func TestStreamFuncKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		x, y, t float64
		want    float64
	}{
		// At the origin at t=0 only the cosine term survives.
		{"origin", 0, 0, 0, 0.6},
		// sin(2pi*3*0.25)=sin(3pi/2)=-1 for both factors, cos(2pi*2*0.25)=cos(pi)=-1
		// for both factors, sin(2pi*(4*0.25+0.25))=sin(2.5pi)=1.
		{"quarter", 0.25, 0.25, 0, 1*1 + 0.6*1 + 0.25*1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StreamFunc(tt.x, tt.y, tt.t)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("StreamFunc(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.t, got, tt.want)
			}
		})
	}
}

func TestStreamFieldMatchesPointwise(t *testing.T) {
	const n = 8
	psi := StreamField(n, 1.3)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := StreamFunc(float64(j)/n, float64(i)/n, 1.3)
			if got := psi.At(j, i, 0); got != want {
				t.Fatalf("psi[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestStreamFieldDeterministic(t *testing.T) {
	a := StreamField(16, 2.7)
	b := StreamField(16, 2.7)
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("repeated evaluation differs at %d: %v vs %v", i, a.Data[i], b.Data[i])
		}
	}
}
