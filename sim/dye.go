package sim

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/waterflow/config"
	"github.com/pthm-cable/waterflow/field"
)

// simplexFrequency is the spatial frequency of the simplex dye pattern over
// the normalized [0,1) grid.
const simplexFrequency = 4.0

// NewDye builds the n×n×3 initial dye field: the configured base color plus
// seeded per-channel turbulence, attenuated by a radial vignette and clamped
// to [0,255].
//
// The seed is an explicit parameter, never ambient RNG state, so the same
// seed and resolution always produce a bit-identical field regardless of what
// any other code has drawn.
func NewDye(n int, seed int64, cfg config.DyeConfig) *field.Field {
	dye := field.New(n, n, 3)

	switch cfg.Pattern {
	case config.PatternSimplex:
		fillSimplex(dye, seed, cfg)
	default:
		fillGaussian(dye, seed, cfg)
	}

	applyVignette(dye, cfg.VignetteStrength)
	for i, v := range dye.Data {
		dye.Data[i] = field.Clamp(v, 0, 255)
	}
	return dye
}

// fillGaussian writes base color plus independent N(0, sigma) noise per
// channel, drawn row-major R,G,B per cell.
func fillGaussian(dye *field.Field, seed int64, cfg config.DyeConfig) {
	noise := distuv.Normal{
		Mu:    0,
		Sigma: cfg.NoiseSigma,
		Src:   rand.NewSource(uint64(seed)),
	}
	for i := 0; i < len(dye.Data); i += 3 {
		for c := 0; c < 3; c++ {
			dye.Data[i+c] = cfg.BaseColor[c] + noise.Rand()
		}
	}
}

// fillSimplex writes base color plus coherent simplex turbulence, one noise
// plane per channel. Smoother than the Gaussian pattern; same seeding contract.
func fillSimplex(dye *field.Field, seed int64, cfg config.DyeConfig) {
	noise := opensimplex.New(seed)
	n := dye.W
	inv := 1.0 / float64(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := dye.Idx(x, y)
			u := float64(x) * inv * simplexFrequency
			v := float64(y) * inv * simplexFrequency
			for c := 0; c < 3; c++ {
				dye.Data[i+c] = cfg.BaseColor[c] + noise.Eval3(u, v, float64(c))*cfg.NoiseSigma
			}
		}
	}
}

// applyVignette scales every cell by clamp(1 - strength*r, 0.2, 1.0), where r
// is the Euclidean distance from the image center over axes spanning [-1,1].
func applyVignette(dye *field.Field, strength float64) {
	n := dye.W
	axis := make([]float64, n)
	if n == 1 {
		axis[0] = -1
	} else {
		for i := 0; i < n; i++ {
			axis[i] = -1 + 2*float64(i)/float64(n-1)
		}
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			r := math.Hypot(axis[x], axis[y])
			v := field.Clamp(1-strength*r, 0.2, 1.0)
			i := dye.Idx(x, y)
			dye.Data[i] *= v
			dye.Data[i+1] *= v
			dye.Data[i+2] *= v
		}
	}
}
