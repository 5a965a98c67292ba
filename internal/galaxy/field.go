package galaxy

import (
	"errors"
	"math"
	"math/rand"
)

// ErrNoStars indicates a field with fewer than one star.
var ErrNoStars = errors.New("galaxy: star count must be positive")

// RGB is a color with channels in [0, 1].
type RGB [3]float64

// Params controls field sampling and pulse amplitudes.
type Params struct {
	Stars        int
	RadiusScale  float64 // outer disc radius
	RadiusJitter float64 // stddev of gaussian radius noise
	RadiusPower  float64 // power-law exponent for radial density
	SizePower    float64 // power-law exponent for star size
	SizeScale    float64 // size of the largest stars
	PulseRadius  float64 // radial pulse amplitude
	PulseColor   float64 // brightness pulse amplitude
	PulseSize    float64 // size pulse amplitude
}

// DefaultParams returns the classic dashboard galaxy.
func DefaultParams() Params {
	return Params{
		Stars:        4000,
		RadiusScale:  5.0,
		RadiusJitter: 0.2,
		RadiusPower:  0.5,
		SizePower:    2.0,
		SizeScale:    50.0,
		PulseRadius:  0.1,
		PulseColor:   0.2,
		PulseSize:    0.3,
	}
}

// Field holds the statically sampled star attributes.
type Field struct {
	Params Params
	Theta  []float64 // base angle
	Radius []float64 // base radius
	Omega  []float64 // angular speed, faster toward the core
	Color  []RGB
	Size   []float64
}

// New samples a star field from the given seed. Equal seeds and params
// produce identical fields.
func New(p Params, seed int64) (*Field, error) {
	if p.Stars < 1 {
		return nil, ErrNoStars
	}
	rng := rand.New(rand.NewSource(seed))

	f := &Field{
		Params: p,
		Theta:  make([]float64, p.Stars),
		Radius: make([]float64, p.Stars),
		Omega:  make([]float64, p.Stars),
		Color:  make([]RGB, p.Stars),
		Size:   make([]float64, p.Stars),
	}

	for i := 0; i < p.Stars; i++ {
		f.Theta[i] = rng.Float64() * 2 * math.Pi

		r := powerSample(rng, p.RadiusPower)*p.RadiusScale + rng.NormFloat64()*p.RadiusJitter
		if r < 0 {
			r = 0
		}
		f.Radius[i] = r

		// Differential rotation: inner stars orbit faster.
		f.Omega[i] = 1 / math.Sqrt(r+0.1)

		b := powerSample(rng, 2)
		f.Color[i] = RGB{
			0.8 + 0.2*b,
			0.6 * b,
			0.4 + 0.6*b,
		}

		f.Size[i] = powerSample(rng, p.SizePower) * p.SizeScale
	}
	return f, nil
}

// powerSample draws from the density a*x^(a-1) on [0,1] by inverting the
// CDF.
func powerSample(rng *rand.Rand, a float64) float64 {
	return math.Pow(rng.Float64(), 1/a)
}
