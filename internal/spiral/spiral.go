// Package spiral evaluates the logarithmic golden spiral overlay,
// r(theta) = a * exp(theta / phi).
package spiral

import (
	"errors"
	"math"
)

// ErrNoSamples indicates a requested curve with fewer than two points.
var ErrNoSamples = errors.New("spiral: need at least 2 samples")

// DefaultScale is the spiral scale constant a.
const DefaultScale = 0.5

// Point is a 2D sample on the spiral.
type Point struct {
	X, Y float64
}

// Points samples the spiral from theta=0 out to maxTheta. The curve starts
// at (a, 0) and expands by a factor of exp(pi/(2*phi)) per quarter turn.
func Points(a, phi, maxTheta float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, ErrNoSamples
	}
	pts := make([]Point, n)
	step := maxTheta / float64(n-1)
	for i := 0; i < n; i++ {
		theta := float64(i) * step
		r := a * math.Exp(theta/phi)
		pts[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return pts, nil
}

// MaxTheta is the angular extent of the spiral at term index idx: one
// quarter turn per revealed term.
func MaxTheta(idx int) float64 {
	return float64(idx) * math.Pi / 2
}

// GrowthPerQuarterTurn is the radial expansion factor across a quarter
// turn for the given phi.
func GrowthPerQuarterTurn(phi float64) float64 {
	return math.Exp(math.Pi / (2 * phi))
}
