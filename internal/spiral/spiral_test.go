package spiral

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fibgalaxy/internal/fib"
)

func TestPoints(t *testing.T) {
	pts, err := Points(DefaultScale, fib.Phi, MaxTheta(8), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 1000 {
		t.Fatalf("expected 1000 points, got %d", len(pts))
	}

	if pts[0].X != DefaultScale || pts[0].Y != 0 {
		t.Errorf("expected start at (%f, 0), got (%f, %f)", DefaultScale, pts[0].X, pts[0].Y)
	}

	// Radius grows strictly with theta.
	prev := math.Hypot(pts[0].X, pts[0].Y)
	for i := 1; i < len(pts); i++ {
		r := math.Hypot(pts[i].X, pts[i].Y)
		if r <= prev {
			t.Fatalf("point %d: radius %f did not grow past %f", i, r, prev)
		}
		prev = r
	}
}

func TestPoints_TooFew(t *testing.T) {
	if _, err := Points(DefaultScale, fib.Phi, math.Pi, 1); !errors.Is(err, ErrNoSamples) {
		t.Errorf("expected ErrNoSamples, got %v", err)
	}
}

func TestGrowthPerQuarterTurn(t *testing.T) {
	// Sample exactly one quarter turn and compare end/start radii.
	pts, _ := Points(DefaultScale, fib.Phi, math.Pi/2, 100)
	r0 := math.Hypot(pts[0].X, pts[0].Y)
	r1 := math.Hypot(pts[99].X, pts[99].Y)

	want := GrowthPerQuarterTurn(fib.Phi)
	if math.Abs(r1/r0-want) > 1e-9 {
		t.Errorf("expected growth factor %f, got %f", want, r1/r0)
	}
}

func TestMaxTheta(t *testing.T) {
	if MaxTheta(0) != 0 {
		t.Error("index 0 should give zero extent")
	}
	if math.Abs(MaxTheta(4)-2*math.Pi) > 1e-12 {
		t.Errorf("index 4 should be one full turn, got %f", MaxTheta(4))
	}
}
