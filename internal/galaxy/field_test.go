package galaxy

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	f, err := New(DefaultParams(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.Theta) != 4000 {
		t.Fatalf("expected 4000 stars, got %d", len(f.Theta))
	}

	for i := range f.Theta {
		if f.Theta[i] < 0 || f.Theta[i] >= 2*math.Pi {
			t.Fatalf("star %d: theta %f outside [0, 2pi)", i, f.Theta[i])
		}
		if f.Radius[i] < 0 {
			t.Fatalf("star %d: negative radius %f", i, f.Radius[i])
		}
		if f.Omega[i] <= 0 || math.IsNaN(f.Omega[i]) {
			t.Fatalf("star %d: bad angular speed %f", i, f.Omega[i])
		}
		if f.Size[i] < 0 || f.Size[i] > 50 {
			t.Fatalf("star %d: size %f outside [0, 50]", i, f.Size[i])
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, _ := New(DefaultParams(), 7)
	b, _ := New(DefaultParams(), 7)

	for i := range a.Theta {
		if a.Theta[i] != b.Theta[i] || a.Radius[i] != b.Radius[i] {
			t.Fatalf("star %d differs between equal seeds", i)
		}
	}

	c, _ := New(DefaultParams(), 8)
	same := true
	for i := range a.Theta {
		if a.Theta[i] != c.Theta[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

func TestNew_NoStars(t *testing.T) {
	p := DefaultParams()
	p.Stars = 0
	if _, err := New(p, 1); !errors.Is(err, ErrNoStars) {
		t.Errorf("expected ErrNoStars, got %v", err)
	}
}

func TestFrame_PulseBounds(t *testing.T) {
	f, _ := New(DefaultParams(), 3)

	for _, tm := range []float64{0, 0.16, 1.0, 31.4, 100} {
		fr := f.Frame(tm)
		for i := range fr.X {
			r := math.Hypot(fr.X[i], fr.Y[i])
			if r > f.Radius[i]*1.1+1e-9 {
				t.Fatalf("t=%f star %d: radius %f exceeds +10%% pulse of %f", tm, i, r, f.Radius[i])
			}
			for c := 0; c < 3; c++ {
				if fr.Color[i][c] < 0 || fr.Color[i][c] > 1 {
					t.Fatalf("t=%f star %d: channel %d out of range: %f", tm, i, c, fr.Color[i][c])
				}
			}
			if fr.Size[i] < f.Size[i]*0.7-1e-9 || fr.Size[i] > f.Size[i]*1.3+1e-9 {
				t.Fatalf("t=%f star %d: size %f outside +-30%% of %f", tm, i, fr.Size[i], f.Size[i])
			}
		}
	}
}

func TestFrame_TimeZeroMatchesBase(t *testing.T) {
	f, _ := New(DefaultParams(), 11)
	fr := f.Frame(0)

	for i := range fr.X {
		pulse := math.Sin(f.Theta[i])
		wantR := f.Radius[i] * (1 + 0.1*pulse)
		gotR := math.Hypot(fr.X[i], fr.Y[i])
		if math.Abs(gotR-wantR) > 1e-9 {
			t.Fatalf("star %d: expected radius %f at t=0, got %f", i, wantR, gotR)
		}
	}
}

func TestFrameInto_Reuse(t *testing.T) {
	f, _ := New(DefaultParams(), 5)
	fr := f.Frame(0)

	f.FrameInto(fr, 2.5)
	want := f.Frame(2.5)
	for i := range fr.X {
		if fr.X[i] != want.X[i] || fr.Y[i] != want.Y[i] {
			t.Fatalf("star %d: reused frame differs from fresh frame", i)
		}
	}
}

func TestMeanBrightness(t *testing.T) {
	f, _ := New(DefaultParams(), 9)

	for _, tm := range []float64{0, 1, 10} {
		b := f.MeanBrightness(tm)
		if b <= 0 || b > 1 {
			t.Errorf("t=%f: mean brightness %f outside (0, 1]", tm, b)
		}
	}
}
