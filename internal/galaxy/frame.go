package galaxy

import "math"

// Frame is the appearance of the field at one instant of virtual time.
type Frame struct {
	X, Y  []float64
	Color []RGB
	Size  []float64
}

// Frame computes star positions, colors, and sizes at virtual time t.
// Rotation is differential (per-star omega) and the radius, brightness, and
// size pulse on a shared phase so the disc breathes as a whole.
func (f *Field) Frame(t float64) *Frame {
	n := f.Params.Stars
	fr := &Frame{
		X:     make([]float64, n),
		Y:     make([]float64, n),
		Color: make([]RGB, n),
		Size:  make([]float64, n),
	}
	f.FrameInto(fr, t)
	return fr
}

// FrameInto fills fr in place. The dashboard reuses one Frame across ticks
// to avoid reallocating four slices per redraw.
func (f *Field) FrameInto(fr *Frame, t float64) {
	p := f.Params
	for i := 0; i < p.Stars; i++ {
		theta := f.Theta[i] + t*f.Omega[i]
		pulse := math.Sin(t + theta)

		r := f.Radius[i] * (1 + p.PulseRadius*pulse)
		fr.X[i] = r * math.Cos(theta)
		fr.Y[i] = r * math.Sin(theta)

		glow := 1 + p.PulseColor*pulse
		fr.Color[i] = RGB{
			clamp01(f.Color[i][0] * glow),
			clamp01(f.Color[i][1] * glow),
			clamp01(f.Color[i][2] * glow),
		}

		fr.Size[i] = f.Size[i] * (1 + p.PulseSize*pulse)
	}
}

// MeanBrightness is the average of all color channels at time t, the scalar
// waveform the analysis and audio packages consume.
func (f *Field) MeanBrightness(t float64) float64 {
	p := f.Params
	sum := 0.0
	for i := 0; i < p.Stars; i++ {
		theta := f.Theta[i] + t*f.Omega[i]
		glow := 1 + p.PulseColor*math.Sin(t+theta)
		for c := 0; c < 3; c++ {
			sum += clamp01(f.Color[i][c] * glow)
		}
	}
	return sum / float64(3*p.Stars)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
