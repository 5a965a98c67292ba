// Package analysis extracts frequency content from the galaxy's pulse,
// the periodic brightness modulation driving both the dashboard glow and
// the sonification.
package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/fibgalaxy/internal/galaxy"
)

var ErrNoSamples = errors.New("analysis: no samples")

// PulseWaveform samples the field's mean brightness once per frame over
// the given duration. The result is the signal the pulse analysis and the
// audio engine both consume.
func PulseWaveform(field *galaxy.Field, duration float64, fps int) ([]float64, error) {
	if field == nil || duration <= 0 || fps <= 0 {
		return nil, ErrNoSamples
	}

	n := int(duration * float64(fps))
	if n < 1 {
		return nil, ErrNoSamples
	}

	samples := make([]float64, n)
	dt := 1.0 / float64(fps)
	for i := range samples {
		samples[i] = field.MeanBrightness(float64(i) * dt)
	}
	return samples, nil
}

// PowerSpectrum returns per-bin magnitudes for the first half of the FFT.
// The mean is removed first so the DC bin does not swamp the pulse peak.
func PowerSpectrum(samples []float64) ([]float64, error) {
	if len(samples) < 2 {
		return nil, ErrNoSamples
	}

	mean := 0.0
	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	centered := make([]float64, len(samples))
	for i, s := range samples {
		centered[i] = s - mean
	}

	spectrum := fft.FFTReal(centered)
	power := make([]float64, len(spectrum)/2)
	for i := range power {
		power[i] = cmplx.Abs(spectrum[i])
	}
	return power, nil
}

// DominantFrequency locates the strongest bin of a power spectrum and
// converts it to Hz for the given sample rate.
func DominantFrequency(power []float64, sampleRate float64) (float64, error) {
	if len(power) == 0 || sampleRate <= 0 {
		return 0, ErrNoSamples
	}

	peak := 0
	for i, p := range power {
		if p > power[peak] {
			peak = i
		}
	}
	binWidth := sampleRate / float64(2*len(power))
	return float64(peak) * binWidth, nil
}
