// Package audio sonifies the galaxy: a drone whose partials sit at
// golden-ratio intervals above a base frequency, with the pulse opening
// and closing a low pass filter.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/fibgalaxy/internal/fib"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// Base drone frequency. Partials stack at baseFreq * phi^k.
	baseFreq = 98.0
	partials = 5
)

type Engine struct {
	stream *portaudio.Stream

	time        float64
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int

	mu          sync.Mutex
	pulse       float64
	pulseSmooth float64

	active bool
}

func NewEngine() *Engine {
	delayLen := int(float64(SampleRate) * 0.6)
	return &Engine{
		delayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

// Start opens an output-only stereo stream. Duplex streams often fail on
// Linux when input and output devices differ, and nothing here listens.
func (e *Engine) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, e.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	e.stream = stream
	e.active = true
	return nil
}

func (e *Engine) Stop() {
	if e.stream != nil {
		e.stream.Stop()
		e.stream.Close()
		e.stream = nil
	}
	portaudio.Terminate()
	e.active = false
}

func (e *Engine) Active() bool { return e.active }

// UpdatePulse feeds the field's current mean brightness into the synth.
// Called from the render loop; the audio callback reads it under the lock.
func (e *Engine) UpdatePulse(brightness float64) {
	e.mu.Lock()
	e.pulse = brightness
	e.mu.Unlock()
}

// Triangle wave, smooth and flute-like.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// One pole low pass.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (e *Engine) process(out [][]float32) {
	e.mu.Lock()
	target := e.pulse
	e.mu.Unlock()

	// Slow morphing so the filter never jumps.
	e.pulseSmooth = e.pulseSmooth*0.995 + target*0.005

	// The pulse opens the filter: 300Hz at rest, up to 1200Hz at full glow.
	cutoff := 300.0 + e.pulseSmooth*900.0
	dt := 1.0 / float64(SampleRate)

	freqs := make([]float64, partials)
	for k := range freqs {
		freqs[k] = baseFreq * math.Pow(fib.Phi, float64(k))
	}

	vol := 0.25

	for i := 0; i < len(out[0]); i++ {
		sampleL := 0.0
		sampleR := 0.0

		for j, f := range freqs {
			// Slight detune between channels widens the image.
			oscL := triangle(e.time * (f * 0.999))
			oscR := triangle(e.time * (f * 1.001))

			g := 1.0 / float64(len(freqs))

			// Very slow LFO, each partial breathing out of phase.
			lfo := math.Sin(e.time*0.2 + float64(j))

			sampleL += oscL * g * (0.7 + 0.3*lfo)
			sampleR += oscR * g * (0.7 + 0.3*lfo)
		}

		var outL, outR float64
		outL, e.filterState[0] = lpf(sampleL, cutoff, dt, e.filterState[0])
		outR, e.filterState[1] = lpf(sampleR, cutoff, dt, e.filterState[1])

		// Ping pong delay: each channel hears a little of the other's tail.
		delayL := e.delayLine[0][e.delayHead]
		delayR := e.delayLine[1][e.delayHead]

		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1

		e.delayLine[0][e.delayHead] = mixL * 0.7
		e.delayLine[1][e.delayHead] = mixR * 0.7
		e.delayHead = (e.delayHead + 1) % len(e.delayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		e.time += dt
	}
}
