// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

const twoPi = 2 * math.Pi

// Oscillator is a phase accumulator. The phase stays in [0, 2π).
type Oscillator struct {
	phase      float64
	sampleRate float64
}

func NewOscillator(sampleRate int) *Oscillator {
	return &Oscillator{sampleRate: float64(sampleRate)}
}

// Phase returns the current phase in radians.
func (o *Oscillator) Phase() float64 { return o.phase }

// Next returns sin(phase) and then advances the phase by one sample at freq Hz.
// Increments of a full cycle or more are reduced first, so the phase is
// wrapped by a single subtraction rather than math.Mod on every sample.
func (o *Oscillator) Next(freq float64) float64 {
	out := math.Sin(o.phase)

	inc := twoPi * freq / o.sampleRate
	if math.Abs(inc) >= twoPi || math.IsInf(inc, 0) {
		inc = twoPi * math.Mod(freq/o.sampleRate, 1)
	}

	o.phase += inc
	if o.phase >= twoPi {
		o.phase -= twoPi
	} else if o.phase < 0 {
		o.phase += twoPi
	}

	return out
}
