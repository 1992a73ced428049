// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

const (
	MinSampleRate = 8000
	MaxSampleRate = 192000

	// maxSamples keeps the payload within the 32-bit RIFF size fields.
	maxSamples = (math.MaxUint32 - 36) / 2
)

// Request describes one waveform to synthesize.
type Request struct {
	Waveform   Waveform
	SampleRate int
	// Duration in seconds.
	Duration float64
	// Frequency is the tone frequency, or the start frequency of a chirp.
	Frequency float64
	Amplitude float64
	// EndFrequency is only meaningful for chirps and only when HasEndFrequency is set.
	EndFrequency    float64
	HasEndFrequency bool
}

// Validate rejects a request before any output is produced.
func (r Request) Validate() error {
	if _, ok := waveformNames[r.Waveform]; !ok {
		return fmt.Errorf("%v: %w", r.Waveform, ErrUnknownWaveform)
	}
	if r.SampleRate < MinSampleRate || r.SampleRate > MaxSampleRate {
		return fmt.Errorf("%d Hz not in [%d, %d]: %w", r.SampleRate, MinSampleRate, MaxSampleRate, ErrInvalidSampleRate)
	}
	if !(r.Duration > 0) || math.IsInf(r.Duration, 1) {
		return fmt.Errorf("%v seconds: %w", r.Duration, ErrInvalidDuration)
	}
	if math.IsNaN(r.Amplitude) || math.IsInf(r.Amplitude, 0) {
		return fmt.Errorf("%v: %w", r.Amplitude, ErrInvalidAmplitude)
	}

	switch r.Waveform {
	case Sine:
		if !validFrequency(r.Frequency) {
			return fmt.Errorf("%v Hz: %w", r.Frequency, ErrInvalidFrequency)
		}
	case Chirp:
		if !r.HasEndFrequency {
			return ErrMissingEndFrequency
		}
		if !validFrequency(r.Frequency) || !validFrequency(r.EndFrequency) {
			return fmt.Errorf("%v Hz to %v Hz: %w", r.Frequency, r.EndFrequency, ErrInvalidFrequency)
		}
	}

	n := r.NumSamples()
	if n == 0 {
		return fmt.Errorf("%v seconds at %d Hz: %w", r.Duration, r.SampleRate, ErrDurationTooShort)
	}
	if n > maxSamples {
		return fmt.Errorf("%v seconds at %d Hz: %w", r.Duration, r.SampleRate, ErrDurationTooLong)
	}

	return nil
}

// NumSamples is round(duration × rate), rounding halves away from zero.
// It saturates instead of overflowing for absurd durations.
func (r Request) NumSamples() int {
	n := math.Round(r.Duration * float64(r.SampleRate))
	if !(n > 0) {
		return 0
	}
	if n > maxSamples {
		return maxSamples + 1
	}
	return int(n)
}

func validFrequency(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
