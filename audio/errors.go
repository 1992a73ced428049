// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnknownWaveform     = errors.New("unknown waveform")
	ErrUnknownEffect       = errors.New("unknown effect")
	ErrInvalidSampleRate   = errors.New("sample rate out of range")
	ErrInvalidDuration     = errors.New("duration must be > 0")
	ErrDurationTooShort    = errors.New("duration too short")
	ErrDurationTooLong     = errors.New("duration too long")
	ErrInvalidFrequency    = errors.New("frequency must be > 0")
	ErrMissingEndFrequency = errors.New("chirp requires an end frequency")
	ErrInvalidAmplitude    = errors.New("amplitude must be finite")
	ErrInvalidGain         = errors.New("gain must be finite")
	ErrInvalidCutoff       = errors.New("cutoff must be > 0")
	ErrNotMono             = errors.New("only mono sources supported")
)
