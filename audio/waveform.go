// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Waveform selects the kernel a Generator runs for every sample.
type Waveform int

const (
	Sine Waveform = iota + 1
	Noise
	Impulse
	Silence
	Chirp
)

var waveformNames = map[Waveform]string{
	Sine:    "sine",
	Noise:   "noise",
	Impulse: "impulse",
	Silence: "silence",
	Chirp:   "chirp",
}

func (w Waveform) String() string {
	if name, ok := waveformNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Waveform(%d)", int(w))
}

// ParseWaveform maps a mode name such as "sine" to its Waveform. Names are case sensitive.
func ParseWaveform(name string) (Waveform, error) {
	for w, n := range waveformNames {
		if n == name {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownWaveform)
}
