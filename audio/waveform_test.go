// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestParseWaveform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Waveform
		wantErr error
	}{
		{"sine", Sine, nil},
		{"noise", Noise, nil},
		{"impulse", Impulse, nil},
		{"silence", Silence, nil},
		{"chirp", Chirp, nil},
		{"SINE", 0, ErrUnknownWaveform},
		{"Sine ", 0, ErrUnknownWaveform},
		{"square", 0, ErrUnknownWaveform},
		{"", 0, ErrUnknownWaveform},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseWaveform(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseWaveform(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWaveform(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWaveform_String(t *testing.T) {
	t.Parallel()

	for w, name := range waveformNames {
		if w.String() != name {
			t.Errorf("%d.String() = %q, want %q", int(w), w.String(), name)
		}
		parsed, err := ParseWaveform(w.String())
		if err != nil || parsed != w {
			t.Errorf("ParseWaveform(%q) = %v, %v; want %v", w.String(), parsed, err, w)
		}
	}

	if got := Waveform(42).String(); got != "Waveform(42)" {
		t.Errorf("Waveform(42).String() = %q", got)
	}
}
