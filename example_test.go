// SPDX-License-Identifier: EPL-2.0

package wavkit_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/audio"
)

// Example_generate writes one second of a 440 Hz tone.
func Example_generate() {
	out := new(bytes.Buffer)
	info, err := wavkit.Generate(out, audio.Request{
		Waveform:   audio.Sine,
		SampleRate: 44100,
		Duration:   1.0,
		Frequency:  440,
		Amplitude:  0.5,
	})
	if err != nil {
		fmt.Printf("generate error: %v\n", err)
		return
	}

	fmt.Printf("%d samples, %d data bytes, %d bytes total\n", info.NumSamples(), info.DataSize, out.Len())
	// Output: 44100 samples, 88200 data bytes, 44144 bytes total
}

// Example_process halves the level of a generated impulse.
func Example_process() {
	in := new(bytes.Buffer)
	_, err := wavkit.Generate(in, audio.Request{
		Waveform:   audio.Impulse,
		SampleRate: 8000,
		Duration:   0.5,
		Amplitude:  1,
	})
	if err != nil {
		fmt.Printf("generate error: %v\n", err)
		return
	}

	out := new(bytes.Buffer)
	info, err := wavkit.Process(out, in, audio.EffectConfig{Effect: audio.Gain, Param: 0.5})
	if err != nil {
		fmt.Printf("process error: %v\n", err)
		return
	}

	fmt.Printf("%d Hz, %d samples\n", info.SampleRate, info.NumSamples())
	// Output: 8000 Hz, 4000 samples
}
