// SPDX-License-Identifier: EPL-2.0

// Package wavkit generates and processes mono 16-bit PCM WAV files.
//
// It ties together the subpackages:
//   - utils: the float32 <-> int16 sample codec
//   - formats/wav: the container reader and writer
//   - audio: waveform generators and the gain and low-pass effects
//
// # Generating
//
// A Request names a waveform (sine, noise, impulse, silence or chirp) and
// its parameters. It is validated before any output exists:
//
//	info, err := wavkit.GenerateFile("tone.wav", audio.Request{
//	    Waveform:   audio.Sine,
//	    SampleRate: 44100,
//	    Duration:   2.0,
//	    Frequency:  440,
//	    Amplitude:  0.8,
//	})
//
// # Processing
//
// An EffectConfig applies a gain factor or a one-pole low-pass filter to
// every sample of an existing file. The output keeps the sample rate and
// sample count of the input:
//
//	_, err := wavkit.ProcessFile("in.wav", "out.wav", audio.EffectConfig{
//	    Effect: audio.LowPass,
//	    Param:  1000, // cutoff in Hz
//	})
//
// Gains above 1 clip at the 16-bit limits; that is expected, not an error.
//
// # Failures
//
// Every error is final. If writing fails after the header has been
// emitted, the output file is truncated and must be discarded.
//
// # Command Line
//
// cmd/wavgen and cmd/wavproc expose both operations as command line tools.
package wavkit
