// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks of wavkit.
//
// This package contains:
//   - Source interface for streams of normalized samples
//   - Generator for synthetic waveforms (sine, noise, impulse, silence, chirp)
//   - GainStage and LowPassStage streaming transforms
//   - Oscillator and OnePole, the per-sample kernels behind them
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Decoders, generators and effects all implement this interface, so they
// chain together:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	filtered, _ := audio.NewEffect(src, audio.EffectConfig{Effect: audio.LowPass, Param: 1000})
//
// # Generators
//
// A Request is validated once, then NewGenerator picks the waveform kernel
// before the first sample is produced:
//
//	gen, err := audio.NewGenerator(audio.Request{
//	    Waveform:   audio.Sine,
//	    SampleRate: 44100,
//	    Duration:   1.0,
//	    Frequency:  440,
//	    Amplitude:  0.5,
//	})
//
// Noise is seeded from the clock; pass WithSeed for a reproducible stream.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]. Effects may push samples
// outside that range (a gain above 1, for example); the PCM encoder clips
// them when they are written.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Invalid
// requests and effect configs are reported with the sentinel errors of
// this package and should be checked with errors.Is.
package audio
