// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a stream of normalized PCM samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (this module only produces and consumes mono).
	Channels() int
	// ReadSamples fills dst with float32 samples in [-1,1].
	// Returns number of float32 values written. When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
