// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewSliceSource creates a mono mock source replaying samples.
func NewSliceSource(sampleRate int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, 1, len(samples), func(sample int, _ int) float32 {
		return samples[sample]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// Chunk is a raw RIFF chunk used to assemble test containers.
type Chunk struct {
	ID   string
	Data []byte
	// Size overrides the declared length when non-zero.
	Size uint32
}

// FmtChunk builds a 16-byte PCM fmt chunk with the given fields.
func FmtChunk(format, channels uint16, sampleRate uint32, bitsPerSample uint16) Chunk {
	blockAlign := channels * (bitsPerSample / 8)
	body := new(bytes.Buffer)
	binary.Write(body, binary.LittleEndian, format)
	binary.Write(body, binary.LittleEndian, channels)
	binary.Write(body, binary.LittleEndian, sampleRate)
	binary.Write(body, binary.LittleEndian, sampleRate*uint32(blockAlign))
	binary.Write(body, binary.LittleEndian, blockAlign)
	binary.Write(body, binary.LittleEndian, bitsPerSample)
	return Chunk{ID: "fmt ", Data: body.Bytes()}
}

// DataChunk builds a data chunk holding little-endian int16 samples.
func DataChunk(samples []int16) Chunk {
	body := new(bytes.Buffer)
	binary.Write(body, binary.LittleEndian, samples)
	return Chunk{ID: "data", Data: body.Bytes()}
}

// BuildRIFF assembles a RIFF/WAVE byte stream from chunks, padding odd
// chunks to an even length the way RIFF requires.
func BuildRIFF(chunks ...Chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	for _, c := range chunks {
		size := c.Size
		if size == 0 {
			size = uint32(len(c.Data))
		}
		body.WriteString(c.ID)
		binary.Write(body, binary.LittleEndian, size)
		body.Write(c.Data)
		if len(c.Data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// MonoWAV builds a canonical mono 16-bit container around samples.
func MonoWAV(sampleRate uint32, samples []int16) []byte {
	return BuildRIFF(FmtChunk(1, 1, sampleRate, 16), DataChunk(samples))
}
