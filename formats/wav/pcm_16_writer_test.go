// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/wavkit/internal/audiotest"
)

func TestWriteWAV16_ValidFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 200, -200}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	data := buf.Bytes()
	if len(data) != 44+10 {
		t.Fatalf("WAV file size = %d, want %d", len(data), 54)
	}
	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}
	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}

	for i, s := range samples {
		got := int16(binary.LittleEndian.Uint16(data[44+2*i:]))
		if got != s {
			t.Errorf("sample %d = %d, want %d", i, got, s)
		}
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	original := []int16{-32768, -16384, -1, 0, 1, 16384, 32767}
	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 44100, original); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	rd, err := NewReader(buf)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	for i, want := range original {
		got, err := rd.ReadInt16()
		if err != nil || got != want {
			t.Errorf("sample %d = %d, %v; want %d", i, got, err, want)
		}
	}
}

func TestWriter_WriteSamplesEncodes(t *testing.T) {
	t.Parallel()

	info, _ := NewInfo(8000, 5)
	buf := new(bytes.Buffer)
	wr, err := NewWriter(buf, info)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if err := wr.WriteSamples([]float32{0, 0.5, -0.5, 2, -2}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := []int16{0, 16384, -16384, 32767, -32767}
	payload := buf.Bytes()[HeaderSize:]
	for i, w := range want {
		if got := int16(binary.LittleEndian.Uint16(payload[2*i:])); got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestWriter_PayloadSizeEnforced(t *testing.T) {
	t.Parallel()

	info, _ := NewInfo(8000, 2)

	t.Run("too many", func(t *testing.T) {
		t.Parallel()

		wr, _ := NewWriter(io.Discard, info)
		wr.WriteInt16(1)
		wr.WriteInt16(2)
		if err := wr.WriteInt16(3); !errors.Is(err, ErrPayloadSize) {
			t.Errorf("third WriteInt16() error = %v, want ErrPayloadSize", err)
		}
		if wr.Written() != 2 {
			t.Errorf("Written() = %d, want 2", wr.Written())
		}
	})

	t.Run("too few", func(t *testing.T) {
		t.Parallel()

		wr, _ := NewWriter(io.Discard, info)
		wr.WriteInt16(1)
		if err := wr.Close(); !errors.Is(err, ErrPayloadSize) {
			t.Errorf("Close() error = %v, want ErrPayloadSize", err)
		}
	})
}

func TestNewWriter_RejectsLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		info    Info
		wantErr error
	}{
		{"stereo", Info{SampleRate: 8000, Channels: 2, BitsPerSample: 16}, ErrUnsupportedChannels},
		{"8-bit", Info{SampleRate: 8000, Channels: 1, BitsPerSample: 8}, ErrUnsupportedBitDepth},
		{"odd payload", Info{SampleRate: 8000, Channels: 1, BitsPerSample: 16, DataSize: 3}, ErrPayloadSize},
	}

	for _, tt := range tests {
		buf := new(bytes.Buffer)
		if _, err := NewWriter(buf, tt.info); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: NewWriter() error = %v, want %v", tt.name, err, tt.wantErr)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: %d bytes written before the error", tt.name, buf.Len())
		}
	}
}

func TestWriter_WriteSource(t *testing.T) {
	t.Parallel()

	const total = 10000 // more than one internal buffer
	src := audiotest.NewConstantSource(16000, 1, total, 0.25)

	info, _ := NewInfo(16000, total)
	buf := new(bytes.Buffer)
	wr, _ := NewWriter(buf, info)

	n, err := wr.WriteSource(src)
	if err != nil {
		t.Fatalf("WriteSource() error = %v", err)
	}
	if n != total {
		t.Errorf("WriteSource() = %d, want %d", n, total)
	}
	if err := wr.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if buf.Len() != HeaderSize+2*total {
		t.Errorf("output size = %d, want %d", buf.Len(), HeaderSize+2*total)
	}
}

func TestWriter_WriteSourceRejectsStereo(t *testing.T) {
	t.Parallel()

	info, _ := NewInfo(16000, 4)
	wr, _ := NewWriter(io.Discard, info)

	_, err := wr.WriteSource(audiotest.NewSilentSource(16000, 2, 2))
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("WriteSource() error = %v, want ErrUnsupportedChannels", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_PropagatesIOErrors(t *testing.T) {
	t.Parallel()

	info, _ := NewInfo(8000, 1)
	wr, err := NewWriter(failingWriter{}, info)
	if err != nil {
		t.Fatalf("NewWriter() error = %v (header is buffered)", err)
	}
	wr.WriteInt16(1)
	if err := wr.Close(); err == nil {
		t.Error("Close() error = nil, want flush error")
	}
}

// BenchmarkWriteWAV16 tests performance and allocations
func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ReportAllocs()

	for range b.N {
		if err := WriteWAV16(io.Discard, 8000, samples); err != nil {
			b.Fatal(err)
		}
	}
}
