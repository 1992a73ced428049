// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/utils"
)

const writeBufferSize = 8192

// Writer streams a mono 16-bit PCM container whose payload length is known
// before the first sample. The header is written by NewWriter and is never
// revisited, so w does not need to be seekable.
type Writer struct {
	info    Info
	w       *bufio.Writer
	written int
	buf     []float32
}

// NewWriter writes the header for info to w.
func NewWriter(w io.Writer, info Info) (*Writer, error) {
	if info.Channels != Channels {
		return nil, fmt.Errorf("%d channels: %w", info.Channels, ErrUnsupportedChannels)
	}
	if info.BitsPerSample != BitsPerSample {
		return nil, fmt.Errorf("%d bits per sample: %w", info.BitsPerSample, ErrUnsupportedBitDepth)
	}
	if info.DataSize&1 == 1 {
		return nil, fmt.Errorf("odd payload of %d bytes: %w", info.DataSize, ErrPayloadSize)
	}

	bw := bufio.NewWriterSize(w, writeBufferSize)
	if err := WriteHeader(bw, info); err != nil {
		return nil, err
	}

	return &Writer{info: info, w: bw}, nil
}

// Info returns the header the writer was created with.
func (wr *Writer) Info() Info { return wr.info }

// Written is the number of samples written so far.
func (wr *Writer) Written() int { return wr.written }

// WriteInt16 appends one sample code to the payload.
func (wr *Writer) WriteInt16(s int16) error {
	if wr.written >= wr.info.NumSamples() {
		return fmt.Errorf("sample %d of %d: %w", wr.written+1, wr.info.NumSamples(), ErrPayloadSize)
	}

	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(s))
	if _, err := wr.w.Write(b[:]); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	wr.written++

	return nil
}

// WriteSamples encodes normalized samples and appends them to the payload.
func (wr *Writer) WriteSamples(samples []float32) error {
	for _, x := range samples {
		if err := wr.WriteInt16(utils.Float32ToInt16(x)); err != nil {
			return err
		}
	}

	return nil
}

// WriteSource drains src into the payload and returns the number of samples written.
func (wr *Writer) WriteSource(src audio.Source) (int, error) {
	if src.Channels() != Channels {
		return 0, fmt.Errorf("%d channels: %w", src.Channels(), ErrUnsupportedChannels)
	}

	if wr.buf == nil {
		wr.buf = make([]float32, writeBufferSize/2)
	}

	total := 0
	for {
		n, err := src.ReadSamples(wr.buf)
		if n > 0 {
			if werr := wr.WriteSamples(wr.buf[:n]); werr != nil {
				return total, werr
			}
			total += n
		}

		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("reading source: %w", err)
		}
		if n == 0 {
			return total, fmt.Errorf("source stalled after %d samples: %w", total, io.ErrNoProgress)
		}
	}
}

// Close flushes buffered samples. It reports ErrPayloadSize when fewer
// samples were written than the header declares; the output is then invalid.
func (wr *Writer) Close() error {
	if err := wr.w.Flush(); err != nil {
		return fmt.Errorf("flushing payload: %w", err)
	}

	if wr.written != wr.info.NumSamples() {
		return fmt.Errorf("wrote %d of %d samples: %w", wr.written, wr.info.NumSamples(), ErrPayloadSize)
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	info, err := NewInfo(uint32(sampleRate), len(samples))
	if err != nil {
		return err
	}

	wr, err := NewWriter(w, info)
	if err != nil {
		return err
	}

	for _, s := range samples {
		if err := wr.WriteInt16(s); err != nil {
			return err
		}
	}

	return wr.Close()
}
