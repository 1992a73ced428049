// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/utils"
)

const readBufferSize = 8192

// Reader streams the payload of a mono 16-bit PCM container.
// It implements audio.Source.
type Reader struct {
	info      Info
	r         *bufio.Reader
	remaining int
	buf       []byte
}

// NewReader parses the container header from r and positions the reader at
// the first payload sample.
func NewReader(r io.Reader) (*Reader, error) {
	info, err := ReadInfo(r)
	if err != nil {
		return nil, err
	}

	n := info.NumSamples()
	return &Reader{
		info:      info,
		r:         bufio.NewReaderSize(io.LimitReader(r, int64(n)*2), readBufferSize),
		remaining: n,
	}, nil
}

// Info returns the parsed container metadata.
func (rd *Reader) Info() Info { return rd.info }

// Remaining is the number of samples not read yet.
func (rd *Reader) Remaining() int { return rd.remaining }

func (rd *Reader) SampleRate() int { return int(rd.info.SampleRate) }
func (rd *Reader) Channels() int   { return int(rd.info.Channels) }
func (rd *Reader) Close() error    { return nil }

// ReadInt16 returns the next sample, or io.EOF once the declared payload is consumed.
func (rd *Reader) ReadInt16() (int16, error) {
	if rd.remaining == 0 {
		return 0, io.EOF
	}

	var b [2]byte
	if _, err := io.ReadFull(rd.r, b[:]); err != nil {
		return 0, fmt.Errorf("reading sample: %w: %w", ErrTruncated, err)
	}
	rd.remaining--

	return int16(binary.LittleEndian.Uint16(b[:])), nil
}

// readRaw fills rd.buf with up to want samples worth of bytes.
func (rd *Reader) readRaw(want int) (int, error) {
	n := min(want, rd.remaining)
	if n == 0 {
		return 0, io.EOF
	}

	if cap(rd.buf) < n*2 {
		rd.buf = make([]byte, n*2)
	}
	rd.buf = rd.buf[:n*2]

	got, err := io.ReadFull(rd.r, rd.buf)
	samples := got / 2
	rd.remaining -= samples
	if err != nil {
		return samples, fmt.Errorf("reading payload: %w: %w", ErrTruncated, err)
	}

	return samples, nil
}

// ReadSamples decodes up to len(dst) samples into the normalized float domain.
func (rd *Reader) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := rd.readRaw(len(dst))
	for i := range n {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(rd.buf[2*i : 2*i+2])))
	}

	return n, err
}

// Format reports the stream layout in go-audio terms.
func (rd *Reader) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(rd.info.Channels),
		SampleRate:  int(rd.info.SampleRate),
	}
}

// PCMBuffer fills buf.Data with raw sample codes, the way go-audio decoders do.
func (rd *Reader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil || len(buf.Data) == 0 {
		return 0, nil
	}
	if buf.Format == nil {
		buf.Format = rd.Format()
	}
	buf.SourceBitDepth = BitsPerSample

	n, err := rd.readRaw(len(buf.Data))
	for i := range n {
		buf.Data[i] = int(int16(binary.LittleEndian.Uint16(rd.buf[2*i : 2*i+2])))
	}

	return n, err
}

type Decoder struct{}

// Decode parses the container header and returns the payload as an audio.Source.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	return rd, nil
}
