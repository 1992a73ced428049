// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
)

const (
	// HeaderSize is the size of the canonical header written by this package.
	HeaderSize = 44

	// FormatPCM is the WAVE format code of uncompressed linear PCM.
	FormatPCM = 1

	// Channels and BitsPerSample are the only layout this package handles.
	Channels      = 1
	BitsPerSample = 16

	fmtChunkSize = 16

	// riffHeaderOverhead is the part of the canonical header counted by the RIFF size field.
	riffHeaderOverhead = HeaderSize - 8
)

// MaxSamples is the largest sample count whose header sizes fit 32 bits.
const MaxSamples = (math.MaxUint32 - riffHeaderOverhead) / 2

// Info describes a mono 16-bit PCM container.
type Info struct {
	SampleRate    uint32
	Channels      uint16
	BitsPerSample uint16
	// DataSize is the declared payload length in bytes.
	DataSize uint32
	// DataOffset is the stream position of the first payload byte.
	DataOffset int64
}

// NewInfo describes a payload of numSamples mono 16-bit samples at sampleRate.
func NewInfo(sampleRate uint32, numSamples int) (Info, error) {
	if numSamples < 0 || numSamples > MaxSamples {
		return Info{}, fmt.Errorf("%d samples: %w", numSamples, ErrPayloadTooLarge)
	}

	return Info{
		SampleRate:    sampleRate,
		Channels:      Channels,
		BitsPerSample: BitsPerSample,
		DataSize:      uint32(numSamples) * 2,
		DataOffset:    HeaderSize,
	}, nil
}

// BlockAlign is the size of one frame in bytes.
func (i Info) BlockAlign() uint16 { return i.Channels * (i.BitsPerSample / 8) }

// ByteRate is the number of payload bytes per second.
func (i Info) ByteRate() uint32 { return i.SampleRate * uint32(i.BlockAlign()) }

// NumSamples is the number of whole samples in the payload.
// A trailing odd byte is not a sample and is ignored.
func (i Info) NumSamples() int { return int(i.DataSize / 2) }

// RIFFSize is the value of the RIFF size field for the canonical layout.
func (i Info) RIFFSize() uint32 { return riffHeaderOverhead + i.DataSize }

// EncodeHeader renders the canonical 44-byte header for i.
func EncodeHeader(i Info) []byte {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[4:8], i.RIFFSize())
	copy(header[8:12], riff.WavFormatID[:])

	// fmt chunk (24 bytes)
	copy(header[12:16], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], i.Channels)
	binary.LittleEndian.PutUint32(header[24:28], i.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], i.ByteRate())
	binary.LittleEndian.PutUint16(header[32:34], i.BlockAlign())
	binary.LittleEndian.PutUint16(header[34:36], i.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[40:44], i.DataSize)

	return header
}

// WriteHeader writes the canonical header for i to w.
func WriteHeader(w io.Writer, i Info) error {
	if _, err := w.Write(EncodeHeader(i)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	return nil
}

// countingReader tracks the stream position while scanning chunks.
type countingReader struct {
	r   io.Reader
	pos int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.pos += int64(n)
	return n, err
}

func (c *countingReader) readFull(p []byte, what string) error {
	if _, err := io.ReadFull(c, p); err != nil {
		return fmt.Errorf("%s: %w: %w", what, ErrTruncated, err)
	}
	return nil
}

func (c *countingReader) skip(n int64, what string) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, c, n); err != nil {
		return fmt.Errorf("skipping %s: %w: %w", what, ErrTruncated, err)
	}
	return nil
}

// ReadInfo scans the chunk sequence of a RIFF/WAVE stream up to the start of
// the payload. It returns as soon as both the fmt and the data chunk have
// been seen, so r is left positioned at the first payload byte. Unknown
// chunks are skipped including their pad byte. Chunks after data are never
// read and the RIFF size field is not checked against the stream length.
func ReadInfo(r io.Reader) (Info, error) {
	var info Info

	cr := &countingReader{r: r}
	envelope := make([]byte, 12)
	if err := cr.readFull(envelope, "reading RIFF header"); err != nil {
		return info, err
	}
	if [4]byte(envelope[0:4]) != riff.RiffID || [4]byte(envelope[8:12]) != riff.WavFormatID {
		return info, ErrNotWavFile
	}

	gotFmt := false
	chunkHeader := make([]byte, 8)
	for {
		if err := cr.readFull(chunkHeader, "reading chunk header"); err != nil {
			return info, err
		}
		id := [4]byte(chunkHeader[0:4])
		size := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch id {
		case riff.FmtID:
			if err := readFmt(cr, size, &info); err != nil {
				return info, err
			}
			gotFmt = true

		case riff.DataFormatID:
			if !gotFmt {
				return info, fmt.Errorf("data chunk before fmt chunk: %w", ErrUnsupportedWavChunks)
			}
			info.DataSize = size
			info.DataOffset = cr.pos
			return info, nil

		default:
			skip := int64(size)
			if skip&1 == 1 {
				skip++
			}
			if err := cr.skip(skip, fmt.Sprintf("chunk %q", id[:])); err != nil {
				return info, err
			}
		}
	}
}

func readFmt(cr *countingReader, size uint32, info *Info) error {
	if size < fmtChunkSize {
		return fmt.Errorf("fmt chunk of %d bytes: %w", size, ErrShortFmtChunk)
	}

	body := make([]byte, fmtChunkSize)
	if err := cr.readFull(body, "reading fmt chunk"); err != nil {
		return err
	}

	audioFormat := binary.LittleEndian.Uint16(body[0:2])
	info.Channels = binary.LittleEndian.Uint16(body[2:4])
	info.SampleRate = binary.LittleEndian.Uint32(body[4:8])
	// body[8:12] byte rate and body[12:14] block align are not validated
	info.BitsPerSample = binary.LittleEndian.Uint16(body[14:16])

	if audioFormat != FormatPCM {
		return fmt.Errorf("format code %d: %w", audioFormat, ErrUnsupportedFormat)
	}
	if info.Channels != Channels {
		return fmt.Errorf("%d channels: %w", info.Channels, ErrUnsupportedChannels)
	}
	if info.BitsPerSample != BitsPerSample {
		return fmt.Errorf("%d bits per sample: %w", info.BitsPerSample, ErrUnsupportedBitDepth)
	}

	// odd-sized fmt chunks are padded like any other chunk
	extra := int64(size) - fmtChunkSize
	if size&1 == 1 {
		extra++
	}
	return cr.skip(extra, "fmt extension")
}
