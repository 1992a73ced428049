// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes mono 16-bit PCM RIFF/WAVE containers.
//
// # Supported Formats
//
// Only one layout is accepted:
//   - format code 1 (uncompressed linear PCM)
//   - one channel
//   - 16 bits per sample, little-endian
//
// Anything else is rejected with ErrUnsupportedFormat, ErrUnsupportedChannels
// or ErrUnsupportedBitDepth before a single sample is read.
//
// # Reading
//
// ReadInfo walks the chunk list. Unknown chunks are skipped (including the
// RIFF pad byte after odd-sized chunks) and scanning stops as soon as the fmt
// and data chunks have both been seen, so metadata placed after the payload
// is never touched. The RIFF size field is not checked against the real
// stream length.
//
//	rd, err := wav.NewReader(file)
//	if err != nil {
//	    // format or I/O error
//	}
//	buf := make([]float32, 4096)
//	n, err := rd.ReadSamples(buf)
//
// A Reader is an audio.Source; Decoder wraps it for code that works with
// decoders. A payload shorter than its declared size is reported as
// ErrTruncated.
//
// # Writing
//
// The header precedes the payload and carries its length, so the sample count
// must be known before the first sample is written:
//
//	info, _ := wav.NewInfo(44100, numSamples)
//	w, _ := wav.NewWriter(file, info)
//	w.WriteSource(generator)
//	err := w.Close()
//
// Close reports ErrPayloadSize when the count written differs from the
// header. WriteWAV16 is a shortcut for writing a slice of samples.
//
// # File Format
//
// The canonical header written by this package is 44 bytes:
//   - RIFF header (12 bytes): "RIFF", 36 + data size, "WAVE"
//   - fmt chunk (24 bytes): format, channels, sample rate, byte rate, block align, bits
//   - data chunk header (8 bytes): "data", data size
package wav
