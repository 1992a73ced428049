// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile is returned when the RIFF/WAVE envelope is missing.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedFormat is returned for any format code other than linear PCM.
	ErrUnsupportedFormat = errors.New("only uncompressed PCM supported")

	// ErrUnsupportedChannels is returned for anything but mono.
	ErrUnsupportedChannels = errors.New("only mono supported")

	// ErrUnsupportedBitDepth is returned for anything but 16 bits per sample.
	ErrUnsupportedBitDepth = errors.New("only 16-bit supported")

	// ErrShortFmtChunk is returned when the fmt chunk cannot hold a PCM description.
	ErrShortFmtChunk = errors.New("fmt chunk too short")

	// ErrUnsupportedWavChunks is returned when the data chunk precedes the fmt chunk.
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")

	// ErrTruncated is returned when the stream ends inside the header or payload.
	ErrTruncated = errors.New("unexpected end of WAV stream")

	// ErrPayloadSize is returned when the written payload does not match the header.
	ErrPayloadSize = errors.New("payload size does not match header")

	// ErrPayloadTooLarge is returned when a payload cannot be described by 32-bit RIFF sizes.
	ErrPayloadTooLarge = errors.New("payload too large for RIFF container")
)
