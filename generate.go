// SPDX-License-Identifier: EPL-2.0

package wavkit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/formats/wav"
)

// Generate synthesizes req and writes it to w as a complete container.
//
// The request is validated before anything is written. Once the header is
// out, a failure leaves w holding a truncated container that must be
// discarded.
func Generate(w io.Writer, req audio.Request, opts ...Option) (wav.Info, error) {
	o := applyOptions(opts)

	gen, err := audio.NewGenerator(req, o.genOpts...)
	if err != nil {
		return wav.Info{}, err
	}

	info, err := wav.NewInfo(uint32(req.SampleRate), gen.NumSamples())
	if err != nil {
		return wav.Info{}, err
	}

	wr, err := wav.NewWriter(w, info)
	if err != nil {
		return info, err
	}

	n, err := wr.WriteSource(gen)
	if err != nil {
		return info, fmt.Errorf("generating %v: %w", req.Waveform, err)
	}
	if err := wr.Close(); err != nil {
		return info, err
	}

	o.logger.Debug("waveform generated",
		zap.Stringer("waveform", req.Waveform),
		zap.Int("sample_rate", req.SampleRate),
		zap.Int("samples", n),
		zap.Uint32("data_bytes", info.DataSize),
	)

	return info, nil
}

// GenerateFile writes req to a new file at path. An invalid request is
// reported before the file is created.
func GenerateFile(path string, req audio.Request, opts ...Option) (info wav.Info, err error) {
	if err := req.Validate(); err != nil {
		return wav.Info{}, err
	}

	f, err := os.Create(path)
	if err != nil {
		return wav.Info{}, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing output: %w", cerr))
		}
	}()

	return Generate(f, req, opts...)
}
