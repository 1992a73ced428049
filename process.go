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

// Process reads a container from src, runs every sample through the effect
// described by cfg and writes a container of the same rate and length to dst.
//
// The effect is validated and the input header parsed before dst is touched.
func Process(dst io.Writer, src io.Reader, cfg audio.EffectConfig, opts ...Option) (wav.Info, error) {
	o := applyOptions(opts)

	if err := cfg.Validate(); err != nil {
		return wav.Info{}, err
	}

	rd, err := wav.NewReader(src)
	if err != nil {
		return wav.Info{}, fmt.Errorf("reading input: %w", err)
	}

	return process(dst, rd, cfg, o)
}

func process(dst io.Writer, rd *wav.Reader, cfg audio.EffectConfig, o *options) (wav.Info, error) {
	in := rd.Info()
	o.logger.Debug("input parsed",
		zap.Uint32("sample_rate", in.SampleRate),
		zap.Int("samples", in.NumSamples()),
		zap.Int64("data_offset", in.DataOffset),
	)

	stage, err := audio.NewEffect(rd, cfg)
	if err != nil {
		return wav.Info{}, err
	}

	info, err := wav.NewInfo(in.SampleRate, in.NumSamples())
	if err != nil {
		return wav.Info{}, err
	}

	wr, err := wav.NewWriter(dst, info)
	if err != nil {
		return info, err
	}

	n, err := wr.WriteSource(stage)
	if err != nil {
		return info, fmt.Errorf("applying %v: %w", cfg.Effect, err)
	}
	if err := wr.Close(); err != nil {
		return info, err
	}

	o.logger.Debug("effect applied",
		zap.Stringer("effect", cfg.Effect),
		zap.Float64("param", cfg.Param),
		zap.Int("samples", n),
	)

	return info, nil
}

// ProcessFile applies cfg to the container at inPath and writes the result to
// outPath. Invalid effects and malformed inputs are reported before outPath
// is created.
func ProcessFile(inPath, outPath string, cfg audio.EffectConfig, opts ...Option) (info wav.Info, err error) {
	o := applyOptions(opts)

	if err := cfg.Validate(); err != nil {
		return wav.Info{}, err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return wav.Info{}, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	if err := checkDistinct(in, outPath); err != nil {
		return wav.Info{}, err
	}

	rd, err := wav.NewReader(in)
	if err != nil {
		return wav.Info{}, fmt.Errorf("reading %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return wav.Info{}, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing output: %w", cerr))
		}
	}()

	return process(out, rd, cfg, o)
}

// checkDistinct refuses an output path that names the open input file.
func checkDistinct(in *os.File, outPath string) error {
	outStat, err := os.Stat(outPath)
	if err != nil {
		// a missing output is the normal case
		return nil
	}

	inStat, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if os.SameFile(inStat, outStat) {
		return fmt.Errorf("%s: %w", outPath, ErrSameFile)
	}

	return nil
}
