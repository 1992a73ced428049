// SPDX-License-Identifier: EPL-2.0

// Command wavproc applies a gain or low-pass effect to a mono 16-bit WAV file.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/internal/config"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

const helpText = `Usage:
  wavproc gain <in.wav> <out.wav> <gain>
  wavproc lpf  <in.wav> <out.wav> <cutoff_hz>

Notes: PCM 16-bit mono only.
`

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(exitFailure)
	}

	code := run(os.Args[1:], os.Stderr, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(args []string, stderr io.Writer, logger *zap.Logger) int {
	cfg, err := config.ParseProcess(args)
	if err != nil {
		if config.IsUsage(err) {
			fmt.Fprint(stderr, helpText)
			return exitUsage
		}
		logger.Error("invalid arguments", zap.Error(err))
		return exitFailure
	}

	info, err := wavkit.ProcessFile(cfg.Input, cfg.Output, cfg.Effect, wavkit.WithLogger(logger))
	if err != nil {
		logger.Error("processing failed",
			zap.String("input", cfg.Input),
			zap.String("output", cfg.Output),
			zap.Stringer("mode", cfg.Effect.Effect),
			zap.Error(err),
		)
		return exitFailure
	}

	logger.Info("wrote file",
		zap.String("path", cfg.Output),
		zap.Stringer("mode", cfg.Effect.Effect),
		zap.Float64("param", cfg.Effect.Param),
		zap.Uint32("sample_rate", info.SampleRate),
		zap.Int("samples", info.NumSamples()),
	)
	return 0
}
