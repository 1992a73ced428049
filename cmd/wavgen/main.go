// SPDX-License-Identifier: EPL-2.0

// Command wavgen writes a synthesized test signal to a mono 16-bit WAV file.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/internal/config"
)

const usageText = `Usage:
  %[1]s mode out.wav sample_rate seconds f1 amplitude [f2]
Modes: sine, noise, impulse, silence, chirp
Examples:
  %[1]s sine out.wav 44100 2.0 440 0.8
  %[1]s noise out.wav 48000 3.0 0 0.4
  %[1]s chirp out.wav 44100 3.0 200 0.8 2000
`

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	code := run(os.Args[1:], os.Stderr, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(args []string, stderr io.Writer, logger *zap.Logger) int {
	cfg, err := config.ParseGenerate(args)
	if err != nil {
		if config.IsUsage(err) {
			fmt.Fprintf(stderr, usageText, "wavgen")
		}
		logger.Error("invalid arguments", zap.Error(err))
		return 1
	}

	info, err := wavkit.GenerateFile(cfg.Output, cfg.Request, wavkit.WithLogger(logger))
	if err != nil {
		logger.Error("generation failed",
			zap.String("path", cfg.Output),
			zap.Stringer("mode", cfg.Request.Waveform),
			zap.Error(err),
		)
		return 1
	}

	logger.Info("wrote file",
		zap.String("path", cfg.Output),
		zap.Stringer("mode", cfg.Request.Waveform),
		zap.Uint32("sample_rate", info.SampleRate),
		zap.Int("samples", info.NumSamples()),
	)
	return 0
}
