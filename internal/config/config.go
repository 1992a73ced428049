// SPDX-License-Identifier: EPL-2.0

// Package config turns the positional command line of wavgen and wavproc
// into typed requests.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ik5/wavkit/audio"
)

// GenerateConfig is the parsed wavgen command line.
type GenerateConfig struct {
	Output  string
	Request audio.Request
}

// ProcessConfig is the parsed wavproc command line.
type ProcessConfig struct {
	Input  string
	Output string
	Effect audio.EffectConfig
}

// ParseGenerate parses "mode output_path sample_rate seconds f1 amplitude [f2]".
// args must not include the program name.
//
// Only the shape of the command line is checked here. Range checks belong to
// audio.Request.Validate, except for a chirp without f2 which is a usage error.
func ParseGenerate(args []string) (GenerateConfig, error) {
	if len(args) < 6 {
		return GenerateConfig{}, fmt.Errorf("%w: expected at least 6 arguments, got %d", ErrUsage, len(args))
	}

	waveform, err := audio.ParseWaveform(args[0])
	if err != nil {
		return GenerateConfig{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	rate, err := strconv.Atoi(args[2])
	if err != nil {
		return GenerateConfig{}, numberError("sample_rate", args[2])
	}

	req := audio.Request{Waveform: waveform, SampleRate: rate}

	if req.Duration, err = parseFloat("seconds", args[3]); err != nil {
		return GenerateConfig{}, err
	}
	if req.Amplitude, err = parseFloat("amplitude", args[5]); err != nil {
		return GenerateConfig{}, err
	}

	// f1 is a placeholder for the modes that have no frequency
	if usesFrequency(waveform) {
		if req.Frequency, err = parseFloat("f1", args[4]); err != nil {
			return GenerateConfig{}, err
		}
	}

	if len(args) > 6 {
		if req.EndFrequency, err = parseFloat("f2", args[6]); err != nil {
			return GenerateConfig{}, err
		}
		req.HasEndFrequency = true
	} else if waveform == audio.Chirp {
		return GenerateConfig{}, fmt.Errorf("%w: %w", ErrUsage, audio.ErrMissingEndFrequency)
	}

	return GenerateConfig{Output: args[1], Request: req}, nil
}

// ParseProcess parses "mode input_path output_path parameter".
// args must not include the program name.
func ParseProcess(args []string) (ProcessConfig, error) {
	if len(args) == 0 {
		return ProcessConfig{}, fmt.Errorf("%w: missing mode", ErrUsage)
	}

	effect, err := audio.ParseEffect(args[0])
	if err != nil {
		return ProcessConfig{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if len(args) != 4 {
		return ProcessConfig{}, fmt.Errorf("%w: expected 4 arguments, got %d", ErrUsage, len(args))
	}

	param, err := parseFloat("parameter", args[3])
	if err != nil {
		return ProcessConfig{}, err
	}

	return ProcessConfig{
		Input:  args[1],
		Output: args[2],
		Effect: audio.EffectConfig{Effect: effect, Param: param},
	}, nil
}

// IsUsage reports whether err came from a malformed command line rather
// than from a bad value.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

func usesFrequency(w audio.Waveform) bool {
	return w == audio.Sine || w == audio.Chirp
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, numberError(name, s)
	}
	return v, nil
}

func numberError(name, s string) error {
	return fmt.Errorf("%s %q: %w", name, s, ErrInvalidNumber)
}
