// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Effect selects a streaming transform applied to a Source.
type Effect int

const (
	Gain Effect = iota + 1
	LowPass
)

var effectNames = map[Effect]string{
	Gain:    "gain",
	LowPass: "lpf",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Effect(%d)", int(e))
}

// ParseEffect maps a mode name ("gain", "lpf") to its Effect. Names are case sensitive.
func ParseEffect(name string) (Effect, error) {
	for e, n := range effectNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownEffect)
}

// EffectConfig is an Effect with its single parameter: the gain factor
// for Gain and the cutoff in Hz for LowPass.
type EffectConfig struct {
	Effect Effect
	Param  float64
}

// Validate rejects a config before any sample is processed.
func (c EffectConfig) Validate() error {
	switch c.Effect {
	case Gain:
		if math.IsNaN(c.Param) || math.IsInf(c.Param, 0) {
			return fmt.Errorf("%v: %w", c.Param, ErrInvalidGain)
		}
	case LowPass:
		if !(c.Param > 0) || math.IsInf(c.Param, 1) {
			return fmt.Errorf("%v Hz: %w", c.Param, ErrInvalidCutoff)
		}
	default:
		return fmt.Errorf("%v: %w", c.Effect, ErrUnknownEffect)
	}

	return nil
}

// NewEffect wraps src with the transform described by cfg.
func NewEffect(src Source, cfg EffectConfig) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%d channels: %w", src.Channels(), ErrNotMono)
	}

	switch cfg.Effect {
	case Gain:
		return NewGainStage(src, cfg.Param), nil
	default:
		return NewLowPassStage(src, cfg.Param), nil
	}
}
