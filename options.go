// SPDX-License-Identifier: EPL-2.0

package wavkit

import (
	"go.uber.org/zap"

	"github.com/ik5/wavkit/audio"
)

// Option configures Generate and Process.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	genOpts []audio.GeneratorOption
}

// WithLogger sets the logger used for debug output. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSeed makes the noise waveform reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.genOpts = append(o.genOpts, audio.WithSeed(seed))
	}
}

func applyOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
