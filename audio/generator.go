// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math/rand"
	"time"
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSeed makes noise reproducible. Without it noise is seeded from the clock.
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// Generator synthesizes a Request as a mono Source of fixed length.
type Generator struct {
	req   Request
	total int
	index int
	osc   *Oscillator
	rng   *rand.Rand
	next  func(n int) float64
}

// NewGenerator validates req and selects the waveform kernel once.
func NewGenerator(req Request, opts ...GeneratorOption) (*Generator, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		req:   req,
		total: req.NumSamples(),
		osc:   NewOscillator(req.SampleRate),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch req.Waveform {
	case Sine:
		g.next = g.sine
	case Noise:
		g.next = g.noise
	case Impulse:
		g.next = g.impulse
	case Silence:
		g.next = silence
	case Chirp:
		g.next = g.chirp
	}

	return g, nil
}

func (g *Generator) sine(int) float64 {
	return g.req.Amplitude * g.osc.Next(g.req.Frequency)
}

func (g *Generator) noise(int) float64 {
	return g.req.Amplitude * (2*g.rng.Float64() - 1)
}

func (g *Generator) impulse(n int) float64 {
	if n == 0 {
		return g.req.Amplitude
	}
	return 0
}

func silence(int) float64 { return 0 }

// chirp sweeps linearly from Frequency to EndFrequency over Duration. The
// phase advances by the instantaneous frequency, not its integral.
func (g *Generator) chirp(n int) float64 {
	t := float64(n) / float64(g.req.SampleRate)
	f := g.req.Frequency + (g.req.EndFrequency-g.req.Frequency)*(t/g.req.Duration)
	return g.req.Amplitude * g.osc.Next(f)
}

// Request returns the validated request.
func (g *Generator) Request() Request { return g.req }

// NumSamples is the total length of the stream.
func (g *Generator) NumSamples() int { return g.total }

func (g *Generator) SampleRate() int { return g.req.SampleRate }
func (g *Generator) Channels() int   { return 1 }
func (g *Generator) Close() error    { return nil }

// Next returns the next sample and false once the stream is exhausted.
func (g *Generator) Next() (float64, bool) {
	if g.index >= g.total {
		return 0, false
	}
	x := g.next(g.index)
	g.index++
	return x, true
}

func (g *Generator) ReadSamples(dst []float32) (int, error) {
	if g.index >= g.total {
		return 0, io.EOF
	}

	n := min(len(dst), g.total-g.index)
	for i := range n {
		x, _ := g.Next()
		dst[i] = float32(x)
	}

	return n, nil
}
