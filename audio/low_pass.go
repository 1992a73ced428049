// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// OnePole is a first-order IIR low-pass filter: y += a·(x − y).
type OnePole struct {
	a float64
	y float64
}

// NewOnePole derives the smoothing coefficient from the RC time constant
// of cutoffHz at sampleRate. The output state starts at zero.
func NewOnePole(cutoffHz float64, sampleRate int) *OnePole {
	dt := 1 / float64(sampleRate)
	rc := 1 / (2 * math.Pi * cutoffHz)
	return &OnePole{a: dt / (rc + dt)}
}

// Coefficient returns a.
func (f *OnePole) Coefficient() float64 { return f.a }

// Process filters one sample.
func (f *OnePole) Process(x float64) float64 {
	f.y += f.a * (x - f.y)
	return f.y
}

// Reset clears the filter state.
func (f *OnePole) Reset() { f.y = 0 }

// LowPassStage runs a Source through one OnePole filter.
type LowPassStage struct {
	src    Source
	filter *OnePole
}

func NewLowPassStage(src Source, cutoffHz float64) *LowPassStage {
	return &LowPassStage{
		src:    src,
		filter: NewOnePole(cutoffHz, src.SampleRate()),
	}
}

func (l *LowPassStage) SampleRate() int { return l.src.SampleRate() }
func (l *LowPassStage) Channels() int   { return l.src.Channels() }
func (l *LowPassStage) Close() error {
	if err := l.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (l *LowPassStage) ReadSamples(dst []float32) (int, error) {
	n, err := l.src.ReadSamples(dst)
	for i := range n {
		dst[i] = float32(l.filter.Process(float64(dst[i])))
	}
	return n, err
}
