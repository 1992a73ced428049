// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// GainStage multiplies every sample by a constant factor. Results outside
// [-1, 1] are left for the PCM encoder to clip.
type GainStage struct {
	src    Source
	factor float32
}

func NewGainStage(src Source, factor float64) *GainStage {
	return &GainStage{src: src, factor: float32(factor)}
}

func (g *GainStage) SampleRate() int { return g.src.SampleRate() }
func (g *GainStage) Channels() int   { return g.src.Channels() }
func (g *GainStage) Close() error {
	if err := g.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (g *GainStage) ReadSamples(dst []float32) (int, error) {
	n, err := g.src.ReadSamples(dst)
	for i := range n {
		dst[i] *= g.factor
	}
	return n, err
}
