// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCM16Scale is the factor between the normalized float domain and int16 codes.
const PCM16Scale = 32767.0

// Float32ToInt16 encodes a normalized sample as a signed 16-bit PCM code.
//
// The input is clamped to [-1, 1], scaled by 32767 and rounded half away
// from zero. Truncation would bias every sample toward zero. The rounded
// value is clamped again before narrowing.
func Float32ToInt16(x float32) int16 {
	v := float64(x)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	} else if v != v {
		// NaN encodes as silence
		return 0
	}

	r := math.Round(v * PCM16Scale)
	if r > math.MaxInt16 {
		r = math.MaxInt16
	} else if r < math.MinInt16 {
		r = math.MinInt16
	}

	return int16(r)
}
