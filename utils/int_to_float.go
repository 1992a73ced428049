// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Int16ToFloat32 decodes a signed 16-bit PCM code into the normalized domain.
//
// The mapping divides by 32767, so math.MinInt16 would land slightly below
// -1. It is pinned to exactly -1 instead, which means encoding it again
// yields -32767: the 16-bit range is asymmetric and that code has no twin.
func Int16ToFloat32(s int16) float32 {
	if s == math.MinInt16 {
		return -1
	}

	return float32(s) / PCM16Scale
}
