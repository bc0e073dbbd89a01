// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func FloatToInt16[T Float](x T) int16 {
	return int16(FloatToPCM(float64(x), 16))
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer of
// bitDepth bits. The positive maximum is used for both directions so the
// scale is symmetric.
func FloatToPCM(x float64, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	peak := float64(int64(1)<<(bitDepth-1) - 1)
	return int(x * peak)
}

// PCMToFloat maps a signed integer sample of bitDepth bits to [-1, 1).
func PCMToFloat(v, bitDepth int) float64 {
	return float64(v) / float64(int64(1)<<(bitDepth-1))
}
