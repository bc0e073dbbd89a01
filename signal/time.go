// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Time is a point or span in seconds.
type Time = float64

// DefaultRate is the sample rate used by the generators without an R suffix.
const DefaultRate = 44100

// SamplesForDuration returns the number of frames spanning d seconds at rate
// Hz, floor(rate*d).
func SamplesForDuration(rate int, d Time) int {
	return int(math.Floor(float64(rate) * d))
}

// TimeOfSample returns the time of frame i at rate Hz.
func TimeOfSample(rate, i int) Time {
	return Time(i) / Time(rate)
}

// FractionalPart returns t - floor(t), which is in [0, 1) for every finite t.
func FractionalPart(t Time) Time {
	return t - math.Floor(t)
}

// FloorTime returns the largest integral value not greater than t.
func FloorTime(t Time) Time {
	return math.Floor(t)
}
