// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"github.com/ik5/audsig/internal/frames"
	"github.com/ik5/audsig/utils"
)

// Resample converts s to rate Hz with Catmull-Rom cubic interpolation. The
// result has Len()*rate/Rate() frames, rounded down. Edge frames are
// duplicated where the interpolation window runs past either end. No
// anti-aliasing filter is applied, so band-limit s before downsampling by
// large factors. rate must be positive.
func Resample(s Signal, rate int) Signal {
	if rate == s.rate {
		return s
	}

	n := int(int64(s.length) * int64(rate) / int64(s.rate))
	if s.length == 0 || n == 0 {
		return newSignal(rate, frames.Zero(n, s.channels))
	}

	src := s.frames.Interleaved()
	ch := s.channels
	last := s.length - 1
	at := func(i, c int) float64 {
		i = min(max(i, 0), last)
		return src[i*ch+c]
	}

	ratio := float64(s.rate) / float64(rate)
	return newSignal(rate, frames.FromFunc(n, ch, func(j int, dst []float64) {
		// Position in source frames; interpolate between i and i+1.
		pos := float64(j) * ratio
		i := int(pos)
		alpha := pos - float64(i)

		for c := range dst {
			dst[c] = utils.CubicInterpolate(at(i-1, c), at(i, c), at(i+1, c), at(i+2, c), alpha)
		}
	}))
}

// Mono mixes s down to one channel by averaging its channels.
func Mono(s Signal) Signal {
	if s.channels == 1 {
		return s
	}

	inv := 1 / float64(s.channels)
	return newSignal(s.rate, frames.Map(s.frames, 1, func(_ int, src, dst []float64) {
		sum := 0.0
		for _, v := range src {
			sum += v
		}
		dst[0] = sum * inv
	}))
}
