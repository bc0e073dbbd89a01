// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"github.com/ik5/audsig/internal/frames"
)

// Velocity multiplies every frame of s by f at that frame's time. f is
// expected to stay within [0, 1].
func Velocity(f func(Time) float64, s Signal) Signal {
	return newSignal(s.rate, frames.Map(s.frames, s.channels, func(i int, src, dst []float64) {
		g := f(TimeOfSample(s.rate, i))
		for c := range dst {
			dst[c] = src[c] * g
		}
	}))
}

// Scale multiplies every sample of s by k.
func Scale(k float64, s Signal) Signal {
	return Velocity(func(Time) float64 { return k }, s)
}

// MapFrames replaces every frame of s with f(frame). The channel count of
// the result is len(f) of the first frame; f must keep it constant. f must
// not retain or modify its argument.
func MapFrames(f func(frame []float64) []float64, s Signal) Signal {
	if s.length == 0 {
		return s
	}

	first := f(s.frames.At(0, nil))
	return newSignal(s.rate, frames.Map(s.frames, len(first), func(i int, src, dst []float64) {
		if i == 0 {
			copy(dst, first)
			return
		}
		copy(dst, f(src))
	}))
}

// Mute returns silence with the rate, length and channels of s.
func Mute(s Signal) Signal {
	return newSignal(s.rate, frames.Zero(s.length, s.channels))
}

// Left places s on the left: s stacked with a muted copy of itself.
func Left(s Signal) Signal { return par(s, Mute(s)) }

// Right places s on the right: a muted copy of s stacked with s.
func Right(s Signal) Signal { return par(Mute(s), s) }

// ParWithPan mixes a and b into a left/right pair whose balance follows
// p(t) in [-1, 1]:
//
//	left  = a*(1-p)/2 + b*(1+p)/2
//	right = a*(1+p)/2 + b*(1-p)/2
//
// p = -1 gives Par(a, b), p = 1 gives Par(b, a) and p = 0 puts the average
// of a and b on both sides.
func ParWithPan(p func(Time) float64, a, b Signal) (Signal, error) {
	if err := compatible("parWithPan", a, b, true); err != nil {
		return Signal{}, err
	}
	return parWithPan(p, a, b), nil
}

func parWithPan(p func(Time) float64, a, b Signal) Signal {
	near := func(t Time) float64 { return (1 - p(t)) / 2 }
	far := func(t Time) float64 { return (1 + p(t)) / 2 }

	left := add(Velocity(near, a), Velocity(far, b))
	right := add(Velocity(far, a), Velocity(near, b))
	return par(left, right)
}

// Pan moves s between left (p = -1) and right (p = 1). The result has
// twice the channels of s.
func Pan(p func(Time) float64, s Signal) Signal {
	return parWithPan(p, s, Mute(s))
}

// Echo sums n delayed copies of s, the i-th delayed by i*delay seconds and
// scaled by decay^i. The dry signal is not included.
//
// Echo with n = 0 returns s itself, not silence.
func Echo(n int, decay float64, delay Time, s Signal) Signal {
	if n <= 0 {
		return s
	}

	acc := Scale(decay, AddSilenceBeg(delay, s))
	for i := 2; i <= n; i++ {
		tap := Scale(math.Pow(decay, float64(i)), AddSilenceBeg(float64(i)*delay, s))
		acc = add(acc, tap)
	}
	return acc
}
