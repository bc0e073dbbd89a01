// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"github.com/ik5/audsig/internal/frames"
)

// SilenceR returns a mono Signal of zeros lasting d seconds.
func SilenceR(rate int, d Time) Signal {
	return newSignal(rate, frames.Zero(SamplesForDuration(rate, d), 1))
}

// Silence is SilenceR at DefaultRate.
func Silence(d Time) Signal { return SilenceR(DefaultRate, d) }

// FromFuncR samples f at every frame time in [0, d). The channel count is
// len(f(0)); f must return that many values for every t.
//
// period is the fundamental period of f if known, or 0. It does not change
// the samples.
func FromFuncR(rate int, d, period Time, f func(Time) []float64) Signal {
	first := f(0)
	channels := len(first)

	fr := frames.FromFunc(SamplesForDuration(rate, d), channels, func(i int, dst []float64) {
		if i == 0 {
			copy(dst, first)
			return
		}
		copy(dst, f(TimeOfSample(rate, i)))
	})

	s := newSignal(rate, fr)
	s.origin = &origin{duration: d, period: period, fn: f}
	return s
}

// FromFunc is FromFuncR at DefaultRate.
func FromFunc(d, period Time, f func(Time) []float64) Signal {
	return FromFuncR(DefaultRate, d, period, f)
}

// fromMono samples a scalar function without allocating a frame per sample.
// The result carries the same origin FromFuncR would give it.
func fromMono(rate int, d, period Time, f func(Time) float64) Signal {
	fr := frames.FromFunc(SamplesForDuration(rate, d), 1, func(i int, dst []float64) {
		dst[0] = f(TimeOfSample(rate, i))
	})

	s := newSignal(rate, fr)
	s.origin = &origin{
		duration: d,
		period:   period,
		fn:       func(t Time) []float64 { return []float64{f(t)} },
	}
	return s
}

// SineR is amplitude*sin(2π·frequency·t + phase).
func SineR(rate int, d, amplitude, frequency, phase float64) Signal {
	return fromMono(rate, d, 1/frequency, func(t Time) float64 {
		return amplitude * math.Sin(2*math.Pi*frequency*t+phase)
	})
}

// Sine is SineR at DefaultRate.
func Sine(d, amplitude, frequency, phase float64) Signal {
	return SineR(DefaultRate, d, amplitude, frequency, phase)
}

// SineVarR is amplitude*sin(2π·frequency(t)·t + phase).
//
// The frequency is applied as an instantaneous rate, not integrated into the
// phase, so the pitch is only accurate while frequency varies slowly. Fast
// sweeps overshoot their target.
func SineVarR(rate int, d, amplitude float64, frequency func(Time) float64, phase float64) Signal {
	return fromMono(rate, d, 0, func(t Time) float64 {
		return amplitude * math.Sin(2*math.Pi*frequency(t)*t+phase)
	})
}

// SineVar is SineVarR at DefaultRate.
func SineVar(d, amplitude float64, frequency func(Time) float64, phase float64) Signal {
	return SineVarR(DefaultRate, d, amplitude, frequency, phase)
}

// SawtoothR rises from -amplitude to amplitude once per period. phase is in
// cycles.
func SawtoothR(rate int, d, amplitude, frequency, phase float64) Signal {
	return fromMono(rate, d, 1/frequency, func(t Time) float64 {
		return amplitude * (2*FractionalPart(frequency*t+phase) - 1)
	})
}

// Sawtooth is SawtoothR at DefaultRate.
func Sawtooth(d, amplitude, frequency, phase float64) Signal {
	return SawtoothR(DefaultRate, d, amplitude, frequency, phase)
}

// SquareR is amplitude for the first half of each cycle and -amplitude for
// the second. Exactly at the mid-cycle transition the value is 0. phase is
// in cycles.
func SquareR(rate int, d, amplitude, frequency, phase float64) Signal {
	return fromMono(rate, d, 1/frequency, func(t Time) float64 {
		return amplitude * sign(0.5-FractionalPart(frequency*t+phase))
	})
}

// Square is SquareR at DefaultRate.
func Square(d, amplitude, frequency, phase float64) Signal {
	return SquareR(DefaultRate, d, amplitude, frequency, phase)
}

// TriangleR starts at 0, peaks at amplitude a quarter cycle in and bottoms
// out at -amplitude three quarters in. phase is in cycles.
func TriangleR(rate int, d, amplitude, frequency, phase float64) Signal {
	return fromMono(rate, d, 1/frequency, func(t Time) float64 {
		s := frequency*t + phase
		return amplitude * (1 - 4*math.Abs(FloorTime(s+0.25)-s+0.25))
	})
}

// Triangle is TriangleR at DefaultRate.
func Triangle(d, amplitude, frequency, phase float64) Signal {
	return TriangleR(DefaultRate, d, amplitude, frequency, phase)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}
