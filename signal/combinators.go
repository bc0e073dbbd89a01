// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"github.com/ik5/audsig/internal/frames"
)

// Add mixes a and b sample by sample. The result is as long as the longer
// operand; past the end of the shorter one its frames pass through
// unchanged.
func Add(a, b Signal) (Signal, error) {
	if err := compatible("add", a, b, true); err != nil {
		return Signal{}, err
	}
	return add(a, b), nil
}

func add(a, b Signal) Signal {
	n := max(a.length, b.length)
	return newSignal(a.rate, frames.Combine(padTo(a, n), padTo(b, n), a.channels,
		func(x, y, dst []float64) {
			for c := range dst {
				dst[c] = x[c] + y[c]
			}
		}))
}

// Par stacks the channels of a and b: frame i of the result is frame i of
// a followed by frame i of b. The shorter operand is padded with silence.
func Par(a, b Signal) (Signal, error) {
	if err := compatible("par", a, b, false); err != nil {
		return Signal{}, err
	}
	return par(a, b), nil
}

func par(a, b Signal) Signal {
	n := max(a.length, b.length)
	return newSignal(a.rate, frames.Combine(padTo(a, n), padTo(b, n), a.channels+b.channels,
		func(x, y, dst []float64) {
			copy(dst, x)
			copy(dst[len(x):], y)
		}))
}

// padTo returns the frames of s extended with silence to n frames.
func padTo(s Signal, n int) frames.Frames {
	if s.length >= n {
		return s.frames
	}
	return frames.Concat(s.frames, frames.Zero(n-s.length, s.channels))
}

// Seq plays b after a.
//
// The backing storage makes appending a short signal to a long one cheap,
// while prepending a short signal to a long one repeatedly is not. When
// building long sequences accumulate from the left, acc = Seq(acc, next),
// or use SeqAll.
func Seq(a, b Signal) (Signal, error) {
	if err := compatible("seq", a, b, true); err != nil {
		return Signal{}, err
	}
	return seq(a, b), nil
}

func seq(a, b Signal) Signal {
	return newSignal(a.rate, frames.Concat(a.frames, b.frames))
}

// SeqAll sequences first and rest in order, folding from the left.
func SeqAll(first Signal, rest ...Signal) (Signal, error) {
	acc := first
	for _, s := range rest {
		if err := compatible("seq", acc, s, true); err != nil {
			return Signal{}, err
		}
		acc = seq(acc, s)
	}
	return acc, nil
}

// Multiply stacks n copies of s, giving n*Channels() channels with
// identical content. It does not mix.
func Multiply(n int, s Signal) (Signal, error) {
	if n < 1 {
		return Signal{}, invalidCount("multiply", n)
	}
	return multiply(n, s), nil
}

func multiply(n int, s Signal) Signal {
	if n == 1 {
		return s
	}

	if o := s.origin; o != nil {
		return FromFuncR(s.rate, o.duration, o.period, func(t Time) []float64 {
			frame := o.fn(t)
			out := make([]float64, 0, n*len(frame))
			for range n {
				out = append(out, frame...)
			}
			return out
		})
	}

	ch := s.channels
	return newSignal(s.rate, frames.Map(s.frames, n*ch, func(_ int, src, dst []float64) {
		for k := range n {
			copy(dst[k*ch:(k+1)*ch], src)
		}
	}))
}

// Divide is Multiply followed by scaling every channel by 1/n, so the sum
// of the copies has the amplitude of s.
func Divide(n int, s Signal) (Signal, error) {
	m, err := Multiply(n, s)
	if err != nil {
		return Signal{}, invalidCount("divide", n)
	}
	return Scale(1/float64(n), m), nil
}

// AddSilenceBeg prepends d seconds of silence to s.
func AddSilenceBeg(d Time, s Signal) Signal {
	z := frames.Zero(SamplesForDuration(s.rate, d), s.channels)
	return newSignal(s.rate, frames.Concat(z, s.frames))
}

// AddSilenceEnd appends d seconds of silence to s.
func AddSilenceEnd(d Time, s Signal) Signal {
	z := frames.Zero(SamplesForDuration(s.rate, d), s.channels)
	return newSignal(s.rate, frames.Concat(s.frames, z))
}

// AddAt overlays a onto b starting t seconds into b.
func AddAt(t Time, a, b Signal) (Signal, error) {
	if err := compatible("addAt", a, b, true); err != nil {
		return Signal{}, err
	}
	return add(AddSilenceBeg(t, a), b), nil
}

// Loop plays s n times in a row. n must be at least 1.
func Loop(n int, s Signal) (Signal, error) {
	if n < 1 {
		return Signal{}, invalidCount("loop", n)
	}

	acc := s
	for range n - 1 {
		acc = seq(acc, s)
	}
	return acc, nil
}
