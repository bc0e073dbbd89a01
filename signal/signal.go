// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"iter"

	"github.com/ik5/audsig/internal/frames"
)

// Signal is a finite multi-channel discrete-time waveform. The zero value is
// not a valid Signal; use a generator or one of the From constructors.
type Signal struct {
	rate     int
	length   int
	channels int
	frames   frames.Frames

	// origin is set when the Signal was sampled from a function, so that
	// Multiply can re-sample instead of copying frames.
	origin *origin
}

type origin struct {
	duration Time
	period   Time
	fn       func(Time) []float64
}

func newSignal(rate int, f frames.Frames) Signal {
	return Signal{
		rate:     rate,
		length:   f.Len(),
		channels: f.Channels(),
		frames:   f,
	}
}

// FromInterleaved builds a Signal from interleaved samples. The data is
// copied.
func FromInterleaved(rate, channels int, data []float64) (Signal, error) {
	if rate <= 0 || channels < 1 || len(data)%channels != 0 {
		return Signal{}, fmt.Errorf("%w: rate=%d channels=%d samples=%d",
			ErrInvalidLayout, rate, channels, len(data))
	}
	return newSignal(rate, frames.FromInterleaved(channels, data)), nil
}

// FromFrames builds a Signal of exactly length frames pulled from seq. seq
// may be infinite; it is not consumed past length frames. If it ends early
// the remainder is silence.
func FromFrames(rate, channels, length int, seq iter.Seq[[]float64]) Signal {
	return newSignal(rate, frames.FromSeq(length, channels, seq))
}

// Rate returns the sample rate in Hz.
func (s Signal) Rate() int { return s.rate }

// Len returns the number of frames.
func (s Signal) Len() int { return s.length }

// Channels returns the number of samples per frame.
func (s Signal) Channels() int { return s.channels }

// Duration returns Len()/Rate() seconds.
func (s Signal) Duration() Time {
	return Time(s.length) / Time(s.rate)
}

// Summary returns the shape of s.
func (s Signal) Summary() Summary {
	return Summary{Rate: s.rate, Length: s.length, Channels: s.channels}
}

func (s Signal) String() string {
	return fmt.Sprintf("Signal(%v)", s.Summary())
}

// Sample returns a copy of frame i.
func (s Signal) Sample(i int) ([]float64, error) {
	if i < 0 || i >= s.length {
		return nil, &IndexError{Index: i, Length: s.length}
	}
	return s.frames.At(i, nil), nil
}

// Channel returns the amplitudes of channel c, one per frame.
func (s Signal) Channel(c int) ([]float64, error) {
	if c < 0 || c >= s.channels {
		return nil, &IndexError{Index: c, Length: s.channels}
	}

	out := make([]float64, 0, s.length)
	for _, frame := range s.frames.All() {
		out = append(out, frame[c])
	}
	return out, nil
}

// Interleaved returns a copy of all samples, frame after frame.
func (s Signal) Interleaved() []float64 {
	return s.frames.Interleaved()
}

// Frames yields every frame with its index. The yielded slices must not be
// modified or retained.
func (s Signal) Frames() iter.Seq2[int, []float64] {
	return s.frames.All()
}
