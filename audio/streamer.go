// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/ik5/audsig/signal"
)

// Streamer plays a Signal through beep. Mono signals are sent to both
// sides; for wider signals the first two channels are used as left and
// right and the rest are ignored.
type Streamer struct {
	rate     int
	channels int
	length   int
	data     []float64
	pos      int // frame
}

var _ beep.StreamSeeker = (*Streamer)(nil)

// NewStreamer returns a beep.StreamSeeker positioned at the first frame of s.
func NewStreamer(s signal.Signal) *Streamer {
	return &Streamer{
		rate:     s.Rate(),
		channels: s.Channels(),
		length:   s.Len(),
		data:     s.Interleaved(),
	}
}

// Format describes the stream for beep.
func (s *Streamer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(s.rate),
		NumChannels: 2,
		Precision:   2,
	}
}

func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.length {
		return 0, false
	}

	for n < len(samples) && s.pos < s.length {
		base := s.pos * s.channels
		left := s.data[base]
		right := left
		if s.channels > 1 {
			right = s.data[base+1]
		}
		samples[n] = [2]float64{left, right}
		n++
		s.pos++
	}

	return n, true
}

func (s *Streamer) Err() error    { return nil }
func (s *Streamer) Len() int      { return s.length }
func (s *Streamer) Position() int { return s.pos }

func (s *Streamer) Seek(p int) error {
	if p < 0 || p > s.length {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSeekOutOfRange, p, s.length)
	}
	s.pos = p
	return nil
}

// FromStreamer drains up to maxFrames stereo frames from st into a Signal
// at rate Hz. It stops early when st is exhausted and reports st.Err().
func FromStreamer(st beep.Streamer, rate, maxFrames int) (signal.Signal, error) {
	buf := make([][2]float64, 512)
	data := make([]float64, 0, 2*min(max(maxFrames, 0), 1<<16))

	for remaining := maxFrames; remaining > 0; {
		n, ok := st.Stream(buf[:min(len(buf), remaining)])
		for _, frame := range buf[:n] {
			data = append(data, frame[0], frame[1])
		}
		remaining -= n
		if !ok || n == 0 {
			break
		}
	}

	if err := st.Err(); err != nil {
		return signal.Signal{}, fmt.Errorf("%w", err)
	}
	return signal.FromInterleaved(rate, 2, data)
}
