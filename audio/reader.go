// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/audsig/signal"
)

const defaultBufSize = 4096

// Reader streams a Signal as a Source.
type Reader struct {
	rate     int
	channels int
	data     []float64
	pos      int // next sample, not frame
}

// NewReader returns a Source reading s from its first frame.
func NewReader(s signal.Signal) *Reader {
	return &Reader{
		rate:     s.Rate(),
		channels: s.Channels(),
		data:     s.Interleaved(),
	}
}

func (r *Reader) SampleRate() int { return r.rate }
func (r *Reader) Channels() int   { return r.channels }
func (r *Reader) BufSize() int    { return defaultBufSize }
func (r *Reader) Close() error    { return nil }

// ReadSamples copies the next len(dst) samples. len(dst) must be a multiple
// of Channels(). The call that drains the stream returns the final samples
// together with io.EOF.
func (r *Reader) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	n := min(len(dst), len(r.data)-r.pos)
	for i, v := range r.data[r.pos : r.pos+n] {
		dst[i] = float32(v)
	}
	r.pos += n

	if r.pos >= len(r.data) {
		return n, io.EOF
	}
	return n, nil
}

// Reset rewinds the reader to the first frame.
func (r *Reader) Reset() {
	r.pos = 0
}
