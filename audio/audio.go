// SPDX-License-Identifier: EPL-2.0

package audio

// Source is a pull-based stream of interleaved float32 PCM.
type Source interface {
	// SampleRate in Hz.
	SampleRate() int
	// Channels per frame.
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns how many
	// values (not frames) it wrote. After the last sample it returns
	// io.EOF, possibly together with a final n > 0.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the preferred length of dst.
	BufSize() int

	Close() error
}

var _ Source = (*Reader)(nil)
