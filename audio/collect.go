// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsig/signal"
)

// Collect reads src until io.EOF and returns its content as a Signal. src
// is not closed. A trailing partial frame is dropped.
func Collect(src Source) (signal.Signal, error) {
	channels := src.Channels()
	rate := src.SampleRate()
	if channels < 1 || rate < 1 {
		return signal.Signal{}, fmt.Errorf("%w: rate=%d channels=%d", ErrInvalidSource, rate, channels)
	}

	size := max(src.BufSize(), channels) / channels * channels
	buf := make([]float32, size)
	var data []float64

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			data = append(data, float64(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return signal.Signal{}, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// A source that neither advances nor ends would spin forever.
			return signal.Signal{}, fmt.Errorf("%w", io.ErrNoProgress)
		}
	}

	data = data[:len(data)/channels*channels]
	return signal.FromInterleaved(rate, channels, data)
}
