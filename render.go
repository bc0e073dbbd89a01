// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/signal"
	"github.com/ik5/audsig/utils"
)

var (
	ErrInvalidRate       = errors.New("target sample rate must be positive")
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
	ErrNoChannels        = errors.New("signal has no channels")
)

// RenderMono16 renders s as mono 16-bit PCM at targetRate Hz.
//
// The pipeline is:
//  1. signal.Resample to targetRate (cubic interpolation)
//  2. signal.Mono (channel average)
//  3. audio.Reader, drained bufferSize samples at a time
//  4. clamping to [-1, 1] and scaling to int16
//
// It returns the samples and the output rate, which is always targetRate.
func RenderMono16(s signal.Signal, targetRate, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidRate, targetRate)
	}
	if bufferSize <= 0 {
		return nil, targetRate, fmt.Errorf("%w: got %d", ErrInvalidBufferSize, bufferSize)
	}
	if s.Channels() == 0 {
		return nil, targetRate, ErrNoChannels
	}

	mono := signal.Mono(signal.Resample(s, targetRate))
	r := audio.NewReader(mono)
	defer r.Close()

	pcm16 := make([]int16, 0, mono.Len())
	buf := make([]float32, bufferSize)

	for {
		n, err := r.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.FloatToInt16(x))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("render: %w", err)
		}
	}

	return pcm16, targetRate, nil
}
