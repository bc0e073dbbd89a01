// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsig/signal"
	"github.com/ik5/audsig/utils"
)

func format(s signal.Signal) *goaudio.Format {
	return &goaudio.Format{NumChannels: s.Channels(), SampleRate: s.Rate()}
}

// ToFloatBuffer returns the samples of s as a go-audio FloatBuffer.
func ToFloatBuffer(s signal.Signal) *goaudio.FloatBuffer {
	return &goaudio.FloatBuffer{
		Format: format(s),
		Data:   s.Interleaved(),
	}
}

// ToIntBuffer quantizes s to signed PCM of bitDepth bits (8, 16, 24 or 32),
// clamping samples outside [-1, 1]. The result can be handed to go-audio
// encoders.
func ToIntBuffer(s signal.Signal, bitDepth int) (*goaudio.IntBuffer, error) {
	if err := checkBitDepth(bitDepth); err != nil {
		return nil, err
	}

	samples := s.Interleaved()
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = utils.FloatToPCM(v, bitDepth)
	}

	return &goaudio.IntBuffer{
		Format:         format(s),
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}

// FromBuffer converts a go-audio buffer into a Signal. Integer buffers are
// normalized by their SourceBitDepth, defaulting to 16 bits when unset.
func FromBuffer(buf goaudio.Buffer) (signal.Signal, error) {
	f := buf.PCMFormat()
	if f == nil {
		return signal.Signal{}, ErrNoFormat
	}

	var data []float64
	switch b := buf.(type) {
	case *goaudio.IntBuffer:
		depth := b.SourceBitDepth
		if depth == 0 {
			depth = 16
		}
		if err := checkBitDepth(depth); err != nil {
			return signal.Signal{}, err
		}
		data = make([]float64, len(b.Data))
		for i, v := range b.Data {
			data[i] = utils.PCMToFloat(v, depth)
		}
	case *goaudio.Float32Buffer:
		data = make([]float64, len(b.Data))
		for i, v := range b.Data {
			data[i] = float64(v)
		}
	default:
		data = buf.AsFloatBuffer().Data
	}

	s, err := signal.FromInterleaved(f.SampleRate, f.NumChannels, data)
	if err != nil {
		return signal.Signal{}, fmt.Errorf("%w", err)
	}
	return s, nil
}

func checkBitDepth(bitDepth int) error {
	switch bitDepth {
	case 8, 16, 24, 32:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
}
