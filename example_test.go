// SPDX-License-Identifier: EPL-2.0

package audsig_test

import (
	"fmt"

	"github.com/ik5/audsig"
	"github.com/ik5/audsig/signal"
)

// Example_renderMono16 renders a stereo tone to 8kHz mono PCM.
func Example_renderMono16() {
	tone := signal.Pan(func(signal.Time) float64 { return 0.5 }, signal.SineR(44100, 1, 0.5, 440, 0))

	pcm16, rate, err := audsig.RenderMono16(tone, 8000, 4096)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Input: %v\n", tone)
	fmt.Printf("Output rate: %d Hz\n", rate)
	fmt.Printf("Output samples: %d\n", len(pcm16))
	fmt.Printf("Output duration: %.2f seconds\n", float64(len(pcm16))/float64(rate))
	// Output:
	// Input: Signal(rate=44100 length=44100 channels=2)
	// Output rate: 8000 Hz
	// Output samples: 8000
	// Output duration: 1.00 seconds
}

// Example_melody sequences plucked notes and renders them.
func Example_melody() {
	const rate = 8000

	notes := []float64{440, 494, 523, 587}
	first := signal.KarplusR(rate, 0.25, 0.8, notes[0], 0.1, 1)
	rest := make([]signal.Signal, 0, len(notes)-1)
	for i, f := range notes[1:] {
		rest = append(rest, signal.KarplusR(rate, 0.25, 0.8, f, 0.1, uint32(i+2)))
	}

	melody, err := signal.SeqAll(first, rest...)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	pcm16, _, err := audsig.RenderMono16(melody, rate, 1024)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("%d notes, %d samples, %.1f seconds\n", len(notes), len(pcm16), melody.Duration())
	// Output: 4 notes, 8000 samples, 1.0 seconds
}

// Example_bufferSizes shows that the buffer size only affects how the
// signal is drained, not the result.
func Example_bufferSizes() {
	tone := signal.SineR(44100, 1, 0.3, 220, 0)

	for _, size := range []int{1024, 4096, 16384} {
		pcm16, _, _ := audsig.RenderMono16(tone, 8000, size)
		fmt.Printf("Buffer size %5d: %d samples processed\n", size, len(pcm16))
	}
	// Output:
	// Buffer size  1024: 8000 samples processed
	// Buffer size  4096: 8000 samples processed
	// Buffer size 16384: 8000 samples processed
}
