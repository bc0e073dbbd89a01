// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"github.com/ik5/audsig/internal/frames"
)

// NoiseR returns periodic white noise. One period of
// SamplesForDuration(rate, 1/frequency) uniform samples in
// [-amplitude, amplitude] is drawn from a xorshift32 generator seeded with
// seed, and that block is repeated to fill d seconds.
//
// The block depends only on rate, frequency and seed, so the output is
// reproducible across runs and platforms. If the period is shorter than one
// frame the result is silence.
func NoiseR(rate int, d, amplitude, frequency float64, seed uint32) Signal {
	block := noiseBlock(SamplesForDuration(rate, 1/frequency), amplitude, seed)
	n := SamplesForDuration(rate, d)

	if len(block) == 0 {
		return newSignal(rate, frames.Zero(n, 1))
	}

	return newSignal(rate, frames.FromFunc(n, 1, func(i int, dst []float64) {
		dst[0] = block[i%len(block)]
	}))
}

// Noise is NoiseR at DefaultRate.
func Noise(d, amplitude, frequency float64, seed uint32) Signal {
	return NoiseR(DefaultRate, d, amplitude, frequency, seed)
}

// noiseBlock draws n samples from xorshift32. Seed 0 would lock the
// generator at 0 and is mapped to 1.
func noiseBlock(n int, amplitude float64, seed uint32) []float64 {
	state := seed
	if state == 0 {
		state = 1
	}

	block := make([]float64, max(n, 0))
	for i := range block {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		u := float64(state) / float64(math.MaxUint32)
		block[i] = amplitude * (2*u - 1)
	}

	return block
}

// KarplusR is a plucked-string tone: NoiseR shaped by the envelope decay^t.
// decay should be in (0, 1). This is a decaying noise burst, not a
// feedback comb filter.
func KarplusR(rate int, d, amplitude, frequency, decay float64, seed uint32) Signal {
	return Velocity(func(t Time) float64 {
		return math.Pow(decay, t)
	}, NoiseR(rate, d, amplitude, frequency, seed))
}

// Karplus is KarplusR at DefaultRate.
func Karplus(d, amplitude, frequency, decay float64, seed uint32) Signal {
	return KarplusR(DefaultRate, d, amplitude, frequency, decay, seed)
}
