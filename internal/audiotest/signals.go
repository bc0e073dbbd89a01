// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds helpers shared by the tests of this module.
package audiotest

import (
	"math"
	"testing"

	"github.com/ik5/audsig/signal"
)

// Ramp returns a Signal whose sample for frame i, channel c is
// offset + i*channels + c. Every sample is distinct, which makes ordering
// mistakes visible.
func Ramp(t testing.TB, rate, length, channels int, offset float64) signal.Signal {
	t.Helper()

	data := make([]float64, length*channels)
	for i := range data {
		data[i] = offset + float64(i)
	}

	s, err := signal.FromInterleaved(rate, channels, data)
	if err != nil {
		t.Fatalf("signal.FromInterleaved() error = %v", err)
	}
	return s
}

// Mono builds a mono Signal from the given amplitudes.
func Mono(t testing.TB, rate int, samples ...float64) signal.Signal {
	t.Helper()

	s, err := signal.FromInterleaved(rate, 1, samples)
	if err != nil {
		t.Fatalf("signal.FromInterleaved() error = %v", err)
	}
	return s
}

// AssertShape fails the test if got does not have the given rate, length
// and channel count.
func AssertShape(t testing.TB, got signal.Signal, rate, length, channels int) {
	t.Helper()

	want := signal.Summary{Rate: rate, Length: length, Channels: channels}
	if got.Summary() != want {
		t.Fatalf("shape = (%v), want (%v)", got.Summary(), want)
	}
}

// AssertClose fails the test if got and want differ in shape or in any
// sample by more than tol. A tol of 0 demands bit-identical samples.
func AssertClose(t testing.TB, got, want signal.Signal, tol float64) {
	t.Helper()

	if got.Summary() != want.Summary() {
		t.Fatalf("shape = (%v), want (%v)", got.Summary(), want.Summary())
	}

	g, w := got.Interleaved(), want.Interleaved()
	for i := range g {
		if diff := math.Abs(g[i] - w[i]); diff > tol || (tol == 0 && g[i] != w[i]) {
			t.Fatalf("sample %d (frame %d, channel %d) = %v, want %v (tolerance %v)",
				i, i/want.Channels(), i%want.Channels(), g[i], w[i], tol)
		}
	}
}

// AssertSamples fails the test if the interleaved samples of got differ
// from want by more than tol.
func AssertSamples(t testing.TB, got signal.Signal, want []float64, tol float64) {
	t.Helper()

	g := got.Interleaved()
	if len(g) != len(want) {
		t.Fatalf("got %d samples, want %d", len(g), len(want))
	}
	for i := range g {
		if math.Abs(g[i]-want[i]) > tol {
			t.Fatalf("sample %d = %v, want %v (tolerance %v)", i, g[i], want[i], tol)
		}
	}
}
