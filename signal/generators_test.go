// SPDX-License-Identifier: EPL-2.0

package signal_test

import (
	"math"
	"testing"

	"github.com/ik5/audsig/internal/audiotest"
	"github.com/ik5/audsig/signal"
)

func TestSilence(t *testing.T) {
	t.Parallel()

	s := signal.SilenceR(8, 1.0)
	audiotest.AssertShape(t, s, 8, 8, 1)
	audiotest.AssertSamples(t, s, make([]float64, 8), 0)

	def := signal.Silence(0.5)
	audiotest.AssertShape(t, def, signal.DefaultRate, signal.DefaultRate/2, 1)
}

func TestSine(t *testing.T) {
	t.Parallel()

	s := signal.SineR(8, 1.0, 1.0, 1.0, 0.0)
	audiotest.AssertShape(t, s, 8, 8, 1)

	want := make([]float64, 8)
	for i := range want {
		want[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}
	audiotest.AssertSamples(t, s, want, 1e-12)
}

func TestSine_AmplitudeAndPhase(t *testing.T) {
	t.Parallel()

	s := signal.SineR(8, 0.5, 0.5, 2.0, math.Pi/2)

	want := make([]float64, 4)
	for i := range want {
		want[i] = 0.5 * math.Cos(2*math.Pi*2*float64(i)/8)
	}
	audiotest.AssertSamples(t, s, want, 1e-12)
}

func TestSineVar(t *testing.T) {
	t.Parallel()

	// A constant frequency function gives the plain sine.
	constant := signal.SineVarR(64, 1, 0.7, func(signal.Time) float64 { return 3 }, 0.1)
	audiotest.AssertClose(t, constant, signal.SineR(64, 1, 0.7, 3, 0.1), 1e-12)

	// The frequency is applied instantaneously: sin(2π·f(t)·t).
	sweep := func(t signal.Time) float64 { return 1 + t }
	s := signal.SineVarR(16, 1, 1, sweep, 0)
	for i := range s.Len() {
		tt := signal.TimeOfSample(16, i)
		frame, _ := s.Sample(i)
		if want := math.Sin(2 * math.Pi * (1 + tt) * tt); math.Abs(frame[0]-want) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i, frame[0], want)
		}
	}
}

func TestPeriodicWaveforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gen  func(rate int, d, amplitude, frequency, phase float64) signal.Signal
		want []float64
	}{
		{
			name: "sawtooth",
			gen:  signal.SawtoothR,
			want: []float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75},
		},
		{
			name: "square",
			gen:  signal.SquareR,
			want: []float64{1, 1, 1, 1, 0, -1, -1, -1},
		},
		{
			name: "triangle",
			gen:  signal.TriangleR,
			want: []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := tt.gen(8, 1.0, 1.0, 1.0, 0.0)
			audiotest.AssertShape(t, s, 8, 8, 1)
			audiotest.AssertSamples(t, s, tt.want, 0)

			// Amplitude scales, two cycles repeat.
			scaled := tt.gen(8, 2.0, 0.5, 1.0, 0.0)
			want := make([]float64, 0, 16)
			for range 2 {
				for _, v := range tt.want {
					want = append(want, 0.5*v)
				}
			}
			audiotest.AssertSamples(t, scaled, want, 0)
		})
	}
}

func TestPeriodicWaveforms_NegativePhase(t *testing.T) {
	t.Parallel()

	// A phase of -1 cycle must not change periodic waveforms.
	gens := map[string]func(rate int, d, amplitude, frequency, phase float64) signal.Signal{
		"sawtooth": signal.SawtoothR,
		"square":   signal.SquareR,
		"triangle": signal.TriangleR,
	}

	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			audiotest.AssertClose(t, gen(8, 1, 1, 1, -1), gen(8, 1, 1, 1, 0), 1e-12)
		})
	}
}

func TestFromFunc(t *testing.T) {
	t.Parallel()

	f := func(t signal.Time) []float64 { return []float64{t, -t, 2 * t} }
	s := signal.FromFuncR(4, 1.0, 0, f)
	audiotest.AssertShape(t, s, 4, 4, 3)
	audiotest.AssertSamples(t, s, []float64{
		0, 0, 0,
		0.25, -0.25, 0.5,
		0.5, -0.5, 1,
		0.75, -0.75, 1.5,
	}, 0)

	// The period hint never changes the samples.
	audiotest.AssertClose(t, signal.FromFuncR(4, 1.0, 0.5, f), s, 0)
}

func TestFromFunc_ZeroDuration(t *testing.T) {
	t.Parallel()

	s := signal.FromFuncR(8, 0, 0, func(signal.Time) []float64 { return []float64{1, 1} })
	audiotest.AssertShape(t, s, 8, 0, 2)
}

func TestNoise_Reproducible(t *testing.T) {
	t.Parallel()

	a := signal.NoiseR(1000, 0.02, 1.0, 100, 42)
	b := signal.NoiseR(1000, 0.02, 1.0, 100, 42)

	audiotest.AssertShape(t, a, 1000, 20, 1)
	audiotest.AssertClose(t, a, b, 0)
}

func TestNoise_KnownSequence(t *testing.T) {
	t.Parallel()

	// xorshift32 seeded with 42, mapped to [-1, 1].
	want := []float64{-0.9947122149157134, 0.3206239550655299, -0.7780858263788013, 0.6987538043639514}

	s := signal.NoiseR(1000, 0.004, 1.0, 100, 42)
	audiotest.AssertSamples(t, s, want, 0)
}

func TestNoise_TilesOnePeriod(t *testing.T) {
	t.Parallel()

	const amplitude = 0.25
	s := signal.NoiseR(1000, 0.035, amplitude, 100, 7)
	got := s.Interleaved()
	if len(got) != 35 {
		t.Fatalf("got %d samples, want 35", len(got))
	}

	for i, v := range got {
		if v < -amplitude || v > amplitude {
			t.Errorf("sample %d = %v outside [-%v, %v]", i, v, amplitude, amplitude)
		}
		if i >= 10 && v != got[i-10] {
			t.Errorf("sample %d = %v, want copy of sample %d = %v", i, v, i-10, got[i-10])
		}
	}

	distinct := map[float64]bool{}
	for _, v := range got[:10] {
		distinct[v] = true
	}
	if len(distinct) < 9 {
		t.Errorf("first period has only %d distinct values", len(distinct))
	}
}

func TestNoise_SeedsDiffer(t *testing.T) {
	t.Parallel()

	a := signal.NoiseR(1000, 0.01, 1, 100, 1).Interleaved()
	b := signal.NoiseR(1000, 0.01, 1, 100, 2).Interleaved()
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("different seeds produced the same block")
	}

	// Seed 0 must not lock the generator at a constant.
	zero := signal.NoiseR(1000, 0.01, 1, 100, 0).Interleaved()
	if zero[0] == zero[1] {
		t.Errorf("seed 0 produced a constant block: %v", zero[:2])
	}
}

func TestNoise_PeriodShorterThanFrame(t *testing.T) {
	t.Parallel()

	s := signal.NoiseR(100, 0.1, 1, 1000, 3)
	audiotest.AssertSamples(t, s, make([]float64, 10), 0)
}

func TestKarplus(t *testing.T) {
	t.Parallel()

	const decay = 0.5
	noise := signal.NoiseR(1000, 0.02, 1, 100, 42)
	k := signal.KarplusR(1000, 0.02, 1, 100, decay, 42)
	audiotest.AssertShape(t, k, 1000, 20, 1)

	n := noise.Interleaved()
	got := k.Interleaved()
	for i := range got {
		want := n[i] * math.Pow(decay, signal.TimeOfSample(1000, i))
		if got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}

	// The envelope decays: a later copy of the block is quieter.
	if math.Abs(got[15]) >= math.Abs(got[5]) {
		t.Errorf("|sample 15| = %v not below |sample 5| = %v", got[15], got[5])
	}
}

func BenchmarkSine(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		_ = signal.Sine(1.0, 0.8, 440, 0)
	}
}
