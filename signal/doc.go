// SPDX-License-Identifier: EPL-2.0

// Package signal is an algebra of finite, discrete-time, multi-channel audio
// signals.
//
// A Signal is an immutable value: a sample rate, a frame count, a channel
// count and the frames themselves. Signals are produced by generators and
// transformed by combinators and modifiers; nothing ever mutates a Signal
// after it has been built, so Signals can be shared freely between
// goroutines.
//
// # Generators
//
// Every generator has a rate-explicit variant (suffix R) and a convenience
// variant that uses DefaultRate (44100 Hz):
//
//	a := signal.Sine(1.0, 0.8, 440, 0)            // 1s, 440Hz
//	b := signal.SawtoothR(8000, 0.5, 0.3, 220, 0)  // 0.5s at 8kHz
//	n := signal.Noise(0.2, 1.0, 100, 42)           // seeded periodic noise
//	k := signal.Karplus(2.0, 0.9, 196, 0.01, 7)    // plucked string
//
// # Combinators
//
// Binary combinators validate their operands and return an error on a rate
// or channel mismatch:
//
//	melody, err := signal.SeqAll(noteC, noteE, noteG) // one after another
//	chord, err := signal.Add(noteC, noteE)             // mixed
//	stereo, err := signal.Par(left, right)             // channels stacked
//
// Sequencing is cheapest when long signals are accumulated from the left:
// acc = Seq(acc, next). SeqAll and Loop fold that way.
//
// # Preconditions
//
// Amplitudes are nominally in [-1, 1], frequencies and decays positive and
// envelopes in [0, 1]. None of this is checked here; see package check for
// a validating wrapper.
//
// # Rewrite laws
//
// The following equivalences hold for every Signal built by this package:
//
//	Multiply(n, FromFuncR(r, d, p, f)) == FromFuncR(r, d, p, t -> n copies of f(t))
//	Velocity(f, Velocity(g, s))        == Velocity(t -> f(t)*g(t), s)   (within rounding)
//	Loop(n, Loop(m, s))                == Loop(n*m, s)
//	MapFrames(f, Loop(n, s))           == Loop(n, MapFrames(f, s))
//
// Multiply applies the first one: a Signal built from a sampling function
// remembers that function, and replicating it re-samples instead of copying.
package signal
