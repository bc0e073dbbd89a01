// SPDX-License-Identifier: EPL-2.0

// Package audsig builds audio from an algebra of immutable signals.
//
// The algebra itself lives in the signal subpackage: generators produce
// signals from closed-form formulas or seeded noise, combinators join them
// in time or across channels, and modifiers shape their amplitude and
// stereo image. This package adds the last step of most programs, turning
// a finished signal into 16-bit PCM:
//
//	melody, _ := signal.SeqAll(
//		signal.KarplusR(8000, 0.4, 0.8, 440, 0.2, 1),
//		signal.KarplusR(8000, 0.4, 0.8, 330, 0.2, 2),
//	)
//	pcm16, rate, err := audsig.RenderMono16(melody, 8000, 4096)
//
// # Subpackages
//
//   - signal: the Signal type, generators, combinators and effects
//   - check: argument validation for generators and effects, with slog logging
//   - audio: adapters to audio.Source, go-audio buffers and beep streamers
//   - utils: interpolation and PCM conversion helpers
//
// # Performance
//
// Signals share their sample storage. Sequencing concatenates balanced
// trees of sample blocks, so long left-folded melodies stay cheap to build
// and index. A Signal is materialised once when it is rendered.
//
// See the individual subpackages for more detailed documentation.
package audsig
