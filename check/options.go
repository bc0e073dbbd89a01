// SPDX-License-Identifier: EPL-2.0

package check

import "log/slog"

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sends rejected and accepted calls to l.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = l
	}
}

// WithAmplitudeLimit accepts amplitudes in [-limit, limit]. The default is 1.
func WithAmplitudeLimit(limit float64) Option {
	return func(v *Validator) {
		v.amplitudeLimit = limit
	}
}

// WithStrictNyquist rejects frequencies above half the sample rate.
func WithStrictNyquist() Option {
	return func(v *Validator) {
		v.nyquist = true
	}
}
