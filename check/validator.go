// SPDX-License-Identifier: EPL-2.0

// Package check validates the numeric preconditions that package signal
// leaves unchecked.
//
// Package signal never rejects an odd amplitude, a negative frequency or a
// decay above one; it computes whatever the formulas give. A Validator
// rejects such arguments before delegating, for callers that prefer an
// early error to a strange sound. Nothing is ever clamped.
//
//	v := check.New(check.WithLogger(logger), check.WithStrictNyquist())
//	tone, err := v.Sine(8000, 1, 0.5, 5000, 0) // err: frequency above 4000 Hz
package check

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/ik5/audsig/signal"
)

// Validator wraps the generators and effects of package signal with
// argument checks. A Validator is safe for concurrent use.
type Validator struct {
	logger         *slog.Logger
	amplitudeLimit float64
	nyquist        bool
}

// New returns a Validator that accepts amplitudes in [-1, 1] and logs
// nowhere unless configured otherwise.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger:         slog.New(slog.DiscardHandler),
		amplitudeLimit: 1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) report(op string, errs ...error) error {
	err := errors.Join(errs...)
	if err == nil {
		v.logger.Debug("preconditions hold", "op", op)
		return nil
	}

	for _, e := range errs {
		var pe *PreconditionError
		if errors.As(e, &pe) {
			v.logger.Warn("precondition violated",
				"op", op, "param", pe.Param, "value", pe.Value, "err", pe.Err)
		}
	}
	return err
}

func fail(op, param string, value float64, err error) error {
	return &PreconditionError{Op: op, Param: param, Value: value, Err: err}
}

func (v *Validator) rate(op string, rate int) error {
	if rate <= 0 {
		return fail(op, "rate", float64(rate), ErrRate)
	}
	return nil
}

func (v *Validator) duration(op string, d signal.Time) error {
	if !(d >= 0) || math.IsInf(d, 1) {
		return fail(op, "duration", d, ErrDuration)
	}
	return nil
}

func (v *Validator) amplitude(op string, a float64) error {
	if !(math.Abs(a) <= v.amplitudeLimit) {
		return fail(op, "amplitude", a, ErrAmplitudeRange)
	}
	return nil
}

func (v *Validator) frequency(op, param string, rate int, f float64) error {
	if !(f > 0) || math.IsInf(f, 1) {
		return fail(op, param, f, ErrFrequency)
	}
	if v.nyquist && f > float64(rate)/2 {
		return fail(op, param, f, fmt.Errorf("%w: above %v Hz", ErrFrequency, float64(rate)/2))
	}
	return nil
}

func (v *Validator) decay(op string, d float64) error {
	if !(d > 0 && d < 1) {
		return fail(op, "decay", d, ErrDecayRange)
	}
	return nil
}

func (v *Validator) delay(op string, d signal.Time) error {
	if !(d > 0) {
		return fail(op, "delay", d, ErrDelay)
	}
	return nil
}

func (v *Validator) count(op string, n, least int) error {
	if n < least {
		return fail(op, "n", float64(n), fmt.Errorf("%w: want at least %d", ErrCount, least))
	}
	return nil
}

// sampled checks f at every frame time of a rate Hz signal of length frames.
func sampled(op, param string, rate, length int, f func(signal.Time) float64, ok func(float64) bool, err error) error {
	for i := range length {
		t := signal.TimeOfSample(rate, i)
		if g := f(t); !ok(g) {
			return fail(op, fmt.Sprintf("%s(%v)", param, t), g, err)
		}
	}
	return nil
}

type waveform func(rate int, d, amplitude, frequency, phase float64) signal.Signal

func (v *Validator) periodic(op string, gen waveform, rate int, d, amplitude, frequency, phase float64) (signal.Signal, error) {
	err := v.report(op,
		v.rate(op, rate),
		v.duration(op, d),
		v.amplitude(op, amplitude),
		v.frequency(op, "frequency", rate, frequency),
	)
	if err != nil {
		return signal.Signal{}, err
	}
	return gen(rate, d, amplitude, frequency, phase), nil
}

// Silence validates and returns signal.SilenceR.
func (v *Validator) Silence(rate int, d signal.Time) (signal.Signal, error) {
	if err := v.report("silence", v.rate("silence", rate), v.duration("silence", d)); err != nil {
		return signal.Signal{}, err
	}
	return signal.SilenceR(rate, d), nil
}

// Sine validates and returns signal.SineR.
func (v *Validator) Sine(rate int, d, amplitude, frequency, phase float64) (signal.Signal, error) {
	return v.periodic("sine", signal.SineR, rate, d, amplitude, frequency, phase)
}

// Sawtooth validates and returns signal.SawtoothR.
func (v *Validator) Sawtooth(rate int, d, amplitude, frequency, phase float64) (signal.Signal, error) {
	return v.periodic("sawtooth", signal.SawtoothR, rate, d, amplitude, frequency, phase)
}

// Square validates and returns signal.SquareR.
func (v *Validator) Square(rate int, d, amplitude, frequency, phase float64) (signal.Signal, error) {
	return v.periodic("square", signal.SquareR, rate, d, amplitude, frequency, phase)
}

// Triangle validates and returns signal.TriangleR.
func (v *Validator) Triangle(rate int, d, amplitude, frequency, phase float64) (signal.Signal, error) {
	return v.periodic("triangle", signal.TriangleR, rate, d, amplitude, frequency, phase)
}

// SineVar validates and returns signal.SineVarR. frequency is evaluated at
// every frame time.
func (v *Validator) SineVar(rate int, d, amplitude float64, frequency func(signal.Time) float64, phase float64) (signal.Signal, error) {
	const op = "sineVar"

	errs := []error{v.rate(op, rate), v.duration(op, d), v.amplitude(op, amplitude)}
	if errs[0] == nil && errs[1] == nil {
		errs = append(errs, sampled(op, "frequency", rate, signal.SamplesForDuration(rate, d), frequency,
			func(f float64) bool { return v.frequency(op, "frequency", rate, f) == nil }, ErrFrequency))
	}

	if err := v.report(op, errs...); err != nil {
		return signal.Signal{}, err
	}
	return signal.SineVarR(rate, d, amplitude, frequency, phase), nil
}

// Noise validates and returns signal.NoiseR.
func (v *Validator) Noise(rate int, d, amplitude, frequency float64, seed uint32) (signal.Signal, error) {
	const op = "noise"

	err := v.report(op,
		v.rate(op, rate),
		v.duration(op, d),
		v.amplitude(op, amplitude),
		v.frequency(op, "frequency", rate, frequency),
	)
	if err != nil {
		return signal.Signal{}, err
	}
	return signal.NoiseR(rate, d, amplitude, frequency, seed), nil
}

// Karplus validates and returns signal.KarplusR.
func (v *Validator) Karplus(rate int, d, amplitude, frequency, decay float64, seed uint32) (signal.Signal, error) {
	const op = "karplus"

	err := v.report(op,
		v.rate(op, rate),
		v.duration(op, d),
		v.amplitude(op, amplitude),
		v.frequency(op, "frequency", rate, frequency),
		v.decay(op, decay),
	)
	if err != nil {
		return signal.Signal{}, err
	}
	return signal.KarplusR(rate, d, amplitude, frequency, decay, seed), nil
}

// Velocity validates that f stays in [0, 1] at every frame of s and
// returns signal.Velocity.
func (v *Validator) Velocity(f func(signal.Time) float64, s signal.Signal) (signal.Signal, error) {
	const op = "velocity"

	inRange := func(g float64) bool { return g >= 0 && g <= 1 }
	if err := v.report(op, sampled(op, "f", s.Rate(), s.Len(), f, inRange, ErrVelocityRange)); err != nil {
		return signal.Signal{}, err
	}
	return signal.Velocity(f, s), nil
}

// Loop validates n >= 1 and returns signal.Loop.
func (v *Validator) Loop(n int, s signal.Signal) (signal.Signal, error) {
	if err := v.report("loop", v.count("loop", n, 1)); err != nil {
		return signal.Signal{}, err
	}
	return signal.Loop(n, s)
}

// Multiply validates n >= 1 and returns signal.Multiply.
func (v *Validator) Multiply(n int, s signal.Signal) (signal.Signal, error) {
	if err := v.report("multiply", v.count("multiply", n, 1)); err != nil {
		return signal.Signal{}, err
	}
	return signal.Multiply(n, s)
}

// Divide validates n >= 1 and returns signal.Divide.
func (v *Validator) Divide(n int, s signal.Signal) (signal.Signal, error) {
	if err := v.report("divide", v.count("divide", n, 1)); err != nil {
		return signal.Signal{}, err
	}
	return signal.Divide(n, s)
}

// Echo validates n >= 0, 0 < decay < 1 and delay > 0 and returns
// signal.Echo.
func (v *Validator) Echo(n int, decay float64, delay signal.Time, s signal.Signal) (signal.Signal, error) {
	const op = "echo"

	if err := v.report(op, v.count(op, n, 0), v.decay(op, decay), v.delay(op, delay)); err != nil {
		return signal.Signal{}, err
	}
	return signal.Echo(n, decay, delay, s), nil
}

// Must returns s, or panics if err is non-nil. It is meant for signals
// built from constant arguments.
func Must(s signal.Signal, err error) signal.Signal {
	if err != nil {
		panic(err)
	}
	return s
}
