// SPDX-License-Identifier: EPL-2.0

package check

import (
	"errors"
	"fmt"
)

var (
	ErrRate           = errors.New("sample rate must be positive")
	ErrAmplitudeRange = errors.New("amplitude out of range")
	ErrFrequency      = errors.New("frequency out of range")
	ErrDuration       = errors.New("duration must not be negative")
	ErrDecayRange     = errors.New("decay must be in (0, 1)")
	ErrDelay          = errors.New("delay must be positive")
	ErrCount          = errors.New("count too small")
	ErrVelocityRange  = errors.New("envelope value outside [0, 1]")
)

// PreconditionError reports one rejected argument.
type PreconditionError struct {
	Op    string
	Param string
	Value float64
	Err   error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %v", e.Op, e.Param, e.Value, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}
