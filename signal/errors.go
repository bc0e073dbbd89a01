// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"fmt"
)

var (
	ErrRateMismatch    = errors.New("sample rates differ")
	ErrChannelMismatch = errors.New("channel counts differ")
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCount is returned by Loop, Multiply and Divide for counts below one.
	ErrInvalidCount = errors.New("count must be at least 1")

	// ErrInvalidLayout is returned when samples cannot form a Signal.
	ErrInvalidLayout = errors.New("invalid signal layout")
)

// Summary is the shape of a Signal without its samples.
type Summary struct {
	Rate     int
	Length   int
	Channels int
}

func (s Summary) String() string {
	return fmt.Sprintf("rate=%d length=%d channels=%d", s.Rate, s.Length, s.Channels)
}

// MismatchError reports two operands an operator cannot combine.
type MismatchError struct {
	Op    string
	Left  Summary
	Right Summary
	Err   error // ErrRateMismatch or ErrChannelMismatch
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %v: (%v) vs (%v)", e.Op, e.Err, e.Left, e.Right)
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}

// IndexError reports an access outside [0, Length).
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %d not in [0, %d)", ErrIndexOutOfRange, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// compatible checks that a and b share a rate and, when sameChannels is
// set, a channel count.
func compatible(op string, a, b Signal, sameChannels bool) error {
	if a.rate != b.rate {
		return &MismatchError{Op: op, Left: a.Summary(), Right: b.Summary(), Err: ErrRateMismatch}
	}
	if sameChannels && a.channels != b.channels {
		return &MismatchError{Op: op, Left: a.Summary(), Right: b.Summary(), Err: ErrChannelMismatch}
	}
	return nil
}

func invalidCount(op string, n int) error {
	return fmt.Errorf("%s: %w, got %d", op, ErrInvalidCount, n)
}
