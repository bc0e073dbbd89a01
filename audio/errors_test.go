// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidDstSize, "dst size must be multiple of channels"},
		{ErrNoFormat, "buffer has no PCM format"},
		{ErrUnsupportedBitDepth, "unsupported bit depth"},
		{ErrSeekOutOfRange, "seek position out of range"},
		{ErrInvalidSource, "source reports no channels or rate"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	// Test that wrapped error can be unwrapped
	wrappedErr := errors.Join(ErrInvalidDstSize, errors.New("additional context"))
	if !errors.Is(wrappedErr, ErrInvalidDstSize) {
		t.Error("errors.Is() failed for wrapped ErrInvalidDstSize")
	}

	if _, err := ToIntBuffer(signalOf(t, 1), 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("ToIntBuffer(12 bit) error = %v, want ErrUnsupportedBitDepth", err)
	}
}
