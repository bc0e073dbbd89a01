// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrNoFormat            = errors.New("buffer has no PCM format")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrSeekOutOfRange      = errors.New("seek position out of range")
	ErrInvalidSource       = errors.New("source reports no channels or rate")
)
