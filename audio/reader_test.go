// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audsig/internal/audiotest"
	"github.com/ik5/audsig/signal"
)

func signalOf(t *testing.T, channels int) signal.Signal {
	t.Helper()
	return audiotest.Ramp(t, 8000, 10, channels, 0)
}

func TestReader_Properties(t *testing.T) {
	t.Parallel()

	r := NewReader(signalOf(t, 2))

	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
	if r.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want > 0", r.BufSize())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestReader_ReadsAllSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bufSize int
	}{
		{"exact fit", 20},
		{"larger than signal", 64},
		{"several reads", 4},
		{"uneven last read", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewReader(signalOf(t, 2))
			buf := make([]float32, tt.bufSize)
			var got []float32

			for {
				n, err := r.ReadSamples(buf)
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != 20 {
				t.Fatalf("read %d samples, want 20", len(got))
			}
			for i, v := range got {
				if v != float32(i) {
					t.Errorf("sample %d = %v, want %d", i, v, i)
				}
			}

			if n, err := r.ReadSamples(buf); n != 0 || err != io.EOF {
				t.Errorf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
			}
		})
	}
}

func TestReader_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewReader(signalOf(t, 2))
	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestReader_Reset(t *testing.T) {
	t.Parallel()

	r := NewReader(signalOf(t, 1))
	buf := make([]float32, 10)
	r.ReadSamples(buf)

	r.Reset()
	n, _ := r.ReadSamples(buf[:4])
	if n != 4 || buf[0] != 0 || buf[3] != 3 {
		t.Errorf("after Reset() read %d samples %v, want 4 from the start", n, buf[:n])
	}
}

func TestReader_EmptySignal(t *testing.T) {
	t.Parallel()

	r := NewReader(signal.SilenceR(8000, 0))
	if n, err := r.ReadSamples(make([]float32, 8)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}
