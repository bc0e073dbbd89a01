// SPDX-License-Identifier: EPL-2.0

// Package audio connects signals to the rest of the Go audio ecosystem.
//
// It does not build sound; package signal does. This package streams a
// finished Signal to consumers and brings PCM from other libraries back in.
//
// # Source Interface
//
// Source is a pull-based stream of interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// NewReader exposes a Signal as a Source, and Collect turns any Source
// (a decoder from another package, for instance) into a Signal:
//
//	r := audio.NewReader(sig)
//	buf := make([]float32, 4096)
//	for {
//	    n, err := r.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
//	sig, err := audio.Collect(decodedSource)
//
// # go-audio Buffers
//
// ToFloatBuffer and ToIntBuffer produce github.com/go-audio/audio buffers,
// ready for go-audio encoders; FromBuffer accepts any go-audio Buffer:
//
//	buf, err := audio.ToIntBuffer(sig, 16)
//	enc := wav.NewEncoder(f, sig.Rate(), 16, sig.Channels(), 1)
//	enc.Write(buf)
//
// # beep Streamers
//
// NewStreamer wraps a Signal in a beep.StreamSeeker for playback with
// github.com/faiface/beep, and FromStreamer records a beep.Streamer into a
// stereo Signal.
//
// # Sample Format
//
// Samples are nominally in [-1.0, 1.0]. Nothing here clamps except the
// integer conversion in ToIntBuffer, which has to.
package audio
