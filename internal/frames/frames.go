// SPDX-License-Identifier: EPL-2.0

// Package frames is the bulk sample storage behind signal.Signal.
//
// A Frames value is an immutable, ordered sequence of frames that all share
// the same channel count. Samples are kept interleaved in chunks of at most
// LeafFrames frames, and the chunks are organised as a height-balanced rope,
// so concatenation never copies more than one chunk.
//
// # Performance contract
//
// Concat(a, b) allocates O(|height(a) - height(b)|) nodes. Folding many small
// pieces from the left, ((a·b)·c)·d..., is the cheap path: each step walks
// the right spine of the accumulator only, and adjacent small chunks are
// coalesced into a single chunk on the way.
//
// Frames values are safe for concurrent use; nothing is ever mutated after
// construction.
package frames

import "iter"

// LeafFrames is the maximum number of frames held by a single chunk.
const LeafFrames = 4096

type node struct {
	left, right *node
	// data is only set on leaves, interleaved, len(data) == length*channels.
	data   []float64
	length int
	height int
}

func (n *node) leaf() bool { return n.left == nil }

func newLeaf(data []float64, channels int) *node {
	return &node{data: data, length: len(data) / channels}
}

func newBranch(l, r *node) *node {
	return &node{
		left:   l,
		right:  r,
		length: l.length + r.length,
		height: max(l.height, r.height) + 1,
	}
}

func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

// Frames is an immutable sequence of frames. The zero value is an empty
// sequence with no channels.
type Frames struct {
	root     *node
	channels int
}

// Len returns the number of frames.
func (f Frames) Len() int {
	if f.root == nil {
		return 0
	}
	return f.root.length
}

// Channels returns the number of samples per frame.
func (f Frames) Channels() int { return f.channels }

// Height returns the height of the underlying rope. An empty or single
// chunk sequence has height 0.
func (f Frames) Height() int {
	if f.root == nil {
		return 0
	}
	return f.root.height
}

// Zero returns length frames of silence.
func Zero(length, channels int) Frames {
	return fromInterleaved(channels, make([]float64, max(length, 0)*channels))
}

// FromFunc builds length frames, calling fill once per frame in index
// order. dst is zeroed and has exactly channels elements.
func FromFunc(length, channels int, fill func(i int, dst []float64)) Frames {
	length = max(length, 0)
	data := make([]float64, length*channels)
	for i := range length {
		fill(i, data[i*channels:(i+1)*channels:(i+1)*channels])
	}
	return fromInterleaved(channels, data)
}

// FromSeq pulls at most length frames from seq. Frames longer than channels
// are truncated, shorter ones zero-padded. If seq ends early the remainder
// is silence.
func FromSeq(length, channels int, seq iter.Seq[[]float64]) Frames {
	length = max(length, 0)
	data := make([]float64, length*channels)
	if length == 0 {
		return fromInterleaved(channels, data)
	}

	i := 0
	for frame := range seq {
		copy(data[i*channels:(i+1)*channels], frame)
		i++
		if i == length {
			break
		}
	}

	return fromInterleaved(channels, data)
}

// FromInterleaved copies data into a new sequence. len(data) must be a
// multiple of channels; a trailing partial frame is dropped.
func FromInterleaved(channels int, data []float64) Frames {
	n := len(data) / channels * channels
	owned := make([]float64, n)
	copy(owned, data[:n])
	return fromInterleaved(channels, owned)
}

// fromInterleaved takes ownership of data.
func fromInterleaved(channels int, data []float64) Frames {
	if len(data) == 0 {
		return Frames{channels: channels}
	}

	chunk := LeafFrames * channels
	leaves := make([]*node, 0, (len(data)+chunk-1)/chunk)
	for start := 0; start < len(data); start += chunk {
		end := min(start+chunk, len(data))
		leaves = append(leaves, newLeaf(data[start:end:end], channels))
	}

	return Frames{root: balanced(leaves), channels: channels}
}

func balanced(leaves []*node) *node {
	if len(leaves) == 1 {
		return leaves[0]
	}
	mid := len(leaves) / 2
	return newBranch(balanced(leaves[:mid]), balanced(leaves[mid:]))
}

// Concat returns a followed by b. Both must have the same channel count
// unless one of them is empty.
func Concat(a, b Frames) Frames {
	switch {
	case a.root == nil:
		if b.root == nil && b.channels == 0 {
			return a
		}
		return b
	case b.root == nil:
		return a
	case a.channels != b.channels:
		panic("frames: concat of mismatched channel counts")
	}

	return Frames{root: join(a.root, b.root, a.channels), channels: a.channels}
}

func join(l, r *node, channels int) *node {
	if l.leaf() && r.leaf() && l.length+r.length <= LeafFrames {
		data := make([]float64, 0, len(l.data)+len(r.data))
		data = append(data, l.data...)
		data = append(data, r.data...)
		return newLeaf(data, channels)
	}

	hl, hr := l.height, r.height
	switch {
	case hl > hr+1:
		return rebalance(l.left, join(l.right, r, channels))
	case hr > hl+1:
		return rebalance(join(l, r.left, channels), r.right)
	}

	return newBranch(l, r)
}

// rebalance joins two subtrees whose heights differ by at most two.
func rebalance(a, b *node) *node {
	ha, hb := height(a), height(b)

	if ha > hb+1 {
		if height(a.left) >= height(a.right) {
			return newBranch(a.left, newBranch(a.right, b))
		}
		x := a.right
		return newBranch(newBranch(a.left, x.left), newBranch(x.right, b))
	}

	if hb > ha+1 {
		if height(b.right) >= height(b.left) {
			return newBranch(newBranch(a, b.left), b.right)
		}
		y := b.left
		return newBranch(newBranch(a, y.left), newBranch(y.right, b.right))
	}

	return newBranch(a, b)
}

// At copies frame i into dst, growing it if needed, and returns it.
// i must be in [0, Len()).
func (f Frames) At(i int, dst []float64) []float64 {
	if cap(dst) < f.channels {
		dst = make([]float64, f.channels)
	}
	dst = dst[:f.channels]

	n := f.root
	for !n.leaf() {
		if i < n.left.length {
			n = n.left
		} else {
			i -= n.left.length
			n = n.right
		}
	}

	copy(dst, n.data[i*f.channels:(i+1)*f.channels])
	return dst
}

// All yields every frame in order. The yielded slice aliases internal
// storage and must not be modified or retained.
func (f Frames) All() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		if f.root == nil {
			return
		}
		i := 0
		var walk func(n *node) bool
		walk = func(n *node) bool {
			if !n.leaf() {
				return walk(n.left) && walk(n.right)
			}
			for j := range n.length {
				if !yield(i, n.data[j*f.channels:(j+1)*f.channels:(j+1)*f.channels]) {
					return false
				}
				i++
			}
			return true
		}
		walk(f.root)
	}
}

// Interleaved returns a fresh copy of all samples, frame after frame.
func (f Frames) Interleaved() []float64 {
	out := make([]float64, 0, f.Len()*f.channels)
	if f.root == nil {
		return out
	}

	var walk func(n *node)
	walk = func(n *node) {
		if n.leaf() {
			out = append(out, n.data...)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(f.root)

	return out
}

// Map builds a sequence of the same length whose frame i is produced by op
// from frame i of a. dst has channels elements.
func Map(a Frames, channels int, op func(i int, src, dst []float64)) Frames {
	data := make([]float64, a.Len()*channels)
	for i, src := range a.All() {
		op(i, src, data[i*channels:(i+1)*channels:(i+1)*channels])
	}
	return fromInterleaved(channels, data)
}

// Combine merges two sequences of equal length frame by frame. The result
// has channels samples per frame.
func Combine(a, b Frames, channels int, op func(x, y, dst []float64)) Frames {
	if a.Len() != b.Len() {
		panic("frames: combine of sequences with different lengths")
	}

	y := b.Interleaved()
	cb := b.channels
	return Map(a, channels, func(i int, src, dst []float64) {
		op(src, y[i*cb:(i+1)*cb:(i+1)*cb], dst)
	})
}
