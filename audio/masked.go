// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"iter"

	"github.com/ik5/audbuf/bitset"
)

// maskWords is the number of words in the default mask, enough for 128
// channels.
const maskWords = 2

// Masked is a Dynamic buffer with a channel mask. A masked channel keeps its
// storage but reads as empty and is skipped by iteration. Channels beyond
// the capacity of the mask are always masked.
type Masked[T Sample] struct {
	buf  *Dynamic[T]
	mask bitset.MutableMask
}

// NewMasked returns a zeroed buffer with every channel unmasked.
func NewMasked[T Sample](channels, frames int) *Masked[T] {
	return MaskedFrom(NewDynamic[T](channels, frames), nil)
}

// MaskedFrom puts a mask in front of buf. A nil mask unmasks up to 128
// channels.
func MaskedFrom[T Sample](buf *Dynamic[T], mask bitset.MutableMask) *Masked[T] {
	if mask == nil {
		full := bitset.FullArray[uint64](maskWords)
		mask = &full
	}

	return &Masked[T]{buf: buf, mask: mask}
}

// Buffer returns the underlying buffer, including masked channels.
func (m *Masked[T]) Buffer() *Dynamic[T] {
	return m.buf
}

// Mask hides channel i.
func (m *Masked[T]) Mask(i int) {
	m.mask.Clear(i)
}

// Unmask makes channel i visible again.
func (m *Masked[T]) Unmask(i int) {
	m.mask.Set(i)
}

// IsMasked reports whether channel i is hidden.
func (m *Masked[T]) IsMasked(i int) bool {
	return !m.mask.Test(i)
}

// Unmasked yields the indices of the visible channels in ascending order.
func (m *Masked[T]) Unmasked() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range m.mask.Iter() {
			if i >= m.buf.channels || !yield(i) {
				return
			}
		}
	}
}

// All yields every visible channel with its index.
func (m *Masked[T]) All() iter.Seq2[int, Channel[T]] {
	return func(yield func(int, Channel[T]) bool) {
		frames := m.buf.frames
		for i, slot := range bitset.JoinSlice(m.mask, m.buf.slots[:m.buf.channels]) {
			if !yield(i, LinearChannel(slot[:frames])) {
				return
			}
		}
	}
}

func (m *Masked[T]) Channels() int {
	return m.buf.Channels()
}

func (m *Masked[T]) Frames() int {
	return m.buf.Frames()
}

func (m *Masked[T]) FramesHint() (int, bool) {
	return m.buf.FramesHint()
}

// Channel returns a view of channel i, which is empty if the channel is
// masked.
func (m *Masked[T]) Channel(i int) Channel[T] {
	c := m.buf.Channel(i)
	if m.IsMasked(i) {
		return c.Limit(0)
	}

	return c
}

// ChannelMut returns a writable view of channel i, which is empty if the
// channel is masked.
func (m *Masked[T]) ChannelMut(i int) ChannelMut[T] {
	c := m.buf.ChannelMut(i)
	if m.IsMasked(i) {
		return c.Limit(0)
	}

	return c
}

// GetOrDefault returns the samples of channel i, adding channels if needed.
// A masked channel returns an empty slice and does not grow the buffer.
func (m *Masked[T]) GetOrDefault(i int) []T {
	if m.IsMasked(i) {
		return []T{}
	}

	return m.buf.GetOrDefault(i)
}

func (m *Masked[T]) Resize(frames int) {
	m.buf.Resize(frames)
}

func (m *Masked[T]) ResizeChannels(channels int) {
	m.buf.ResizeChannels(channels)
}

func (m *Masked[T]) ResizeTopology(channels, frames int) {
	m.buf.ResizeTopology(channels, frames)
}

// IntoVectors hands the visible channels to the caller. Masked channels are
// released and come back as nil.
func (m *Masked[T]) IntoVectors() Vectors[T] {
	return m.buf.IntoVectorsIf(m.mask.Test)
}
