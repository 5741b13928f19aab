// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
)

// Interleaved is a buffer that stores samples frame by frame: sample
// (channel, frame) lives at frame*channels + channel. This is the layout most
// audio devices and file formats use.
//
// Shrinking leaves the released samples in place. Growing again within the
// capacity re-exposes them rather than clearing them, so callers that need
// silence must clear explicitly. Memory beyond the old capacity is always
// zero.
//
// The zero value is an empty buffer ready to use.
type Interleaved[T Sample] struct {
	data     []T
	channels int
	frames   int
}

// NewInterleaved returns a zeroed buffer with the given topology.
func NewInterleaved[T Sample](channels, frames int) *Interleaved[T] {
	return &Interleaved[T]{
		data:     make([]T, channels*frames),
		channels: channels,
		frames:   frames,
	}
}

// InterleavedFromSlice takes ownership of data, which must hold exactly
// channels*frames samples in frame-major order. It panics otherwise.
func InterleavedFromSlice[T Sample](data []T, channels, frames int) *Interleaved[T] {
	if len(data) != channels*frames {
		panic(fmt.Sprintf("audio: %d samples do not form %d channels x %d frames", len(data), channels, frames))
	}

	return &Interleaved[T]{data: data, channels: channels, frames: frames}
}

// InterleavedFromChannels builds a buffer from per-channel sample slices. All
// slices must have the same length.
func InterleavedFromChannels[T Sample](channels ...[]T) *Interleaved[T] {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	b := NewInterleaved[T](len(channels), frames)
	for c, samples := range channels {
		if len(samples) != frames {
			panic(fmt.Sprintf("audio: channel %d has %d frames, want %d", c, len(samples), frames))
		}

		b.ChannelMut(c).CopyFromSlice(samples)
	}

	return b
}

func (b *Interleaved[T]) Channels() int {
	return b.channels
}

func (b *Interleaved[T]) Frames() int {
	return b.frames
}

func (b *Interleaved[T]) FramesHint() (int, bool) {
	return b.frames, true
}

// Topology returns the current shape of the buffer.
func (b *Interleaved[T]) Topology() Topology {
	return Topology{Channels: b.channels, Frames: b.frames}
}

// Slice returns the frame-major samples of the buffer. The slice aliases the
// buffer until the next resize.
func (b *Interleaved[T]) Slice() []T {
	return b.data
}

// Capacity returns the number of samples the buffer can hold without
// allocating.
func (b *Interleaved[T]) Capacity() int {
	return cap(b.data)
}

// Frame returns a view of one frame, one sample per channel. The samples
// are contiguous, so Linear always succeeds on it.
func (b *Interleaved[T]) Frame(i int) Frame[T] {
	checkFrame(i, b.frames)
	return LinearFrame(b.data[i*b.channels : (i+1)*b.channels])
}

// IterFrames yields every frame in order.
func (b *Interleaved[T]) IterFrames() iter.Seq2[int, Frame[T]] {
	return iterFrames(b.frames, b.Frame)
}

// Channel returns a strided view of channel i.
func (b *Interleaved[T]) Channel(i int) Channel[T] {
	checkChannel(i, b.channels)
	return InterleavedChannel(b.data, i, b.channels)
}

// ChannelMut returns a writable strided view of channel i.
func (b *Interleaved[T]) ChannelMut(i int) ChannelMut[T] {
	checkChannel(i, b.channels)
	return InterleavedChannelMut(b.data, i, b.channels)
}

// Iter yields every channel view in order.
func (b *Interleaved[T]) Iter() iter.Seq2[int, Channel[T]] {
	return func(yield func(int, Channel[T]) bool) {
		for c := range b.channels {
			if !yield(c, b.Channel(c)) {
				return
			}
		}
	}
}

// At returns the sample at (channel, frame), or false if either is out of
// range.
func (b *Interleaved[T]) At(channel, frame int) (T, bool) {
	if channel < 0 || channel >= b.channels || frame < 0 || frame >= b.frames {
		var zero T
		return zero, false
	}

	return b.data[frame*b.channels+channel], true
}

// SetAt stores v at (channel, frame). It panics if either is out of range.
func (b *Interleaved[T]) SetAt(channel, frame int, v T) {
	checkChannel(channel, b.channels)
	b.ChannelMut(channel).Set(frame, v)
}

// CopyChannel copies every frame of channel from into channel to.
func (b *Interleaved[T]) CopyChannel(from, to int) {
	checkChannel(from, b.channels)
	checkChannel(to, b.channels)

	if from == to {
		return
	}

	for f := range b.frames {
		base := f * b.channels
		b.data[base+to] = b.data[base+from]
	}
}

// Clear zeroes every sample of the buffer.
func (b *Interleaved[T]) Clear() {
	clear(b.data)
}

// Reserve makes room for at least samples samples without changing the
// topology.
func (b *Interleaved[T]) Reserve(samples int) {
	b.data = reserve(b.data, samples)
}

// Resize changes the number of frames.
func (b *Interleaved[T]) Resize(frames int) {
	b.resize(b.channels, frames)
}

// ResizeChannels changes the number of channels, keeping the samples of the
// channels that remain.
func (b *Interleaved[T]) ResizeChannels(channels int) {
	b.resize(channels, b.frames)
}

// ResizeTopology changes the number of frames, then the number of channels.
func (b *Interleaved[T]) ResizeTopology(channels, frames int) {
	b.Resize(frames)
	b.ResizeChannels(channels)
}

func (b *Interleaved[T]) resize(channels, frames int) {
	if b.channels == channels && b.frames == frames {
		return
	}

	b.data = reserve(b.data, channels*frames)

	if b.channels != channels && channels > 0 && frames > 0 {
		full := b.data[:cap(b.data)]
		n := min(b.channels, channels)
		move := func(f int) {
			copy(full[f*channels:f*channels+n], full[f*b.channels:f*b.channels+n])
		}

		// Frame 0 never moves. Shrinking moves data towards the front, so walk
		// forwards; growing moves it towards the back, so walk backwards.
		if channels < b.channels {
			for f := 1; f < frames; f++ {
				move(f)
			}
		} else {
			for f := frames - 1; f >= 1; f-- {
				move(f)
			}
		}
	}

	b.data = b.data[:channels*frames]
	b.channels = channels
	b.frames = frames
}

// reserve returns s with room for at least n elements. Growth at least
// doubles the capacity. Everything up to the old capacity is carried over,
// including elements past len(s), and the rest is zero.
func reserve[T Sample](s []T, n int) []T {
	if n <= cap(s) {
		return s
	}

	grown := make([]T, len(s), max(2*cap(s), n))
	copy(grown[:cap(s)], s[:cap(s)])

	return grown
}
