// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
)

// Sequential is a buffer that stores each channel as one contiguous run:
// sample (channel, frame) lives at channel*frames + frame. Channel views are
// plain sub-slices.
//
// Resizing follows the same rules as Interleaved: memory that was already
// allocated is reused without clearing, memory beyond the old capacity is
// zero.
//
// The zero value is an empty buffer ready to use.
type Sequential[T Sample] struct {
	data     []T
	channels int
	frames   int
}

// NewSequential returns a zeroed buffer with the given topology.
func NewSequential[T Sample](channels, frames int) *Sequential[T] {
	return &Sequential[T]{
		data:     make([]T, channels*frames),
		channels: channels,
		frames:   frames,
	}
}

// SequentialFromSlice takes ownership of data, which must hold exactly
// channels*frames samples in channel-major order. It panics otherwise.
func SequentialFromSlice[T Sample](data []T, channels, frames int) *Sequential[T] {
	if len(data) != channels*frames {
		panic(fmt.Sprintf("audio: %d samples do not form %d channels x %d frames", len(data), channels, frames))
	}

	return &Sequential[T]{data: data, channels: channels, frames: frames}
}

// SequentialFromChannels builds a buffer from per-channel sample slices. All
// slices must have the same length.
func SequentialFromChannels[T Sample](channels ...[]T) *Sequential[T] {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	b := NewSequential[T](len(channels), frames)
	for c, samples := range channels {
		if len(samples) != frames {
			panic(fmt.Sprintf("audio: channel %d has %d frames, want %d", c, len(samples), frames))
		}

		copy(b.span(c), samples)
	}

	return b
}

func (b *Sequential[T]) Channels() int {
	return b.channels
}

func (b *Sequential[T]) Frames() int {
	return b.frames
}

func (b *Sequential[T]) FramesHint() (int, bool) {
	return b.frames, true
}

func (b *Sequential[T]) Topology() Topology {
	return Topology{Channels: b.channels, Frames: b.frames}
}

// Slice returns the channel-major samples of the buffer.
func (b *Sequential[T]) Slice() []T {
	return b.data
}

// Capacity returns the number of samples the buffer can hold without
// allocating.
func (b *Sequential[T]) Capacity() int {
	return cap(b.data)
}

func (b *Sequential[T]) span(c int) []T {
	start := c * b.frames
	return b.data[start : start+b.frames : start+b.frames]
}

// Get returns the samples of channel i, or false if i is out of range.
func (b *Sequential[T]) Get(i int) ([]T, bool) {
	if i < 0 || i >= b.channels {
		return nil, false
	}

	return b.span(i), true
}

func (b *Sequential[T]) Channel(i int) Channel[T] {
	checkChannel(i, b.channels)
	return LinearChannel(b.span(i))
}

func (b *Sequential[T]) ChannelMut(i int) ChannelMut[T] {
	checkChannel(i, b.channels)
	return LinearChannelMut(b.span(i))
}

// Frame returns a view of frame i. Its samples are frames apart.
func (b *Sequential[T]) Frame(i int) Frame[T] {
	checkFrame(i, b.frames)
	return Frame[T]{data: b.data, stride: b.frames, offset: i, channels: b.channels}
}

// IterFrames yields every frame in order.
func (b *Sequential[T]) IterFrames() iter.Seq2[int, Frame[T]] {
	return iterFrames(b.frames, b.Frame)
}

// Iter yields every channel view in order.
func (b *Sequential[T]) Iter() iter.Seq2[int, Channel[T]] {
	return func(yield func(int, Channel[T]) bool) {
		for c := range b.channels {
			if !yield(c, b.Channel(c)) {
				return
			}
		}
	}
}

func (b *Sequential[T]) At(channel, frame int) (T, bool) {
	if channel < 0 || channel >= b.channels || frame < 0 || frame >= b.frames {
		var zero T
		return zero, false
	}

	return b.data[channel*b.frames+frame], true
}

func (b *Sequential[T]) SetAt(channel, frame int, v T) {
	checkChannel(channel, b.channels)
	b.ChannelMut(channel).Set(frame, v)
}

// CopyChannel copies every frame of channel from into channel to.
func (b *Sequential[T]) CopyChannel(from, to int) {
	checkChannel(from, b.channels)
	checkChannel(to, b.channels)

	if from != to {
		copy(b.span(to), b.span(from))
	}
}

func (b *Sequential[T]) Clear() {
	clear(b.data)
}

func (b *Sequential[T]) Resize(frames int) {
	b.resize(b.channels, frames)
}

func (b *Sequential[T]) ResizeChannels(channels int) {
	b.resize(channels, b.frames)
}

func (b *Sequential[T]) ResizeTopology(channels, frames int) {
	b.Resize(frames)
	b.ResizeChannels(channels)
}

func (b *Sequential[T]) resize(channels, frames int) {
	if channels == 0 || frames == 0 {
		b.data = b.data[:0]
		b.channels = channels
		b.frames = frames

		return
	}

	if b.channels == channels && b.frames == frames {
		return
	}

	b.data = reserve(b.data, channels*frames)

	full := b.data[:cap(b.data)]
	n := min(b.frames, frames)
	move := func(c int) {
		copy(full[c*frames:c*frames+n], full[c*b.frames:c*b.frames+n])
	}

	// Growing frames moves every channel towards the back, so the last
	// channel goes first.
	kept := min(b.channels, channels)
	if b.frames < frames {
		for c := kept - 1; c >= 0; c-- {
			move(c)
		}
	} else {
		for c := range kept {
			move(c)
		}
	}

	b.data = b.data[:channels*frames]
	b.channels = channels
	b.frames = frames
}
