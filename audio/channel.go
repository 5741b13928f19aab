// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
)

// Channel is a read-only view of one channel of a buffer. It does not copy
// the samples it refers to.
//
// A view has one of two shapes. A linear view is a contiguous slice where
// frame i is element i. An interleaved view sits over a frame-major region
// and reaches frame i at index channel + channels*i.
//
// A view is only valid until the buffer it came from is resized.
type Channel[T Sample] struct {
	buf    []T
	offset int
	stride int
}

// LinearChannel returns a view where every element of data is one frame.
func LinearChannel[T Sample](data []T) Channel[T] {
	return Channel[T]{buf: data, stride: 1}
}

// InterleavedChannel returns a view of channel inside the frame-major region
// data, which holds channels samples per frame.
//
// It panics if channel is not in [0, channels) or if len(data) is not a
// multiple of channels.
func InterleavedChannel[T Sample](data []T, channel, channels int) Channel[T] {
	if channels <= 0 {
		panic(fmt.Sprintf("audio: interleaved channel count must be positive, got %d", channels))
	}
	if channel < 0 || channel >= channels {
		panic(fmt.Sprintf("audio: channel %d out of range [0, %d)", channel, channels))
	}
	if len(data)%channels != 0 {
		panic(fmt.Sprintf("audio: region of %d samples is not a multiple of %d channels", len(data), channels))
	}

	return Channel[T]{buf: data, offset: channel, stride: channels}
}

func (c Channel[T]) step() int {
	if c.stride == 0 {
		return 1
	}

	return c.stride
}

func (c Channel[T]) index(frame int) int {
	return c.offset + c.step()*frame
}

// Frames returns the number of frames in the view.
func (c Channel[T]) Frames() int {
	return len(c.buf) / c.step()
}

// Len is the same as Frames.
func (c Channel[T]) Len() int {
	return c.Frames()
}

// IsEmpty reports whether the view holds no frames.
func (c Channel[T]) IsEmpty() bool {
	return c.Frames() == 0
}

// Linear returns the samples of the view as a slice if the view is
// contiguous.
func (c Channel[T]) Linear() ([]T, bool) {
	if c.step() != 1 {
		return nil, false
	}

	return c.buf, true
}

// Get returns the sample at frame, or false if frame is out of range.
func (c Channel[T]) Get(frame int) (T, bool) {
	if frame < 0 || frame >= c.Frames() {
		var zero T
		return zero, false
	}

	return c.buf[c.index(frame)], true
}

// At returns the sample at frame. It panics if frame is out of range.
func (c Channel[T]) At(frame int) T {
	v, ok := c.Get(frame)
	if !ok {
		panic(fmt.Sprintf("audio: frame %d out of range [0, %d)", frame, c.Frames()))
	}

	return v
}

// All yields every frame index with its sample.
func (c Channel[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		step := c.step()
		for frame, i := 0, c.offset; i < len(c.buf); frame, i = frame+1, i+step {
			if !yield(frame, c.buf[i]) {
				return
			}
		}
	}
}

// Values yields every sample of the view in frame order.
func (c Channel[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Skip returns the view without its first n frames. Skipping past the end
// yields an empty view.
func (c Channel[T]) Skip(n int) Channel[T] {
	n = min(max(n, 0), c.Frames())
	c.buf = c.buf[n*c.step():]

	return c
}

// Tail returns the last n frames of the view, or the whole view if it holds
// fewer than n frames.
func (c Channel[T]) Tail(n int) Channel[T] {
	frames := c.Frames()
	if n >= frames {
		return c
	}

	return c.Skip(frames - max(n, 0))
}

// Limit returns the first n frames of the view, or the whole view if it
// holds fewer than n frames.
func (c Channel[T]) Limit(n int) Channel[T] {
	n = min(max(n, 0), c.Frames())
	c.buf = c.buf[:n*c.step()]

	return c
}

// Chunk returns the n-th window of length frames. A window past the end is
// empty and a window that runs past the end is truncated.
func (c Channel[T]) Chunk(n, length int) Channel[T] {
	if n < 0 || length <= 0 || n > c.Frames()/length {
		return c.Limit(0)
	}

	return c.Skip(n * length).Limit(length)
}

// Chunks returns the number of windows of length frames needed to cover the
// view.
func (c Channel[T]) Chunks(length int) int {
	if length <= 0 {
		return 0
	}

	return (c.Frames() + length - 1) / length
}

// CopyIntoSlice copies the view into dst and returns the number of samples
// copied.
func (c Channel[T]) CopyIntoSlice(dst []T) int {
	if src, ok := c.Linear(); ok {
		return copy(dst, src)
	}

	n := min(len(dst), c.Frames())
	for i := range n {
		dst[i] = c.buf[c.index(i)]
	}

	return n
}

// ChannelMut is a writable view of one channel of a buffer. It has every
// read method of Channel.
type ChannelMut[T Sample] struct {
	Channel[T]
}

// LinearChannelMut returns a writable view where every element of data is one
// frame.
func LinearChannelMut[T Sample](data []T) ChannelMut[T] {
	return ChannelMut[T]{LinearChannel(data)}
}

// InterleavedChannelMut is the writable counterpart of InterleavedChannel.
func InterleavedChannelMut[T Sample](data []T, channel, channels int) ChannelMut[T] {
	return ChannelMut[T]{InterleavedChannel(data, channel, channels)}
}

// Set stores v at frame. It panics if frame is out of range.
func (c ChannelMut[T]) Set(frame int, v T) {
	if frame < 0 || frame >= c.Frames() {
		panic(fmt.Sprintf("audio: frame %d out of range [0, %d)", frame, c.Frames()))
	}

	c.buf[c.index(frame)] = v
}

// Fill stores v in every frame of the view.
func (c ChannelMut[T]) Fill(v T) {
	if dst, ok := c.Linear(); ok {
		for i := range dst {
			dst[i] = v
		}

		return
	}

	step := c.step()
	for i := c.offset; i < len(c.buf); i += step {
		c.buf[i] = v
	}
}

// CopyFrom copies src into the view and returns the number of frames copied,
// which is the smaller of the two frame counts.
func (c ChannelMut[T]) CopyFrom(src Channel[T]) int {
	if dst, ok := c.Linear(); ok {
		if s, ok := src.Linear(); ok {
			return copy(dst, s)
		}
	}

	n := min(c.Frames(), src.Frames())
	for i := range n {
		c.buf[c.index(i)] = src.buf[src.index(i)]
	}

	return n
}

// CopyFromSlice copies src into the view and returns the number of frames
// copied.
func (c ChannelMut[T]) CopyFromSlice(src []T) int {
	return c.CopyFrom(LinearChannel(src))
}

// ReadOnly returns the read-only view of the same samples.
func (c ChannelMut[T]) ReadOnly() Channel[T] {
	return c.Channel
}

// Skip is Channel.Skip for writable views.
func (c ChannelMut[T]) Skip(n int) ChannelMut[T] {
	return ChannelMut[T]{c.Channel.Skip(n)}
}

// Tail is Channel.Tail for writable views.
func (c ChannelMut[T]) Tail(n int) ChannelMut[T] {
	return ChannelMut[T]{c.Channel.Tail(n)}
}

// Limit is Channel.Limit for writable views.
func (c ChannelMut[T]) Limit(n int) ChannelMut[T] {
	return ChannelMut[T]{c.Channel.Limit(n)}
}

// Chunk is Channel.Chunk for writable views.
func (c ChannelMut[T]) Chunk(n, length int) ChannelMut[T] {
	return ChannelMut[T]{c.Channel.Chunk(n, length)}
}

// TranslateFrom converts the samples of src into dst and returns the number
// of frames written, which is the smaller of the two frame counts.
func TranslateFrom[T, U Sample](dst ChannelMut[T], src Channel[U]) int {
	if d, ok := dst.Linear(); ok {
		if s, ok := src.Linear(); ok {
			return TranslateSlice(d, s)
		}
	}

	conv := Translator[U, T]()
	n := min(dst.Frames(), src.Frames())
	for i := range n {
		dst.buf[dst.index(i)] = conv(src.buf[src.index(i)])
	}

	return n
}
