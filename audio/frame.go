// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
)

// Frame is a read-only view of one frame of a buffer: one sample per
// channel at the same point in time. Like Channel it does not copy, and it
// is only valid until the buffer it came from is resized.
//
// Interleaved frames are contiguous. Sequential frames step over whole
// channels, and Dynamic frames read one element from each channel
// allocation.
type Frame[T Sample] struct {
	// Flat layouts: sample c lives at data[offset+c*stride].
	data   []T
	stride int

	// Dynamic: sample c lives at slots[c][offset].
	slots [][]T

	offset   int
	channels int
}

// LinearFrame returns a frame where every element of samples is one channel.
func LinearFrame[T Sample](samples []T) Frame[T] {
	return Frame[T]{data: samples, stride: 1, channels: len(samples)}
}

func slotsFrame[T Sample](slots [][]T, f int) Frame[T] {
	return Frame[T]{slots: slots, offset: f, channels: len(slots)}
}

func checkFrame(f, frames int) {
	if f < 0 || f >= frames {
		panic(fmt.Sprintf("audio: frame %d out of range [0, %d)", f, frames))
	}
}

// Len returns the number of channels in the frame.
func (f Frame[T]) Len() int {
	return f.channels
}

// IsEmpty reports whether the frame has no channels.
func (f Frame[T]) IsEmpty() bool {
	return f.channels == 0
}

// Get returns the sample of channel c, or false if c is out of range.
func (f Frame[T]) Get(c int) (T, bool) {
	if c < 0 || c >= f.channels {
		var zero T
		return zero, false
	}

	if f.slots != nil {
		return f.slots[c][f.offset], true
	}

	return f.data[f.offset+c*f.stride], true
}

// At returns the sample of channel c. It panics if c is out of range.
func (f Frame[T]) At(c int) T {
	v, ok := f.Get(c)
	if !ok {
		panic(fmt.Sprintf("audio: channel %d out of range [0, %d)", c, f.channels))
	}

	return v
}

// Linear returns the samples of the frame as a slice if they are
// contiguous, which is the case for interleaved buffers.
func (f Frame[T]) Linear() ([]T, bool) {
	switch {
	case f.channels == 0:
		return nil, true
	case f.slots != nil || (f.stride != 1 && f.channels > 1):
		return nil, false
	}

	return f.data[f.offset : f.offset+f.channels], true
}

// All yields every sample with its channel index.
func (f Frame[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c := range f.channels {
			if !yield(c, f.At(c)) {
				return
			}
		}
	}
}

// Values yields every sample in channel order.
func (f Frame[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range f.channels {
			if !yield(f.At(c)) {
				return
			}
		}
	}
}

// CopyIntoSlice copies the frame into dst and returns the number of samples
// copied.
func (f Frame[T]) CopyIntoSlice(dst []T) int {
	if src, ok := f.Linear(); ok {
		return copy(dst, src)
	}

	n := min(len(dst), f.channels)
	for c := range n {
		dst[c] = f.At(c)
	}

	return n
}

// FrameBuf is a buffer that can be read one frame at a time.
type FrameBuf[T Sample] interface {
	ExactSizeBuf[T]
	// Frame returns a view of frame i. It panics if i >= Frames().
	Frame(i int) Frame[T]
	IterFrames() iter.Seq2[int, Frame[T]]
}

// FrameOf returns frame i of buf. Buffers that implement FrameBuf return
// their own view. Any other buffer has the frame gathered into a new slice,
// with channels that hold fewer frames, such as masked ones, reading as
// zero. It panics if i >= buf.Frames().
func FrameOf[T Sample](buf ExactSizeBuf[T], i int) Frame[T] {
	if fb, ok := buf.(FrameBuf[T]); ok {
		return fb.Frame(i)
	}

	checkFrame(i, buf.Frames())

	samples := make([]T, buf.Channels())
	for c := range samples {
		samples[c], _ = buf.Channel(c).Get(i)
	}

	return LinearFrame(samples)
}

// IterFramesOf yields every frame of buf in order, using FrameOf.
func IterFramesOf[T Sample](buf ExactSizeBuf[T]) iter.Seq2[int, Frame[T]] {
	return func(yield func(int, Frame[T]) bool) {
		for i := range buf.Frames() {
			if !yield(i, FrameOf(buf, i)) {
				return
			}
		}
	}
}

func iterFrames[T Sample](frames int, frame func(int) Frame[T]) iter.Seq2[int, Frame[T]] {
	return func(yield func(int, Frame[T]) bool) {
		for i := range frames {
			if !yield(i, frame(i)) {
				return
			}
		}
	}
}
