// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Buf is a multi-channel buffer that can be read one channel at a time.
type Buf[T Sample] interface {
	// Channels returns the number of channels.
	Channels() int
	// FramesHint returns the number of frames if the buffer knows it.
	// Buffers whose channels may differ in length report the first channel.
	FramesHint() (int, bool)
	// Channel returns a view of channel i. It panics if i >= Channels().
	Channel(i int) Channel[T]
}

// ExactSizeBuf is a buffer where every channel has the same number of frames.
type ExactSizeBuf[T Sample] interface {
	Buf[T]
	Frames() int
}

// BufMut is a buffer whose channels can be written.
type BufMut[T Sample] interface {
	Buf[T]
	// ChannelMut returns a writable view of channel i. It panics if
	// i >= Channels().
	ChannelMut(i int) ChannelMut[T]
}

// ExactSizeBufMut is a writable buffer with a known frame count.
type ExactSizeBufMut[T Sample] interface {
	ExactSizeBuf[T]
	ChannelMut(i int) ChannelMut[T]
}

// ResizableBuf is a buffer whose shape can change. Views taken before a
// resize must not be used after it.
type ResizableBuf interface {
	Resize(frames int)
	ResizeTopology(channels, frames int)
}

// Topology is the shape of a buffer.
type Topology struct {
	Channels int
	Frames   int
}

// Samples returns the number of samples a buffer of this shape holds.
func (t Topology) Samples() int {
	return t.Channels * t.Frames
}

func (t Topology) String() string {
	return fmt.Sprintf("%d channels x %d frames", t.Channels, t.Frames)
}

// TopologyOf returns the shape of b.
func TopologyOf[T Sample](b ExactSizeBuf[T]) Topology {
	return Topology{Channels: b.Channels(), Frames: b.Frames()}
}

func checkChannel(i, channels int) {
	if i < 0 || i >= channels {
		panic(fmt.Sprintf("audio: channel %d out of range [0, %d)", i, channels))
	}
}

// Vectors is a buffer made of independent per-channel slices. Channels may
// have different lengths, so it only provides a frame hint. An empty channel
// is treated as masked out and is left alone by ResizeTopology.
type Vectors[T Sample] [][]T

var (
	_ BufMut[float32]        = Vectors[float32]{}
	_ ResizableBuf           = (*Vectors[float32])(nil)
	_ ExactSizeBufMut[int16] = (*Interleaved[int16])(nil)
	_ ExactSizeBufMut[int16] = (*Sequential[int16])(nil)
	_ ExactSizeBufMut[int16] = (*Dynamic[int16])(nil)
	_ ResizableBuf           = (*Interleaved[int16])(nil)
	_ ResizableBuf           = (*Sequential[int16])(nil)
	_ ResizableBuf           = (*Dynamic[int16])(nil)
	_ ExactSizeBufMut[int16] = (*Masked[int16])(nil)
	_ ResizableBuf           = (*Masked[int16])(nil)
	_ FrameBuf[int16]        = (*Interleaved[int16])(nil)
	_ FrameBuf[int16]        = (*Sequential[int16])(nil)
	_ FrameBuf[int16]        = (*Dynamic[int16])(nil)
)

func (v Vectors[T]) Channels() int {
	return len(v)
}

func (v Vectors[T]) FramesHint() (int, bool) {
	if len(v) == 0 {
		return 0, false
	}

	return len(v[0]), true
}

func (v Vectors[T]) Channel(i int) Channel[T] {
	checkChannel(i, len(v))
	return LinearChannel(v[i])
}

func (v Vectors[T]) ChannelMut(i int) ChannelMut[T] {
	checkChannel(i, len(v))
	return LinearChannelMut(v[i])
}

// Resize sets every channel to frames samples, zero-filling new frames.
func (v *Vectors[T]) Resize(frames int) {
	for i := range *v {
		(*v)[i] = resizeZeroed((*v)[i], frames)
	}
}

// ResizeTopology resizes the non-empty channels to frames and appends zeroed
// channels up to the requested count. Excess channels are dropped.
func (v *Vectors[T]) ResizeTopology(channels, frames int) {
	if channels < len(*v) {
		*v = (*v)[:channels]
	}

	for i, ch := range *v {
		if len(ch) == 0 {
			continue
		}

		(*v)[i] = resizeZeroed(ch, frames)
	}

	for len(*v) < channels {
		*v = append(*v, make([]T, frames))
	}
}

// resizeZeroed returns s with length n. Frames exposed by growing are zero.
func resizeZeroed[T Sample](s []T, n int) []T {
	if n <= len(s) {
		return s[:n]
	}

	if n <= cap(s) {
		old := len(s)
		s = s[:n]
		clear(s[old:])

		return s
	}

	return append(s, make([]T, n-len(s))...)
}
