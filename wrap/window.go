// SPDX-License-Identifier: EPL-2.0

package wrap

import (
	"fmt"
	"iter"

	"github.com/ik5/audbuf/audio"
)

// Window is a range of frames of another buffer. It does not copy; writes go
// to the underlying buffer.
type Window[T audio.Sample] struct {
	buf    audio.ExactSizeBufMut[T]
	start  int
	frames int
}

var (
	_ audio.ExactSizeBufMut[float32] = (*Window[float32])(nil)
	_ audio.FrameBuf[float32]        = (*Window[float32])(nil)
)

// SkipFrames returns buf without its first n frames. Skipping past the end
// yields a window with no frames.
func SkipFrames[T audio.Sample](buf audio.ExactSizeBufMut[T], n int) *Window[T] {
	total := buf.Frames()
	n = min(max(n, 0), total)

	return &Window[T]{buf: buf, start: n, frames: total - n}
}

// LimitFrames returns the first n frames of buf, or all of buf if it holds
// fewer.
func LimitFrames[T audio.Sample](buf audio.ExactSizeBufMut[T], n int) *Window[T] {
	return &Window[T]{buf: buf, frames: min(max(n, 0), buf.Frames())}
}

// Skip narrows the window further.
func (w *Window[T]) Skip(n int) *Window[T] {
	n = min(max(n, 0), w.frames)
	return &Window[T]{buf: w.buf, start: w.start + n, frames: w.frames - n}
}

// Limit narrows the window further.
func (w *Window[T]) Limit(n int) *Window[T] {
	return &Window[T]{buf: w.buf, start: w.start, frames: min(max(n, 0), w.frames)}
}

func (w *Window[T]) Channels() int {
	return w.buf.Channels()
}

func (w *Window[T]) Frames() int {
	return w.frames
}

func (w *Window[T]) FramesHint() (int, bool) {
	return w.frames, true
}

func (w *Window[T]) Channel(i int) audio.Channel[T] {
	return w.buf.Channel(i).Skip(w.start).Limit(w.frames)
}

func (w *Window[T]) ChannelMut(i int) audio.ChannelMut[T] {
	return w.buf.ChannelMut(i).Skip(w.start).Limit(w.frames)
}

// Frame returns frame i of the window, which is frame start+i of the
// underlying buffer.
func (w *Window[T]) Frame(i int) audio.Frame[T] {
	if i < 0 || i >= w.frames {
		panic(fmt.Sprintf("wrap: frame %d out of range [0, %d)", i, w.frames))
	}

	return audio.FrameOf[T](w.buf, w.start+i)
}

func (w *Window[T]) IterFrames() iter.Seq2[int, audio.Frame[T]] {
	return func(yield func(int, audio.Frame[T]) bool) {
		for i := range w.frames {
			if !yield(i, w.Frame(i)) {
				return
			}
		}
	}
}
