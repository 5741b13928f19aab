// SPDX-License-Identifier: EPL-2.0

package audioio

import "github.com/ik5/audbuf/audio"

// Reader reads a buffer front to back.
type Reader[T audio.Sample] struct {
	buf       audio.ExactSizeBuf[T]
	available int
}

var _ ReadBuf[float32] = (*Reader[float32])(nil)

// NewReader returns a reader positioned at the first frame of buf.
func NewReader[T audio.Sample](buf audio.ExactSizeBuf[T]) *Reader[T] {
	return &Reader[T]{buf: buf, available: buf.Frames()}
}

// Inner returns the buffer being read.
func (r *Reader[T]) Inner() audio.ExactSizeBuf[T] {
	return r.buf
}

func (r *Reader[T]) Remaining() int {
	return r.available
}

func (r *Reader[T]) Advance(n int) {
	r.available -= min(max(n, 0), r.available)
}

func (r *Reader[T]) Channels() int {
	return r.buf.Channels()
}

// Frames returns the number of unread frames.
func (r *Reader[T]) Frames() int {
	return r.available
}

func (r *Reader[T]) FramesHint() (int, bool) {
	return r.available, true
}

// Channel returns the unread frames of channel i.
func (r *Reader[T]) Channel(i int) audio.Channel[T] {
	return r.buf.Channel(i).Tail(r.available)
}
