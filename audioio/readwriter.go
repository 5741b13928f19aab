// SPDX-License-Identifier: EPL-2.0

package audioio

import "github.com/ik5/audbuf/audio"

// ReadWriter is a buffer with both cursors. Frames are written after the
// last written frame and read from the first unread one, so it can stand
// between a producer and a consumer that work in different block sizes.
type ReadWriter[T audio.Sample] struct {
	buf     audio.ExactSizeBufMut[T]
	read    int
	written int
}

var (
	_ ReadBuf[float32]  = (*ReadWriter[float32])(nil)
	_ WriteBuf[float32] = (*ReadWriter[float32])(nil)
)

// NewReadWriter returns an empty read-writer over buf.
func NewReadWriter[T audio.Sample](buf audio.ExactSizeBufMut[T]) *ReadWriter[T] {
	return &ReadWriter[T]{buf: buf}
}

func (rw *ReadWriter[T]) Inner() audio.ExactSizeBufMut[T] {
	return rw.buf
}

func (rw *ReadWriter[T]) Channels() int {
	return rw.buf.Channels()
}

// Remaining returns the number of written frames not read yet.
func (rw *ReadWriter[T]) Remaining() int {
	return rw.written - rw.read
}

func (rw *ReadWriter[T]) Advance(n int) {
	rw.read += min(max(n, 0), rw.Remaining())
}

func (rw *ReadWriter[T]) RemainingMut() int {
	return rw.buf.Frames() - rw.written
}

func (rw *ReadWriter[T]) AdvanceMut(n int) {
	rw.written += min(max(n, 0), rw.RemainingMut())
}

func (rw *ReadWriter[T]) FramesHint() (int, bool) {
	return rw.Remaining(), true
}

// Channel returns the written but unread frames of channel i.
func (rw *ReadWriter[T]) Channel(i int) audio.Channel[T] {
	return rw.buf.Channel(i).Skip(rw.read).Limit(rw.Remaining())
}

// ChannelMut returns the frames of channel i after the write cursor.
func (rw *ReadWriter[T]) ChannelMut(i int) audio.ChannelMut[T] {
	return rw.buf.ChannelMut(i).Skip(rw.written)
}

// Reset moves both cursors back to the start without clearing samples.
func (rw *ReadWriter[T]) Reset() {
	rw.read = 0
	rw.written = 0
}

// Compact moves the unread frames to the start of the buffer so the free
// space after them is as large as possible.
func (rw *ReadWriter[T]) Compact() {
	if rw.read == 0 {
		return
	}

	n := rw.Remaining()
	for c := range rw.buf.Channels() {
		ch := rw.buf.ChannelMut(c)
		for f := range n {
			ch.Set(f, ch.At(rw.read+f))
		}
	}

	rw.read = 0
	rw.written = n
}
