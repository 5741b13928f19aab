// SPDX-License-Identifier: EPL-2.0

package audioio

import "github.com/ik5/audbuf/audio"

// Writer fills a buffer front to back.
type Writer[T audio.Sample] struct {
	buf       audio.ExactSizeBufMut[T]
	available int
}

var _ WriteBuf[float32] = (*Writer[float32])(nil)

// NewWriter returns a writer positioned at the first frame of buf.
func NewWriter[T audio.Sample](buf audio.ExactSizeBufMut[T]) *Writer[T] {
	return &Writer[T]{buf: buf, available: buf.Frames()}
}

// Inner returns the buffer being written.
func (w *Writer[T]) Inner() audio.ExactSizeBufMut[T] {
	return w.buf
}

func (w *Writer[T]) RemainingMut() int {
	return w.available
}

func (w *Writer[T]) AdvanceMut(n int) {
	w.available -= min(max(n, 0), w.available)
}

// Written returns the number of frames written so far.
func (w *Writer[T]) Written() int {
	return w.buf.Frames() - w.available
}

func (w *Writer[T]) Channels() int {
	return w.buf.Channels()
}

// Channel returns every frame of channel i, written or not.
func (w *Writer[T]) Channel(i int) audio.Channel[T] {
	return w.buf.Channel(i)
}

// ChannelMut returns the frames of channel i that are not written yet.
func (w *Writer[T]) ChannelMut(i int) audio.ChannelMut[T] {
	return w.buf.ChannelMut(i).Tail(w.available)
}

// Copy moves frames from src into the writer. See CopyRemaining.
func (w *Writer[T]) Copy(src ReadBuf[T]) int {
	return CopyRemaining[T](w, src)
}
