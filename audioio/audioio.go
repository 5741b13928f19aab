// SPDX-License-Identifier: EPL-2.0

package audioio

import "github.com/ik5/audbuf/audio"

// ReadBuf is a buffer with a read cursor. Its channels only show the frames
// that have not been read yet.
type ReadBuf[T audio.Sample] interface {
	audio.Buf[T]
	// Remaining returns the number of unread frames.
	Remaining() int
	// Advance marks n frames as read. It saturates at Remaining.
	Advance(n int)
}

// WriteBuf is a buffer with a write cursor. Its writable channels only show
// the frames that have not been written yet.
type WriteBuf[T audio.Sample] interface {
	Channels() int
	ChannelMut(i int) audio.ChannelMut[T]
	// RemainingMut returns the number of frames that can still be written.
	RemainingMut() int
	// AdvanceMut marks n frames as written. It saturates at RemainingMut.
	AdvanceMut(n int)
}

// CopyRemaining moves as many frames as both cursors allow from src to dst
// and advances both. It returns the number of frames moved.
func CopyRemaining[T audio.Sample](dst WriteBuf[T], src ReadBuf[T]) int {
	n := min(dst.RemainingMut(), src.Remaining())

	for c := range min(dst.Channels(), src.Channels()) {
		dst.ChannelMut(c).Limit(n).CopyFrom(src.Channel(c))
	}

	dst.AdvanceMut(n)
	src.Advance(n)

	return n
}

// TranslateRemaining is CopyRemaining across sample types.
func TranslateRemaining[T, U audio.Sample](dst WriteBuf[T], src ReadBuf[U]) int {
	n := min(dst.RemainingMut(), src.Remaining())

	for c := range min(dst.Channels(), src.Channels()) {
		audio.TranslateFrom(dst.ChannelMut(c).Limit(n), src.Channel(c))
	}

	dst.AdvanceMut(n)
	src.Advance(n)

	return n
}
