// SPDX-License-Identifier: EPL-2.0

package audio

// Copy copies every channel src and dst have in common. Each channel pair is
// clamped to the shorter of the two.
func Copy[T Sample](dst BufMut[T], src Buf[T]) {
	for c := range min(dst.Channels(), src.Channels()) {
		dst.ChannelMut(c).CopyFrom(src.Channel(c))
	}
}

// TranslateBuf is Copy across sample types.
func TranslateBuf[T, U Sample](dst BufMut[T], src Buf[U]) {
	for c := range min(dst.Channels(), src.Channels()) {
		TranslateFrom(dst.ChannelMut(c), src.Channel(c))
	}
}
