// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"testing"

	"github.com/ik5/audbuf/audio"
)

// Cell returns the value Fill writes at (channel, frame).
func Cell(channel, frame int) int32 {
	return int32(channel*1000 + frame + 1)
}

// Fill writes a distinct value into every cell of b.
func Fill(b audio.BufMut[int32]) {
	for c := range b.Channels() {
		ch := b.ChannelMut(c)
		for f := range ch.Frames() {
			ch.Set(f, Cell(c, f))
		}
	}
}

// AssertCells fails the test unless the first frames frames of every channel
// of b hold the values Fill wrote.
func AssertCells(t testing.TB, b audio.Buf[int32], frames int) {
	t.Helper()

	for c := range b.Channels() {
		for f, v := range b.Channel(c).Limit(frames).All() {
			if want := Cell(c, f); v != want {
				t.Fatalf("channel %d frame %d = %d, want %d", c, f, v, want)
			}
		}

		if got := b.Channel(c).Limit(frames).Frames(); got != frames {
			t.Fatalf("channel %d has %d frames, want at least %d", c, got, frames)
		}
	}
}

// Channels copies every channel of b into its own slice.
func Channels[T audio.Sample](b audio.Buf[T]) [][]T {
	out := make([][]T, b.Channels())
	for c := range out {
		ch := b.Channel(c)
		out[c] = make([]T, ch.Frames())
		ch.CopyIntoSlice(out[c])
	}

	return out
}
