// SPDX-License-Identifier: EPL-2.0

package wrap

import (
	"fmt"

	"github.com/ik5/audbuf/audio"
)

// InterleavedSlice is a caller-owned frame-major slice used as a buffer. It
// has every method of audio.Interleaved, but its capacity is fixed to the
// length of the wrapped slice.
type InterleavedSlice[T audio.Sample] struct {
	*audio.Interleaved[T]
}

// Interleaved wraps data, which holds channels samples per frame. It panics
// if channels is not positive or if len(data) is not a multiple of channels.
func Interleaved[T audio.Sample](data []T, channels int) *InterleavedSlice[T] {
	if channels <= 0 {
		panic(fmt.Sprintf("wrap: channel count must be positive, got %d", channels))
	}
	if len(data)%channels != 0 {
		panic(fmt.Sprintf("wrap: %d samples is not a multiple of %d channels", len(data), channels))
	}

	fixed := data[:len(data):len(data)]
	return &InterleavedSlice[T]{audio.InterleavedFromSlice(fixed, channels, len(data)/channels)}
}

// Resize changes the number of frames within the wrapped slice. It panics if
// the slice is too short.
func (w *InterleavedSlice[T]) Resize(frames int) {
	checkFits(w.Capacity(), w.Channels(), frames)
	w.Interleaved.Resize(frames)
}

// ResizeChannels changes the number of channels within the wrapped slice. It
// panics if the slice is too short.
func (w *InterleavedSlice[T]) ResizeChannels(channels int) {
	checkFits(w.Capacity(), channels, w.Frames())
	w.Interleaved.ResizeChannels(channels)
}

// ResizeTopology changes both dimensions within the wrapped slice. It panics
// if the slice is too short for the new topology.
func (w *InterleavedSlice[T]) ResizeTopology(channels, frames int) {
	checkFits(w.Capacity(), channels, frames)

	if channels < w.Channels() {
		w.Interleaved.ResizeChannels(channels)
		w.Interleaved.Resize(frames)

		return
	}

	w.Interleaved.Resize(frames)
	w.Interleaved.ResizeChannels(channels)
}

// Reserve panics if the wrapped slice cannot hold samples samples.
func (w *InterleavedSlice[T]) Reserve(samples int) {
	if samples > w.Capacity() {
		panic(fmt.Sprintf("wrap: cannot grow a wrapped slice of %d samples to %d", w.Capacity(), samples))
	}
}

// SequentialSlice is a caller-owned channel-major slice used as a buffer. It
// has every method of audio.Sequential, but its capacity is fixed to the
// length of the wrapped slice.
type SequentialSlice[T audio.Sample] struct {
	*audio.Sequential[T]
}

// Sequential wraps data, which holds one run of frames samples per channel.
// It panics if len(data) is not a multiple of frames.
func Sequential[T audio.Sample](data []T, frames int) *SequentialSlice[T] {
	channels := 0

	switch {
	case frames < 0:
		panic(fmt.Sprintf("wrap: negative frame count %d", frames))
	case frames == 0 && len(data) != 0:
		panic(fmt.Sprintf("wrap: %d samples cannot have zero frames", len(data)))
	case frames > 0:
		if len(data)%frames != 0 {
			panic(fmt.Sprintf("wrap: %d samples is not a multiple of %d frames", len(data), frames))
		}
		channels = len(data) / frames
	}

	fixed := data[:len(data):len(data)]
	return &SequentialSlice[T]{audio.SequentialFromSlice(fixed, channels, frames)}
}

func (w *SequentialSlice[T]) Resize(frames int) {
	checkFits(w.Capacity(), w.Channels(), frames)
	w.Sequential.Resize(frames)
}

func (w *SequentialSlice[T]) ResizeChannels(channels int) {
	checkFits(w.Capacity(), channels, w.Frames())
	w.Sequential.ResizeChannels(channels)
}

// ResizeTopology changes both dimensions within the wrapped slice. It panics
// if the slice is too short for the new topology.
func (w *SequentialSlice[T]) ResizeTopology(channels, frames int) {
	checkFits(w.Capacity(), channels, frames)

	if channels < w.Channels() {
		w.Sequential.ResizeChannels(channels)
		w.Sequential.Resize(frames)

		return
	}

	w.Sequential.Resize(frames)
	w.Sequential.ResizeChannels(channels)
}

func checkFits(capacity, channels, frames int) {
	if channels*frames > capacity {
		panic(fmt.Sprintf("wrap: %d channels x %d frames does not fit a wrapped slice of %d samples", channels, frames, capacity))
	}
}
