// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
)

// minSlots is the smallest number of channel slots Dynamic allocates.
const minSlots = 4

// minFrames returns the smallest per-channel allocation for T, which keeps
// tiny buffers from reallocating on every small resize.
func minFrames[T Sample]() int {
	switch size := sampleSize[T](); {
	case size == 1:
		return 8
	case size <= 256:
		return 4
	default:
		return 1
	}
}

// Dynamic is a buffer where every channel has its own allocation. Changing
// the number of frames grows each channel independently and changing the
// number of channels never moves samples, which makes it the cheapest
// layout to reshape.
//
// Removed channels keep their allocation so that a channel count that goes
// up and down does not reallocate. Like the other buffers, samples that were
// hidden by a shrink are visible again after growing within the capacity.
//
// The zero value is an empty buffer ready to use.
type Dynamic[T Sample] struct {
	// slots holds every allocated channel. Each slot has framesCap samples.
	slots     [][]T
	channels  int
	frames    int
	framesCap int
}

// NewDynamic returns a zeroed buffer with the given topology.
func NewDynamic[T Sample](channels, frames int) *Dynamic[T] {
	d := &Dynamic[T]{}
	d.ResizeChannels(channels)
	d.Resize(frames)

	return d
}

// DynamicFromChannels builds a buffer by copying per-channel sample slices.
// All slices must have the same length.
func DynamicFromChannels[T Sample](channels ...[]T) *Dynamic[T] {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	d := NewDynamic[T](len(channels), frames)
	for c, samples := range channels {
		if len(samples) != frames {
			panic(fmt.Sprintf("audio: channel %d has %d frames, want %d", c, len(samples), frames))
		}

		copy(d.slots[c], samples)
	}

	return d
}

func (d *Dynamic[T]) Channels() int {
	return d.channels
}

func (d *Dynamic[T]) Frames() int {
	return d.frames
}

func (d *Dynamic[T]) FramesHint() (int, bool) {
	return d.frames, true
}

func (d *Dynamic[T]) Topology() Topology {
	return Topology{Channels: d.channels, Frames: d.frames}
}

// Capacity returns the number of frames every channel can hold without
// allocating.
func (d *Dynamic[T]) Capacity() int {
	return d.framesCap
}

// ChannelCapacity returns the number of allocated channel slots.
func (d *Dynamic[T]) ChannelCapacity() int {
	return len(d.slots)
}

// Get returns the samples of channel i, or false if i is out of range.
func (d *Dynamic[T]) Get(i int) ([]T, bool) {
	if i < 0 || i >= d.channels {
		return nil, false
	}

	return d.slots[i][:d.frames], true
}

// GetOrDefault returns the samples of channel i, adding zeroed channels up to
// i if the buffer has fewer.
func (d *Dynamic[T]) GetOrDefault(i int) []T {
	if i >= d.channels {
		d.ResizeChannels(i + 1)
	}

	return d.slots[i][:d.frames]
}

func (d *Dynamic[T]) Channel(i int) Channel[T] {
	checkChannel(i, d.channels)
	return LinearChannel(d.slots[i][:d.frames])
}

func (d *Dynamic[T]) ChannelMut(i int) ChannelMut[T] {
	checkChannel(i, d.channels)
	return LinearChannelMut(d.slots[i][:d.frames])
}

// Frame returns a view of frame i, reading one sample from every channel
// allocation.
func (d *Dynamic[T]) Frame(i int) Frame[T] {
	checkFrame(i, d.frames)
	return slotsFrame(d.slots[:d.channels], i)
}

// IterFrames yields every frame in order.
func (d *Dynamic[T]) IterFrames() iter.Seq2[int, Frame[T]] {
	return iterFrames(d.frames, d.Frame)
}

// Iter yields every channel view in order.
func (d *Dynamic[T]) Iter() iter.Seq2[int, Channel[T]] {
	return func(yield func(int, Channel[T]) bool) {
		for c := range d.channels {
			if !yield(c, d.Channel(c)) {
				return
			}
		}
	}
}

func (d *Dynamic[T]) At(channel, frame int) (T, bool) {
	if channel < 0 || channel >= d.channels || frame < 0 || frame >= d.frames {
		var zero T
		return zero, false
	}

	return d.slots[channel][frame], true
}

func (d *Dynamic[T]) SetAt(channel, frame int, v T) {
	checkChannel(channel, d.channels)
	d.ChannelMut(channel).Set(frame, v)
}

// CopyChannel copies every frame of channel from into channel to.
func (d *Dynamic[T]) CopyChannel(from, to int) {
	checkChannel(from, d.channels)
	checkChannel(to, d.channels)

	if from != to {
		copy(d.slots[to][:d.frames], d.slots[from][:d.frames])
	}
}

// Clear zeroes the visible frames of every visible channel.
func (d *Dynamic[T]) Clear() {
	for _, slot := range d.slots[:d.channels] {
		clear(slot[:d.frames])
	}
}

// Resize changes the number of frames. When the capacity is exceeded every
// allocated slot grows, including slots of removed channels.
func (d *Dynamic[T]) Resize(frames int) {
	if frames > d.framesCap {
		newCap := max(2*d.framesCap, frames, minFrames[T]())

		for i, slot := range d.slots {
			grown := make([]T, newCap)
			copy(grown, slot)
			d.slots[i] = grown
		}

		d.framesCap = newCap
	}

	d.frames = frames
}

// ResizeChannels changes the number of channels. Shrinking only hides
// channels; growing past the allocated slots allocates zeroed ones.
func (d *Dynamic[T]) ResizeChannels(channels int) {
	if channels > len(d.slots) {
		newCap := max(2*len(d.slots), channels, minSlots)

		slots := make([][]T, newCap)
		copy(slots, d.slots)
		for i := len(d.slots); i < newCap; i++ {
			slots[i] = make([]T, d.framesCap)
		}

		d.slots = slots
	}

	d.channels = channels
}

// ResizeTopology changes the number of frames, then the number of channels.
func (d *Dynamic[T]) ResizeTopology(channels, frames int) {
	d.Resize(frames)
	d.ResizeChannels(channels)
}

// IntoVectors hands the channel allocations to the caller without copying.
// The buffer is empty afterwards.
func (d *Dynamic[T]) IntoVectors() Vectors[T] {
	return d.IntoVectorsIf(func(int) bool { return true })
}

// IntoVectorsIf is IntoVectors for the channels keep accepts. Rejected
// channels are released and come back as nil. The buffer is empty
// afterwards.
func (d *Dynamic[T]) IntoVectorsIf(keep func(channel int) bool) Vectors[T] {
	out := make(Vectors[T], d.channels)
	for c, slot := range d.slots[:d.channels] {
		if keep(c) {
			out[c] = slot[:d.frames:d.framesCap]
		}
	}

	*d = Dynamic[T]{}

	return out
}
