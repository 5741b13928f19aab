// SPDX-License-Identifier: EPL-2.0

package wrap

import (
	"slices"
	"testing"

	"github.com/ik5/audbuf/audio"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()

	fn()
}

func TestInterleaved_WritesThrough(t *testing.T) {
	t.Parallel()

	region := make([]float32, 6)
	buf := Interleaved(region, 2)

	if buf.Channels() != 2 || buf.Frames() != 3 {
		t.Fatalf("Topology() = %v", buf.Topology())
	}

	buf.ChannelMut(1).CopyFromSlice([]float32{1, 2, 3})

	if want := []float32{0, 1, 0, 2, 0, 3}; !slices.Equal(region, want) {
		t.Errorf("region = %v, want %v", region, want)
	}
}

func TestInterleaved_SingleChannelIsLinear(t *testing.T) {
	t.Parallel()

	buf := Interleaved([]int16{1, 2, 3}, 1)
	if _, ok := buf.Channel(0).Linear(); !ok {
		t.Error("mono wrapper does not give a linear view")
	}
}

func TestInterleaved_Panics(t *testing.T) {
	t.Parallel()

	mustPanic(t, "ragged", func() { Interleaved(make([]int16, 5), 2) })
	mustPanic(t, "zero channels", func() { Interleaved(make([]int16, 4), 0) })
}

func TestInterleaved_ResizeWithinSlice(t *testing.T) {
	t.Parallel()

	region := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	buf := Interleaved(region, 2)

	buf.Resize(2)
	buf.Resize(4)
	if !slices.Equal(buf.Slice(), region) {
		t.Errorf("Slice() = %v after shrink and grow", buf.Slice())
	}

	buf.ResizeChannels(1)
	if &buf.Slice()[0] != &region[0] {
		t.Error("resize within the slice reallocated")
	}
	if !slices.Equal(buf.Slice(), []int32{1, 3, 5, 7}) {
		t.Errorf("Slice() = %v", buf.Slice())
	}

	mustPanic(t, "Resize past the slice", func() { buf.Resize(9) })
	mustPanic(t, "ResizeChannels past the slice", func() { buf.ResizeChannels(3) })
	mustPanic(t, "ResizeTopology past the slice", func() { buf.ResizeTopology(3, 3) })
	mustPanic(t, "Reserve past the slice", func() { buf.Reserve(9) })
}

func TestSequential_WritesThrough(t *testing.T) {
	t.Parallel()

	region := make([]uint8, 6)
	buf := Sequential(region, 3)

	if buf.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", buf.Channels())
	}

	buf.ChannelMut(1).Fill(9)
	buf.CopyChannel(1, 0)

	if want := []uint8{9, 9, 9, 9, 9, 9}; !slices.Equal(region, want) {
		t.Errorf("region = %v", region)
	}
}

func TestSequential_Panics(t *testing.T) {
	t.Parallel()

	mustPanic(t, "ragged", func() { Sequential(make([]float64, 7), 2) })
	mustPanic(t, "zero frames", func() { Sequential(make([]float64, 2), 0) })

	empty := Sequential([]float64{}, 0)
	if empty.Channels() != 0 {
		t.Errorf("Channels() = %d", empty.Channels())
	}

	buf := Sequential(make([]float64, 4), 2)
	mustPanic(t, "Resize past the slice", func() { buf.Resize(3) })
	mustPanic(t, "ResizeTopology past the slice", func() { buf.ResizeTopology(1, 5) })

	buf.ResizeTopology(1, 4)
	if buf.Channels() != 1 || buf.Frames() != 4 {
		t.Errorf("Topology() = %v", buf.Topology())
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	buf := audio.InterleavedFromChannels([]int16{1, 2, 3, 4, 5}, []int16{6, 7, 8, 9, 10})

	w := SkipFrames[int16](buf, 1).Limit(3)
	if w.Frames() != 3 || w.Channels() != 2 {
		t.Fatalf("window is %d x %d", w.Channels(), w.Frames())
	}
	if got := slices.Collect(w.Channel(1).Values()); !slices.Equal(got, []int16{7, 8, 9}) {
		t.Errorf("channel 1 = %v", got)
	}

	w.Skip(2).ChannelMut(0).Fill(0)
	if v, _ := buf.At(0, 3); v != 0 {
		t.Errorf("write through window: At(0, 3) = %d", v)
	}

	if f := SkipFrames[int16](buf, 10).Frames(); f != 0 {
		t.Errorf("SkipFrames past end = %d frames", f)
	}
	if f := LimitFrames[int16](buf, 10).Frames(); f != 5 {
		t.Errorf("LimitFrames past end = %d frames", f)
	}
	if f := LimitFrames[int16](buf, -1).Frames(); f != 0 {
		t.Errorf("LimitFrames(-1) = %d frames", f)
	}
}

func TestWindow_CopyBetweenBuffers(t *testing.T) {
	t.Parallel()

	src := audio.SequentialFromChannels([]float32{1, 2, 3, 4})
	dst := audio.NewInterleaved[float32](1, 6)

	audio.Copy[float32](SkipFrames[float32](dst, 2), src)

	if want := []float32{0, 0, 1, 2, 3, 4}; !slices.Equal(dst.Slice(), want) {
		t.Errorf("Slice() = %v, want %v", dst.Slice(), want)
	}
}
