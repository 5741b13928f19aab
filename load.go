// SPDX-License-Identifier: EPL-2.0

package audbuf

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/audioio"
	"github.com/ik5/audbuf/bitset"
	"github.com/ik5/audbuf/wrap"
)

var (
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrInvalidIntBuffer = errors.New("int buffer has no usable format")
)

// Load reads src until io.EOF and returns every decoded frame, one
// allocation per channel. chunkFrames is the size of the block passed to
// each ReadFrames call.
//
// On a read error the frames collected so far are returned along with the
// error. Load does not close src.
func Load(src audio.Source, chunkFrames int) (*audio.Dynamic[float32], error) {
	if chunkFrames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkFrames)
	}

	block := audio.NewInterleaved[float32](src.Channels(), chunkFrames)
	out := audio.NewDynamic[float32](src.Channels(), 0)

	for {
		n, err := src.ReadFrames(block)
		if n > 0 {
			appendFrames(out, block, n)
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("reading source: %w", err)
		}
	}
}

func appendFrames(dst *audio.Dynamic[float32], block *audio.Interleaved[float32], n int) {
	start := dst.Frames()
	dst.Resize(start + n)

	w := audioio.NewWriter[float32](dst)
	w.AdvanceMut(start)

	w.Copy(audioio.NewReader[float32](wrap.LimitFrames[float32](block, n)))
}

// Export16 translates buf into a new interleaved 16-bit buffer, ready for
// the WAV writer or a playback device.
func Export16(buf audio.ExactSizeBuf[float32]) *audio.Interleaved[int16] {
	out := audio.NewInterleaved[int16](buf.Channels(), buf.Frames())
	audio.TranslateBuf[int16, float32](out, buf)

	return out
}

// Select copies the listed channels of buf into a new buffer, in ascending
// channel order. Repeated indices are kept once. It panics if an index is
// out of range.
func Select[T audio.Sample](buf *audio.Dynamic[T], channels ...int) *audio.Dynamic[T] {
	mask := bitset.ArrayFor[uint64](buf.Channels())
	for _, c := range channels {
		if c < 0 || c >= buf.Channels() {
			panic(fmt.Sprintf("channel index %d out of range for %d channels", c, buf.Channels()))
		}

		mask.Set(c)
	}

	masked := audio.MaskedFrom(buf, &mask)
	out := audio.NewDynamic[T](mask.Count(), buf.Frames())

	i := 0
	for _, ch := range masked.All() {
		out.ChannelMut(i).CopyFrom(ch)
		i++
	}

	return out
}
