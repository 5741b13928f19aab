// SPDX-License-Identifier: EPL-2.0

package audbuf

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/utils"
)

// ToIntBuffer copies buf into a go-audio IntBuffer holding 16-bit
// interleaved PCM.
func ToIntBuffer(buf audio.ExactSizeBuf[int16], sampleRate int) *goaudio.IntBuffer {
	channels := buf.Channels()
	data := make([]int, channels*buf.Frames())

	for c := range channels {
		for f, v := range buf.Channel(c).All() {
			data[f*channels+c] = int(v)
		}
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}

// FromIntBuffer converts a go-audio IntBuffer into float32 samples. A zero
// SourceBitDepth is read as 16 bits; depths outside 2..64 are rejected.
func FromIntBuffer(ib *goaudio.IntBuffer) (*audio.Interleaved[float32], error) {
	if ib == nil || ib.Format == nil || ib.Format.NumChannels <= 0 {
		return nil, ErrInvalidIntBuffer
	}

	channels := ib.Format.NumChannels
	if len(ib.Data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrInvalidIntBuffer, len(ib.Data), channels)
	}

	bits := ib.SourceBitDepth
	if bits == 0 {
		bits = 16
	}

	if bits < 2 || bits > 64 {
		return nil, fmt.Errorf("%w: %d bit samples", ErrInvalidIntBuffer, bits)
	}

	out := audio.NewInterleaved[float32](channels, len(ib.Data)/channels)
	dst := out.Slice()

	for i, v := range ib.Data {
		dst[i] = float32(utils.SignedToFloat(int64(v), bits))
	}

	return out, nil
}
