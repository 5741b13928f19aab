// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audbuf/audio"
)

// encodeFrames is the number of frames handed to the encoder per write.
const encodeFrames = 4096

// Encode writes any exact-size int16 buffer as a 16-bit PCM WAV through
// go-audio/wav. Unlike WriteWAV16 the buffer may use any layout, and the
// header sizes are patched on close, which is why w must be seekable.
func Encode(w io.WriteSeeker, sampleRate int, buf audio.ExactSizeBuf[int16]) error {
	channels := buf.Channels()
	if channels == 0 {
		return ErrEmptyBuffer
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, channels, formatPCM)

	block := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, 0, encodeFrames*channels),
		SourceBitDepth: 16,
	}

	frames := buf.Frames()
	for start := 0; start < frames; start += encodeFrames {
		n := min(encodeFrames, frames-start)
		block.Data = block.Data[:n*channels]

		for c := range channels {
			for f, v := range buf.Channel(c).Skip(start).Limit(n).All() {
				block.Data[f*channels+c] = int(v)
			}
		}

		if err := enc.Write(block); err != nil {
			return fmt.Errorf("encoding wav: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}

	return nil
}
