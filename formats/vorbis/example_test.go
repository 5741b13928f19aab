// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/vorbis"
)

// ExampleDecoder_Decode_streaming demonstrates streaming Ogg Vorbis decoding
// into a sequential buffer, one channel after another.
func ExampleDecoder_Decode_streaming() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	block := audio.NewInterleaved[float32](src.Channels(), 4096)
	planar := audio.NewSequential[float32](src.Channels(), 4096)

	var frames int
	for {
		n, err := src.ReadFrames(block)
		if n > 0 {
			audio.Copy[float32](planar, block)
			frames += n
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Streamed %d frames from Ogg Vorbis\n", frames)
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid Ogg files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("not an ogg file")))
	if errors.Is(err, vorbis.ErrNotVorbisStream) {
		fmt.Println("Detected: not an Ogg Vorbis stream")
	}
	// Output: Detected: not an Ogg Vorbis stream
}
