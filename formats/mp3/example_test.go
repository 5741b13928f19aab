// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/mp3"
)

// ExampleDecoder_Decode_streaming demonstrates streaming MP3 decoding.
func ExampleDecoder_Decode_streaming() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	block := audio.NewInterleaved[float32](src.Channels(), 4096)

	var frames int
	for {
		n, err := src.ReadFrames(block)
		frames += n

		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Streamed %d frames from MP3\n", frames)
}

// ExampleDecoder_Decode_leftChannel keeps only the left channel of the
// decoded stereo stream.
func ExampleDecoder_Decode_leftChannel() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	block := audio.NewInterleaved[float32](src.Channels(), 1152)
	left := make([]float32, 1152)

	n, _ := src.ReadFrames(block)
	block.Channel(0).Limit(n).CopyIntoSlice(left)

	fmt.Printf("First block: %d left samples\n", n)
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid MP3 files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := mp3.Decoder{}.Decode(bytes.NewReader([]byte("not an mp3 file")))
	if errors.Is(err, mp3.ErrNotMP3Stream) {
		fmt.Println("Detected: not an MP3 stream")
	}
	// Output: Detected: not an MP3 stream
}
