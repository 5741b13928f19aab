// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/aiff"
	"github.com/ik5/audbuf/formats/wav"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d channels\n", src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_convertToWav converts an AIFF file to a 16-bit WAV,
// keeping every channel.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := aiff.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	block := audio.NewInterleaved[float32](src.Channels(), 4096)
	all := audio.NewInterleaved[int16](src.Channels(), 0)

	for {
		n, err := src.ReadFrames(block)
		if n > 0 {
			start := all.Frames()
			all.Resize(start + n)

			for c := range src.Channels() {
				audio.TranslateFrom(all.ChannelMut(c).Skip(start), block.Channel(c).Limit(n))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := wav.WriteWAV16(out, src.SampleRate(), all); err != nil {
		log.Fatal(err)
	}

	fmt.Println("AIFF converted to WAV")
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid AIFF files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Printf("Error: %v\n", err)
	}
	// Output: Error: not an AIFF file
}
