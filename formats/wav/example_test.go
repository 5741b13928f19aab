// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/wav"
)

// Example_decoding demonstrates decoding a WAV file into an interleaved buffer.
func Example_decoding() {
	stereo := audio.InterleavedFromChannels(
		[]int16{100, 200, 300, 400, 500},
		[]int16{-100, -200, -300, -400, -500},
	)

	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 16000, stereo)

	source, err := wav.Decoder{}.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	dst := audio.NewInterleaved[float32](source.Channels(), 10)
	n, err := source.ReadFrames(dst)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d frames\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 2
	// Read 5 frames
}

// Example_encoding demonstrates writing a WAV file.
func Example_encoding() {
	buf := audio.NewInterleaved[int16](2, 1000)
	for f := range buf.Frames() {
		buf.SetAt(0, f, int16((f%100)*100))
		buf.SetAt(1, f, int16(-(f%100)*100))
	}

	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, 8000, buf); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	// Output:
	// Wrote 4044 bytes
}

// Example_streamingRead demonstrates reading a WAV file in blocks.
func Example_streamingRead() {
	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 8000, audio.NewInterleaved[int16](1, 10000))

	source, _ := wav.Decoder{}.Decode(wavData)

	block := audio.NewInterleaved[float32](1, 1000)
	blocks, frames := 0, 0

	for {
		n, err := source.ReadFrames(block)
		if n > 0 {
			blocks++
			frames += n
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}
	}

	fmt.Printf("Read %d frames in %d blocks\n", frames, blocks)
	// Output:
	// Read 10000 frames in 10 blocks
}

// Example_sampleConversion shows the int16 to float32 conversion.
func Example_sampleConversion() {
	samples := []int16{-32768, -16384, 0, 16384, 32767}

	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 8000, audio.InterleavedFromSlice(samples, 1, len(samples)))

	source, _ := wav.Decoder{}.Decode(wavData)

	dst := audio.NewInterleaved[float32](1, len(samples))
	n, _ := source.ReadFrames(dst)

	fmt.Println("int16 -> float32 conversion:")
	for i := range n {
		fmt.Printf("  %6d -> %+.3f\n", samples[i], dst.Slice()[i])
	}
	// Output:
	// int16 -> float32 conversion:
	//   -32768 -> -1.000
	//   -16384 -> -0.500
	//        0 -> +0.000
	//    16384 -> +0.500
	//    32767 -> +1.000
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("This is not a WAV file")))

	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	}
	// Output: Detected: Not a valid WAV file
}
