// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1/2 Layer
// III streams.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	block := audio.NewInterleaved[float32](source.Channels(), 4096)
//	n, err := source.ReadFrames(block)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2, go-mp3 duplicates mono streams
//   - Sample rate: the rate of the stream
//
// A single channel can be taken from the block with block.Channel(i) without
// copying.
//
// # Limitations
//
// MP3 encoding is not supported.
package mp3
