// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	block := audio.NewInterleaved[float32](source.Channels(), 4096)
//	n, err := source.ReadFrames(block)
//
// oggvorbis produces interleaved float32 samples, so frames are decoded
// directly into the block without an intermediate buffer. ReadFrames keeps
// reading until the block is full or the stream ends.
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: as stored in the stream, in Vorbis channel order
//   - Sample rate: the rate of the stream
package vorbis
