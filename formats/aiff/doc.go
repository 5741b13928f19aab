// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container and
// converts its integer PCM into normalized float32 frames.
//
// # Supported Formats
//
//   - Signed PCM with 8, 16, 24 or 32 bits per sample
//   - Any channel count and sample rate
//
// Compressed AIFF-C files are rejected.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	block := audio.NewInterleaved[float32](source.Channels(), 4096)
//	n, err := source.ReadFrames(block)
//
// go-audio needs an io.ReadSeeker. Other readers are read into memory first.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: the sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: the COMM chunk describes no channels
package aiff
