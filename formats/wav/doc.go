// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// # Supported Formats
//
// The decoder reads:
//   - PCM 8-bit (offset binary), 16-bit, 24-bit and 32-bit
//   - IEEE float 32-bit and 64-bit
//   - WAVE_FORMAT_EXTENSIBLE headers carrying any of the above
//   - Any channel count and sample rate
//
// Chunks other than fmt and data are skipped.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	block := audio.NewInterleaved[float32](source.Channels(), 4096)
//	n, err := source.ReadFrames(block)
//
// Samples are delivered as float32 values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// WriteWAV16 streams an interleaved int16 buffer to any io.Writer with a
// precomputed header:
//
//	err := wav.WriteWAV16(file, 48000, buf)
//
// Encode accepts any exact-size int16 buffer layout and writes through
// github.com/go-audio/wav. It needs an io.WriteSeeker because the header is
// completed on close.
//
// # Error Handling
//
// Errors are sentinel values checkable with errors.Is:
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedWavLayout: the fmt chunk is malformed
//   - ErrUnsupportedSampleFormat: the sample encoding is not supported
//   - ErrUnsupportedWavChunks: no fmt chunk before the data chunk
//   - ErrEmptyBuffer: the buffer to encode has no channels
package wav
