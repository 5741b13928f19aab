// SPDX-License-Identifier: EPL-2.0

// Package audbuf ties the buffer engine to the format adapters.
//
// The audio subpackage holds the buffers themselves: Interleaved,
// Sequential and Dynamic layouts, channel views, and sample translation.
// Decoders under formats/ fill caller-owned interleaved blocks, and the
// helpers here collect, reshape and export what they produce.
//
// # Quick Start
//
//	f, _ := os.Open("audio.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//
//	// Every frame, one slice per channel.
//	buf, _ := audbuf.Load(src, 4096)
//
//	// Keep the first channel only and write it as 16-bit PCM.
//	left := audbuf.Select(buf, 0)
//	wav.WriteWAV16(out, src.SampleRate(), audbuf.Export16(left))
//
// # go-audio interop
//
// ToIntBuffer and FromIntBuffer convert between engine buffers and the
// github.com/go-audio/audio IntBuffer used by the go-audio encoders and
// decoders.
package audbuf
