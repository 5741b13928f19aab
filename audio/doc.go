// SPDX-License-Identifier: EPL-2.0

// Package audio provides multi-channel sample buffers and the views used to
// read and write them one channel at a time.
//
// This package contains the core building blocks:
//   - Interleaved, Sequential and Dynamic buffers
//   - Channel and ChannelMut views with windowing combinators
//   - Masked buffers for hiding channels
//   - Sample translation between integer and float formats
//   - Source interface and format registry for decoders
//
// # Buffers
//
// Every buffer has a topology: a number of channels and a number of frames.
// A frame is one sample per channel at the same point in time. The three
// buffers differ only in where a sample lives:
//
//	Interleaved  frame*channels + channel   (device and file order)
//	Sequential   channel*frames + frame     (one run per channel)
//	Dynamic      one allocation per channel
//
// All three implement the same interfaces, so code that works on channels
// does not care about the layout:
//
//	func peak(b audio.Buf[float32]) float32 {
//	    var p float32
//	    for c := range b.Channels() {
//	        for _, v := range b.Channel(c).All() {
//	            p = max(p, v, -v)
//	        }
//	    }
//	    return p
//	}
//
// # Resizing
//
// Buffers keep a capacity separate from their length. Growing past the
// capacity at least doubles it and the new memory is zero. Shrinking never
// clears, and growing again inside the capacity brings the old samples back:
//
//	buf := audio.NewInterleaved[float32](2, 256)
//	buf.SetAt(1, 127, 42)
//	buf.Resize(64)
//	buf.Resize(256)
//	v, _ := buf.At(1, 127) // 42, not 0
//
// Call Clear when silence is needed.
//
// Changing the number of channels moves samples in place and keeps the data
// of every channel that remains. Dynamic never moves samples; removed
// channels keep their allocation for the next time they are needed.
//
// # Views
//
// Channel views are cheap values that point into the buffer. Skip, Tail,
// Limit and Chunk return narrower views and never panic: asking for frames
// past the end gives an empty or truncated view. Indexing with At or Set
// panics when out of range.
//
// Frame gives the other cut through a buffer: one sample of every channel at
// a single frame. IterFrames walks them in order.
//
// A view must not be used after the buffer it came from is resized.
//
// # Sample Format
//
// Samples can be any integer or float type. Translator converts between them:
//   - Floats are normalized to [-1.0, 1.0]
//   - Signed integers map their minimum to -1.0 and their maximum to 1.0
//   - Unsigned integers are offset binary, so the midpoint is silence
//
// # Error Handling
//
// Buffer operations report programmer errors such as a channel index out of
// range by panicking. Only sources return errors. They return io.EOF when no
// more data is available:
//
//	buf := audio.NewInterleaved[float32](source.Channels(), 4096)
//	for {
//	    n, err := source.ReadFrames(buf)
//	    // Process n frames from buf
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Concurrency
//
// Buffers are not safe for concurrent use. The Registry is.
package audio
