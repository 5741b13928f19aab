// SPDX-License-Identifier: EPL-2.0

// Package wrap turns slices owned by someone else, such as a device ring
// buffer, into audio buffers without copying.
//
//	region := make([]int16, 2*480) // stereo, 480 frames
//	buf := wrap.Interleaved(region, 2)
//	buf.ChannelMut(0).Fill(0)
//
// A wrapped buffer can shrink and grow again, but never past the length of
// the slice it was given. Doing so panics.
//
// SkipFrames and LimitFrames select a range of frames of any buffer:
//
//	tail := wrap.SkipFrames[int16](buf, 128)
package wrap
