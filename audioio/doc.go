// SPDX-License-Identifier: EPL-2.0

// Package audioio adds read and write cursors to audio buffers so blocks of
// frames can be streamed between buffers of different sizes and layouts.
//
//	src := audioio.NewReader[float32](decoded)
//	dst := audioio.NewWriter[int16](deviceBlock)
//
//	for src.Remaining() > 0 && dst.RemainingMut() > 0 {
//	    audioio.TranslateRemaining(dst, src)
//	}
//
// Cursors saturate: advancing past the end stops at the end.
package audioio
