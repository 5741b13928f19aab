// SPDX-License-Identifier: EPL-2.0

// Package oto plays interleaved int16 buffers on the default output device
// through github.com/ebitengine/oto/v3.
//
// The device is fed from a pipe, so each Write blocks until the device has
// consumed the previous data. Any buffer layout can be played by translating
// or copying it into an audio.Interleaved[int16] block first.
package oto
