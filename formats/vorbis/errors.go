// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisStream indicates the input has no valid Ogg Vorbis headers.
var ErrNotVorbisStream = errors.New("not an Ogg Vorbis stream")
