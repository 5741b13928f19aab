// SPDX-License-Identifier: EPL-2.0

package oto

import "errors"

// ErrClosed is returned when writing to a player that was closed or is
// draining.
var ErrClosed = errors.New("player is closed")
