// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrChannelMismatch = errors.New("destination channel count does not match source")
	ErrUnknownFormat   = errors.New("no decoder registered for format")
)
