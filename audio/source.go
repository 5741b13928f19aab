// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
)

// Source is a stream of decoded audio, such as a file decoder or a device
// capture. It fills caller-owned interleaved buffers.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadFrames decodes up to dst.Frames() frames into dst, whose channel
	// count must equal Channels(). Samples are float32 in [-1,1].
	// Returns the number of frames written. When frames == 0 with err == io.EOF,
	// the stream is finished.
	ReadFrames(dst *Interleaved[float32]) (frames int, err error)
	// Close releases any resources.
	Close() error
}

// CheckDestination returns ErrChannelMismatch if dst cannot receive frames
// from a source with the given channel count.
func CheckDestination(channels int, dst *Interleaved[float32]) error {
	if dst.Channels() != channels {
		return fmt.Errorf("%w: source has %d, destination has %d", ErrChannelMismatch, channels, dst.Channels())
	}

	return nil
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.codecs))
}

// Decode looks up the decoder for format and decodes rd with it.
func (r *Registry) Decode(format string, rd io.Reader) (Source, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return d.Decode(rd)
}
