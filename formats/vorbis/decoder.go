// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audbuf/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// ReadFrames decodes straight into dst, since oggvorbis already produces
// interleaved float32 samples.
func (s *source) ReadFrames(dst *audio.Interleaved[float32]) (int, error) {
	if err := audio.CheckDestination(s.channels, dst); err != nil {
		return 0, err
	}

	out := dst.Slice()
	if len(out) == 0 {
		return 0, nil
	}

	if s.done {
		return 0, io.EOF
	}

	// Read returns whole frames, counted in samples.
	total := 0
	for total < len(out) {
		n, err := s.dec.Read(out[total:])
		total += n

		if errors.Is(err, io.EOF) {
			s.done = true
			break
		}

		if err != nil {
			return total / s.channels, fmt.Errorf("decoding vorbis: %w", err)
		}

		// A reader that makes no progress has nothing more to give.
		if n == 0 {
			s.done = true
			break
		}
	}

	frames := total / s.channels
	if frames == 0 && s.done {
		return 0, io.EOF
	}

	return frames, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisStream, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
