// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audbuf/audio"
)

// go-mp3 always produces interleaved stereo int16 little-endian PCM.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

var toFloat = audio.Translator[int16, float32]()

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadFrames(dst *audio.Interleaved[float32]) (int, error) {
	if err := audio.CheckDestination(channels, dst); err != nil {
		return 0, err
	}

	if dst.Frames() == 0 {
		return 0, nil
	}

	if s.done {
		return 0, io.EOF
	}

	size := dst.Frames() * bytesPerFrame
	if cap(s.buf) < size {
		s.buf = make([]byte, size)
	}
	buf := s.buf[:size]

	// go-mp3 may return fewer bytes than a whole frame per call.
	n, err := io.ReadFull(s.dec, buf)

	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
	default:
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	frames := n / bytesPerFrame
	out := dst.Slice()

	for i := range frames * channels {
		out[i] = toFloat(int16(binary.LittleEndian.Uint16(buf[2*i:])))
	}

	if frames == 0 {
		return 0, io.EOF
	}

	return frames, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3Stream, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}
