// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/utils"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadFrames(dst *audio.Interleaved[float32]) (int, error) {
	if err := audio.CheckDestination(s.channels, dst); err != nil {
		return 0, err
	}

	if dst.Frames() == 0 {
		return 0, nil
	}

	if s.done {
		return 0, io.EOF
	}

	want := dst.Frames() * s.channels

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, want),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:want]

	n, err := s.dec.PCMBuffer(s.intBuf)

	// go-audio reports the end of the sound chunk with either a short read or
	// io.EOF alongside the last samples.
	if errors.Is(err, io.EOF) || (err == nil && n < want) {
		s.done = true
		err = nil
	}

	if err != nil {
		return 0, fmt.Errorf("reading aiff data: %w", err)
	}

	frames := n / s.channels
	out := dst.Slice()

	for i, v := range s.intBuf.Data[:frames*s.channels] {
		out[i] = float32(utils.SignedToFloat(int64(v), s.bitDepth))
	}

	if frames == 0 {
		return 0, io.EOF
	}

	return frames, nil
}

type Decoder struct{}

// Decode reads the COMM chunk of an AIFF stream. go-audio needs to seek, so
// a plain io.Reader is read into memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}

		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
	}, nil
}
