// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/utils"
)

const (
	formatPCM        = 1
	formatFloat      = 3
	formatExtensible = 0xFFFE

	// Streaming writers leave the data size at its maximum.
	unknownDataSize = 0xFFFFFFFF
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	width      int   // bytes per sample
	remaining  int64 // bytes left in the data chunk
	decode     func(b []byte) float32
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadFrames(dst *audio.Interleaved[float32]) (int, error) {
	if err := audio.CheckDestination(s.channels, dst); err != nil {
		return 0, err
	}

	if dst.Frames() == 0 {
		return 0, nil
	}

	block := s.width * s.channels
	if s.remaining < int64(block) {
		return 0, io.EOF
	}

	want := min(int64(dst.Frames()), s.remaining/int64(block))
	size := int(want) * block

	if cap(s.buf) < size {
		s.buf = make([]byte, size)
	}
	buf := s.buf[:size]

	n, err := io.ReadFull(s.r, buf)
	frames := n / block
	s.remaining -= int64(n)

	out := dst.Slice()
	for i := range frames * s.channels {
		out[i] = s.decode(buf[i*s.width:])
	}

	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// Truncated data chunk; keep what was complete.
		s.remaining = 0
		if frames == 0 {
			return 0, io.EOF
		}
	default:
		return frames, fmt.Errorf("reading wav data: %w", err)
	}

	return frames, nil
}

// sampleDecoder returns the conversion of one little-endian sample into
// float32.
func sampleDecoder(format uint16, bits int) (func(b []byte) float32, error) {
	switch {
	case format == formatPCM && bits == 8:
		// 8-bit WAV is offset binary.
		return func(b []byte) float32 { return audio.Translate[uint8, float32](b[0]) }, nil

	case format == formatPCM && bits == 16:
		return func(b []byte) float32 {
			return audio.Translate[int16, float32](int16(binary.LittleEndian.Uint16(b)))
		}, nil

	case format == formatPCM && bits == 24:
		return func(b []byte) float32 {
			v := int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8
			return float32(utils.SignedToFloat(int64(v), 24))
		}, nil

	case format == formatPCM && bits == 32:
		return func(b []byte) float32 {
			return audio.Translate[int32, float32](int32(binary.LittleEndian.Uint32(b)))
		}, nil

	case format == formatFloat && bits == 32:
		return func(b []byte) float32 {
			return math.Float32frombits(binary.LittleEndian.Uint32(b))
		}, nil

	case format == formatFloat && bits == 64:
		return func(b []byte) float32 {
			return float32(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		}, nil
	}

	return nil, fmt.Errorf("%w: format %d with %d bits", ErrUnsupportedSampleFormat, format, bits)
}

type Decoder struct{}

// Decode parses the RIFF header and positions the source at the start of the
// data chunk. Chunks other than fmt and data are skipped.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	header := make([]byte, 12)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrNotWavFile
		}

		return nil, fmt.Errorf("reading wav header: %w", err)
	}

	if string(header[:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var (
		src     *wavSource
		chunk   = make([]byte, 8)
		hasData bool
	)

	for !hasData {
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, ErrUnsupportedWavChunks
		}

		id := string(chunk[:4])
		size := int64(binary.LittleEndian.Uint32(chunk[4:8]))

		switch id {
		case "fmt ":
			var err error
			if src, err = readFormat(r, size); err != nil {
				return nil, err
			}

		case "data":
			if src == nil {
				return nil, ErrUnsupportedWavChunks
			}

			src.r = r
			src.remaining = size
			if size == unknownDataSize {
				src.remaining = math.MaxInt64
			}
			hasData = true

		default:
			if _, err := io.CopyN(io.Discard, r, size+size&1); err != nil {
				return nil, ErrUnsupportedWavChunks
			}
		}
	}

	return src, nil
}

func readFormat(r io.Reader, size int64) (*wavSource, error) {
	if size < 16 || size > 1<<16 {
		return nil, ErrUnsupportedWavLayout
	}

	body := make([]byte, size+size&1)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, ErrUnsupportedWavLayout
	}

	format := binary.LittleEndian.Uint16(body[0:2])
	channels := int(binary.LittleEndian.Uint16(body[2:4]))
	sampleRate := int(binary.LittleEndian.Uint32(body[4:8]))
	bits := int(binary.LittleEndian.Uint16(body[14:16]))

	if format == formatExtensible {
		if size < 40 {
			return nil, ErrUnsupportedWavLayout
		}
		// The sub-format GUID starts with the real format tag.
		format = binary.LittleEndian.Uint16(body[24:26])
	}

	if channels == 0 || sampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	decode, err := sampleDecoder(format, bits)
	if err != nil {
		return nil, err
	}

	return &wavSource{
		sampleRate: sampleRate,
		channels:   channels,
		width:      bits / 8,
		decode:     decode,
	}, nil
}
