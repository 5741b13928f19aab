package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/audbuf/audio"
)

func mono(samples ...int16) *audio.Interleaved[int16] {
	return audio.InterleavedFromSlice(samples, 1, len(samples))
}

func TestWriteWAV16_ValidFile(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, mono(0, 100, -100, 200, -200)); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	data := buf.Bytes()
	if len(data) != headerSize+10 {
		t.Fatalf("WAV file size = %d, want %d", len(data), headerSize+10)
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, audio.NewInterleaved[int16](2, 0)); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if buf.Len() != headerSize {
		t.Errorf("WAV file size = %d, want %d (header only)", buf.Len(), headerSize)
	}
}

func TestWriteWAV16_NoChannels(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(new(bytes.Buffer), 8000, audio.NewInterleaved[int16](0, 0))
	if !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("WriteWAV16() error = %v, want ErrEmptyBuffer", err)
	}
}

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   int
		sampleRate int
	}{
		{"mono 44.1kHz", 1, 44100},
		{"stereo 48kHz", 2, 48000},
		{"quad 8kHz", 4, 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			frames := 3
			buf := new(bytes.Buffer)

			if err := WriteWAV16(buf, tt.sampleRate, audio.NewInterleaved[int16](tt.channels, frames)); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			data := buf.Bytes()
			dataSize := tt.channels * frames * 2

			checks := []struct {
				field string
				got   uint32
				want  uint32
			}{
				{"RIFF size", binary.LittleEndian.Uint32(data[4:8]), uint32(buf.Len() - 8)},
				{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
				{"format", uint32(binary.LittleEndian.Uint16(data[20:22])), formatPCM},
				{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), uint32(tt.channels)},
				{"sample rate", binary.LittleEndian.Uint32(data[24:28]), uint32(tt.sampleRate)},
				{"byte rate", binary.LittleEndian.Uint32(data[28:32]), uint32(tt.sampleRate * tt.channels * 2)},
				{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), uint32(tt.channels * 2)},
				{"bits", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
				{"data size", binary.LittleEndian.Uint32(data[40:44]), uint32(dataSize)},
			}

			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %d, want %d", c.field, c.got, c.want)
				}
			}

			if string(data[36:40]) != "data" {
				t.Errorf("data marker = %q, want \"data\"", string(data[36:40]))
			}
		})
	}
}

func TestWriteWAV16_SampleData(t *testing.T) {
	t.Parallel()

	stereo := audio.InterleavedFromChannels([]int16{100, 300}, []int16{-200, -400})
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, stereo); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()

	for i, want := range []int16{100, -200, 300, -400} {
		offset := headerSize + i*2
		if got := int16(binary.LittleEndian.Uint16(data[offset:])); got != want {
			t.Errorf("sample[%d] = %d, want %d", i, got, want)
		}
	}

	if data[headerSize] != 0x64 || data[headerSize+1] != 0x00 {
		t.Errorf("first sample bytes = [%02x %02x], want little-endian [64 00]", data[headerSize], data[headerSize+1])
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	original := audio.InterleavedFromChannels(
		[]int16{0, 100, 32767, -32768},
		[]int16{-100, 12345, -6789, 1},
	)
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 16000, original); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src := decode(t, buf.Bytes())

	if src.SampleRate() != 16000 || src.Channels() != 2 {
		t.Fatalf("decoded %d Hz %d channels, want 16000 Hz 2 channels", src.SampleRate(), src.Channels())
	}

	dst := audio.NewInterleaved[float32](2, 4)
	if n, err := src.ReadFrames(dst); n != 4 || err != nil {
		t.Fatalf("ReadFrames() = (%d, %v), want (4, nil)", n, err)
	}

	for i, v := range original.Slice() {
		if got, want := dst.Slice()[i], audio.Translate[int16, float32](v); got != want {
			t.Errorf("sample[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestWriteWAV16_LargeFile(t *testing.T) {
	t.Parallel()

	frames := 44100 * 10
	samples := make([]int16, frames)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 44100, mono(samples...)); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if want := headerSize + frames*2; buf.Len() != want {
		t.Errorf("WAV file size = %d, want %d", buf.Len(), want)
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	stereo := audio.InterleavedFromSlice(samples, 2, 44100)

	b.ReportAllocs()

	for b.Loop() {
		_ = WriteWAV16(new(bytes.Buffer), 44100, stereo)
	}
}

func BenchmarkWriteWAV16_RoundTrip(b *testing.B) {
	samples := make([]int16, 8000)
	dst := audio.NewInterleaved[float32](1, 1024)

	b.ReportAllocs()

	for b.Loop() {
		buf := new(bytes.Buffer)
		_ = WriteWAV16(buf, 8000, mono(samples...))

		src, _ := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
		for {
			if _, err := src.ReadFrames(dst); err != nil {
				break
			}
		}
	}
}
