package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ik5/audbuf"
	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/wav"
)

// setup writes a 3 channel WAV file and resets the command globals.
func setup(t *testing.T) string {
	t.Helper()

	cfg = Config{LogLevel: "error", ChunkFrames: 64}
	logger = log.New(io.Discard)
	keepChannels = nil

	pcm := audio.NewInterleaved[int16](3, 200)
	for c := range 3 {
		pcm.ChannelMut(c).Fill(int16((c + 1) * 1000))
	}

	path := filepath.Join(t.TempDir(), "in.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, 8000, pcm); err != nil {
		t.Fatal(err)
	}

	return path
}

func decodeFile(t *testing.T, r io.Reader) (audio.Source, *audio.Dynamic[float32]) {
	t.Helper()

	src, err := wav.Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := audbuf.Load(src, 128)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	return src, buf
}

func TestConvert_File(t *testing.T) {
	in := setup(t)
	out := filepath.Join(t.TempDir(), "out.wav")

	keepChannels = []int{2, 0}

	if err := convert(io.Discard, in, out); err != nil {
		t.Fatalf("convert() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, buf := decodeFile(t, f)

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}

	if got := buf.Topology(); got != (audio.Topology{Channels: 2, Frames: 200}) {
		t.Fatalf("topology = %v, want 2 channels x 200 frames", got)
	}

	for c, want := range []int16{1000, 3000} {
		v, _ := buf.At(c, 199)
		// int16 -> float32 -> int16 -> float32, as decoded, exported and decoded again.
		w := audio.Translate[int16, float32](audio.Translate[float32, int16](audio.Translate[int16, float32](want)))
		if v != w {
			t.Errorf("channel %d = %v, want %v", c, v, w)
		}
	}
}

func TestConvert_Stdout(t *testing.T) {
	in := setup(t)
	cfg.SampleRate = 16000

	var out bytes.Buffer
	if err := convert(&out, in, "-"); err != nil {
		t.Fatalf("convert() error = %v", err)
	}

	src, buf := decodeFile(t, &out)

	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}

	if buf.Channels() != 3 || buf.Frames() != 200 {
		t.Errorf("topology = %v, want 3 channels x 200 frames", buf.Topology())
	}
}

func TestConvert_Errors(t *testing.T) {
	in := setup(t)

	keepChannels = []int{3}
	if err := convert(io.Discard, in, "-"); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("convert() error = %v, want channel out of range", err)
	}

	keepChannels = nil
	if err := convert(io.Discard, filepath.Join(t.TempDir(), "x.flac"), "-"); err == nil {
		t.Error("convert() of a missing file succeeded")
	}

	bogus := filepath.Join(t.TempDir(), "x.flac")
	if err := os.WriteFile(bogus, []byte("fLaC"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := convert(io.Discard, bogus, "-"); err == nil || !strings.Contains(err.Error(), "no decoder registered") {
		t.Errorf("convert() error = %v, want unknown format", err)
	}
}

func TestWriteInfo(t *testing.T) {
	t.Parallel()

	buf := audio.NewDynamic[float32](2, 4000)
	buf.ChannelMut(0).Fill(-0.5)
	buf.SetAt(1, 10, 1)

	var out bytes.Buffer
	writeInfo(&out, "x.wav", 8000, buf)

	want := "x.wav: 8000 Hz, 2 channels x 4000 frames, 500ms\n" +
		"  channel 0: peak 0.500\n" +
		"  channel 1: peak 1.000\n"

	if out.String() != want {
		t.Errorf("writeInfo() =\n%s\nwant\n%s", out.String(), want)
	}
}
