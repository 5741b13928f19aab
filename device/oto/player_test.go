package oto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audbuf/audio"
)

func TestEncodeLE(t *testing.T) {
	t.Parallel()

	got := encodeLE(nil, []int16{0x1234, -1, 0})
	want := []byte{0x34, 0x12, 0xFF, 0xFF, 0x00, 0x00}

	if !bytes.Equal(got, want) {
		t.Errorf("encodeLE() = % x, want % x", got, want)
	}

	// A larger buffer is reused and trimmed.
	reused := encodeLE(make([]byte, 16), []int16{1})
	if len(reused) != 2 || cap(reused) != 16 {
		t.Errorf("encodeLE() reuse len=%d cap=%d, want len=2 cap=16", len(reused), cap(reused))
	}
}

func TestCheckChannels(t *testing.T) {
	t.Parallel()

	if err := checkChannels(2, audio.NewInterleaved[int16](2, 4)); err != nil {
		t.Errorf("checkChannels(2, stereo) = %v, want nil", err)
	}

	if err := checkChannels(2, audio.NewInterleaved[int16](1, 4)); !errors.Is(err, audio.ErrChannelMismatch) {
		t.Errorf("checkChannels(2, mono) = %v, want ErrChannelMismatch", err)
	}
}
