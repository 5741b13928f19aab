package wav

import (
	"errors"
	"fmt"
	"testing"
)

var allErrors = []struct {
	name string
	err  error
	msg  string
}{
	{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
	{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout, "unsupported WAV layout"},
	{"ErrUnsupportedSampleFormat", ErrUnsupportedSampleFormat, "unsupported WAV sample format"},
	{"ErrUnsupportedWavChunks", ErrUnsupportedWavChunks, "unsupported WAV chunks"},
	{"ErrEmptyBuffer", ErrEmptyBuffer, "buffer has no channels"},
}

func TestErrors(t *testing.T) {
	t.Parallel()

	for _, tt := range allErrors {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.msg)
			}

			wrapped := fmt.Errorf("%w: 12 bits", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false", tt.name)
			}

			for _, other := range allErrors {
				if other.name != tt.name && errors.Is(wrapped, other.err) {
					t.Errorf("errors.Is(wrapped %s, %s) = true", tt.name, other.name)
				}
			}
		})
	}
}
