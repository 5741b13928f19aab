// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/aiff"
	"github.com/ik5/audbuf/formats/mp3"
	"github.com/ik5/audbuf/formats/vorbis"
	"github.com/ik5/audbuf/formats/wav"
)

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// formatOf maps a file name to a registry key.
func formatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch ext {
	case "aif", "aifc":
		return "aiff"
	case "oga":
		return "ogg"
	case "wave":
		return "wav"
	default:
		return ext
	}
}

// openSource opens path and decodes it with the decoder registered for its
// extension. Closing the returned source does not close the file, so the
// caller closes both.
func openSource(reg *audio.Registry, path string) (audio.Source, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open file: %w", err)
	}

	src, err := reg.Decode(formatOf(path), f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("unable to decode %s: %w", path, err)
	}

	return src, f, nil
}
