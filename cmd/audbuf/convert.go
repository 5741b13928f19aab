// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audbuf"
	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/wav"
)

var (
	keepChannels []int

	convertCmd = &cobra.Command{
		Use:   "convert INPUT OUTPUT.wav",
		Short: "Convert an audio file to 16-bit PCM WAV",
		Long: "Convert an audio file to 16-bit PCM WAV.\n\n" +
			"Use - as OUTPUT to stream the WAV to standard output.",
		Example: "audbuf convert song.mp3 song.wav\naudbuf convert --channels 0 stereo.aiff left.wav",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd.OutOrStdout(), args[0], args[1])
		},
	}
)

func init() {
	convertCmd.Flags().IntSliceVarP(&keepChannels, "channels", "c", nil, "channels to keep (default all)")
}

func convert(stdout io.Writer, inPath, outPath string) error {
	src, f, err := openSource(newRegistry(), inPath)
	if err != nil {
		return err
	}
	defer f.Close()
	defer src.Close()

	buf, err := audbuf.Load(src, cfg.ChunkFrames)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", inPath, err)
	}

	if len(keepChannels) > 0 {
		for _, c := range keepChannels {
			if c < 0 || c >= buf.Channels() {
				return fmt.Errorf("channel %d out of range, %s has %d channels", c, inPath, buf.Channels())
			}
		}

		buf = audbuf.Select(buf, keepChannels...)
	}

	pcm := audbuf.Export16(buf)
	rate := cfg.outputRate(src.SampleRate())

	logger.Info("converting",
		"in", inPath,
		"out", outPath,
		"rate", rate,
		"topology", pcm.Topology(),
	)

	if outPath == "-" {
		return wav.WriteWAV16(stdout, rate, pcm)
	}

	return writeFile(outPath, rate, pcm)
}

// writeFile uses the seeking encoder, which patches the header sizes once
// the data is written.
func writeFile(path string, rate int, pcm *audio.Interleaved[int16]) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create file: %w", err)
	}

	if err := wav.Encode(out, rate, pcm); err != nil {
		out.Close()
		return fmt.Errorf("unable to write %s: %w", path, err)
	}

	return out.Close()
}
