// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audbuf"
	"github.com/ik5/audbuf/audio"
)

var infoCmd = &cobra.Command{
	Use:     "info FILE...",
	Short:   "Print the layout and levels of audio files",
	Example: "audbuf info song.mp3\naudbuf info a.wav b.aiff",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := newRegistry()

		for _, path := range args {
			if err := printInfo(cmd.OutOrStdout(), reg, path); err != nil {
				return err
			}
		}

		return nil
	},
}

func printInfo(w io.Writer, reg *audio.Registry, path string) error {
	src, f, err := openSource(reg, path)
	if err != nil {
		return err
	}
	defer f.Close()
	defer src.Close()

	buf, err := audbuf.Load(src, cfg.ChunkFrames)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", path, err)
	}

	logger.Debug("decoded", "file", path, "topology", buf.Topology())

	writeInfo(w, path, src.SampleRate(), buf)

	return nil
}

func writeInfo(w io.Writer, path string, rate int, buf *audio.Dynamic[float32]) {
	duration := time.Duration(0)
	if rate > 0 {
		duration = time.Duration(buf.Frames()) * time.Second / time.Duration(rate)
	}

	fmt.Fprintf(w, "%s: %d Hz, %s, %s\n", path, rate, buf.Topology(), duration.Round(time.Millisecond))

	for c, ch := range buf.Iter() {
		fmt.Fprintf(w, "  channel %d: peak %.3f\n", c, peak(ch))
	}
}

func peak(ch audio.Channel[float32]) float64 {
	var p float64
	for v := range ch.Values() {
		p = max(p, math.Abs(float64(v)))
	}

	return p
}
