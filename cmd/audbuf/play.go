// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/device/oto"
	"github.com/ik5/audbuf/wrap"
)

var playCmd = &cobra.Command{
	Use:     "play FILE",
	Short:   "Play an audio file on the default output device",
	Example: "audbuf play song.ogg",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return play(ctx, args[0])
	},
}

func play(ctx context.Context, path string) error {
	src, f, err := openSource(newRegistry(), path)
	if err != nil {
		return err
	}
	defer f.Close()
	defer src.Close()

	player, err := oto.Open(src.SampleRate(), src.Channels(), logger)
	if err != nil {
		return err
	}
	defer player.Close()

	logger.Info("playing", "file", path, "rate", src.SampleRate(), "channels", src.Channels())

	block := audio.NewInterleaved[float32](src.Channels(), cfg.ChunkFrames)
	pcm := audio.NewInterleaved[int16](src.Channels(), cfg.ChunkFrames)

	for {
		n, err := src.ReadFrames(block)
		if n > 0 {
			pcm.Resize(n)
			audio.TranslateBuf[int16, float32](pcm, wrap.LimitFrames[float32](block, n))

			if werr := player.Write(ctx, pcm); werr != nil {
				return werr
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("unable to read %s: %w", path, err)
		}
	}

	return player.Drain(ctx)
}
