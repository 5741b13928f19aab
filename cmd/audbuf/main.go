// SPDX-License-Identifier: EPL-2.0

// Command audbuf inspects, converts and plays audio files using the audbuf
// buffer engine.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	logLevel    string
	chunkFrames int
	sampleRate  int

	cfg    Config
	logger *log.Logger

	rootCmd = &cobra.Command{
		Use:           "audbuf",
		Short:         "Inspect, convert and play audio files",
		SilenceErrors: false,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfg, err = loadConfig(cmd); err != nil {
				return err
			}

			logger = newLogger(cfg.LogLevel)
			logger.Debug("configuration loaded",
				"chunk_frames", cfg.ChunkFrames,
				"sample_rate", cfg.SampleRate,
			)

			return nil
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&chunkFrames, "chunk-frames", 4096, "frames decoded per read")
	rootCmd.PersistentFlags().IntVar(&sampleRate, "sample-rate", 0, "sample rate written to WAV headers (0 keeps the source rate)")

	rootCmd.AddCommand(infoCmd, convertCmd, playCmd)
}
