// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Config holds the defaults read from the environment. Command line flags
// override them. SampleRate is written into WAV headers; zero keeps the
// source rate.
type Config struct {
	LogLevel    string `env:"AUDBUF_LOG_LEVEL"    envDefault:"info"`
	ChunkFrames int    `env:"AUDBUF_CHUNK_FRAMES" envDefault:"4096"`
	SampleRate  int    `env:"AUDBUF_SAMPLE_RATE"  envDefault:"0"`
}

var (
	errChunkFrames = errors.New("chunk frames must be positive")
	errSampleRate  = errors.New("sample rate must not be negative")
)

func loadConfig(cmd *cobra.Command) (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("error parsing config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("chunk-frames") {
		cfg.ChunkFrames = chunkFrames
	}
	if flags.Changed("sample-rate") {
		cfg.SampleRate = sampleRate
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.ChunkFrames <= 0 {
		return fmt.Errorf("%w: %d", errChunkFrames, c.ChunkFrames)
	}

	if c.SampleRate < 0 {
		return fmt.Errorf("%w: %d", errSampleRate, c.SampleRate)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return nil
}

// outputRate returns the rate to write for a source decoded at srcRate.
func (c Config) outputRate(srcRate int) int {
	if c.SampleRate > 0 {
		return c.SampleRate
	}

	return srcRate
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "audbuf",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
