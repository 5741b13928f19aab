// SPDX-License-Identifier: EPL-2.0

package oto

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	ebioto "github.com/ebitengine/oto/v3"

	"github.com/ik5/audbuf/audio"
)

const drainPoll = 10 * time.Millisecond

// Player streams interleaved int16 frames to the default output device.
// oto allows a single context per process, so only one Player should be
// open at a time.
type Player struct {
	sampleRate int
	channels   int

	otoCtx *ebioto.Context
	player *ebioto.Player
	pr     *io.PipeReader
	pw     *io.PipeWriter

	logger    *log.Logger
	buf       []byte
	draining  bool
	closed    bool
	suspended bool
	mtx       *sync.Mutex
}

// Open creates the oto context and starts a player that reads from an
// internal pipe. It blocks until the device is ready.
func Open(sampleRate, channels int, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.Default()
	}

	op := &ebioto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       ebioto.FormatSignedInt16LE,
	}

	otoCtx, ready, err := ebioto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-ready

	pr, pw := io.Pipe()

	p := &Player{
		sampleRate: sampleRate,
		channels:   channels,
		otoCtx:     otoCtx,
		player:     otoCtx.NewPlayer(pr),
		pr:         pr,
		pw:         pw,
		logger:     logger.WithPrefix("oto"),
		mtx:        &sync.Mutex{},
	}

	p.player.Play()
	p.logger.Info("audio output initialized", "rate", sampleRate, "channels", channels)

	return p, nil
}

func (p *Player) SampleRate() int { return p.sampleRate }
func (p *Player) Channels() int   { return p.channels }

// Write queues every frame of buf for playback. It blocks until the device
// has taken the data, or ctx is done.
func (p *Player) Write(ctx context.Context, buf *audio.Interleaved[int16]) error {
	if err := checkChannels(p.channels, buf); err != nil {
		return err
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed || p.draining {
		return ErrClosed
	}

	p.buf = encodeLE(p.buf, buf.Slice())

	done := make(chan error, 1)
	go func() {
		_, err := p.pw.Write(p.buf)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("pipe write failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// Unblock the pending write.
		p.closeLocked()
		<-done
		return ctx.Err()
	}
}

// Drain stops accepting frames and waits until everything queued has been
// played.
func (p *Player) Drain(ctx context.Context) error {
	p.mtx.Lock()
	if !p.closed && !p.draining {
		p.draining = true
		p.pw.Close()
	}
	p.mtx.Unlock()

	ticker := time.NewTicker(drainPoll)
	defer ticker.Stop()

	for p.player.IsPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	p.logger.Debug("playback drained")

	return nil
}

// Close stops playback immediately and releases the device.
func (p *Player) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.closed {
		p.closeLocked()
	}

	if p.suspended {
		return nil
	}
	p.suspended = true

	if err := p.otoCtx.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend oto context: %w", err)
	}

	return nil
}

func (p *Player) closeLocked() {
	p.closed = true
	p.pw.Close()
	p.pr.Close()

	if err := p.player.Close(); err != nil {
		p.logger.Warn("closing player", "err", err)
	}
}

func checkChannels(channels int, buf *audio.Interleaved[int16]) error {
	if buf.Channels() != channels {
		return fmt.Errorf("%w: device has %d, buffer has %d", audio.ErrChannelMismatch, channels, buf.Channels())
	}

	return nil
}

// encodeLE writes samples as 16-bit little-endian PCM into dst, growing it
// when needed.
func encodeLE(dst []byte, samples []int16) []byte {
	size := len(samples) * 2
	if cap(dst) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]

	for i, s := range samples {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(s))
	}

	return dst
}
