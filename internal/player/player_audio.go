//go:build cgo || windows

package player

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"mediashelf/internal/logging"
)

// Available indicates whether audio playback is supported in this build.
const Available = true

// Player decodes audio files and streams them to the speaker. One track
// plays at a time; Play blocks until the track ends or ctx is canceled.
type Player struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
	logger      *slog.Logger
}

// New creates a player. The speaker initializes lazily on first Play.
func New(logger *slog.Logger) *Player {
	return &Player{
		sampleRate: beep.SampleRate(44100),
		logger:     logging.NewComponentLogger(logger, "player"),
	}
}

// Available reports whether this build can produce audio.
func (p *Player) Available() bool { return true }

// Play decodes and plays one audio file, blocking until it finishes or ctx
// is canceled. Formats without a decoder (notably .m4a) return
// ErrUnsupportedFormat.
func (p *Player) Play(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open audio file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	case ".flac":
		streamer, format, err = flac.Decode(file)
	default:
		_ = file.Close()
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	if err := p.initSpeaker(); err != nil {
		return err
	}

	var stream beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		stream = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	p.logger.Debug("playing", logging.String("path", path))
	done := make(chan struct{})
	speaker.Play(beep.Seq(stream, beep.Callback(func() { close(done) })))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// Close stops any current playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Clear()
	}
}

func (p *Player) initSpeaker() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}
