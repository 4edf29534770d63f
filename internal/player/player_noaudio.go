//go:build !cgo && !windows

package player

import (
	"context"
	"log/slog"
)

// Available indicates whether audio playback is supported in this build.
const Available = false

// Player is a stub for builds without an audio backend.
type Player struct{}

// New creates a stub player.
func New(_ *slog.Logger) *Player {
	return &Player{}
}

// Available reports whether this build can produce audio.
func (p *Player) Available() bool { return false }

// Play always fails with ErrUnavailable.
func (p *Player) Play(_ context.Context, _ string) error {
	return ErrUnavailable
}

// Close is a no-op.
func (p *Player) Close() {}
