// Package player plays audio files through the system speaker for the CLI
// shell. Builds without a usable audio backend degrade to a stub that
// reports ErrUnavailable.
package player

import "errors"

// ErrUnsupportedFormat reports an audio file the decoder set cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ErrUnavailable reports a build without audio output support.
var ErrUnavailable = errors.New("audio playback unavailable in this build")
