// Package playlist implements the album playback cursor.
//
// A playlist is an immutable snapshot of one album's audio files taken at
// creation time. Navigation wraps around: while the playlist is non-empty
// there is always a next and a previous track. All operations are
// synchronous; the only state is the cursor.
package playlist

import "mediashelf/internal/media"

// Playlist is a cursor over an album's audio files. Create one with New;
// the zero value is a valid empty playlist.
type Playlist struct {
	files []media.Entry
	index int
}

// FilterAudio returns the audio-only subset of files in original order.
func FilterAudio(files []media.Entry) []media.Entry {
	audio := make([]media.Entry, 0, len(files))
	for _, file := range files {
		if file.Kind == media.KindAudio {
			audio = append(audio, file)
		}
	}
	return audio
}

// New builds a playlist from an album's files, keeping only audio entries.
// The snapshot is independent of the input slice.
func New(albumFiles []media.Entry) *Playlist {
	return &Playlist{files: FilterAudio(albumFiles)}
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.files)
}

// Files returns a copy of the track list.
func (p *Playlist) Files() []media.Entry {
	return append([]media.Entry(nil), p.files...)
}

// Index returns the cursor position; 0 for an empty playlist.
func (p *Playlist) Index() int {
	return p.index
}

// Current returns the track at the cursor, or false when empty.
func (p *Playlist) Current() (media.Entry, bool) {
	if len(p.files) == 0 {
		return media.Entry{}, false
	}
	return p.files[p.index], true
}

// Next advances the cursor, wrapping from the last track to the first, and
// returns the new current track. Empty playlists return false unchanged.
func (p *Playlist) Next() (media.Entry, bool) {
	if len(p.files) == 0 {
		return media.Entry{}, false
	}
	p.index = (p.index + 1) % len(p.files)
	return p.files[p.index], true
}

// Previous moves the cursor back, wrapping from the first track to the last,
// and returns the new current track. Empty playlists return false unchanged.
func (p *Playlist) Previous() (media.Entry, bool) {
	if len(p.files) == 0 {
		return media.Entry{}, false
	}
	p.index = (p.index - 1 + len(p.files)) % len(p.files)
	return p.files[p.index], true
}

// SetIndex jumps to track i. An out-of-range index is a no-op returning false.
func (p *Playlist) SetIndex(i int) (media.Entry, bool) {
	if i < 0 || i >= len(p.files) {
		return media.Entry{}, false
	}
	p.index = i
	return p.files[p.index], true
}

// IndexOfPath returns the position of the track with the given path, or -1.
func (p *Playlist) IndexOfPath(path string) int {
	for i, file := range p.files {
		if file.Path == path {
			return i
		}
	}
	return -1
}

// SetByPath jumps to the track with the given path. A miss is a no-op
// returning false.
func (p *Playlist) SetByPath(path string) (media.Entry, bool) {
	i := p.IndexOfPath(path)
	if i == -1 {
		return media.Entry{}, false
	}
	return p.SetIndex(i)
}

// Reset moves the cursor to the first track unconditionally and returns it,
// or false when empty.
func (p *Playlist) Reset() (media.Entry, bool) {
	p.index = 0
	return p.Current()
}

// HasNext reports whether Next would return a track. Because navigation
// wraps, this is true whenever the playlist is non-empty.
func (p *Playlist) HasNext() bool {
	return len(p.files) > 0
}

// HasPrevious reports whether Previous would return a track.
func (p *Playlist) HasPrevious() bool {
	return len(p.files) > 0
}
