package library

import "mediashelf/internal/media"

// Placeholders substitute for missing artist or album names so group labels
// and rating keys are always well-defined. Never empty.
type Placeholders struct {
	Artist string
	Album  string
}

// DefaultPlaceholders are the labels used when config does not override
// them. Rating keys embed these strings, so changing them orphans
// previously stored ratings.
var DefaultPlaceholders = Placeholders{
	Artist: "アーティスト名なし",
	Album:  "アルバム名なし",
}

func (p Placeholders) artist(name string) string {
	if name == "" {
		return p.Artist
	}
	return name
}

func (p Placeholders) album(name string) string {
	if name == "" {
		return p.Album
	}
	return name
}

// AlbumKey builds the composite rating key for an artist/album pair. Callers
// pass placeholder-substituted names; the key never contains an empty part.
func AlbumKey(artist, album string) string {
	return artist + "/" + album
}

// Album is one album group: its display name, the artist it belongs to
// (placeholder-substituted, used for the rating key), and its files in scan
// order.
type Album struct {
	Artist string
	Name   string
	Files  []media.Entry
}

// Key returns the rating key for this album.
func (a Album) Key() string {
	return AlbumKey(a.Artist, a.Name)
}

// ArtistGroup is one artist's albums in first-seen order.
type ArtistGroup struct {
	Name   string
	Albums []Album
}

// RatingLookup resolves an album key to its stored rating. ratings.Store
// satisfies this; tests can supply a map-backed fake.
type RatingLookup interface {
	Get(key string) int
}
