// Package hierarchy derives genre/artist/album tags from a file's
// directory path relative to the scanned root.
//
// Segments are taken literally: splitting happens on forward and back
// slashes with no cleaning, so a doubled separator yields an empty-string
// segment at that position. An absent level is reported as a nil pointer,
// which is distinct from a present-but-empty segment.
package hierarchy

import "strings"

// Policy selects how path segments map onto tags.
type Policy string

const (
	// PolicyArtistAlbum maps segment 0 to artist and segment 1 to album;
	// deeper segments are ignored.
	PolicyArtistAlbum Policy = "artist-album"
	// PolicyGenreArtistAlbum maps segment 0 to genre, segment 1 to artist,
	// and segment 2 to album; deeper segments are ignored. With fewer than
	// three segments, genre stays unset and the available segments map to
	// artist and album in order.
	PolicyGenreArtistAlbum Policy = "genre-artist-album"
)

// Tags is the parse result. Nil means the level was absent from the path.
type Tags struct {
	Genre  *string
	Artist *string
	Album  *string
}

// Parse splits relDir on path separators and applies the policy. An empty
// path yields all-nil tags. An unrecognized policy behaves as
// PolicyArtistAlbum.
func Parse(relDir string, policy Policy) Tags {
	if relDir == "" {
		return Tags{}
	}

	segments := strings.Split(strings.ReplaceAll(relDir, "\\", "/"), "/")

	var tags Tags
	if policy == PolicyGenreArtistAlbum {
		if len(segments) >= 3 {
			tags.Genre = &segments[0]
			tags.Artist = &segments[1]
			tags.Album = &segments[2]
			return tags
		}
		// Shallow trees fall back to artist/album in order.
	}

	tags.Artist = &segments[0]
	if len(segments) >= 2 {
		tags.Album = &segments[1]
	}
	return tags
}
