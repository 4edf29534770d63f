package library

import (
	"strconv"
	"strings"

	"mediashelf/internal/media"
)

// FilterBySearch keeps entries whose name, artist, or album contains term,
// case-insensitively. An empty term passes the input through unchanged.
// Entries with an empty field simply don't match on that field.
func FilterBySearch(entries []media.Entry, term string) []media.Entry {
	if term == "" {
		return entries
	}
	term = strings.ToLower(term)

	matched := make([]media.Entry, 0, len(entries))
	for _, entry := range entries {
		if containsFold(entry.Name, term) ||
			containsFold(entry.Artist, term) ||
			containsFold(entry.Album, term) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func containsFold(field, lowerTerm string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), lowerTerm)
}

// FilterByKind keeps entries of the given kind. The value "all" passes the
// input through unchanged; an unrecognized kind matches nothing.
func FilterByKind(entries []media.Entry, kind string) []media.Entry {
	if kind == media.KindFilterAll {
		return entries
	}

	matched := make([]media.Entry, 0, len(entries))
	for _, entry := range entries {
		if string(entry.Kind) == kind {
			matched = append(matched, entry)
		}
	}
	return matched
}

// FilterByGenre keeps entries whose genre equals the given value,
// case-insensitively. An empty genre passes the input through unchanged.
// Genre is only populated under the genre-artist-album hierarchy policy.
func FilterByGenre(entries []media.Entry, genre string) []media.Entry {
	if genre == "" {
		return entries
	}

	matched := make([]media.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.EqualFold(entry.Genre, genre) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// RatingFilter selects album groups by their stored rating.
type RatingFilter string

const (
	// RatingFilterAll keeps everything.
	RatingFilterAll RatingFilter = "all"
	// RatingFilterUnrated keeps groups whose rating is exactly 0.
	RatingFilterUnrated RatingFilter = "unrated"
)

// matches reports whether a rating satisfies the filter. Numeric filters
// "1".."4" mean at-least; "5" means exactly five (ratings cap at five, so
// the comparisons agree, but the strict form is the documented contract).
// Anything unparsable matches nothing.
func (f RatingFilter) matches(rating int) bool {
	switch f {
	case RatingFilterAll:
		return true
	case RatingFilterUnrated:
		return rating == 0
	case "5":
		return rating == 5
	}
	threshold, err := strconv.Atoi(string(f))
	if err != nil {
		return false
	}
	return rating >= threshold
}

// FilterArtistsByRating keeps albums whose rating satisfies the filter,
// dropping artist groups left with no albums. The rating is looked up once
// per album via its key. RatingFilterAll returns the input unchanged.
func FilterArtistsByRating(groups []ArtistGroup, filter RatingFilter, lookup RatingLookup) []ArtistGroup {
	if filter == RatingFilterAll {
		return groups
	}

	filtered := make([]ArtistGroup, 0, len(groups))
	for _, group := range groups {
		albums := FilterAlbumsByRating(group.Albums, filter, lookup)
		if len(albums) == 0 {
			continue
		}
		filtered = append(filtered, ArtistGroup{Name: group.Name, Albums: albums})
	}
	return filtered
}

// FilterAlbumsByRating keeps albums whose rating satisfies the filter.
// RatingFilterAll returns the input unchanged.
func FilterAlbumsByRating(albums []Album, filter RatingFilter, lookup RatingLookup) []Album {
	if filter == RatingFilterAll {
		return albums
	}

	filtered := make([]Album, 0, len(albums))
	for _, album := range albums {
		if filter.matches(lookup.Get(album.Key())) {
			filtered = append(filtered, album)
		}
	}
	return filtered
}
