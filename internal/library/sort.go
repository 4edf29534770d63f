package library

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption selects the album comparator. Unrecognized values behave as
// SortNameAsc.
type SortOption string

const (
	SortNameAsc       SortOption = "name-asc"
	SortNameDesc      SortOption = "name-desc"
	SortRatingDesc    SortOption = "rating-desc"
	SortRatingAsc     SortOption = "rating-asc"
	SortFileCountDesc SortOption = "filecount-desc"
	SortFileCountAsc  SortOption = "filecount-asc"
	SortArtistAsc     SortOption = "artist-asc"
	SortArtistDesc    SortOption = "artist-desc"
)

// SortOptions lists every recognized option, for CLI help and validation.
func SortOptions() []SortOption {
	return []SortOption{
		SortNameAsc, SortNameDesc,
		SortRatingDesc, SortRatingAsc,
		SortFileCountDesc, SortFileCountAsc,
		SortArtistAsc, SortArtistDesc,
	}
}

// SortArtists returns a reordered copy of the artist groups: albums within
// each artist ordered by the option, artists ordered by name (descending only
// for SortArtistDesc). The input and its albums are never mutated, and the
// sort is stable, so sorting an already-sorted collection is a no-op.
func SortArtists(groups []ArtistGroup, option SortOption, lookup RatingLookup) []ArtistGroup {
	coll := collate.New(language.Und)

	sorted := make([]ArtistGroup, len(groups))
	for i, group := range groups {
		sorted[i] = ArtistGroup{
			Name:   group.Name,
			Albums: sortAlbums(group.Albums, option, lookup, coll),
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if option == SortArtistDesc {
			return coll.CompareString(sorted[j].Name, sorted[i].Name) < 0
		}
		return coll.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

// SortAlbums returns a reordered copy of an album-only collection using the
// same comparators. Artist options have no inner-album meaning and fall back
// to name order.
func SortAlbums(albums []Album, option SortOption, lookup RatingLookup) []Album {
	return sortAlbums(albums, option, lookup, collate.New(language.Und))
}

func sortAlbums(albums []Album, option SortOption, lookup RatingLookup, coll *collate.Collator) []Album {
	sorted := make([]Album, len(albums))
	copy(sorted, albums)

	// One lookup per album per sort pass.
	var rating map[string]int
	if option == SortRatingAsc || option == SortRatingDesc {
		rating = make(map[string]int, len(sorted))
		for _, album := range sorted {
			rating[album.Key()] = lookup.Get(album.Key())
		}
	}

	byName := func(i, j int) int {
		return coll.CompareString(sorted[i].Name, sorted[j].Name)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		switch option {
		case SortNameDesc:
			return byName(j, i) < 0
		case SortRatingDesc:
			if ri, rj := rating[sorted[i].Key()], rating[sorted[j].Key()]; ri != rj {
				return ri > rj
			}
			return byName(i, j) < 0
		case SortRatingAsc:
			if ri, rj := rating[sorted[i].Key()], rating[sorted[j].Key()]; ri != rj {
				return ri < rj
			}
			return byName(i, j) < 0
		case SortFileCountDesc:
			if ci, cj := len(sorted[i].Files), len(sorted[j].Files); ci != cj {
				return ci > cj
			}
			return byName(i, j) < 0
		case SortFileCountAsc:
			if ci, cj := len(sorted[i].Files), len(sorted[j].Files); ci != cj {
				return ci < cj
			}
			return byName(i, j) < 0
		default:
			// name-asc, artist options, and anything unrecognized.
			return byName(i, j) < 0
		}
	})
	return sorted
}
