package library

import "mediashelf/internal/media"

// GroupByArtist groups entries into artist groups, each holding albums in
// first-seen order with files in input order. Missing artist or album names
// take the placeholders. Nil input yields an empty result.
func GroupByArtist(entries []media.Entry, ph Placeholders) []ArtistGroup {
	groups := make([]ArtistGroup, 0, 16)
	artistIdx := make(map[string]int, 16)
	albumIdx := make(map[string]int, 32)

	for _, entry := range entries {
		artist := ph.artist(entry.Artist)
		album := ph.album(entry.Album)

		gi, ok := artistIdx[artist]
		if !ok {
			gi = len(groups)
			artistIdx[artist] = gi
			groups = append(groups, ArtistGroup{Name: artist})
		}

		key := AlbumKey(artist, album)
		ai, ok := albumIdx[key]
		if !ok {
			ai = len(groups[gi].Albums)
			albumIdx[key] = ai
			groups[gi].Albums = append(groups[gi].Albums, Album{Artist: artist, Name: album})
		}
		groups[gi].Albums[ai].Files = append(groups[gi].Albums[ai].Files, entry)
	}
	return groups
}

// GroupByAlbum groups entries by album name alone. Albums with the same name
// under different artists merge into one group; the group's rating key uses
// the first member's artist. Nil input yields an empty result.
func GroupByAlbum(entries []media.Entry, ph Placeholders) []Album {
	albums := make([]Album, 0, 16)
	index := make(map[string]int, 16)

	for _, entry := range entries {
		album := ph.album(entry.Album)

		ai, ok := index[album]
		if !ok {
			ai = len(albums)
			index[album] = ai
			albums = append(albums, Album{Artist: ph.artist(entry.Artist), Name: album})
		}
		albums[ai].Files = append(albums[ai].Files, entry)
	}
	return albums
}
