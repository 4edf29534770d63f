package library_test

import (
	"reflect"
	"testing"

	"mediashelf/internal/library"
	"mediashelf/internal/media"
	"mediashelf/internal/ratings"
)

func TestFilterBySearch(t *testing.T) {
	entries := []media.Entry{
		entry("Come Together.mp3", "Beatles", "Abbey Road", media.KindAudio),
		entry("Bohemian Rhapsody.mp3", "Queen", "A Night at the Opera", media.KindAudio),
		{Name: "scan001.jpg", Path: "/x/scan001.jpg", Kind: media.KindImage},
	}

	if got := library.FilterBySearch(entries, "beatles"); len(got) != 1 || got[0].Artist != "Beatles" {
		t.Fatalf("artist match: %+v", got)
	}
	if got := library.FilterBySearch(entries, "OPERA"); len(got) != 1 || got[0].Album != "A Night at the Opera" {
		t.Fatalf("album match: %+v", got)
	}
	if got := library.FilterBySearch(entries, "scan0"); len(got) != 1 || got[0].Name != "scan001.jpg" {
		t.Fatalf("name match: %+v", got)
	}
	if got := library.FilterBySearch(entries, "zeppelin"); len(got) != 0 {
		t.Fatalf("no-match: %+v", got)
	}
}

func TestFilterBySearchEmptyTermPassesThrough(t *testing.T) {
	entries := []media.Entry{entry("a.mp3", "A", "B", media.KindAudio)}
	got := library.FilterBySearch(entries, "")
	if &got[0] != &entries[0] {
		t.Fatal("empty term should return the original slice")
	}
}

func TestFilterByKind(t *testing.T) {
	entries := []media.Entry{
		entry("a.mp3", "A", "B", media.KindAudio),
		entry("b.jpg", "A", "B", media.KindImage),
		entry("c.mp4", "A", "B", media.KindVideo),
	}
	if got := library.FilterByKind(entries, "audio"); len(got) != 1 || got[0].Kind != media.KindAudio {
		t.Fatalf("audio filter: %+v", got)
	}
	if got := library.FilterByKind(entries, media.KindFilterAll); len(got) != 3 {
		t.Fatalf("all filter: %+v", got)
	}
	if got := library.FilterByKind(entries, "podcast"); len(got) != 0 {
		t.Fatalf("unknown kind should match nothing: %+v", got)
	}
}

func TestFilterByGenre(t *testing.T) {
	entries := []media.Entry{
		{Name: "a.mp3", Genre: "Rock", Kind: media.KindAudio},
		{Name: "b.mp3", Genre: "Jazz", Kind: media.KindAudio},
		{Name: "c.mp3", Kind: media.KindAudio},
	}
	if got := library.FilterByGenre(entries, "rock"); len(got) != 1 || got[0].Name != "a.mp3" {
		t.Fatalf("genre filter: %+v", got)
	}
	if got := library.FilterByGenre(entries, ""); len(got) != 3 {
		t.Fatalf("empty genre passthrough: %+v", got)
	}
}

func ratedGroups() ([]library.ArtistGroup, library.RatingLookup) {
	entries := []media.Entry{
		entry("01.mp3", "Beatles", "Abbey Road", media.KindAudio),
		entry("02.mp3", "Beatles", "Revolver", media.KindAudio),
		entry("03.mp3", "Queen", "A Night at the Opera", media.KindAudio),
	}
	groups := library.GroupByArtist(entries, testPlaceholders)
	store := ratings.NewMemory(map[string]int{
		"Beatles/Abbey Road": 5,
		"Beatles/Revolver":   3,
	})
	return groups, store
}

func TestFilterArtistsByRatingAll(t *testing.T) {
	groups, store := ratedGroups()
	got := library.FilterArtistsByRating(groups, library.RatingFilterAll, store)
	if !reflect.DeepEqual(got, groups) {
		t.Fatal("\"all\" should return the input unchanged")
	}
}

func TestFilterArtistsByRatingThreshold(t *testing.T) {
	groups, store := ratedGroups()
	got := library.FilterArtistsByRating(groups, "3", store)
	if len(got) != 1 || got[0].Name != "Beatles" {
		t.Fatalf("threshold filter groups: %+v", got)
	}
	if len(got[0].Albums) != 2 {
		t.Fatalf("expected both rated Beatles albums, got %+v", got[0].Albums)
	}
}

func TestFilterArtistsByRatingExactFive(t *testing.T) {
	groups, store := ratedGroups()
	got := library.FilterArtistsByRating(groups, "5", store)
	if len(got) != 1 || len(got[0].Albums) != 1 || got[0].Albums[0].Name != "Abbey Road" {
		t.Fatalf("exact-five filter: %+v", got)
	}
}

func TestFilterArtistsByRatingUnrated(t *testing.T) {
	groups, store := ratedGroups()
	got := library.FilterArtistsByRating(groups, library.RatingFilterUnrated, store)
	if len(got) != 1 || got[0].Name != "Queen" {
		t.Fatalf("unrated filter: %+v", got)
	}
}

func TestFilterArtistsByRatingDropsEmptyArtists(t *testing.T) {
	groups, store := ratedGroups()
	got := library.FilterArtistsByRating(groups, "4", store)
	// Revolver (3) and Queen (unrated) drop; Queen must vanish entirely
	// rather than appear with zero albums.
	if len(got) != 1 || got[0].Name != "Beatles" || len(got[0].Albums) != 1 {
		t.Fatalf("drop-empty: %+v", got)
	}
}

func TestFilterArtistsByRatingBogusFilterMatchesNothing(t *testing.T) {
	groups, store := ratedGroups()
	if got := library.FilterArtistsByRating(groups, "great", store); len(got) != 0 {
		t.Fatalf("bogus filter: %+v", got)
	}
}

func TestFilterAlbumsByRating(t *testing.T) {
	entries := []media.Entry{
		entry("01.mp3", "Beatles", "Abbey Road", media.KindAudio),
		entry("02.mp3", "Beatles", "Revolver", media.KindAudio),
	}
	albums := library.GroupByAlbum(entries, testPlaceholders)
	store := ratings.NewMemory(map[string]int{"Beatles/Abbey Road": 5})

	got := library.FilterAlbumsByRating(albums, "5", store)
	if len(got) != 1 || got[0].Name != "Abbey Road" {
		t.Fatalf("album-only rating filter: %+v", got)
	}
}
