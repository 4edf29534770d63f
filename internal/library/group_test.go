package library_test

import (
	"testing"

	"mediashelf/internal/library"
	"mediashelf/internal/media"
)

var testPlaceholders = library.Placeholders{Artist: "No Artist", Album: "No Album"}

func entry(name, artist, album string, kind media.Kind) media.Entry {
	return media.Entry{
		Name:   name,
		Path:   "/library/" + artist + "/" + album + "/" + name,
		Artist: artist,
		Album:  album,
		Kind:   kind,
	}
}

func TestGroupByArtist(t *testing.T) {
	entries := []media.Entry{
		entry("01.mp3", "Beatles", "Abbey Road", media.KindAudio),
		entry("cover.jpg", "Beatles", "Abbey Road", media.KindImage),
		entry("02.mp3", "Beatles", "Revolver", media.KindAudio),
		entry("03.mp3", "Queen", "A Night at the Opera", media.KindAudio),
	}

	groups := library.GroupByArtist(entries, testPlaceholders)
	if len(groups) != 2 {
		t.Fatalf("got %d artist groups", len(groups))
	}
	beatles := groups[0]
	if beatles.Name != "Beatles" || len(beatles.Albums) != 2 {
		t.Fatalf("unexpected first group: %+v", beatles)
	}
	if beatles.Albums[0].Name != "Abbey Road" || len(beatles.Albums[0].Files) != 2 {
		t.Fatalf("unexpected Abbey Road group: %+v", beatles.Albums[0])
	}
	// Files keep input order.
	if beatles.Albums[0].Files[0].Name != "01.mp3" || beatles.Albums[0].Files[1].Name != "cover.jpg" {
		t.Fatalf("files out of order: %+v", beatles.Albums[0].Files)
	}
	if got := beatles.Albums[0].Key(); got != "Beatles/Abbey Road" {
		t.Fatalf("album key = %q", got)
	}
}

func TestGroupByArtistPlaceholders(t *testing.T) {
	entries := []media.Entry{
		{Name: "loose.mp3", Path: "/library/loose.mp3", Kind: media.KindAudio},
		{Name: "other.mp3", Path: "/library/x/other.mp3", Artist: "X", Kind: media.KindAudio},
	}
	groups := library.GroupByArtist(entries, testPlaceholders)
	if len(groups) != 2 {
		t.Fatalf("got %d groups", len(groups))
	}
	if groups[0].Name != "No Artist" {
		t.Fatalf("placeholder artist = %q", groups[0].Name)
	}
	if groups[0].Albums[0].Name != "No Album" {
		t.Fatalf("placeholder album = %q", groups[0].Albums[0].Name)
	}
	if got := groups[0].Albums[0].Key(); got != "No Artist/No Album" {
		t.Fatalf("placeholder key = %q", got)
	}
	if groups[1].Albums[0].Key() != "X/No Album" {
		t.Fatalf("key = %q", groups[1].Albums[0].Key())
	}
}

func TestGroupByArtistEmptyInput(t *testing.T) {
	if got := library.GroupByArtist(nil, testPlaceholders); len(got) != 0 {
		t.Fatalf("nil input gave %d groups", len(got))
	}
	if got := library.GroupByArtist([]media.Entry{}, testPlaceholders); len(got) != 0 {
		t.Fatalf("empty input gave %d groups", len(got))
	}
}

func TestGroupByAlbumConservesEntries(t *testing.T) {
	entries := []media.Entry{
		entry("01.mp3", "Beatles", "Abbey Road", media.KindAudio),
		entry("02.mp3", "Beatles", "Revolver", media.KindAudio),
		entry("03.mp3", "Queen", "A Night at the Opera", media.KindAudio),
		{Name: "loose.jpg", Path: "/library/loose.jpg", Kind: media.KindImage},
	}
	albums := library.GroupByAlbum(entries, testPlaceholders)

	total := 0
	for _, album := range albums {
		total += len(album.Files)
	}
	if total != len(entries) {
		t.Fatalf("grouped %d files, want %d", total, len(entries))
	}
}

func TestGroupByAlbumMergesSameNameAcrossArtists(t *testing.T) {
	// Documented idiosyncrasy: the album-only view keys on album name
	// alone, and the merged group's rating key uses the first member's
	// artist.
	entries := []media.Entry{
		entry("a.mp3", "Beatles", "Greatest Hits", media.KindAudio),
		entry("b.mp3", "Queen", "Greatest Hits", media.KindAudio),
	}
	albums := library.GroupByAlbum(entries, testPlaceholders)
	if len(albums) != 1 {
		t.Fatalf("got %d albums, want 1 merged", len(albums))
	}
	if len(albums[0].Files) != 2 {
		t.Fatalf("merged album has %d files", len(albums[0].Files))
	}
	if albums[0].Key() != "Beatles/Greatest Hits" {
		t.Fatalf("merged key = %q", albums[0].Key())
	}
}
