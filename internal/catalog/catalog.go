// Package catalog is the surface the UI shell consumes: it composes the
// scanner, the grouping/filter/sort engines, the rating store, and the
// playlist constructor behind one handle.
package catalog

import (
	"fmt"
	"log/slog"

	"mediashelf/internal/config"
	"mediashelf/internal/hierarchy"
	"mediashelf/internal/library"
	"mediashelf/internal/logging"
	"mediashelf/internal/media"
	"mediashelf/internal/playlist"
	"mediashelf/internal/ratings"
	"mediashelf/internal/scanner"
)

// Catalog wires the library engines to one configuration and rating store.
// Methods are safe to call repeatedly across re-renders; the catalog itself
// holds no scan state.
type Catalog struct {
	scanner      *scanner.Scanner
	store        ratings.Store
	placeholders library.Placeholders
	logger       *slog.Logger
}

// New builds a catalog from configuration. The rating store is injected so
// callers can pick the persistent SQLite store or an in-memory one.
func New(cfg *config.Config, store ratings.Store, logger *slog.Logger) *Catalog {
	classifier := media.NewClassifier(
		cfg.Library.ExtraImageExts,
		cfg.Library.ExtraVideoExts,
		cfg.Library.ExtraAudioExts,
	)
	return &Catalog{
		scanner:      scanner.New(classifier, hierarchy.Policy(cfg.Library.Hierarchy), logger),
		store:        store,
		placeholders: library.Placeholders{Artist: cfg.Library.ArtistPlaceholder, Album: cfg.Library.AlbumPlaceholder},
		logger:       logging.NewComponentLogger(logger, "catalog"),
	}
}

// Scan walks root and returns its media entries.
func (c *Catalog) Scan(root string) ([]media.Entry, scanner.Summary, error) {
	return c.scanner.Scan(root)
}

// GroupByArtist builds the artist-grouped collection.
func (c *Catalog) GroupByArtist(entries []media.Entry) []library.ArtistGroup {
	return library.GroupByArtist(entries, c.placeholders)
}

// GroupByAlbum builds the album-only collection.
func (c *Catalog) GroupByAlbum(entries []media.Entry) []library.Album {
	return library.GroupByAlbum(entries, c.placeholders)
}

// Search filters entries by a free-text term over name, artist, and album.
func (c *Catalog) Search(entries []media.Entry, term string) []media.Entry {
	return library.FilterBySearch(entries, term)
}

// FilterByKind filters entries by media kind ("all" passes through).
func (c *Catalog) FilterByKind(entries []media.Entry, kind string) []media.Entry {
	return library.FilterByKind(entries, kind)
}

// FilterByGenre filters entries by genre facet (empty passes through).
func (c *Catalog) FilterByGenre(entries []media.Entry, genre string) []media.Entry {
	return library.FilterByGenre(entries, genre)
}

// FilterByRating filters an artist-grouped collection by stored rating.
func (c *Catalog) FilterByRating(groups []library.ArtistGroup, filter library.RatingFilter) []library.ArtistGroup {
	return library.FilterArtistsByRating(groups, filter, c.store)
}

// FilterAlbumsByRating filters an album-only collection by stored rating.
func (c *Catalog) FilterAlbumsByRating(albums []library.Album, filter library.RatingFilter) []library.Album {
	return library.FilterAlbumsByRating(albums, filter, c.store)
}

// Sort reorders an artist-grouped collection.
func (c *Catalog) Sort(groups []library.ArtistGroup, option library.SortOption) []library.ArtistGroup {
	return library.SortArtists(groups, option, c.store)
}

// SortAlbums reorders an album-only collection.
func (c *Catalog) SortAlbums(albums []library.Album, option library.SortOption) []library.Album {
	return library.SortAlbums(albums, option, c.store)
}

// AlbumPlaylist snapshots an album's audio files into a playlist.
func (c *Catalog) AlbumPlaylist(albumFiles []media.Entry) *playlist.Playlist {
	return playlist.New(albumFiles)
}

// Rating looks up the stored rating for an artist/album pair, substituting
// placeholders for missing names.
func (c *Catalog) Rating(artist, album string) int {
	return c.store.Get(c.albumKey(artist, album))
}

// Rate stores a rating for an artist/album pair.
func (c *Catalog) Rate(artist, album string, rating int) error {
	key := c.albumKey(artist, album)
	if err := c.store.Set(key, rating); err != nil {
		return fmt.Errorf("rate %s: %w", key, err)
	}
	c.logger.Info("rating saved", logging.String("key", key), logging.Int("rating", rating))
	return nil
}

func (c *Catalog) albumKey(artist, album string) string {
	if artist == "" {
		artist = c.placeholders.Artist
	}
	if album == "" {
		album = c.placeholders.Album
	}
	return library.AlbumKey(artist, album)
}
