package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"mediashelf/internal/catalog"
	"mediashelf/internal/library"
	"mediashelf/internal/media"
	"mediashelf/internal/ratings"
	"mediashelf/internal/scanner"
)

const (
	groupModeArtist = "artist"
	groupModeAlbum  = "album"

	watchDebounce = 500 * time.Millisecond
)

type albumsOptions struct {
	groupMode  string
	sortOption library.SortOption
	rating     library.RatingFilter
	search     string
	kind       string
	genre      string
	json       bool
}

func newAlbumsCommand(ctx *commandContext) *cobra.Command {
	var groupMode string
	var sortFlag string
	var ratingFlag string
	var searchTerm string
	var kindFilter string
	var genreFilter string
	var jsonOutput bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "albums <folder>",
		Short: "Browse a folder as artist and album groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupMode != groupModeArtist && groupMode != groupModeAlbum {
				return fmt.Errorf("unknown group mode %q (valid: artist, album)", groupMode)
			}
			sortOption, err := parseSortOption(sortFlag)
			if err != nil {
				return err
			}
			opts := albumsOptions{
				groupMode:  groupMode,
				sortOption: sortOption,
				rating:     library.RatingFilter(ratingFlag),
				search:     searchTerm,
				kind:       kindFilter,
				genre:      genreFilter,
				json:       jsonOutput,
			}

			return ctx.withCatalog(func(cat *catalog.Catalog, _ ratings.Store) error {
				if !watch {
					return renderAlbums(cmd, cat, args[0], opts)
				}
				return watchAlbums(cmd, ctx, cat, args[0], opts)
			})
		},
	}

	cmd.Flags().StringVarP(&groupMode, "group", "g", groupModeArtist, "Grouping mode (artist, album)")
	cmd.Flags().StringVar(&sortFlag, "sort", string(library.SortNameAsc), "Sort order ("+sortOptionList()+")")
	cmd.Flags().StringVarP(&ratingFlag, "rating", "r", string(library.RatingFilterAll), "Filter by rating (all, unrated, 1-5)")
	cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Filter by name, artist, or album substring")
	cmd.Flags().StringVarP(&kindFilter, "type", "t", media.KindFilterAll, "Filter by media type (image, video, audio, all)")
	cmd.Flags().StringVar(&genreFilter, "genre", "", "Filter by genre (genre-artist-album hierarchy only)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit groups as JSON")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render when the folder changes")
	return cmd
}

func renderAlbums(cmd *cobra.Command, cat *catalog.Catalog, root string, opts albumsOptions) error {
	entries, _, err := cat.Scan(root)
	if err != nil {
		return err
	}

	entries = cat.FilterByKind(entries, opts.kind)
	entries = cat.FilterByGenre(entries, opts.genre)
	entries = cat.Search(entries, opts.search)

	out := cmd.OutOrStdout()
	if opts.groupMode == groupModeAlbum {
		albums := cat.GroupByAlbum(entries)
		albums = cat.FilterAlbumsByRating(albums, opts.rating)
		albums = cat.SortAlbums(albums, opts.sortOption)
		if opts.json {
			return writeJSON(cmd, albumViews(cat, albums))
		}
		printAlbumTable(out, cat, albums)
		return nil
	}

	groups := cat.GroupByArtist(entries)
	groups = cat.FilterByRating(groups, opts.rating)
	groups = cat.Sort(groups, opts.sortOption)
	if opts.json {
		return writeJSON(cmd, artistViews(cat, groups))
	}
	printArtistTables(out, cat, groups)
	return nil
}

func watchAlbums(cmd *cobra.Command, cmdCtx *commandContext, cat *catalog.Catalog, root string, opts albumsOptions) error {
	logger, err := cmdCtx.ensureLogger()
	if err != nil {
		return err
	}

	watcher, err := scanner.Watch(root, watchDebounce, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := renderAlbums(cmd, cat, root, opts); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-watcher.C():
			fmt.Fprintln(cmd.OutOrStdout())
			if err := renderAlbums(cmd, cat, root, opts); err != nil {
				return err
			}
		}
	}
}

func printArtistTables(out io.Writer, cat *catalog.Catalog, groups []library.ArtistGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(out, "No albums found")
		return
	}
	for _, group := range groups {
		fmt.Fprintln(out, group.Name)
		printAlbumTable(out, cat, group.Albums)
	}
}

func printAlbumTable(out io.Writer, cat *catalog.Catalog, albums []library.Album) {
	if len(albums) == 0 {
		fmt.Fprintln(out, "No albums found")
		return
	}
	writeAlbumTable(out, cat, albums)
}

type albumView struct {
	Album  string `json:"album"`
	Artist string `json:"artist"`
	Files  int    `json:"files"`
	Rating int    `json:"rating"`
}

type artistView struct {
	Artist string      `json:"artist"`
	Albums []albumView `json:"albums"`
}

func albumViews(cat *catalog.Catalog, albums []library.Album) []albumView {
	return lo.Map(albums, func(album library.Album, _ int) albumView {
		return albumView{
			Album:  album.Name,
			Artist: album.Artist,
			Files:  len(album.Files),
			Rating: cat.Rating(album.Artist, album.Name),
		}
	})
}

func artistViews(cat *catalog.Catalog, groups []library.ArtistGroup) []artistView {
	return lo.Map(groups, func(group library.ArtistGroup, _ int) artistView {
		return artistView{
			Artist: group.Name,
			Albums: albumViews(cat, group.Albums),
		}
	})
}
