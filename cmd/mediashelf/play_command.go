package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"mediashelf/internal/catalog"
	"mediashelf/internal/library"
	"mediashelf/internal/player"
	"mediashelf/internal/playlist"
	"mediashelf/internal/ratings"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var artistFilter string
	var startTrack int
	var listOnly bool

	cmd := &cobra.Command{
		Use:   "play <folder> <album>",
		Short: "Play an album's audio files in order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(cat *catalog.Catalog, _ ratings.Store) error {
				entries, _, err := cat.Scan(args[0])
				if err != nil {
					return err
				}

				album, err := findAlbum(cat.GroupByArtist(entries), args[1], artistFilter)
				if err != nil {
					return err
				}

				pl := cat.AlbumPlaylist(album.Files)
				if pl.Len() == 0 {
					return fmt.Errorf("album %q has no audio files", album.Name)
				}
				if startTrack > 0 {
					if _, ok := pl.SetIndex(startTrack - 1); !ok {
						return fmt.Errorf("track %d out of range (album has %d tracks)", startTrack, pl.Len())
					}
				}

				out := cmd.OutOrStdout()
				if listOnly {
					printTrackList(cmd, album, pl)
					return nil
				}

				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				p := player.New(logger)
				defer p.Close()
				if !p.Available() {
					return player.ErrUnavailable
				}

				playCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()

				fmt.Fprintf(out, "Playing %s / %s (%d tracks)\n", album.Artist, album.Name, pl.Len())
				for played := 0; played < pl.Len(); played++ {
					track, ok := pl.Current()
					if !ok {
						break
					}
					fmt.Fprintf(out, "  %d/%d %s\n", pl.Index()+1, pl.Len(), track.Name)
					if err := p.Play(playCtx, track.Path); err != nil {
						return err
					}
					pl.Next()
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&artistFilter, "artist", "a", "", "Disambiguate albums with the same name")
	cmd.Flags().IntVar(&startTrack, "track", 0, "Start at this track number (1-based)")
	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "Print the track list without playing")
	return cmd
}

func findAlbum(groups []library.ArtistGroup, albumName, artistFilter string) (library.Album, error) {
	var matches []library.Album
	for _, group := range groups {
		if artistFilter != "" && !strings.EqualFold(group.Name, artistFilter) {
			continue
		}
		for _, album := range group.Albums {
			if strings.EqualFold(album.Name, albumName) {
				matches = append(matches, album)
			}
		}
	}

	switch len(matches) {
	case 0:
		if artistFilter != "" {
			return library.Album{}, fmt.Errorf("album %q by %q not found", albumName, artistFilter)
		}
		return library.Album{}, fmt.Errorf("album %q not found", albumName)
	case 1:
		return matches[0], nil
	default:
		artists := lo.Map(matches, func(album library.Album, _ int) string { return album.Artist })
		return library.Album{}, fmt.Errorf("album %q matches multiple artists (%s); use --artist",
			albumName, strings.Join(artists, ", "))
	}
}

func printTrackList(cmd *cobra.Command, album library.Album, pl *playlist.Playlist) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s / %s\n", album.Artist, album.Name)
	writeTrackTable(out, pl.Files())
}
