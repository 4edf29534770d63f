package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mediashelf/internal/catalog"
	"mediashelf/internal/library"
	"mediashelf/internal/media"
)

func newTableWriter(out io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleRounded)
	return tw
}

// writeEntryTable renders scanned entries for the scan view.
func writeEntryTable(out io.Writer, entries []media.Entry) {
	tw := newTableWriter(out)
	tw.AppendHeader(table.Row{"Name", "Type", "Size", "Artist", "Album"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.Name, string(entry.Kind), formatSize(entry.Size), entry.Artist, entry.Album,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}

// writeAlbumTable renders one album group for the browsing view, with the
// star column colorized when out is a terminal.
func writeAlbumTable(out io.Writer, cat *catalog.Catalog, albums []library.Album) {
	tw := newTableWriter(out)
	tw.AppendHeader(table.Row{"Album", "Artist", "Files", "Rating"})
	for _, album := range albums {
		tw.AppendRow(table.Row{
			album.Name, album.Artist, len(album.Files),
			renderStars(cat.Rating(album.Artist, album.Name)),
		})
	}
	configs := []table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	}
	if shouldColorize(out) {
		configs = append(configs, table.ColumnConfig{Number: 4, Colors: text.Colors{text.FgYellow}})
	}
	tw.SetColumnConfigs(configs)
	tw.Render()
}

// writeTrackTable renders an album playlist in track order.
func writeTrackTable(out io.Writer, tracks []media.Entry) {
	tw := newTableWriter(out)
	tw.AppendHeader(table.Row{"#", "Track", "Size"})
	for i, track := range tracks {
		tw.AppendRow(table.Row{i + 1, track.Name, formatSize(track.Size)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}
