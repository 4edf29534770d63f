package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediashelf/internal/catalog"
	"mediashelf/internal/media"
	"mediashelf/internal/ratings"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var kindFilter string
	var searchTerm string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan <folder>",
		Short: "Scan a folder and list its media files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(cat *catalog.Catalog, _ ratings.Store) error {
				entries, summary, err := cat.Scan(args[0])
				if err != nil {
					return err
				}

				entries = cat.FilterByKind(entries, kindFilter)
				entries = cat.Search(entries, searchTerm)

				if jsonOutput {
					return writeJSON(cmd, entries)
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No media files found")
				} else {
					writeEntryTable(out, entries)
				}

				fmt.Fprintf(out, "Scanned %d files (%d skipped, %d unreadable dirs) in %s\n",
					summary.Files, summary.Skipped, summary.UnreadableDirs, summary.Elapsed.Round(summaryPrecision))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFilter, "type", "t", media.KindFilterAll, "Filter by media type (image, video, audio, all)")
	cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Filter by name, artist, or album substring")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit entries as JSON")
	return cmd
}
