package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mediashelf/internal/catalog"
	"mediashelf/internal/ratings"
)

func newRateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <artist> <album> <stars>",
		Short: "Store an album rating (0 clears it)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stars, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid rating %q: expected a number between 0 and %d", args[2], ratings.Max)
			}

			return ctx.withCatalog(func(cat *catalog.Catalog, _ ratings.Store) error {
				artist, album := args[0], args[1]
				if err := cat.Rate(artist, album, stars); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if stars == ratings.Unrated {
					fmt.Fprintf(out, "Cleared rating for %s / %s\n", artist, album)
					return nil
				}
				fmt.Fprintf(out, "Rated %s / %s %s\n", artist, album, renderStars(stars))
				return nil
			})
		},
	}
}
