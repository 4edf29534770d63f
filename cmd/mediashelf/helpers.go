package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mediashelf/internal/library"
	"mediashelf/internal/ratings"
)

// summaryPrecision rounds scan durations for display.
const summaryPrecision = time.Millisecond

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderStars formats a rating as filled and hollow stars, or a dash for
// unrated albums.
func renderStars(rating int) string {
	if rating <= 0 {
		return "-"
	}
	if rating > ratings.Max {
		rating = ratings.Max
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", ratings.Max-rating)
}

// formatSize renders a byte count in human units, matching the display
// precision of the browsing view.
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	suffixes := []string{"KB", "MB", "GB", "TB"}
	suffix := suffixes[0]
	for _, s := range suffixes {
		value /= unit
		suffix = s
		if value < unit {
			break
		}
	}
	return fmt.Sprintf("%.1f %s", value, suffix)
}

func parseSortOption(value string) (library.SortOption, error) {
	option := library.SortOption(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range library.SortOptions() {
		if option == known {
			return option, nil
		}
	}
	return "", fmt.Errorf("unknown sort option %q (valid: %s)", value, sortOptionList())
}

func sortOptionList() string {
	options := library.SortOptions()
	names := make([]string, len(options))
	for i, option := range options {
		names[i] = string(option)
	}
	return strings.Join(names, ", ")
}
