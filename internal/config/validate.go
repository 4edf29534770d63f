package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLibrary() error {
	switch c.Library.Hierarchy {
	case HierarchyArtistAlbum, HierarchyGenreArtistAlbum:
	default:
		return fmt.Errorf("library.hierarchy must be %q or %q, got %q",
			HierarchyArtistAlbum, HierarchyGenreArtistAlbum, c.Library.Hierarchy)
	}
	if c.Library.ArtistPlaceholder == "" {
		return errors.New("library.artist_placeholder must not be empty")
	}
	if c.Library.AlbumPlaceholder == "" {
		return errors.New("library.album_placeholder must not be empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
