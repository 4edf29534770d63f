package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLibrary()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLibrary() {
	c.Library.Hierarchy = strings.ToLower(strings.TrimSpace(c.Library.Hierarchy))
	if c.Library.Hierarchy == "" {
		c.Library.Hierarchy = HierarchyArtistAlbum
	}
	if c.Library.ArtistPlaceholder == "" {
		c.Library.ArtistPlaceholder = defaultArtistPlaceholder
	}
	if c.Library.AlbumPlaceholder == "" {
		c.Library.AlbumPlaceholder = defaultAlbumPlaceholder
	}
	c.Library.ExtraImageExts = normalizeExtensions(c.Library.ExtraImageExts)
	c.Library.ExtraVideoExts = normalizeExtensions(c.Library.ExtraVideoExts)
	c.Library.ExtraAudioExts = normalizeExtensions(c.Library.ExtraAudioExts)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
