package config

const (
	defaultDataDir   = "~/.local/share/mediashelf"
	defaultLogDir    = "~/.local/share/mediashelf/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	// HierarchyArtistAlbum maps the first directory level to artist and
	// the second to album.
	HierarchyArtistAlbum = "artist-album"
	// HierarchyGenreArtistAlbum maps the first level to genre, the
	// second to artist, and the third to album.
	HierarchyGenreArtistAlbum = "genre-artist-album"

	// Rating keys embed the placeholder labels, so the historical
	// Japanese defaults stay put to keep existing keys resolving.
	defaultArtistPlaceholder = "アーティスト名なし"
	defaultAlbumPlaceholder  = "アルバム名なし"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Library: Library{
			Hierarchy:         HierarchyArtistAlbum,
			ArtistPlaceholder: defaultArtistPlaceholder,
			AlbumPlaceholder:  defaultAlbumPlaceholder,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
