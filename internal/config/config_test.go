package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediashelf/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Library.Hierarchy != config.HierarchyArtistAlbum {
		t.Fatalf("default hierarchy = %q", cfg.Library.Hierarchy)
	}
	if cfg.Library.ArtistPlaceholder == "" || cfg.Library.AlbumPlaceholder == "" {
		t.Fatal("expected non-empty placeholders")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
[library]
hierarchy = "Genre-Artist-Album"
extra_audio_exts = ["OGG", ".Opus", ""]

[logging]
format = "JSON"
level = "Debug"
`)
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Library.Hierarchy != config.HierarchyGenreArtistAlbum {
		t.Fatalf("hierarchy = %q", cfg.Library.Hierarchy)
	}
	want := []string{".ogg", ".opus"}
	if len(cfg.Library.ExtraAudioExts) != len(want) {
		t.Fatalf("extra audio exts = %v", cfg.Library.ExtraAudioExts)
	}
	for i, ext := range want {
		if cfg.Library.ExtraAudioExts[i] != ext {
			t.Fatalf("extra audio exts = %v, want %v", cfg.Library.ExtraAudioExts, want)
		}
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestLoadRejectsUnknownHierarchy(t *testing.T) {
	path := writeConfig(t, `
[library]
hierarchy = "flat"
`)
	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for unknown hierarchy policy")
	}
	if !strings.Contains(err.Error(), "library.hierarchy") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "xml"
`)
	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "verbose"
`)
	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpandPathsAreAbsolute(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
[paths]
data_dir = "`+dir+`/data"
log_dir = "`+dir+`/logs"
`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !filepath.IsAbs(cfg.Paths.DataDir) || !filepath.IsAbs(cfg.Paths.LogDir) {
		t.Fatalf("expected absolute paths: %+v", cfg.Paths)
	}
	if got, want := cfg.RatingsDBPath(), filepath.Join(cfg.Paths.DataDir, "ratings.db"); got != want {
		t.Fatalf("RatingsDBPath = %q, want %q", got, want)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, d := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", d, err)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Library.Hierarchy != config.HierarchyArtistAlbum {
		t.Fatalf("sample hierarchy = %q", cfg.Library.Hierarchy)
	}
}
