// Package testsupport provides shared fixtures for mediashelf tests:
// temp-directory configs, fixture file trees, and rating store helpers.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"mediashelf/internal/config"
	"mediashelf/internal/logging"
	"mediashelf/internal/ratings"
)

// NewConfig returns a validated config rooted in a per-test temp directory.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
	return &cfg
}

// MustOpenRatings opens the SQLite rating store for cfg and closes it when
// the test finishes.
func MustOpenRatings(t testing.TB, cfg *config.Config) *ratings.SQLiteStore {
	t.Helper()

	store, err := ratings.Open(cfg.RatingsDBPath(), logging.NewNop())
	if err != nil {
		t.Fatalf("open rating store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close rating store: %v", err)
		}
	})
	return store
}

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern, creating parent directories. A size <= 0 writes a
// single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := int64(chunkSize)
		if remaining < toWrite {
			toWrite = remaining
		}
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}
