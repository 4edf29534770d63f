package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mediashelf/internal/hierarchy"
	"mediashelf/internal/logging"
	"mediashelf/internal/media"
)

// Summary describes one completed scan. Skipped counts files left out of
// the result, whether unrecognized or unreadable; UnreadableDirs counts
// directories the walk could not descend into.
type Summary struct {
	Files          int
	Skipped        int
	UnreadableDirs int
	Elapsed        time.Duration
}

// Scanner walks a folder tree and produces classified, hierarchy-tagged
// media entries.
type Scanner struct {
	classifier *media.Classifier
	policy     hierarchy.Policy
	logger     *slog.Logger
}

// New constructs a scanner. A nil classifier falls back to the built-in
// extension sets.
func New(classifier *media.Classifier, policy hierarchy.Policy, logger *slog.Logger) *Scanner {
	if classifier == nil {
		classifier = media.DefaultClassifier()
	}
	return &Scanner{
		classifier: classifier,
		policy:     policy,
		logger:     logging.NewComponentLogger(logger, "scanner"),
	}
}

// Scan walks root recursively and returns entries for files whose extension
// classifies to a known media kind, in walk order. Files with unrecognized
// extensions are skipped silently. A subdirectory that cannot be read is
// logged and skipped without aborting the scan; only an unreadable root is
// an error.
func (s *Scanner) Scan(root string) ([]media.Entry, Summary, error) {
	start := time.Now()
	logger := s.logger.With(logging.String(logging.FieldScanID, uuid.NewString()))
	logger.Info("scan started", logging.String("root", root))

	var summary Summary
	entries := make([]media.Entry, 0, 128)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return fmt.Errorf("read scan root %q: %w", root, walkErr)
			}
			// One unreadable subdirectory must not lose its siblings.
			summary.UnreadableDirs++
			logger.Warn("skipping unreadable directory",
				logging.String("dir", path), logging.Error(walkErr))
			return nil
		}
		if d.IsDir() {
			return nil
		}

		kind := s.classifier.Classify(filepath.Ext(d.Name()))
		if kind == media.KindUnknown {
			summary.Skipped++
			return nil
		}

		info, err := d.Info()
		if err != nil {
			summary.Skipped++
			logger.Warn("skipping unreadable file",
				logging.String("path", path), logging.Error(err))
			return nil
		}

		relDir, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil || relDir == "." {
			relDir = ""
		}

		tags := hierarchy.Parse(relDir, s.policy)
		entries = append(entries, media.Entry{
			Name:        d.Name(),
			Path:        path,
			RelativeDir: relDir,
			Size:        info.Size(),
			Kind:        kind,
			Modified:    info.ModTime(),
			Genre:       deref(tags.Genre),
			Artist:      deref(tags.Artist),
			Album:       deref(tags.Album),
		})
		summary.Files++
		return nil
	})
	summary.Elapsed = time.Since(start)
	if err != nil {
		return nil, summary, err
	}

	logger.Info("scan complete",
		logging.Int("files", summary.Files),
		logging.Int("skipped", summary.Skipped),
		logging.Int("unreadable_dirs", summary.UnreadableDirs),
		logging.Duration("elapsed", summary.Elapsed))
	return entries, summary, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
