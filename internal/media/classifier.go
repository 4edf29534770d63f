package media

import "strings"

var (
	imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}
	videoExts = []string{".mp4", ".avi", ".mov", ".wmv"}
	audioExts = []string{".mp3", ".wav", ".flac", ".m4a"}
)

// Classifier maps file extensions to media kinds. The zero value is not
// usable; construct one with NewClassifier.
type Classifier struct {
	kinds map[string]Kind
}

// NewClassifier builds a classifier over the built-in extension sets plus
// any extra extensions (already normalized to lowercase with a leading dot).
// Extras never override a built-in classification.
func NewClassifier(extraImage, extraVideo, extraAudio []string) *Classifier {
	kinds := make(map[string]Kind, 16)
	for _, exts := range []struct {
		kind Kind
		set  []string
	}{
		{KindImage, extraImage},
		{KindVideo, extraVideo},
		{KindAudio, extraAudio},
		{KindImage, imageExts},
		{KindVideo, videoExts},
		{KindAudio, audioExts},
	} {
		for _, ext := range exts.set {
			kinds[ext] = exts.kind
		}
	}
	return &Classifier{kinds: kinds}
}

// DefaultClassifier recognizes only the built-in extension sets.
func DefaultClassifier() *Classifier {
	return NewClassifier(nil, nil, nil)
}

// Classify returns the media kind for a file extension (with leading dot).
// Comparison is case-insensitive; anything unrecognized, including the empty
// string, is KindUnknown.
func (c *Classifier) Classify(ext string) Kind {
	if kind, ok := c.kinds[strings.ToLower(ext)]; ok {
		return kind
	}
	return KindUnknown
}
