package media

import "time"

// Kind classifies a scanned file by its extension.
type Kind string

const (
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindAudio   Kind = "audio"
	KindUnknown Kind = "unknown"
)

// KindFilterAll passes every entry through a kind filter.
const KindFilterAll = "all"

// Entry is one classified, hierarchy-tagged scanned file.
//
// Kind is derived once from the lowercase extension and never recomputed.
// Genre, Artist, and Album come from the directory hierarchy at scan time;
// an empty string means the corresponding level was absent. Path is the
// entry's identity.
type Entry struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	RelativeDir string    `json:"relativeDir"`
	Size        int64     `json:"size"`
	Kind        Kind      `json:"type"`
	Modified    time.Time `json:"modified"`
	Genre       string    `json:"genre,omitempty"`
	Artist      string    `json:"artist,omitempty"`
	Album       string    `json:"album,omitempty"`
}
