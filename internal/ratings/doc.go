// Package ratings owns album rating persistence.
//
// The core engines only see the Store interface; SQLiteStore is the
// persistent implementation and Memory backs tests. Keys are album keys
// in the form "artist/album" with placeholders substituted for missing
// parts, so a lookup is always well-defined.
package ratings
