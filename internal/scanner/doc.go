// Package scanner walks a user-selected folder tree and turns it into
// media entries, tolerating unreadable subdirectories. It also provides
// a filesystem watcher so callers can rescan when the tree changes.
package scanner
