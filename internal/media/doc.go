// Package media defines the scanned-file record and the extension
// classifier shared by the scanner and the library engines.
package media
