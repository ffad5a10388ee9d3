// Package track holds the metadata record a path format is rendered
// against. A Track is plain data: the scanner (or any other caller)
// fills in what it knows and leaves the rest zero, and zero values mean
// "unset" throughout.
package track

import (
	"path/filepath"
	"strings"
	"time"
)

// Track is a single audio track's metadata.
type Track struct {
	// Path is the source file location. The %extension tag and the
	// extension fallback read its suffix.
	Path string

	// BaseFilename is the original file name, extension included. It is
	// the last-resort name when a format renders nothing usable.
	BaseFilename string

	Title       string
	Album       string
	Artist      string
	AlbumArtist string
	Composer    string
	Performer   string
	Grouping    string
	Lyrics      string
	Genre       string
	Comment     string

	// Compilation marks various-artists releases.
	Compilation bool

	Year         int
	OriginalYear int
	Num          int // track number
	Disc         int

	Length     time.Duration
	Bitrate    int
	SampleRate int
	BitDepth   int
}

// EffectiveAlbumArtist returns the album artist, falling back to the
// track artist when no album artist is set.
func (t *Track) EffectiveAlbumArtist() string {
	if t.AlbumArtist == "" {
		return t.Artist
	}
	return t.AlbumArtist
}

// EffectiveOriginalYear returns the original release year, falling back
// to the release year when unset.
func (t *Track) EffectiveOriginalYear() int {
	if t.OriginalYear <= 0 {
		return t.Year
	}
	return t.OriginalYear
}

// Extension returns the source file's extension without the dot, or ""
// when the path has none.
func (t *Track) Extension() string {
	return strings.TrimPrefix(filepath.Ext(t.Path), ".")
}
