// Package organize renders a user-supplied naming format against a
// track's metadata and sanitizes the result into a filesystem-safe
// relative path.
//
// A format is literal text mixed with %tag placeholders and {...}
// blocks. A block is a conditional section: it renders only when every
// tag inside it resolves to a non-empty value, so
// "%title{ - %album}" drops the " - " suffix for tracks without an
// album. Rendering is a pure function of the format, its switches and
// the track: no state is shared between calls.
package organize

import (
	"strings"

	"github.com/ferrovia/trackpath/internal/track"
)

// Format is a naming format plus the sanitization switches applied to
// its output. The zero switches keep everything except whitespace;
// New enables ReplaceSpaces by default.
type Format struct {
	format string

	// RemoveProblematic strips characters that cause trouble on at
	// least one common OS (: ? * ").
	RemoveProblematic bool

	// RemoveNonFAT strips characters FAT filesystems reject and forces
	// transliteration first.
	RemoveNonFAT bool

	// RemoveNonASCII drops characters outside ASCII, keeping the base
	// character of a Unicode decomposition when one exists.
	RemoveNonASCII bool

	// AllowASCIIExt widens RemoveNonASCII's threshold from 128 to 255.
	AllowASCIIExt bool

	// ReplaceSpaces turns all whitespace in the final path into
	// underscores.
	ReplaceSpaces bool
}

// New returns a Format for the given format string. Backslashes are
// normalized to forward slashes so users may type either separator.
func New(format string) *Format {
	f := &Format{ReplaceSpaces: true}
	f.SetFormat(format)
	return f
}

// SetFormat replaces the format string, normalizing path separators.
// No other validation happens here; see Validate.
func (f *Format) SetFormat(format string) {
	f.format = strings.ReplaceAll(format, `\`, "/")
}

// String returns the normalized format string.
func (f *Format) String() string {
	return f.format
}

// IsValid reports whether the format string is syntactically
// well-formed.
func (f *Format) IsValid() bool {
	return Validate(f.format) == Accepted
}

// Result is a rendered path plus whether a unique tag (title or track)
// contributed a value to it. Callers use Unique to decide whether the
// name is likely to distinguish the track from others.
type Result struct {
	Path   string
	Unique bool
}

// FilenameForTrack renders the format against t and sanitizes the
// result. extension, when non-empty, overrides the extension that
// would otherwise come from the rendered name or the source file.
//
// ok is false when the format produced nothing usable (for example a
// bare separator); callers must fall back to their own naming.
func (f *Format) FilenameForTrack(t *track.Track, extension string) (result Result, ok bool) {
	expanded, _, unique := f.parseBlock(f.format, t)

	if expanded == "" {
		expanded = t.BaseFilename
	}

	// Never produce a nameless file. A directory-only or
	// extension-only result keeps its directory part and takes the
	// track's original file name instead.
	dir, base := splitDir(expanded)
	if stem, _ := splitExt(base); stem == "" {
		expanded = joinDir(dir, t.BaseFilename)
	}

	if degenerate(expanded) {
		return Result{}, false
	}

	return Result{Path: f.sanitize(expanded, t, extension), Unique: unique}, true
}

// degenerate reports paths with no real segment before their last
// separator, like "/" or "/name".
func degenerate(path string) bool {
	if path == "" {
		return true
	}
	i := strings.LastIndex(path, "/")
	return i >= 0 && path[:i] == ""
}
