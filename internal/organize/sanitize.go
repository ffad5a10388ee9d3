package organize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ferrovia/trackpath/internal/track"
)

// Character sets used by the pipeline and the tag resolver.
const (
	invalidDirChars    = `/\`      // never allowed inside a tag value
	problematicChars   = `:?*"`    // unsafe on at least one common OS
	invalidFatChars    = `"*:<>?|` // rejected by FAT filesystems
	invalidPrefixChars = "."       // forbidden at a segment's start
)

// sanitize runs the cleanup passes over an expanded path. Pass order
// is load-bearing: transliteration feeds the FAT and ASCII filters,
// whitespace collapses before the extension is re-derived, and the
// extension goes back on only after the per-segment fixups.
func (f *Format) sanitize(path string, t *track.Track, extension string) string {
	if f.RemoveProblematic {
		path = removeChars(path, problematicChars)
	}
	if f.RemoveNonFAT || (f.RemoveNonASCII && !f.AllowASCIIExt) {
		path = Transliterate(path)
	}
	if f.RemoveNonFAT {
		path = removeChars(path, invalidFatChars)
	}
	if f.RemoveNonASCII {
		path = f.stripNonASCII(path)
	}

	// Collapse runs of whitespace to single spaces and trim the ends.
	path = strings.Join(strings.Fields(path), " ")

	// Re-derive the extension. It is appended last so the per-segment
	// fixups below cannot touch it.
	dir, base := splitDir(path)
	stem, suffix := splitExt(base)
	if extension == "" {
		extension = suffix
		if extension == "" {
			extension = t.Extension()
		}
	}
	path = joinDir(dir, stem)

	// Strip at most one forbidden leading character per segment, then
	// trim the segment.
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part != "" && strings.IndexByte(invalidPrefixChars, part[0]) >= 0 {
			part = part[1:]
		}
		parts[i] = strings.TrimSpace(part)
	}
	path = strings.Join(parts, "/")

	if f.ReplaceSpaces {
		path = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return '_'
			}
			return r
		}, path)
	}

	if extension != "" {
		path += "." + extension
	}

	return path
}

// stripNonASCII keeps characters below the configured threshold. A
// character at or above it is replaced by the first character of its
// canonical decomposition when that fits, and dropped otherwise.
func (f *Format) stripNonASCII(s string) string {
	threshold := rune(128)
	if f.AllowASCIIExt {
		threshold = 255
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < threshold {
			b.WriteRune(r)
			continue
		}
		first, _ := utf8.DecodeRuneInString(norm.NFD.String(string(r)))
		if first < threshold {
			b.WriteRune(first)
		}
	}
	return b.String()
}

var translitSubstitutes = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "Th",
	"ł", "l", "Ł", "L",
)

// Transliterate maps text toward a Latin/ASCII baseline: compatibility
// decomposition, combining-mark removal, and substitutes for the Latin
// letters that decomposition cannot reach. Characters with no mapping
// pass through unchanged.
func Transliterate(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return translitSubstitutes.Replace(out)
}

// removeChars drops every occurrence of the set's characters from s.
func removeChars(s, set string) string {
	if !strings.ContainsAny(s, set) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(set, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitDir splits a path at its last separator. The directory part of
// "/name" is "/"; a path without separators has an empty directory.
func splitDir(path string) (dir, base string) {
	i := strings.LastIndex(path, "/")
	switch {
	case i < 0:
		return "", path
	case i == 0:
		return "/", path[1:]
	default:
		return path[:i], path[i+1:]
	}
}

// splitExt splits a file name at its last dot. ".name" is all
// extension, "name." is all stem.
func splitExt(base string) (stem, ext string) {
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return base, ""
	}
	return base[:i], base[i+1:]
}

// joinDir rejoins a splitDir result around a new base name.
func joinDir(dir, base string) string {
	if dir == "" || dir == "." {
		return base
	}
	if strings.HasSuffix(dir, "/") {
		return dir + base
	}
	return dir + "/" + base
}
