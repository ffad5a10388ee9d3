package organize

import (
	"strings"

	"github.com/ferrovia/trackpath/internal/track"
)

// parseBlock expands one level of the format grammar: literal text,
// %tag placeholders, and {...} blocks evaluated by recursion.
//
// anyEmpty is true when a tag at this level resolved to nothing; the
// caller uses it to drop the enclosing block. Emptiness inside a
// nested block stays with that block: it removes the inner section
// without affecting the outer one. sawUnique propagates up from every
// level.
//
// Unmatched braces and empty "{}" pairs are literal characters, never
// an error.
func (f *Format) parseBlock(s string, t *track.Track) (expanded string, anyEmpty, sawUnique bool) {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			end := matchingBrace(s, i)
			if end < 0 {
				out.WriteByte('{')
				i++
				continue
			}
			if end == i+1 {
				// A block needs content; bare "{}" stays literal.
				out.WriteString("{}")
				i = end + 1
				continue
			}
			inner, innerEmpty, innerUnique := f.parseBlock(s[i+1:end], t)
			if !innerEmpty {
				out.WriteString(inner)
			}
			sawUnique = sawUnique || innerUnique
			i = end + 1

		case '%':
			name, next := scanTagName(s, i+1)
			value := f.tagValue(name, t)
			if value == "" {
				anyEmpty = true
			} else if uniqueTags[name] {
				sawUnique = true
			}
			out.WriteString(value)
			i = next

		default:
			out.WriteByte(s[i])
			i++
		}
	}

	return out.String(), anyEmpty, sawUnique
}

// matchingBrace returns the index of the brace closing the one at
// open, or -1 when it never closes.
func matchingBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// scanTagName consumes the letters of a tag name starting at start and
// returns the name with the index just past it. The name may be empty
// ("%" followed by a non-letter), which resolves like any unknown tag.
func scanTagName(s string, start int) (name string, next int) {
	end := start
	for end < len(s) && isTagLetter(s[end]) {
		end++
	}
	return s[start:end], end
}

func isTagLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
