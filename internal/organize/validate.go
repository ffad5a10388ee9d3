package organize

// Validity is the outcome of checking a format string's syntax.
type Validity int

const (
	// Rejected means the string can never become a valid format.
	Rejected Validity = iota

	// Intermediate means the string is incomplete but could become
	// valid with more input.
	Intermediate

	// Accepted means the string is a well-formed format.
	Accepted
)

func (v Validity) String() string {
	switch v {
	case Rejected:
		return "rejected"
	case Intermediate:
		return "intermediate"
	case Accepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Validate checks a candidate format string for balanced blocks and
// known tag names without rendering it. Blocks may not nest here, even
// though the renderer tolerates nesting: a second opening brace inside
// a block rejects immediately, as does a close with no open. An open
// block at the end of input, or a trailing "%" with the tag name still
// to come, is Intermediate.
func Validate(format string) Validity {
	depth := 0
	for i := 0; i < len(format); i++ {
		switch format[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth < 0 || depth > 1 {
			return Rejected
		}
	}
	if depth != 0 {
		return Intermediate
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		name, next := scanTagName(format, i+1)
		if name == "" && next == len(format) {
			return Intermediate
		}
		if !knownTags[name] {
			return Rejected
		}
		i = next - 1
	}

	return Accepted
}
