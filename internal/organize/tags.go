package organize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ferrovia/trackpath/internal/track"
)

// knownTags is the closed set of recognized tag names. Unknown names
// resolve to empty, which silently disables any block around them.
var knownTags = map[string]bool{
	"title":         true,
	"album":         true,
	"artist":        true,
	"artistinitial": true,
	"albumartist":   true,
	"composer":      true,
	"track":         true,
	"disc":          true,
	"year":          true,
	"originalyear":  true,
	"genre":         true,
	"comment":       true,
	"length":        true,
	"bitrate":       true,
	"samplerate":    true,
	"bitdepth":      true,
	"extension":     true,
	"performer":     true,
	"grouping":      true,
	"lyrics":        true,
}

// uniqueTags mark a rendered name as likely distinguishing one track
// from another.
var uniqueTags = map[string]bool{
	"title": true,
	"track": true,
}

// variousArtists is the album artist shown for compilations.
const variousArtists = "Various Artists"

var theArticle = regexp.MustCompile(`(?i)^the\s+`)

// tagValue resolves one tag against a track, then applies the shared
// normalizations: unset sentinels ("0"/"-1") become empty, single
// digit track numbers get a leading zero, path separators are
// stripped, dots go too under RemoveProblematic, and the value is
// trimmed.
func (f *Format) tagValue(tag string, t *track.Track) string {
	var value string

	switch tag {
	case "title":
		value = t.Title
	case "album":
		value = t.Album
	case "artist":
		value = t.Artist
	case "composer":
		value = t.Composer
	case "performer":
		value = t.Performer
	case "grouping":
		value = t.Grouping
	case "lyrics":
		value = t.Lyrics
	case "genre":
		value = t.Genre
	case "comment":
		value = t.Comment
	case "year":
		value = strconv.Itoa(t.Year)
	case "originalyear":
		value = strconv.Itoa(t.EffectiveOriginalYear())
	case "track":
		value = strconv.Itoa(t.Num)
	case "disc":
		value = strconv.Itoa(t.Disc)
	case "length":
		value = strconv.FormatInt(int64(t.Length/time.Second), 10)
	case "bitrate":
		value = strconv.Itoa(t.Bitrate)
	case "samplerate":
		value = strconv.Itoa(t.SampleRate)
	case "bitdepth":
		value = strconv.Itoa(t.BitDepth)
	case "extension":
		value = t.Extension()
	case "artistinitial":
		value = strings.TrimSpace(t.EffectiveAlbumArtist())
		value = theArticle.ReplaceAllString(value, "")
		if value != "" {
			value = strings.ToUpper(string([]rune(value)[0]))
		}
	case "albumartist":
		if t.Compilation {
			value = variousArtists
		} else {
			value = t.EffectiveAlbumArtist()
		}
	}

	// Unset numeric fields render as "0" or "-1".
	if value == "0" || value == "-1" {
		value = ""
	}

	if tag == "track" && len(value) == 1 {
		value = "0" + value
	}

	value = removeChars(value, invalidDirChars)
	if f.RemoveProblematic {
		value = strings.ReplaceAll(value, ".", "")
	}

	return strings.TrimSpace(value)
}
