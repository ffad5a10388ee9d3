package scan

import (
	"strings"

	"github.com/bogem/id3v2/v2"

	"github.com/ferrovia/trackpath/internal/track"
)

// enrichMP3 fills in the ID3v2 frames dhowden/tag does not expose:
// grouping (TIT1), performer (TPE3), the compilation flag (TCMP) and
// unsynchronised lyrics (USLT). Already-populated fields are left
// alone, and so is the track when the file cannot be parsed.
func enrichMP3(path string, t *track.Track) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3.Close()

	applyID3Extras(id3, t)
}

func applyID3Extras(id3 *id3v2.Tag, t *track.Track) {
	if t.Grouping == "" {
		t.Grouping = textFrame(id3, "TIT1")
	}
	if t.Performer == "" {
		t.Performer = textFrame(id3, "TPE3")
	}
	if !t.Compilation {
		t.Compilation = textFrame(id3, "TCMP") == "1"
	}
	if t.Lyrics == "" {
		t.Lyrics = lyricsFrame(id3)
	}
}

func textFrame(id3 *id3v2.Tag, id string) string {
	return strings.TrimSpace(id3.GetTextFrame(id).Text)
}

func lyricsFrame(id3 *id3v2.Tag) string {
	frames := id3.GetFrames(id3.CommonID("Unsynchronised lyrics/text transcription"))
	for _, frame := range frames {
		if uslt, ok := frame.(id3v2.UnsynchronisedLyricsFrame); ok {
			return uslt.Lyrics
		}
	}
	return ""
}
