// Package scan reads track metadata from audio files.
//
// The common tag surface comes from dhowden/tag, which understands ID3,
// MP4 atoms and Vorbis comments. MP3 files get a second pass with
// bogem/id3v2 for frames dhowden/tag does not surface. Audio
// properties (length, bitrate, sample rate) come from taglib and are
// best effort.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"

	"github.com/ferrovia/trackpath/internal/track"
)

// ReadTrack reads the metadata of the audio file at path. Tag data is
// required; property probing failures leave the fields zero.
func ReadTrack(path string) (*track.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read tags from %s: %w", path, err)
	}

	num, _ := m.Track()
	disc, _ := m.Disc()

	t := &track.Track{
		Path:         path,
		BaseFilename: filepath.Base(path),
		Title:        m.Title(),
		Album:        m.Album(),
		Artist:       m.Artist(),
		AlbumArtist:  m.AlbumArtist(),
		Composer:     m.Composer(),
		Genre:        m.Genre(),
		Comment:      m.Comment(),
		Lyrics:       m.Lyrics(),
		Year:         m.Year(),
		Num:          num,
		Disc:         disc,
		Compilation:  rawCompilation(m),
	}

	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		enrichMP3(path, t)
	}

	readProperties(path, t)

	return t, nil
}

// rawCompilation digs the compilation flag out of the raw tag map;
// dhowden/tag has no accessor for it. MP4 uses "cpil", ID3 uses TCMP,
// Vorbis comments use COMPILATION.
func rawCompilation(m tag.Metadata) bool {
	for key, val := range m.Raw() {
		switch strings.ToLower(key) {
		case "cpil", "tcmp", "compilation":
			switch v := val.(type) {
			case bool:
				return v
			case string:
				return v == "1" || strings.EqualFold(v, "true")
			case int:
				return v != 0
			case uint8:
				return v != 0
			}
		}
	}
	return false
}

func readProperties(path string, t *track.Track) {
	props, err := taglib.ReadProperties(path)
	if err != nil {
		return
	}
	t.Length = props.Length
	t.Bitrate = int(props.Bitrate)
	t.SampleRate = int(props.SampleRate)
}
