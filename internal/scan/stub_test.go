package scan

import (
	"os"

	"github.com/dhowden/tag"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// stubMetadata implements tag.Metadata with a fixed raw map.
type stubMetadata struct {
	raw map[string]interface{}
}

func (stubMetadata) Format() tag.Format     { return tag.UnknownFormat }
func (stubMetadata) FileType() tag.FileType { return tag.UnknownFileType }
func (stubMetadata) Title() string          { return "" }
func (stubMetadata) Album() string          { return "" }
func (stubMetadata) Artist() string         { return "" }
func (stubMetadata) AlbumArtist() string    { return "" }
func (stubMetadata) Composer() string       { return "" }
func (stubMetadata) Year() int              { return 0 }
func (stubMetadata) Genre() string          { return "" }
func (stubMetadata) Track() (int, int)      { return 0, 0 }
func (stubMetadata) Disc() (int, int)       { return 0, 0 }
func (stubMetadata) Picture() *tag.Picture  { return nil }
func (stubMetadata) Lyrics() string         { return "" }
func (stubMetadata) Comment() string        { return "" }

func (s stubMetadata) Raw() map[string]interface{} { return s.raw }
