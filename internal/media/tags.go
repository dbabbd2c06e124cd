package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// Tags is the subset of file metadata shown on a tile.
type Tags struct {
	Title  string
	Artist string
}

// ReadTags reads title and artist from an audio file. A missing title falls
// back to the file name.
func ReadTags(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if strings.EqualFold(filepath.Ext(path), ".mp3") {
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readID3(path)
		}
		return Tags{}, err
	}

	t := Tags{Title: m.Title(), Artist: m.Artist()}
	if t.Artist == "" {
		t.Artist = m.AlbumArtist()
	}
	if t.Title == "" {
		t.Title = titleFromPath(path)
	}
	return t, nil
}

func readID3(path string) (Tags, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Tags{}, err
	}
	defer id3tag.Close()

	t := Tags{Title: id3tag.Title(), Artist: id3tag.Artist()}
	if t.Title == "" {
		t.Title = titleFromPath(path)
	}
	return t, nil
}
