package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	artExts    = []string{".jpg", ".png", ".jpeg"}
	coverNames = []string{"cover", "folder", "front"}
)

// FindArt looks for a thumbnail next to a clip: "<clip>.jpg" first, then a
// shared cover image in the same directory. Returns "" if none exists.
func FindArt(clipPath string) string {
	if clipPath == "" {
		return ""
	}
	dir := filepath.Dir(clipPath)
	base := strings.TrimSuffix(filepath.Base(clipPath), filepath.Ext(clipPath))

	for _, name := range append([]string{base}, coverNames...) {
		for _, ext := range artExts {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
