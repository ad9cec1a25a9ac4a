package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.tengo
var LevelsFS embed.FS

// Dir is where on-disk overrides are looked up, relative to the working
// directory.
const Dir = "levels"

// Source returns the script for name, preferring a copy on disk.
func Source(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".tengo"
	}
	return s
}
