package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/bushido-blazer/leveldata"
)

//go:embed all:arenas
var arenaFS embed.FS

// DefaultArena is the embedded layout used when no override is configured.
const DefaultArena = "arenas/dojo.tmx"

// ArenaFS exposes the embedded arena layouts.
func ArenaFS() fs.FS {
	return arenaFS
}

// LoadArena loads path from disk, or the embedded default when path is empty.
func LoadArena(path string) (*leveldata.Arena, error) {
	if path == "" {
		return leveldata.LoadArena(arenaFS, DefaultArena)
	}
	arena, err := leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("arena %s: %w", path, err)
	}
	return arena, nil
}
