package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/lafriks/go-tiled"
)

const (
	arenaGroup = "arena"
	boundsName = "bounds"
	sparkKind  = "spark"
	kindProp   = "kind"
)

// LoadArena parses a TMX file and returns the arena layout. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
//
// The "arena" object group must hold one object named "bounds" (the inner
// arena); objects with a "kind" property of "spark" become spark boxes. The
// map's pixel size is the outer bound.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	if mapW <= 0 || mapH <= 0 {
		return nil, fmt.Errorf("load TMX %s: empty map", tmxPath)
	}

	// TMX is top-left based; the simulation is centered on the map.
	center := gamemath.V(mapW/2, mapH/2)
	toWorld := func(x, y, w, h float64) gamemath.Rect {
		return gamemath.Rect{
			Min: gamemath.Sub(gamemath.V(x, y), center),
			Max: gamemath.Sub(gamemath.V(x+w, y+h), center),
		}
	}

	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Outer: toWorld(0, 0, mapW, mapH),
	}

	foundBounds := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != arenaGroup {
			continue
		}
		for _, o := range og.Objects {
			rect := toWorld(o.X, o.Y, o.Width, o.Height)
			switch {
			case o.Name == boundsName:
				arena.Inner = rect
				foundBounds = true
			case o.Properties.GetString(kindProp) == sparkKind:
				arena.SparkBoxes = append(arena.SparkBoxes, rect)
			}
		}
	}
	if !foundBounds {
		return nil, fmt.Errorf("load TMX %s: no %q object in %q group", tmxPath, boundsName, arenaGroup)
	}

	// Sort spark boxes left-to-right for a stable entity order
	sort.Slice(arena.SparkBoxes, func(i, j int) bool {
		if arena.SparkBoxes[i].Min.X == arena.SparkBoxes[j].Min.X {
			return arena.SparkBoxes[i].Min.Y < arena.SparkBoxes[j].Min.Y
		}
		return arena.SparkBoxes[i].Min.X < arena.SparkBoxes[j].Min.X
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
