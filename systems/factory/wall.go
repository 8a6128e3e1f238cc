package factory

import (
	"github.com/automoto/bushido-blazer/archetypes"
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/leveldata"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWall adds a static wall. Line walls contain bodies and spark; box
// walls only spark.
func CreateWall(w donburi.World, kind config.WallKind, rect gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	components.Wall.SetValue(wall, components.WallData{Kind: kind, Rect: rect})

	// Lines have no area; pad the broadphase box so it occupies grid cells
	padded := gamemath.Rect{
		Min: gamemath.Sub(rect.Min, gamemath.V(1, 1)),
		Max: gamemath.Add(rect.Max, gamemath.V(1, 1)),
	}
	resolvTags := []string{tags.ResolvSpark}
	if kind == config.WallLine {
		resolvTags = append(resolvTags, tags.ResolvSolid)
	}

	var obj *resolv.Object
	if spaceEntry, ok := components.Space.First(w); ok {
		space := components.Space.Get(spaceEntry)
		obj = space.Box(padded, resolvTags...)
		space.Add(obj)
	} else {
		obj = resolv.NewObject(padded.Min.X, padded.Min.Y, padded.Max.X-padded.Min.X, padded.Max.Y-padded.Min.Y, resolvTags...)
	}
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	return wall
}

// CreateArenaWalls adds the inner arena edges and the layout's spark boxes.
func CreateArenaWalls(w donburi.World, arena *leveldata.Arena) []*donburi.Entry {
	var walls []*donburi.Entry
	for _, edge := range arena.Edges() {
		walls = append(walls, CreateWall(w, config.WallLine, edge))
	}
	for _, box := range arena.SparkBoxes {
		walls = append(walls, CreateWall(w, config.WallBox, box))
	}
	return walls
}
