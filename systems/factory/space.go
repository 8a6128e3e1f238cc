package factory

import (
	"github.com/automoto/bushido-blazer/archetypes"
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the collision grid. It spans twice the outer bound so
// bodies briefly pushed past the bound still land in a cell.
func CreateSpace(w donburi.World, outer gamemath.Rect, cellSize int) *donburi.Entry {
	width := outer.Max.X - outer.Min.X
	height := outer.Max.Y - outer.Min.Y

	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, &components.SpaceData{
		Space:  resolv.NewSpace(int(width*2), int(height*2), cellSize, cellSize),
		Origin: gamemath.Sub(outer.Min, gamemath.V(width/2, height/2)),
	})
	return space
}

// addToSpace registers obj with the space if one exists.
func addToSpace(w donburi.World, obj *resolv.Object) *components.SpaceData {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)
	space.Add(obj)
	return space
}

// newBodyObject creates the broadphase box for a circle body.
func newBodyObject(w donburi.World, center gamemath.Vec2, radius float64, tag string) *resolv.Object {
	obj := resolv.NewObject(0, 0, radius*2, radius*2, tag)
	if space := addToSpace(w, obj); space != nil {
		space.Place(obj, center)
	}
	return obj
}
