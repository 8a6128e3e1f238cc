package components

import (
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broadphase proxy of an entity in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the collision grid. Origin is the world point that maps to the
// grid's top-left corner, since resolv cells start at zero.
type SpaceData struct {
	*resolv.Space
	Origin gamemath.Vec2
}

// Place moves obj so its box is centered on center in world coordinates.
func (s *SpaceData) Place(obj *resolv.Object, center gamemath.Vec2) {
	obj.X = center.X - obj.W/2 - s.Origin.X
	obj.Y = center.Y - obj.H/2 - s.Origin.Y
	obj.Update()
}

// Box returns a new object covering r, positioned in grid coordinates.
func (s *SpaceData) Box(r gamemath.Rect, tags ...string) *resolv.Object {
	return resolv.NewObject(r.Min.X-s.Origin.X, r.Min.Y-s.Origin.Y, r.Max.X-r.Min.X, r.Max.Y-r.Min.Y, tags...)
}

var Space = donburi.NewComponentType[SpaceData]()
