// Package leveldata parses TMX arena layouts into plain geometry.
// It has no dependencies on ebitengine or resolv.
package leveldata

import "github.com/automoto/bushido-blazer/gamemath"

// Arena holds all collision-relevant data parsed from a TMX arena file, in
// world coordinates centered on the map.
type Arena struct {
	Name string

	// Inner is the safe zone; its edges become containment walls.
	Inner gamemath.Rect

	// Outer is the full map, the bound once the arena expands.
	Outer gamemath.Rect

	// SparkBoxes are extra static boxes that only react to slashes.
	SparkBoxes []gamemath.Rect
}

// Edges returns the inner arena's four sides as degenerate boxes:
// top, bottom, left, right.
func (a *Arena) Edges() []gamemath.Rect {
	lo, hi := a.Inner.Min, a.Inner.Max
	return []gamemath.Rect{
		{Min: gamemath.V(lo.X, lo.Y), Max: gamemath.V(hi.X, lo.Y)},
		{Min: gamemath.V(lo.X, hi.Y), Max: gamemath.V(hi.X, hi.Y)},
		{Min: gamemath.V(lo.X, lo.Y), Max: gamemath.V(lo.X, hi.Y)},
		{Min: gamemath.V(hi.X, lo.Y), Max: gamemath.V(hi.X, hi.Y)},
	}
}

// Fallback builds a centered arena from explicit sizes.
func Fallback(innerW, innerH, outerW, outerH float64) *Arena {
	origin := gamemath.V(0, 0)
	return &Arena{
		Name:  "fallback",
		Inner: gamemath.RectFromCenter(origin, innerW/2, innerH/2),
		Outer: gamemath.RectFromCenter(origin, outerW/2, outerH/2),
	}
}
