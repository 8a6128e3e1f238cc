package systems

import (
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

// UpdateContainment keeps every body off the inner arena edges and inside the
// outer bound. Each check resolves one axis at a time.
func UpdateContainment(ctx *sim.Context) {
	var lines []*donburi.Entry
	components.Wall.Each(ctx.World, func(e *donburi.Entry) {
		if components.Wall.Get(e).Kind == cfg.WallLine {
			lines = append(lines, e)
		}
	})
	space := getSpace(ctx)

	bound := ctx.Inner
	if game := getGame(ctx); game != nil && game.Expanded {
		bound = ctx.Outer
	}

	components.Body.Each(ctx.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		for _, line := range nearbyLines(space, body, lines) {
			pushOffLine(body, components.Wall.Get(line))
		}
		ClampToBound(body, bound)
	})
}

// nearbyLines keeps the solid lines sharing a grid cell with the band around
// body, in their original order. Without a space every line is returned.
func nearbyLines(space *components.SpaceData, body *components.BodyData, lines []*donburi.Entry) []*donburi.Entry {
	if space == nil || len(lines) == 0 {
		return lines
	}

	reach := body.Reach()
	probe := space.Box(gamemath.RectFromCenter(body.Position, reach, reach))
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	near := make(map[donburi.Entity]bool, len(check.Objects))
	for _, o := range check.Objects {
		if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() {
			near[e.Entity()] = true
		}
	}

	var found []*donburi.Entry
	for _, line := range lines {
		if near[line.Entity()] {
			found = append(found, line)
		}
	}
	return found
}

// pushOffLine moves body out of the band around a wall line, keeping it on
// the side it is already on.
func pushOffLine(body *components.BodyData, line *components.WallData) {
	reach := body.Reach()
	r := line.Rect

	if line.Vertical() {
		c := r.Min.X
		if body.Position.Y < r.Min.Y || body.Position.Y > r.Max.Y {
			return
		}
		if d := body.Position.X - c; d > -reach && d < reach {
			body.Position.X = c + sideOf(d, c)*reach
			body.Velocity.X = 0
		}
		return
	}

	c := r.Min.Y
	if body.Position.X < r.Min.X || body.Position.X > r.Max.X {
		return
	}
	if d := body.Position.Y - c; d > -reach && d < reach {
		body.Position.Y = c + sideOf(d, c)*reach
		body.Velocity.Y = 0
	}
}

// sideOf picks the side of a line at coordinate c for an offset d. A body
// sitting exactly on the line goes toward the arena center.
func sideOf(d, c float64) float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	case c > 0:
		return -1
	default:
		return 1
	}
}

// ClampToBound pulls body inside bound shrunk by its reach, zeroing the
// velocity on each clamped axis.
func ClampToBound(body *components.BodyData, bound gamemath.Rect) {
	reach := body.Reach()

	switch {
	case body.Position.X > bound.Max.X-reach:
		body.Position.X = bound.Max.X - reach
		body.Velocity.X = 0
	case body.Position.X < bound.Min.X+reach:
		body.Position.X = bound.Min.X + reach
		body.Velocity.X = 0
	}

	switch {
	case body.Position.Y > bound.Max.Y-reach:
		body.Position.Y = bound.Max.Y - reach
		body.Velocity.Y = 0
	case body.Position.Y < bound.Min.Y+reach:
		body.Position.Y = bound.Min.Y + reach
		body.Velocity.Y = 0
	}
}
