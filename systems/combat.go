package systems

import (
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/events"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/systems/factory"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

// Subscribe registers the event handlers for a session. Handlers run when
// the matching Update pass drains its queue.
func Subscribe(ctx *sim.Context) {
	events.SlashEvent.Subscribe(ctx.World, func(w donburi.World, slash events.Slash) {
		resolveSlash(ctx, slash)
	})
	events.FinishEvent.Subscribe(ctx.World, func(w donburi.World, _ events.Finish) {
		finishMarked(ctx)
	})
	events.PlayerHitEvent.Subscribe(ctx.World, func(w donburi.World, hit events.PlayerHit) {
		advanceCombo(ctx, hit)
	})
	events.PlayerHitEvent.Subscribe(ctx.World, func(w donburi.World, hit events.PlayerHit) {
		shakeOnHit(ctx, hit)
	})
	events.SpawnRequestEvent.Subscribe(ctx.World, func(w donburi.World, req events.SpawnRequest) {
		factory.CreateEnemy(w, req.Kind, req.Position)
	})
}

// UpdateSlashHits resolves this tick's slashes against enemies and walls.
func UpdateSlashHits(ctx *sim.Context) {
	events.SlashEvent.ProcessEvents(ctx.World)
}

// UpdateFinishers removes marked enemies when the player's follow-through ends.
func UpdateFinishers(ctx *sim.Context) {
	events.FinishEvent.ProcessEvents(ctx.World)
}

// UpdateCombo advances the combo ladder for each hit taken this tick.
func UpdateCombo(ctx *sim.Context) {
	if game := getGame(ctx); game != nil && game.Banner != nil {
		game.Banner.Tick(ctx.DT)
	}
	events.PlayerHitEvent.ProcessEvents(ctx.World)
}

// bladeRays returns the origins of the two parallel rays modelling the blade.
func bladeRays(slash events.Slash) (gamemath.Vec2, gamemath.Vec2) {
	side := gamemath.Scale(gamemath.Perp(slash.Direction), cfg.Player.SlashRayOffset)
	return gamemath.Add(slash.Start, side), gamemath.Sub(slash.Start, side)
}

// SlashConnects reports whether the sweep touches a circle: either blade ray
// crosses it within the slash length, or its center lies in the end cap.
func SlashConnects(slash events.Slash, center gamemath.Vec2, radius float64) bool {
	left, right := bladeRays(slash)
	if _, ok := gamemath.RayCircle(left, slash.Direction, slash.Length, center, radius); ok {
		return true
	}
	if _, ok := gamemath.RayCircle(right, slash.Direction, slash.Length, center, radius); ok {
		return true
	}
	return gamemath.Distance(center, slash.End()) <= cfg.Player.SlashCapRadius
}

// SlashSparks reports whether either blade ray crosses the wall box.
func SlashSparks(slash events.Slash, wall gamemath.Rect) bool {
	left, right := bladeRays(slash)
	if _, ok := gamemath.RayAABB(left, slash.Direction, slash.Length, wall); ok {
		return true
	}
	_, ok := gamemath.RayAABB(right, slash.Direction, slash.Length, wall)
	return ok
}

func resolveSlash(ctx *sim.Context, slash events.Slash) {
	playerEntry := getPlayer(ctx)
	if playerEntry == nil {
		return
	}
	game := getGame(ctx)

	enemies, walls := slashCandidates(ctx, slash)

	connected := false
	for _, e := range enemies {
		body := components.Body.Get(e)
		if !body.HitCooldown.Finished() || !SlashConnects(slash, body.Position, body.Radius) {
			continue
		}

		queueSound(ctx, cfg.SoundHit, body.Position)
		resetPlayerPause(playerEntry)
		body.HitCooldown.Reset()
		markEnemy(e)
		factory.FlashEnemy(e)
		connected = true
		ctx.Log.Debug("slash connected", "kind", components.Enemy.Get(e).Kind.String(), "tick", ctx.Tick)
	}

	trail := factory.CreateTrail(ctx.World, slash.Start, slash.End())
	components.Trail.Get(trail).Connected = connected

	if game == nil || !game.Expanded {
		return
	}
	for _, e := range walls {
		wall := components.Wall.Get(e)
		if !SlashSparks(slash, wall.Rect) {
			continue
		}
		queueSound(ctx, cfg.SoundSpark, slash.Start)
		resetPlayerPause(playerEntry)
	}
}

func markEnemy(e *donburi.Entry) {
	components.Enemy.Get(e).Marked = true
	if !e.HasComponent(tags.Marked) {
		e.AddComponent(tags.Marked)
	}
}

// slashCandidates gathers enemies and walls whose broadphase boxes touch the
// bounding box of the sweep.
func slashCandidates(ctx *sim.Context, slash events.Slash) ([]*donburi.Entry, []*donburi.Entry) {
	space := getSpace(ctx)
	if space == nil {
		var walls []*donburi.Entry
		tags.Wall.Each(ctx.World, func(e *donburi.Entry) {
			walls = append(walls, e)
		})
		return collectEnemies(ctx), walls
	}

	margin := cfg.Player.SlashCapRadius + cfg.Player.SlashRayOffset
	end := slash.End()
	bounds := gamemath.Rect{
		Min: gamemath.V(min(slash.Start.X, end.X)-margin, min(slash.Start.Y, end.Y)-margin),
		Max: gamemath.V(max(slash.Start.X, end.X)+margin, max(slash.Start.Y, end.Y)+margin),
	}

	probe := space.Box(bounds, tags.ResolvSlash)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvEnemy, tags.ResolvSpark)
	if check == nil {
		return nil, nil
	}

	seen := make(map[donburi.Entity]bool)
	var enemies, walls []*donburi.Entry
	for _, o := range check.Objects {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() || seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		switch {
		case o.HasTags(tags.ResolvEnemy):
			enemies = append(enemies, e)
		case o.HasTags(tags.ResolvSpark):
			walls = append(walls, e)
		}
	}
	return enemies, walls
}

func finishMarked(ctx *sim.Context) {
	var marked []*donburi.Entry
	tags.Marked.Each(ctx.World, func(e *donburi.Entry) {
		marked = append(marked, e)
	})

	game := getGame(ctx)
	for _, e := range marked {
		queueSound(ctx, cfg.SoundKill, components.Body.Get(e).Position)
		destroyEntity(ctx, e)
		if game != nil {
			game.Kills++
		}
	}
	if len(marked) > 0 {
		ctx.Log.Debug("finisher", "killed", len(marked), "tick", ctx.Tick)
	}
}

// advanceCombo moves the ladder one rung. The last rung kills the player.
func advanceCombo(ctx *sim.Context, hit events.PlayerHit) {
	game := getGame(ctx)
	if game == nil || game.Phase != cfg.PhasePlay {
		return
	}
	playerEntry := getPlayer(ctx)
	if playerEntry == nil {
		return
	}

	game.Combo = game.Combo.Next()
	pos := components.Body.Get(playerEntry).Position
	queueSound(ctx, cfg.SoundOuch, pos)

	if game.Banner != nil {
		if game.Combo == cfg.ComboFatal {
			game.Banner.ResetTo(cfg.Phases.FatalBannerDuration)
		} else {
			game.Banner.ResetTo(cfg.Phases.BannerDuration)
		}
	}

	ctx.Log.Info("player hit", "by", hit.Kind.String(), "combo", game.Combo.String())

	if game.Combo == cfg.ComboFatal {
		components.State.Get(playerEntry).Top = cfg.TopDead
		changePhase(ctx, game, cfg.PhaseGameOver)
	}
}
