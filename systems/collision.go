package systems

import (
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/events"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemyCollisions pushes overlapping enemies apart and nudges near ones
// away from each other so packs don't clump.
func UpdateEnemyCollisions(ctx *sim.Context) {
	enemies := collectEnemies(ctx)
	push := cfg.Combat.EnemyPush * ctx.DT
	nearPush := cfg.Combat.EnemyNearPush * ctx.DT

	for i := 0; i < len(enemies); i++ {
		a := components.Body.Get(enemies[i])
		for j := i + 1; j < len(enemies); j++ {
			b := components.Body.Get(enemies[j])

			normal := gamemath.SeparationNormal(a.Position, b.Position)
			switch {
			case gamemath.CirclesOverlap(a.Position, a.Radius, b.Position, b.Radius):
				a.Impulse(gamemath.Scale(normal, push))
				b.Impulse(gamemath.Scale(normal, -push))
			case gamemath.Distance(a.Position, b.Position) < cfg.Combat.EnemyNear:
				a.Impulse(gamemath.Scale(normal, nearPush))
				b.Impulse(gamemath.Scale(normal, -nearPush))
			}
		}
	}
}

// UpdatePlayerCollisions resolves contact between the player and enemies.
// Contact during the enemy's cooldown knocks both apart; contact with both
// cooldowns elapsed is a hit on the player.
func UpdatePlayerCollisions(ctx *sim.Context) {
	playerEntry := getPlayer(ctx)
	if playerEntry == nil {
		return
	}
	player := components.Body.Get(playerEntry)
	knockback := cfg.Combat.Knockback * ctx.DT

	for _, e := range contactCandidates(ctx, playerEntry) {
		enemy := components.Body.Get(e)
		if !gamemath.CirclesOverlap(player.Position, player.Radius, enemy.Position, enemy.Radius) {
			continue
		}

		normal := gamemath.SeparationNormal(player.Position, enemy.Position)
		if !enemy.HitCooldown.Finished() {
			enemy.Impulse(gamemath.Scale(normal, -knockback))
			player.Impulse(gamemath.Scale(normal, knockback))
		}

		if player.HitCooldown.Finished() && enemy.HitCooldown.Finished() {
			kind := components.Enemy.Get(e).Kind
			if kind != cfg.Dummy {
				events.PlayerHitEvent.Publish(ctx.World, events.PlayerHit{Enemy: e.Entity(), Kind: kind})
			}
			enemy.HitCooldown.Reset()
			player.HitCooldown.Reset()
		}
	}
}

// contactCandidates asks the broadphase for enemies sharing a cell with the
// player. Without a space every enemy is a candidate.
func contactCandidates(ctx *sim.Context, playerEntry *donburi.Entry) []*donburi.Entry {
	if !playerEntry.HasComponent(components.Object) {
		return collectEnemies(ctx)
	}
	obj := components.Object.Get(playerEntry)
	if obj.Object == nil || getSpace(ctx) == nil {
		return collectEnemies(ctx)
	}

	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	found := check.ObjectsByTags(tags.ResolvEnemy)
	seen := make(map[donburi.Entity]bool, len(found))
	var candidates []*donburi.Entry
	for _, o := range found {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() || seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		candidates = append(candidates, e)
	}
	return candidates
}
