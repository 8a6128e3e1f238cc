package factory

import (
	"github.com/automoto/bushido-blazer/archetypes"
	"github.com/automoto/bushido-blazer/assets/animations"
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, kind cfg.EnemyKind, pos gamemath.Vec2) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[kind]
	if !exists {
		kind = cfg.Dummy
		enemyType = cfg.Enemy.Types[kind] // Fallback to default
	}

	enemy := archetypes.Enemy.Spawn(w)

	body := components.NewBody(pos, enemyType.Body, enemyType.HitCooldown)
	components.Body.SetValue(enemy, body)

	obj := newBodyObject(w, pos, body.Radius, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{Kind: kind})
	components.Animation.SetValue(enemy, components.AnimationData{
		Top: animations.NewAnimation(cfg.AnimationDef{
			First: enemyType.FirstFrame,
			Last:  enemyType.LastFrame,
			Speed: enemyType.FrameRate,
		}),
	})

	return enemy
}
