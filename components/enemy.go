package components

import (
	"github.com/automoto/bushido-blazer/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind config.EnemyKind

	// Set once slashed; the next finisher removes the enemy.
	Marked bool
}

// Type returns the tuning for the enemy's kind.
func (e *EnemyData) Type() config.EnemyTypeConfig {
	return config.Enemy.Types[e.Kind]
}

var Enemy = donburi.NewComponentType[EnemyData]()
