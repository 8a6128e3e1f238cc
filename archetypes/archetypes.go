package archetypes

import (
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.State,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Game = newArchetype(
		components.Game,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Trail = newArchetype(
		components.Trail,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
