package components

import (
	"github.com/automoto/bushido-blazer/config"
	"github.com/yohamta/donburi"
)

// SpawnerData is the wave cursor. Current only moves forward except on Reset.
type SpawnerData struct {
	Current int
	Waves   [][]config.EnemyKind
}

// NewSpawner returns a cursor positioned before the first wave.
func NewSpawner(waves [][]config.EnemyKind) SpawnerData {
	return SpawnerData{Current: -1, Waves: waves}
}

// Reset rewinds the cursor to before the first wave.
func (s *SpawnerData) Reset() {
	s.Current = -1
}

// Curated reports whether index falls inside the curated list.
func (s *SpawnerData) Curated(index int) bool {
	return index >= 0 && index < len(s.Waves)
}

var Spawner = donburi.NewComponentType[SpawnerData]()
