package telemetry

import (
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/scenes"
)

// Collector turns a stream of snapshots and sound cues into records.
type Collector struct {
	seed       int64
	difficulty string
	dt         float64

	started bool
	current *WaveRecord
	waves   []WaveRecord
	run     RunRecord
	last    scenes.Snapshot
}

func NewCollector(seed int64, difficulty string, dt float64) *Collector {
	return &Collector{
		seed:       seed,
		difficulty: difficulty,
		dt:         dt,
		run:        RunRecord{Seed: seed, Difficulty: difficulty, Outcome: OutcomeTimeout},
	}
}

// Observe records one tick. Ticks before the first Play phase are ignored.
func (c *Collector) Observe(tick int, snap scenes.Snapshot, cues []components.SoundCue) {
	if snap.Phase == config.PhasePlay {
		c.started = true
	}
	if !c.started {
		return
	}

	if snap.Wave >= 0 && (c.current == nil || snap.Wave != c.current.Wave) {
		c.closeWave(tick, true)
		c.current = &WaveRecord{Seed: c.seed, Wave: snap.Wave, StartTick: tick}
	}

	if c.current != nil {
		for _, cue := range cues {
			c.count(cue.ID)
		}
		c.current.Combo = snap.Combo.String()
		c.current.Expanded = snap.Expanded
	}

	c.run.Ticks = tick
	c.last = snap
}

func (c *Collector) count(id config.SoundID) {
	w := c.current
	switch id {
	case config.SoundSlash:
		w.Slashes++
	case config.SoundUnready:
		w.Unready++
	case config.SoundHit:
		w.Hits++
	case config.SoundKill:
		w.Kills++
	case config.SoundSpark:
		w.Sparks++
	case config.SoundOuch:
		w.HitsTaken++
	}
}

func (c *Collector) closeWave(tick int, cleared bool) {
	if c.current == nil {
		return
	}
	c.current.EndTick = tick
	c.current.Seconds = float64(tick-c.current.StartTick) * c.dt
	c.current.Cleared = cleared
	c.waves = append(c.waves, *c.current)
	c.current = nil
}

// Finish closes the open wave with the run's final phase and returns the
// records.
func (c *Collector) Finish(end config.Phase) (RunRecord, []WaveRecord) {
	switch end {
	case config.PhaseGameOver:
		c.run.Outcome = OutcomeGameOver
	case config.PhaseDarkPresenceAttack:
		c.run.Outcome = OutcomeDarkPresence
	}
	c.closeWave(c.run.Ticks, false)

	c.run.Seconds = float64(c.run.Ticks) * c.dt
	c.run.Waves = len(c.waves)
	c.run.Kills = c.last.Kills
	c.run.Expanded = c.last.Expanded
	for _, w := range c.waves {
		c.run.Slashes += w.Slashes
		c.run.HitsTaken += w.HitsTaken
	}
	return c.run, c.waves
}
