// Package bot drives a session from its snapshots. It is the scripted player
// used by the headless report and the end-to-end tests.
package bot

import (
	"math"
	"math/rand"

	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/scenes"
	"github.com/automoto/bushido-blazer/sim"
)

// State is the autopilot's current intent.
type State int

const (
	StateIdle State = iota
	StateChase
	StateAttack
	StateRetreat
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateRetreat:
		return "retreat"
	}
	return "unknown"
}

// Autopilot produces one sim.Input per tick.
type Autopilot struct {
	tuning config.BotDifficultyConfig
	rng    *rand.Rand

	State         State
	DecisionTimer int

	// Target is the enemy index in the last snapshot, -1 for none.
	Target   int
	TargetAt gamemath.Vec2

	menuHeld bool
}

// New returns an autopilot for difficulty. rng is only used for aim error.
func New(difficulty config.BotDifficulty, rng *rand.Rand) *Autopilot {
	tuning, ok := config.Bot.Difficulties[difficulty]
	if !ok {
		tuning = config.Bot.Difficulties[config.BotDifficultyNormal]
	}
	return &Autopilot{tuning: tuning, rng: rng, Target: -1}
}

// Input decides this tick's input from the last snapshot.
func (a *Autopilot) Input(snap scenes.Snapshot, inner gamemath.Rect) sim.Input {
	switch snap.Phase {
	case config.PhaseMenu:
		// Attack is edge triggered, so alternate press and release.
		a.menuHeld = !a.menuHeld
		return sim.Input{Attack: a.menuHeld}
	case config.PhasePlay:
	default:
		a.menuHeld = false
		return sim.Input{}
	}

	player := snap.Player
	if player == nil {
		return sim.Input{}
	}

	if a.DecisionTimer > 0 {
		a.DecisionTimer--
	}
	if a.DecisionTimer <= 0 || !a.validTarget(snap.Enemies) {
		a.Target = nearestTarget(player.Position, snap.Enemies)
		a.DecisionTimer = a.tuning.ReactionDelay
	}
	if a.Target >= 0 {
		a.TargetAt = snap.Enemies[a.Target].Position
	}

	a.State = a.decide(player)

	in := sim.Input{Cursor: a.TargetAt}
	switch a.State {
	case StateChase:
		in.Move = gamemath.Normalize(gamemath.Sub(a.TargetAt, player.Position))
	case StateAttack:
		in.Attack = true
		in.Cursor = a.aim(player.Position)
	case StateRetreat:
		in.Move = gamemath.Normalize(gamemath.Sub(player.Position, a.TargetAt))
	case StateIdle:
		in.Cursor = inner.Center()
	}

	in.Move = a.stayHome(in.Move, player.Position, inner)
	return in
}

func (a *Autopilot) validTarget(enemies []scenes.EnemyView) bool {
	return a.Target >= 0 && a.Target < len(enemies) && !enemies[a.Target].Marked
}

func (a *Autopilot) decide(player *scenes.PlayerView) State {
	if a.Target < 0 {
		return StateIdle
	}
	dist := gamemath.Distance(player.Position, a.TargetAt)
	switch {
	case player.Ready && dist <= a.tuning.AttackReach*config.Player.SlashDistance:
		return StateAttack
	case !player.Ready && dist < a.tuning.RetreatRange:
		return StateRetreat
	}
	return StateChase
}

// aim points the cursor at the target with the difficulty's error.
func (a *Autopilot) aim(from gamemath.Vec2) gamemath.Vec2 {
	dir := gamemath.Sub(a.TargetAt, from)
	if a.tuning.AimJitter > 0 && a.rng != nil {
		dir = gamemath.Rotate(dir, (a.rng.Float64()*2-1)*a.tuning.AimJitter)
	}
	return gamemath.Add(from, dir)
}

// stayHome steers back inside the arena before the Dark Presence notices.
func (a *Autopilot) stayHome(move, pos gamemath.Vec2, inner gamemath.Rect) gamemath.Vec2 {
	home := inner.Inset(a.tuning.HomeMargin)
	if home.Contains(pos) {
		return move
	}
	back := gamemath.Normalize(gamemath.Sub(inner.Center(), pos))
	return gamemath.ClampLength(gamemath.Add(move, gamemath.Scale(back, 2)), 1)
}

func nearestTarget(from gamemath.Vec2, enemies []scenes.EnemyView) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, e := range enemies {
		if e.Marked {
			continue
		}
		if d := gamemath.Distance(from, e.Position); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Observer sees every tick of a run after the update.
type Observer func(tick int, snap scenes.Snapshot, cues []components.SoundCue)

// Run drives scene until the run it starts ends or maxTicks pass. It returns
// the ticks used and the phase the run ended in (Play on timeout).
func Run(scene *scenes.ArenaScene, a *Autopilot, maxTicks int, dt float64, observe Observer) (int, config.Phase) {
	inner := scene.Context().Inner
	snap := scene.Snapshot()
	started := false

	for tick := 1; tick <= maxTicks; tick++ {
		scene.Update(a.Input(snap, inner), dt)
		snap = scene.Snapshot()
		cues := scene.DrainSounds()
		if observe != nil {
			observe(tick, snap, cues)
		}

		switch snap.Phase {
		case config.PhasePlay:
			started = true
		case config.PhaseGameOver, config.PhaseDarkPresenceAttack:
			if started {
				return tick, snap.Phase
			}
		}
	}
	return maxTicks, snap.Phase
}
