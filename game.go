package main

import (
	"github.com/automoto/bushido-blazer/bot"
	"github.com/automoto/bushido-blazer/cuesynth"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/input"
	"github.com/automoto/bushido-blazer/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts an ArenaScene to ebiten: it polls devices, steps the scene
// once per ebiten tick and hands cues to the synth.
type Game struct {
	scene *scenes.ArenaScene
	input *input.State
	synth *cuesynth.Synth
	pilot *bot.Autopilot

	snap scenes.Snapshot
	view gamemath.Vec2
}

func NewGame(scene *scenes.ArenaScene, synth *cuesynth.Synth, pilot *bot.Autopilot) *Game {
	view := gamemath.V(1280, 720)
	if camera := scene.Camera(); camera != nil {
		view = camera.View
	}
	return &Game{
		scene: scene,
		input: input.NewState(analogDeadzone),
		synth: synth,
		pilot: pilot,
		snap:  scene.Snapshot(),
		view:  view,
	}
}

func (g *Game) Update() error {
	in := g.input.Update(pollDevices(g.scene.Camera()))
	if g.input.Action(input.ActionQuit).JustPressed {
		return ebiten.Termination
	}
	if g.pilot != nil {
		in = g.pilot.Input(g.snap, g.scene.Context().Inner)
	}

	g.scene.Update(in, 1/float64(ebiten.TPS()))
	g.snap = g.scene.Snapshot()

	cues := g.scene.DrainSounds()
	if g.synth != nil {
		g.synth.PlayAll(cues)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawArena(screen, g.scene.Camera(), g.snap)
	drawHUD(screen, g.snap, g.view)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(g.view.X), int(g.view.Y)
}
