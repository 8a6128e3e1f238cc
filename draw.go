package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/fonts"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 16, B: 22, A: 255}
	wallColor       = color.RGBA{R: 200, G: 190, B: 170, A: 255}
	sparkColor      = color.RGBA{R: 240, G: 200, B: 80, A: 255}
	playerColor     = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	lockedColor     = color.RGBA{R: 255, G: 120, B: 60, A: 255}
	markColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	presenceColor   = color.RGBA{R: 40, G: 0, B: 10, A: 255}

	enemyColors = map[config.EnemyKind]color.RGBA{
		config.Dummy:     {R: 150, G: 120, B: 80, A: 255},
		config.GrayMask:  {R: 140, G: 140, B: 140, A: 255},
		config.BlueMask:  {R: 70, G: 120, B: 230, A: 255},
		config.RedMask:   {R: 220, G: 60, B: 60, A: 255},
		config.BlackMask: {R: 60, G: 40, B: 70, A: 255},
	}
)

func screenPoint(camera *components.CameraData, p gamemath.Vec2) (float32, float32) {
	s := camera.WorldToScreen(p)
	return float32(s.X), float32(s.Y)
}

func drawArena(screen *ebiten.Image, camera *components.CameraData, snap scenes.Snapshot) {
	screen.Fill(backgroundColor)
	if camera == nil {
		return
	}
	zoom := float32(camera.Zoom)

	for _, w := range snap.Walls {
		x0, y0 := screenPoint(camera, w.Rect.Min)
		x1, y1 := screenPoint(camera, w.Rect.Max)
		switch w.Kind {
		case config.WallLine:
			vector.StrokeLine(screen, x0, y0, x1, y1, 3, wallColor, true)
		case config.WallBox:
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, sparkColor, true)
		}
	}

	for _, t := range snap.Trails {
		x0, y0 := screenPoint(camera, t.Start)
		x1, y1 := screenPoint(camera, t.End)
		c := playerColor
		if t.Connected {
			c = lockedColor
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 4*float32(t.Alpha)+1, fade(c, t.Alpha), true)
	}

	for _, e := range snap.Enemies {
		x, y := screenPoint(camera, e.Position)
		r := float32(e.Radius) * zoom
		vector.DrawFilledCircle(screen, x, y, r, enemyColors[e.Kind], true)
		if e.Flash > 0 {
			vector.DrawFilledCircle(screen, x, y, r, fade(markColor, e.Flash), true)
		}
		if e.Marked {
			vector.StrokeCircle(screen, x, y, r+3, 2, markColor, true)
		}
	}

	if p := snap.Player; p != nil {
		x, y := screenPoint(camera, p.Position)
		r := float32(p.Radius) * zoom
		c := playerColor
		if p.Locked {
			c = lockedColor
		}
		vector.DrawFilledCircle(screen, x, y, r, c, true)

		facing := float32(-1)
		if p.Facing == config.Right {
			facing = 1
		}
		vector.StrokeLine(screen, x, y, x+facing*r*1.6, y, 2, c, true)
		if !p.Ready {
			vector.StrokeCircle(screen, x, y, r+4, 1, lockedColor, true)
		}
	}

	if a := snap.PresenceAlpha; a > 0 {
		overlay(screen, presenceColor, a*0.8)
	}
}

func drawHUD(screen *ebiten.Image, snap scenes.Snapshot, view gamemath.Vec2) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	hud := fonts.HUD.Get()

	switch snap.Phase {
	case config.PhaseMenu:
		centered(screen, fonts.Title.Get(), "BUSHIDO BLAZER", view, view.Y/2-20, playerColor)
		centered(screen, hud, "slash to begin", view, view.Y/2+30, wallColor)
	case config.PhaseDarkPresenceAttack:
		centered(screen, fonts.Title.Get(), "THE DARK PRESENCE", view, view.Y/2, lockedColor)
	default:
		line := fmt.Sprintf("wave %d   kills %d   %s", snap.Wave+1, snap.Kills, snap.Combo)
		text.Draw(screen, line, hud, 16, 24, wallColor)
	}

	if a := snap.BannerAlpha; a > 0 && snap.Combo != config.ComboZero {
		centered(screen, fonts.Banner.Get(), snap.Combo.String(), view, view.Y/4, fade(lockedColor, a))
	}

	if a := snap.FadeAlpha; a > 0 {
		overlay(screen, color.RGBA{A: 255}, a)
	}
}

// fade scales an opaque color to alpha, premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(math.Round(255 * alpha)),
	}
}

func overlay(screen *ebiten.Image, c color.RGBA, alpha float64) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), fade(c, alpha), false)
}

func centered(screen *ebiten.Image, face font.Face, s string, view gamemath.Vec2, y float64, c color.Color) {
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, int(view.X)/2-w/2, int(y), c)
}
