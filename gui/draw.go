package gui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/game"
)

const hudMargin = 8

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	screen.Fill(colorBackground)

	drawBand(screen, &snap)
	drawBubbles(screen, &snap)
	drawLaser(screen, &snap)
	drawGun(screen, &snap)
	g.drawHud(screen, &snap)

	if ov := g.activeOverlay(); ov != nil {
		ov.ui.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, strings.Join(g.metrics.Lines(), "\n"), hudMargin, 3*hudMargin)
	}
}

func drawBand(screen *ebiten.Image, snap *game.Snapshot) {
	vector.FillRect(screen, 0, float32(snap.BandTop), float32(snap.Width), float32(snap.Height-snap.BandTop), colorBand, false)
}

func drawBubbles(screen *ebiten.Image, snap *game.Snapshot) {
	for _, k := range components.Kinds {
		clr := kindColor(k)
		for _, b := range snap.Bubbles[k] {
			cx, cy, r := float32(b.CenterX()), float32(b.Y+b.Radius), float32(b.Radius)
			vector.FillCircle(screen, cx, cy, r, clr, true)
			vector.StrokeCircle(screen, cx, cy, r, 1.5, colorHudText, true)
		}
	}
}

func drawLaser(screen *ebiten.Image, snap *game.Snapshot) {
	if !snap.Laser.Visible {
		return
	}
	vector.FillRect(screen, float32(snap.Laser.X), 0, float32(snap.Laser.Width), float32(snap.BandTop), colorLaser, false)
}

func drawGun(screen *ebiten.Image, snap *game.Snapshot) {
	h := float32(snap.Height-snap.BandTop) / 2
	vector.FillRect(screen, float32(snap.Gun.X), float32(snap.BandTop), float32(snap.Gun.Width), h, colorGun, false)
	cx := float32(snap.Gun.CenterX())
	vector.StrokeLine(screen, cx, float32(snap.BandTop), cx, float32(snap.BandTop)-h/2, 4, colorGun, false)
}

func (g *Game) drawHud(screen *ebiten.Image, snap *game.Snapshot) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(colorHudText)
	ebtext.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), g.face, op)

	timeText := fmt.Sprintf("Time: %d", snap.Remaining)
	w, _ := ebtext.Measure(timeText, g.face, 0)
	op = &ebtext.DrawOptions{}
	op.GeoM.Translate(snap.Width-w-hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(colorHudText)
	ebtext.Draw(screen, timeText, g.face, op)
}
