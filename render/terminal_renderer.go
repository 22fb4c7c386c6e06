package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/constants"
	"github.com/lixenwraith/bubble-popper/game"
)

var kindGlyphs = [components.KindCount]rune{constants.GlyphRegular, constants.GlyphPain, constants.GlyphBonus}

// TerminalRenderer draws game snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout
	base   tcell.Style
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Layout returns the mapping used by the last frame, for translating mouse input
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame draws snap; debug lines, if any, are listed in the top-right corner
func (r *TerminalRenderer) RenderFrame(snap *game.Snapshot, debug []string) {
	w, h := r.screen.Size()
	r.layout = FitLayout(snap.Width, snap.Height, w, h)

	r.screen.SetStyle(r.base)
	r.screen.Clear()

	r.drawBand(snap)
	r.drawBubbles(snap)
	r.drawLaser(snap)
	r.drawGun(snap)
	r.drawHud(snap, w)

	switch snap.Phase {
	case game.PhaseNotStarted:
		r.drawOverlay(w, h, []string{constants.TitleText, ""}, constants.StartText)
	case game.PhaseEnded:
		r.drawOverlay(w, h, []string{constants.GameOverText, fmt.Sprintf("Score: %d", snap.Score), ""}, constants.PlayAgainText)
	}

	r.drawDebug(debug, w)
	r.screen.Show()
}

// bandRow returns the first screen row inside the gun band
func (r *TerminalRenderer) bandRow(snap *game.Snapshot) int {
	_, row := r.layout.ToCell(0, snap.BandTop)
	return row
}

func (r *TerminalRenderer) drawBand(snap *game.Snapshot) {
	style := r.base.Foreground(RgbBand)
	for row := r.bandRow(snap); row < HudRows+r.layout.Rows; row++ {
		for col := 0; col < r.layout.Cols; col++ {
			r.screen.SetContent(col, row, constants.GlyphBand, nil, style)
		}
	}
}

// drawBubbles fills every cell whose center lies inside a bubble
func (r *TerminalRenderer) drawBubbles(snap *game.Snapshot) {
	for _, k := range components.Kinds {
		style := r.base.Foreground(KindColor(k))
		for _, b := range snap.Bubbles[k] {
			r.drawDisc(b, kindGlyphs[k], style)
		}
	}
}

func (r *TerminalRenderer) drawDisc(b components.Bubble, glyph rune, style tcell.Style) {
	cx, cy := b.CenterX(), b.Y+b.Radius
	c0, r0 := r.layout.ToCell(b.X, b.Y)
	c1, r1 := r.layout.ToCell(b.X+2*b.Radius, b.Y+2*b.Radius)

	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !r.layout.InPlayArea(col, row) {
				continue
			}
			x, y := r.layout.ToWorld(col, row)
			if math.Hypot(x-cx, y-cy) <= b.Radius {
				r.screen.SetContent(col, row, glyph, nil, style)
				drawn = true
			}
		}
	}

	// Bubbles smaller than a cell still get one glyph at their center
	if !drawn {
		col, row := r.layout.ToCell(cx, cy)
		if r.layout.InPlayArea(col, row) {
			r.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawLaser(snap *game.Snapshot) {
	if !snap.Laser.Visible {
		return
	}
	col, _ := r.layout.ToCell(snap.Laser.X+snap.Laser.Width/2, 0)
	if col < 0 || col >= r.layout.Cols {
		return
	}
	style := r.base.Foreground(RgbLaser)
	for row := HudRows; row < r.bandRow(snap); row++ {
		r.screen.SetContent(col, row, constants.GlyphLaser, nil, style)
	}
}

func (r *TerminalRenderer) drawGun(snap *game.Snapshot) {
	row := r.bandRow(snap)
	c0, _ := r.layout.ToCell(snap.Gun.X, 0)
	c1, _ := r.layout.ToCell(snap.Gun.X+snap.Gun.Width, 0)
	style := r.base.Foreground(RgbGun)
	for col := c0; col < max(c1, c0+1); col++ {
		if r.layout.InPlayArea(col, row) {
			r.screen.SetContent(col, row, constants.GlyphGun, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawHud(snap *game.Snapshot, width int) {
	style := tcell.StyleDefault.Background(RgbHudBg).Foreground(RgbHudText)
	for col := 0; col < width; col++ {
		r.screen.SetContent(col, 0, ' ', nil, style)
	}

	text := fmt.Sprintf(" Score: %d  Time: %d", snap.Score, snap.Remaining)
	r.drawText(0, 0, text, style)

	if snap.Paused {
		r.drawText(width-len(constants.PausedText)-1, 0, constants.PausedText, style.Foreground(RgbPaused))
	}
}

// drawOverlay centers lines followed by a button label
func (r *TerminalRenderer) drawOverlay(width, height int, lines []string, button string) {
	top := (height - len(lines) - 1) / 2
	text := r.base.Foreground(RgbOverlayText).Bold(true)
	for i, line := range lines {
		r.drawText((width-len([]rune(line)))/2, top+i, line, text)
	}
	btn := tcell.StyleDefault.Background(RgbButtonBg).Foreground(RgbButtonText)
	r.drawText((width-len([]rune(button)))/2, top+len(lines), button, btn)
}

func (r *TerminalRenderer) drawDebug(lines []string, width int) {
	style := r.base.Foreground(RgbDebugText)
	for i, line := range lines {
		r.drawText(width-len([]rune(line))-1, HudRows+i, line, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
