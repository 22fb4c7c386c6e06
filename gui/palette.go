package gui

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/lixenwraith/bubble-popper/components"
)

var (
	colorBackground = color.RGBA{R: 26, G: 27, B: 38, A: 255}
	colorBand       = color.RGBA{R: 60, G: 62, B: 82, A: 255}
	colorGun        = colornames.Lightsteelblue
	colorLaser      = colornames.Red
	colorHudText    = colornames.White
	colorPanel      = color.NRGBA{A: 200}
	colorButton     = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	colorButtonDown = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

var kindColors = [components.KindCount]color.RGBA{
	colornames.Cornflowerblue,
	colornames.Crimson,
	colornames.Gold,
}

// kindColor returns the fill color for kind
func kindColor(kind components.Kind) color.Color {
	if kind < 0 || kind >= components.KindCount {
		return colorHudText
	}
	return kindColors[kind]
}
