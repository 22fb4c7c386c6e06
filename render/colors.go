package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bubble-popper/components"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbBand       = tcell.NewRGBColor(60, 62, 82)
	RgbGun        = tcell.NewRGBColor(192, 202, 245)
	RgbLaser      = tcell.NewRGBColor(255, 60, 60)

	RgbRegular = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbPain    = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbBonus   = tcell.NewRGBColor(255, 215, 0)   // Gold

	RgbHudText     = tcell.NewRGBColor(255, 255, 255)
	RgbHudBg       = tcell.NewRGBColor(41, 46, 66)
	RgbOverlayText = tcell.NewRGBColor(255, 255, 255)
	RgbButtonBg    = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbButtonText  = tcell.NewRGBColor(0, 0, 0)
	RgbPaused      = tcell.NewRGBColor(255, 165, 0)
	RgbDebugText   = tcell.NewRGBColor(180, 180, 180)
)

var kindColors = [components.KindCount]tcell.Color{RgbRegular, RgbPain, RgbBonus}

// KindColor returns the bubble color for kind
func KindColor(kind components.Kind) tcell.Color {
	if kind < 0 || kind >= components.KindCount {
		return RgbHudText
	}
	return kindColors[kind]
}
