package constants

// Viewport Defaults
// Used by the window frontend; the terminal frontend derives its viewport from the terminal size
const (
	DefaultViewportWidth  = 400.0
	DefaultViewportHeight = 800.0

	// GunBandFraction is the share of viewport height, at the bottom, that aims instead of fires
	GunBandFraction = 0.08
)

// Terminal Cell Geometry
// One terminal cell covers CellWidth x CellHeight world units
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Terminal Glyphs
const (
	GlyphRegular = 'o'
	GlyphPain    = 'x'
	GlyphBonus   = '$'
	GlyphLaser   = '│'
	GlyphGun     = '▀'
	GlyphBand    = '░'
)

// Overlay Text
const (
	TitleText     = "Bubble Popper"
	StartText     = "[ Start Game ]"
	GameOverText  = "Game Over"
	PlayAgainText = "[ Play Again ]"
	PausedText    = "PAUSED"
)
