package render

import (
	"math"
)

// HudRows is the number of terminal rows above the play area
const HudRows = 1

// Layout maps world coordinates onto the terminal grid below the HUD
type Layout struct {
	Cols, Rows   int     // Play area size in cells
	CellW, CellH float64 // World units per cell
}

// FitLayout stretches a world of width x height over a screen of screenW x screenH cells
func FitLayout(width, height float64, screenW, screenH int) Layout {
	cols := max(screenW, 1)
	rows := max(screenH-HudRows, 1)
	return Layout{
		Cols:  cols,
		Rows:  rows,
		CellW: width / float64(cols),
		CellH: height / float64(rows),
	}
}

// ViewportFor returns the world size that maps one cell to cellW x cellH units on a screenW x screenH terminal
func ViewportFor(screenW, screenH int, cellW, cellH float64) (width, height float64) {
	return float64(max(screenW, 1)) * cellW, float64(max(screenH-HudRows, 1)) * cellH
}

// ToCell returns the screen cell containing world point (x, y)
func (l Layout) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / l.CellW)), int(math.Floor(y/l.CellH)) + HudRows
}

// ToWorld returns the world point at the center of screen cell (col, row)
func (l Layout) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * l.CellW, (float64(row-HudRows) + 0.5) * l.CellH
}

// InPlayArea reports whether a screen cell lies below the HUD and inside the world
func (l Layout) InPlayArea(col, row int) bool {
	return col >= 0 && col < l.Cols && row >= HudRows && row < HudRows+l.Rows
}
