package components

// Gun is the player's horizontally movable turret; X is its left edge
type Gun struct {
	X     float64
	Width float64
}

// CenterX returns the horizontal center of the gun
func (g Gun) CenterX() float64 {
	return g.X + g.Width/2
}

// Laser is the transient beam shown after a fire action
type Laser struct {
	Visible bool
	X       float64
	Width   float64
}
