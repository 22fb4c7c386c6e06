package components

// Bubble is one rising target. Its kind is implied by the collection holding it
// X is the left edge, so the horizontal center is X + Radius
type Bubble struct {
	ID     int
	X      float64
	Y      float64
	Radius float64
}

// CenterX returns the horizontal center used for laser hit tests
func (b Bubble) CenterX() float64 {
	return b.X + b.Radius
}
