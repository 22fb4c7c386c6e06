package events

import (
	"github.com/lixenwraith/bubble-popper/components"
)

// BubblePayload identifies one bubble of a kind
type BubblePayload struct {
	Kind   components.Kind
	Bubble components.Bubble
}

// PopPayload summarizes the hits on one collection in a single fire action
type PopPayload struct {
	Kind   components.Kind
	Count  int
	Points int // Raw points before the score floor is applied
}

// LaserPayload describes an accepted fire action
type LaserPayload struct {
	X    float64
	Hits int // Total hits across all kinds
}

// CountdownPayload carries the seconds left after a countdown tick
type CountdownPayload struct {
	Remaining int
}

// RunEndedPayload carries the final score of a finished run
type RunEndedPayload struct {
	Score int
}
