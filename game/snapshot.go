package game

import (
	"github.com/lixenwraith/bubble-popper/components"
)

// Snapshot is a detached, read-only copy of everything a renderer draws
type Snapshot struct {
	Phase     Phase
	Paused    bool
	Score     int
	Remaining int // Seconds left in the round

	Bubbles [components.KindCount][]components.Bubble
	Gun     components.Gun
	Laser   components.Laser

	Width   float64
	Height  float64
	BandTop float64 // Taps at or below this y aim instead of fire
}

// Snapshot copies the current state for rendering
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     c.phase,
		Paused:    c.clock.IsPaused(),
		Score:     c.score,
		Remaining: c.remaining,
		Gun:       c.world.Gun,
		Laser:     c.world.Laser,
		Width:     c.world.Width,
		Height:    c.world.Height,
		BandTop:   c.bandTop,
	}
	for _, k := range components.Kinds {
		snap.Bubbles[k] = c.world.CopyBubbles(k)
	}
	return snap
}

// BubbleCount returns the number of bubbles across all kinds
func (s *Snapshot) BubbleCount() int {
	n := 0
	for _, b := range s.Bubbles {
		n += len(b)
	}
	return n
}
