package systems

import (
	"math/rand/v2"

	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/engine"
)

// MotionSystem advances bubbles upward and discards the ones that left the viewport
type MotionSystem struct {
	world      *engine.World
	rng        *rand.Rand
	offscreenY float64
}

// NewMotionSystem creates a motion system over world
// A bubble whose y is at or above offscreenY after a step is removed
func NewMotionSystem(world *engine.World, rng *rand.Rand, offscreenY float64) *MotionSystem {
	return &MotionSystem{
		world:      world,
		rng:        rng,
		offscreenY: offscreenY,
	}
}

// Move runs one motion tick for spec's kind, returns the removed bubbles
// Steps are drawn per bubble, so random kinds jitter independently
func (m *MotionSystem) Move(spec components.KindSpec) []components.Bubble {
	bubbles := m.world.Bubbles(spec.Kind)
	if len(bubbles) == 0 {
		return nil
	}

	var escaped []components.Bubble
	kept := bubbles[:0]
	for _, b := range bubbles {
		b.Y -= spec.Step(m.rng)
		if b.Y <= m.offscreenY {
			escaped = append(escaped, b)
			continue
		}
		kept = append(kept, b)
	}

	// Zero the tail so dropped bubbles don't linger in the backing array
	clear(bubbles[len(kept):])
	m.world.SetBubbles(spec.Kind, kept)
	return escaped
}
