package systems

import (
	"math/rand/v2"

	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/engine"
)

// SpawnSystem appends new bubbles just above the bottom of the viewport
type SpawnSystem struct {
	world   *engine.World
	rng     *rand.Rand
	offsetY float64 // Distance from the viewport bottom to the spawn line
}

// NewSpawnSystem creates a spawn system over world
func NewSpawnSystem(world *engine.World, rng *rand.Rand, offsetY float64) *SpawnSystem {
	return &SpawnSystem{
		world:   world,
		rng:     rng,
		offsetY: offsetY,
	}
}

// Spawn creates one bubble of spec's kind and appends it to that kind's collection
// X is uniform over [0, width - 2r), collapsing to 0 when the bubble is wider than the viewport
func (s *SpawnSystem) Spawn(spec components.KindSpec) components.Bubble {
	span := s.world.Width - 2*spec.Radius
	if span < 0 {
		span = 0
	}

	b := components.Bubble{
		ID:     s.world.CreateEntity(),
		X:      s.rng.Float64() * span,
		Y:      s.world.Height - s.offsetY,
		Radius: spec.Radius,
	}
	s.world.AddBubble(spec.Kind, b)
	return b
}
