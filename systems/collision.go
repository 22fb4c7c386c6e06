package systems

import (
	"math"

	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/engine"
)

// LaserX returns the left edge of a laser of laserWidth fired from gun
func LaserX(gun components.Gun, laserWidth float64) float64 {
	return gun.X + gun.Width/2 - laserWidth/2
}

// HitTest reports whether a vertical laser at laserX intersects b
// The test compares the laser's left edge against the bubble center
func HitTest(b components.Bubble, laserX float64) bool {
	return math.Abs(b.CenterX()-laserX) <= b.Radius
}

// FireResult summarizes one fire action
type FireResult struct {
	LaserX float64
	Hits   [components.KindCount]int
	Points int // Sum of points over every hit, before the score floor
}

// TotalHits returns hits across all kinds
func (r FireResult) TotalHits() int {
	n := 0
	for _, h := range r.Hits {
		n += h
	}
	return n
}

// CollisionSystem resolves laser shots against every bubble collection
type CollisionSystem struct {
	world      *engine.World
	laserWidth float64
}

// NewCollisionSystem creates a collision system over world
func NewCollisionSystem(world *engine.World, laserWidth float64) *CollisionSystem {
	return &CollisionSystem{
		world:      world,
		laserWidth: laserWidth,
	}
}

// Fire removes every bubble the laser intersects, in one pass per collection, and tallies points
// Collections are resolved independently against the same laser position
func (c *CollisionSystem) Fire(specs [components.KindCount]components.KindSpec) FireResult {
	res := FireResult{LaserX: LaserX(c.world.Gun, c.laserWidth)}

	for _, spec := range specs {
		bubbles := c.world.Bubbles(spec.Kind)
		if len(bubbles) == 0 {
			continue
		}

		kept := bubbles[:0]
		for _, b := range bubbles {
			if HitTest(b, res.LaserX) {
				res.Hits[spec.Kind]++
				continue
			}
			kept = append(kept, b)
		}
		clear(bubbles[len(kept):])
		c.world.SetBubbles(spec.Kind, kept)

		res.Points += spec.Points * res.Hits[spec.Kind]
	}

	return res
}

// ApplyScore adds delta to score, flooring the result at zero
func ApplyScore(score, delta int) int {
	score += delta
	if score < 0 {
		return 0
	}
	return score
}
