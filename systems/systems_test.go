package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/constants"
	"github.com/lixenwraith/bubble-popper/engine"
)

func testSpecs() [components.KindCount]components.KindSpec {
	return [components.KindCount]components.KindSpec{
		{Kind: components.KindRegular, Radius: constants.RegularRadius, SpawnPeriod: constants.RegularSpawnPeriod,
			Step: components.FixedStep(constants.RegularStep), Points: constants.RegularPoints},
		{Kind: components.KindPain, Radius: constants.PainRadius, SpawnPeriod: constants.PainSpawnPeriod,
			Step: components.RandomStep(constants.PainMaxStep), Points: constants.PainPoints},
		{Kind: components.KindBonus, Radius: constants.BonusRadius, SpawnPeriod: constants.BonusSpawnPeriod,
			Step: components.RandomStep(constants.BonusMaxStep), Points: constants.BonusPoints},
	}
}

func newTestWorld() *engine.World {
	w := engine.NewWorld(400, 800)
	w.Gun.Width = constants.GunWidth
	w.CenterGun()
	return w
}

func TestSpawnPlacement(t *testing.T) {
	w := newTestWorld()
	s := NewSpawnSystem(w, rand.New(rand.NewPCG(1, 2)), constants.SpawnYOffset)
	specs := testSpecs()

	for i := 0; i < 200; i++ {
		for _, spec := range specs {
			b := s.Spawn(spec)
			if b.Y != 700 {
				t.Fatalf("Expected spawn y 700, got %v", b.Y)
			}
			if b.X < 0 || b.X >= w.Width-2*spec.Radius {
				t.Fatalf("Spawn x %v outside [0, %v)", b.X, w.Width-2*spec.Radius)
			}
			if b.Radius != spec.Radius {
				t.Fatalf("Expected radius %v, got %v", spec.Radius, b.Radius)
			}
		}
	}

	if w.Count(components.KindRegular) != 200 || w.Total() != 600 {
		t.Errorf("Expected 200 per kind and 600 total, got %d and %d", w.Count(components.KindRegular), w.Total())
	}
}

func TestSpawnIDsUniqueAcrossKinds(t *testing.T) {
	w := newTestWorld()
	s := NewSpawnSystem(w, rand.New(rand.NewPCG(3, 4)), constants.SpawnYOffset)
	specs := testSpecs()

	seen := make(map[int]bool)
	for i := 0; i < 30; i++ {
		b := s.Spawn(specs[i%len(specs)])
		if seen[b.ID] {
			t.Fatalf("Duplicate id %d", b.ID)
		}
		seen[b.ID] = true
	}
	if !seen[1] {
		t.Error("Expected ids to start at 1")
	}
}

func TestSpawnNarrowViewport(t *testing.T) {
	w := engine.NewWorld(40, 800)
	s := NewSpawnSystem(w, rand.New(rand.NewPCG(5, 6)), constants.SpawnYOffset)

	b := s.Spawn(testSpecs()[components.KindRegular])
	if b.X != 0 {
		t.Errorf("Expected x 0 for bubble wider than viewport, got %v", b.X)
	}
}

func TestMoveRegularFixedStep(t *testing.T) {
	w := newTestWorld()
	m := NewMotionSystem(w, rand.New(rand.NewPCG(1, 1)), constants.OffscreenY)
	spec := testSpecs()[components.KindRegular]
	w.AddBubble(components.KindRegular, components.Bubble{ID: 1, X: 10, Y: 700, Radius: 30})

	for i := 0; i < 10; i++ {
		m.Move(spec)
	}

	got := w.Bubbles(components.KindRegular)[0].Y
	if got != 680 {
		t.Errorf("Expected y 680 after 10 ticks, got %v", got)
	}
}

func TestMoveRemovesOffscreen(t *testing.T) {
	w := newTestWorld()
	m := NewMotionSystem(w, rand.New(rand.NewPCG(1, 1)), constants.OffscreenY)
	spec := testSpecs()[components.KindRegular]
	w.AddBubble(components.KindRegular, components.Bubble{ID: 1, X: 10, Y: -57, Radius: 30})
	w.AddBubble(components.KindRegular, components.Bubble{ID: 2, X: 10, Y: -55, Radius: 30})
	w.AddBubble(components.KindRegular, components.Bubble{ID: 3, X: 10, Y: 100, Radius: 30})

	escaped := m.Move(spec)

	// -57-2 = -59 stays, -55-2 = -57 stays
	if len(escaped) != 0 {
		t.Fatalf("Expected no escapes, got %d", len(escaped))
	}

	escaped = m.Move(spec)
	// -59-2 = -61 leaves, -57-2 = -59 stays
	if len(escaped) != 1 || escaped[0].ID != 1 {
		t.Fatalf("Expected bubble 1 to escape, got %v", escaped)
	}

	escaped = m.Move(spec)
	// -59-2 = -61 leaves
	if len(escaped) != 1 || escaped[0].ID != 2 {
		t.Fatalf("Expected bubble 2 to escape, got %v", escaped)
	}
	if w.Count(components.KindRegular) != 1 {
		t.Errorf("Expected 1 remaining bubble, got %d", w.Count(components.KindRegular))
	}
}

func TestMoveRemovesAtExactThreshold(t *testing.T) {
	w := newTestWorld()
	m := NewMotionSystem(w, rand.New(rand.NewPCG(1, 1)), constants.OffscreenY)
	w.AddBubble(components.KindRegular, components.Bubble{ID: 1, Y: -58, Radius: 30})

	escaped := m.Move(testSpecs()[components.KindRegular])
	if len(escaped) != 1 {
		t.Errorf("Expected bubble at y -60 to be removed, got %d escapes", len(escaped))
	}
}

func TestMoveRandomStepBounds(t *testing.T) {
	w := newTestWorld()
	m := NewMotionSystem(w, rand.New(rand.NewPCG(9, 9)), constants.OffscreenY)
	spec := testSpecs()[components.KindPain]
	for i := 1; i <= 50; i++ {
		w.AddBubble(components.KindPain, components.Bubble{ID: i, Y: 700, Radius: spec.Radius})
	}

	m.Move(spec)

	distinct := make(map[float64]bool)
	for _, b := range w.Bubbles(components.KindPain) {
		step := 700 - b.Y
		if step < 0 || step >= constants.PainMaxStep {
			t.Fatalf("Step %v outside [0, %v)", step, constants.PainMaxStep)
		}
		distinct[step] = true
	}
	if len(distinct) < 2 {
		t.Error("Expected steps drawn per bubble")
	}
}

func TestMoveKindsIndependent(t *testing.T) {
	w := newTestWorld()
	m := NewMotionSystem(w, rand.New(rand.NewPCG(1, 1)), constants.OffscreenY)
	w.AddBubble(components.KindBonus, components.Bubble{ID: 1, Y: 500, Radius: 20})

	m.Move(testSpecs()[components.KindRegular])

	if w.Bubbles(components.KindBonus)[0].Y != 500 {
		t.Error("Regular motion tick moved a bonus bubble")
	}
}

func TestHitTest(t *testing.T) {
	tests := []struct {
		name   string
		bubble components.Bubble
		laserX float64
		hit    bool
	}{
		{"center offset within radius", components.Bubble{X: 185, Radius: 30}, 198, true},
		{"exact left boundary", components.Bubble{X: 100, Radius: 30}, 100, true},
		{"exact right boundary", components.Bubble{X: 100, Radius: 30}, 160, true},
		{"just outside", components.Bubble{X: 100, Radius: 30}, 160.5, false},
		{"far away", components.Bubble{X: 0, Radius: 17.5}, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(tt.bubble, tt.laserX); got != tt.hit {
				t.Errorf("Expected hit %v, got %v", tt.hit, got)
			}
		})
	}
}

func TestLaserX(t *testing.T) {
	gun := components.Gun{X: 170, Width: 60}
	if got := LaserX(gun, 4); got != 198 {
		t.Errorf("Expected laserX 198, got %v", got)
	}
}

func TestFireRemovesHitsAndScores(t *testing.T) {
	w := newTestWorld()
	w.Gun.X = 170 // laserX 198
	c := NewCollisionSystem(w, constants.LaserWidth)

	w.AddBubble(components.KindRegular, components.Bubble{ID: 1, X: 185, Y: 300, Radius: 30})
	w.AddBubble(components.KindRegular, components.Bubble{ID: 2, X: 0, Y: 300, Radius: 30})
	w.AddBubble(components.KindRegular, components.Bubble{ID: 3, X: 170, Y: 200, Radius: 30})
	w.AddBubble(components.KindBonus, components.Bubble{ID: 4, X: 180, Y: 100, Radius: 20})
	w.AddBubble(components.KindPain, components.Bubble{ID: 5, X: 190, Y: 50, Radius: 17.5})

	res := c.Fire(testSpecs())

	if res.LaserX != 198 {
		t.Errorf("Expected laserX 198, got %v", res.LaserX)
	}
	if res.Hits[components.KindRegular] != 2 || res.Hits[components.KindBonus] != 1 || res.Hits[components.KindPain] != 1 {
		t.Errorf("Unexpected hits %v", res.Hits)
	}
	// 2*1 + 1*5 - 1
	if res.Points != 6 {
		t.Errorf("Expected 6 points, got %d", res.Points)
	}
	if res.TotalHits() != 4 {
		t.Errorf("Expected 4 total hits, got %d", res.TotalHits())
	}

	left := w.Bubbles(components.KindRegular)
	if len(left) != 1 || left[0].ID != 2 {
		t.Errorf("Expected only bubble 2 to remain, got %v", left)
	}
	if w.Count(components.KindBonus) != 0 || w.Count(components.KindPain) != 0 {
		t.Error("Expected hit bonus and pain bubbles removed")
	}
}

func TestFireMiss(t *testing.T) {
	w := newTestWorld()
	c := NewCollisionSystem(w, constants.LaserWidth)
	w.AddBubble(components.KindRegular, components.Bubble{ID: 1, X: 0, Y: 300, Radius: 30})

	res := c.Fire(testSpecs())
	if res.TotalHits() != 0 || res.Points != 0 {
		t.Errorf("Expected miss, got %d hits and %d points", res.TotalHits(), res.Points)
	}
	if w.Count(components.KindRegular) != 1 {
		t.Error("Miss removed a bubble")
	}
}

func TestApplyScore(t *testing.T) {
	tests := []struct {
		score, delta, want int
	}{
		{0, 1, 1},
		{0, -1, 0},
		{0, -2, 0},
		{3, -1, 2},
		{1, 4, 5},
	}
	for _, tt := range tests {
		if got := ApplyScore(tt.score, tt.delta); got != tt.want {
			t.Errorf("ApplyScore(%d, %d): expected %d, got %d", tt.score, tt.delta, tt.want, got)
		}
	}
}
