package engine

import (
	"github.com/lixenwraith/bubble-popper/components"
)

// World contains the per-kind bubble collections, the gun and the laser
// Collections are independent: no operation on one kind touches another
// Not safe for concurrent use; the game loop is the single writer
type World struct {
	nextEntityID int

	bubbles [components.KindCount][]components.Bubble

	Gun   components.Gun
	Laser components.Laser

	// Viewport in world units, fixed for the lifetime of the world
	Width  float64
	Height float64
}

// NewWorld creates an empty world for a viewport of the given size
func NewWorld(width, height float64) *World {
	return &World{
		nextEntityID: 1,
		Width:        width,
		Height:       height,
	}
}

// CreateEntity reserves the next id, unique across all kinds until ResetEntityIDs
func (w *World) CreateEntity() int {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// ResetEntityIDs restarts id allocation at 1
func (w *World) ResetEntityIDs() {
	w.nextEntityID = 1
}

// Bubbles returns the live collection for kind
// The slice is owned by the world; callers must not retain it across mutations
func (w *World) Bubbles(kind components.Kind) []components.Bubble {
	return w.bubbles[kind]
}

// CopyBubbles returns a detached copy of the collection for kind
func (w *World) CopyBubbles(kind components.Kind) []components.Bubble {
	src := w.bubbles[kind]
	out := make([]components.Bubble, len(src))
	copy(out, src)
	return out
}

// AddBubble appends a bubble to the collection for kind
func (w *World) AddBubble(kind components.Kind, b components.Bubble) {
	w.bubbles[kind] = append(w.bubbles[kind], b)
}

// SetBubbles replaces the collection for kind
func (w *World) SetBubbles(kind components.Kind, bubbles []components.Bubble) {
	w.bubbles[kind] = bubbles
}

// Count returns the number of live bubbles of kind
func (w *World) Count(kind components.Kind) int {
	return len(w.bubbles[kind])
}

// Total returns the number of live bubbles across all kinds
func (w *World) Total() int {
	n := 0
	for _, k := range components.Kinds {
		n += len(w.bubbles[k])
	}
	return n
}

// Clear removes every bubble of every kind
func (w *World) Clear() {
	for _, k := range components.Kinds {
		w.bubbles[k] = nil
	}
}

// CenterGun places the gun in the middle of the viewport
func (w *World) CenterGun() {
	w.Gun.X = w.Width/2 - w.Gun.Width/2
}

// HideLaser clears laser visibility
func (w *World) HideLaser() {
	w.Laser.Visible = false
}
