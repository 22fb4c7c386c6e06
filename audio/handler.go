package audio

import (
	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/events"
)

// SoundHandler maps game events to sound effects
// Registered on an events.Router of any context type
type SoundHandler[T any] struct {
	player Player
}

// NewSoundHandler creates a handler playing through player
func NewSoundHandler[T any](player Player) *SoundHandler[T] {
	return &SoundHandler[T]{player: player}
}

func (h *SoundHandler[T]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventLaserFired,
		events.EventBubblesPopped,
		events.EventRunEnded,
	}
}

func (h *SoundHandler[T]) HandleEvent(_ T, ev events.GameEvent) {
	switch ev.Type {
	case events.EventLaserFired:
		// Misses get the zap; hits are voiced by their pop events
		if p, ok := ev.Payload.(*events.LaserPayload); ok && p.Hits == 0 {
			h.player.Play(SoundLaser)
		}
	case events.EventBubblesPopped:
		p, ok := ev.Payload.(*events.PopPayload)
		if !ok {
			return
		}
		h.player.Play(soundForKind(p.Kind))
	case events.EventRunEnded:
		h.player.Play(SoundGameOver)
	}
}

func soundForKind(kind components.Kind) SoundType {
	switch kind {
	case components.KindPain:
		return SoundPain
	case components.KindBonus:
		return SoundBonus
	default:
		return SoundPop
	}
}
