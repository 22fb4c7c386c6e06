package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRunStarted signals a fresh run entered the running phase
	// Trigger: Controller.Start | Payload: nil
	EventRunStarted EventType = iota

	// EventRunEnded signals the countdown reached zero
	// Trigger: countdown timer | Payload: *RunEndedPayload
	EventRunEnded

	// EventRunReset signals a return to the not-started phase
	// Trigger: Controller.Reset | Payload: nil
	EventRunReset

	// EventBubbleSpawned signals a bubble was appended to its collection
	// Trigger: spawn timer | Payload: *BubblePayload
	EventBubbleSpawned

	// EventBubblesPopped signals laser hits on one collection during a fire action
	// Trigger: Controller.Fire | Consumer: SoundHandler | Payload: *PopPayload
	EventBubblesPopped

	// EventBubbleEscaped signals a bubble left through the top of the viewport
	// Trigger: motion timer | Payload: *BubblePayload
	EventBubbleEscaped

	// EventLaserFired signals an accepted fire action, hit or miss
	// Trigger: Controller.Fire | Consumer: SoundHandler | Payload: *LaserPayload
	EventLaserFired

	// EventLaserHidden signals the laser display timeout elapsed
	// Trigger: laser timer | Payload: nil
	EventLaserHidden

	// EventCountdownTick signals one second of the round elapsed
	// Trigger: countdown timer | Payload: *CountdownPayload
	EventCountdownTick

	// EventPaused and EventResumed bracket a frozen game clock
	// Trigger: Controller.Pause / Controller.Resume | Payload: nil
	EventPaused
	EventResumed

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	"RunStarted",
	"RunEnded",
	"RunReset",
	"BubbleSpawned",
	"BubblesPopped",
	"BubbleEscaped",
	"LaserFired",
	"LaserHidden",
	"CountdownTick",
	"Paused",
	"Resumed",
}

// String returns the event name for logs
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time // Game time the event was emitted at
}
