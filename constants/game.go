package constants

import "time"

// Round Timing
const (
	// RoundDurationSeconds is the countdown a run starts with
	RoundDurationSeconds = 120

	// CountdownInterval is the period of one countdown decrement
	CountdownInterval = time.Second

	// MotionTickInterval is the motion update period for every bubble kind (~60 Hz)
	MotionTickInterval = 16 * time.Millisecond
)

// Laser
const (
	// LaserWidth is the rendered laser width in world units
	LaserWidth = 4.0

	// LaserVisibleDuration is how long the laser stays on screen after a fire action
	LaserVisibleDuration = 300 * time.Millisecond
)

// Gun
const (
	// GunWidth is the gun sprite width in world units
	GunWidth = 60.0

	// GunNudgeStep is how far one keyboard nudge moves the gun center
	GunNudgeStep = 20.0
)
