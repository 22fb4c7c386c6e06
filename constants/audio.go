package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the effect volume in beep's log2 scale (0 = unchanged)
	DefaultVolume = -1.0
)

// Pop Sound Timing
const (
	PopSoundDuration = 60 * time.Millisecond
	PopSoundFreq     = 880.0
)

// Pain Sound Timing
const (
	PainSoundDuration = 150 * time.Millisecond
	PainSoundFreq     = 120.0
)

// Bonus Sound Timing
const (
	BonusNote1Duration = 80 * time.Millisecond
	BonusNote2Duration = 220 * time.Millisecond
	BonusNote1Freq     = 987.77
	BonusNote2Freq     = 1318.51
)

// Laser Sound Timing
const (
	LaserSoundDuration = 90 * time.Millisecond
	LaserSoundStart    = 1600.0
	LaserSoundEnd      = 400.0
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 700 * time.Millisecond
)
