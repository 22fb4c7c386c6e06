package constants

import "time"

// Frontend Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PausedFrameInterval is the redraw interval while the game clock is frozen
	PausedFrameInterval = 100 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Logging
const (
	// LogDir is the directory debug logs are written to, relative to the working directory
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "bubble-popper.log"

	// MaxLogSize triggers rotation of the previous log file on startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)

// Config Reload
const (
	// ConfigReloadDebounce collapses editor write bursts into one reload
	ConfigReloadDebounce = 100 * time.Millisecond
)
