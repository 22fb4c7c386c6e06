package constants

import "time"

// Bubble Placement
const (
	// SpawnYOffset is the distance above the viewport bottom where bubbles appear
	SpawnYOffset = 100.0

	// OffscreenY is the top threshold; a bubble at or above it is discarded
	OffscreenY = -60.0
)

// Regular Bubble
const (
	RegularRadius      = 30.0
	RegularSpawnPeriod = 500 * time.Millisecond
	RegularStep        = 2.0
	RegularPoints      = 1
)

// Pain Bubble
// Ascent is redrawn every motion tick from [0, PainMaxStep)
const (
	PainRadius      = 17.5
	PainSpawnPeriod = 2000 * time.Millisecond
	PainMaxStep     = 20.0
	PainPoints      = -1
)

// Bonus Bubble
const (
	BonusRadius      = 20.0
	BonusSpawnPeriod = 18000 * time.Millisecond
	BonusMaxStep     = 20.0
	BonusPoints      = 5
)
