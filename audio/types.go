package audio

// SoundType identifies one sound effect
type SoundType int

const (
	SoundPop SoundType = iota
	SoundPain
	SoundBonus
	SoundLaser
	SoundGameOver

	soundTypeCount
)

var soundNames = [soundTypeCount]string{"pop", "pain", "bonus", "laser", "gameover"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Player plays sound effects; implementations must not block the caller
type Player interface {
	Play(sound SoundType)
}
