package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/bubble-popper/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite wave whose frequency glides linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s with attack and release ramps inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume wraps s at a log2 volume; muted streams stay silent but keep their length
func withVolume(s beep.Streamer, volume float64, muted bool) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume, Silent: muted}
}

// tone returns a pure sine of freq Hz cut to duration
func tone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist; fall back to the oscillator which aliases instead of failing
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), sine)
}

// Sound effect generators

// CreatePopSound generates a short bright blip for a regular bubble hit
func CreatePopSound(rate beep.SampleRate) beep.Streamer {
	d := constants.PopSoundDuration
	return NewEnvelope(tone(constants.PopSoundFreq, d, rate), d, 2*time.Millisecond, d/2, rate)
}

// CreatePainSound generates a harsh low buzz for a pain bubble hit
func CreatePainSound(rate beep.SampleRate) beep.Streamer {
	d := constants.PainSoundDuration
	osc := NewOscillator(constants.PainSoundFreq, d, WaveSaw, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, 60*time.Millisecond, rate)
}

// CreateBonusSound generates a two-note chime for a bonus bubble hit
func CreateBonusSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(tone(constants.BonusNote1Freq, constants.BonusNote1Duration, rate),
		constants.BonusNote1Duration, 2*time.Millisecond, 20*time.Millisecond, rate)
	n2 := NewEnvelope(tone(constants.BonusNote2Freq, constants.BonusNote2Duration, rate),
		constants.BonusNote2Duration, 2*time.Millisecond, 150*time.Millisecond, rate)
	return beep.Seq(n1, n2)
}

// CreateLaserSound generates a falling square-wave zap
func CreateLaserSound(rate beep.SampleRate) beep.Streamer {
	d := constants.LaserSoundDuration
	sweep := NewSweep(constants.LaserSoundStart, constants.LaserSoundEnd, d, WaveSquare, rate)
	return NewEnvelope(sweep, d, time.Millisecond, 40*time.Millisecond, rate)
}

// CreateGameOverSound generates a descending three-step saw phrase
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	step := constants.GameOverSoundDuration / 3
	notes := make([]beep.Streamer, 0, 3)
	for _, f := range []float64{392.0, 311.13, 196.0} {
		osc := NewOscillator(f, step, WaveSaw, rate)
		notes = append(notes, NewEnvelope(osc, step, 5*time.Millisecond, step/2, rate))
	}
	return beep.Seq(notes...)
}

// createSound builds the streamer for sound
func createSound(sound SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case SoundPop:
		return CreatePopSound(rate)
	case SoundPain:
		return CreatePainSound(rate)
	case SoundBonus:
		return CreateBonusSound(rate)
	case SoundLaser:
		return CreateLaserSound(rate)
	case SoundGameOver:
		return CreateGameOverSound(rate)
	default:
		return nil
	}
}
