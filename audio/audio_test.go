package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/constants"
	"github.com/lixenwraith/bubble-popper/events"
)

// drain streams s to completion, returns samples produced and the peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := smp[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestSoundLengths(t *testing.T) {
	tests := []struct {
		sound SoundType
		want  int
	}{
		{SoundPop, sampleRate.N(constants.PopSoundDuration)},
		{SoundPain, sampleRate.N(constants.PainSoundDuration)},
		{SoundBonus, sampleRate.N(constants.BonusNote1Duration) + sampleRate.N(constants.BonusNote2Duration)},
		{SoundLaser, sampleRate.N(constants.LaserSoundDuration)},
		{SoundGameOver, 3 * sampleRate.N(constants.GameOverSoundDuration/3)},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			n, peak := drain(createSound(tt.sound, sampleRate))
			if n != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, n)
			}
			if peak == 0 || peak > 1.0001 {
				t.Errorf("Expected audible peak within [-1, 1], got %v", peak)
			}
		})
	}
}

func TestUnknownSound(t *testing.T) {
	if createSound(SoundType(99), sampleRate) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected unknown name")
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	osc := NewOscillator(440, constants.PopSoundDuration, WaveSquare, sampleRate)
	env := NewEnvelope(osc, constants.PopSoundDuration, 10*time.Millisecond, 0, sampleRate)

	buf := make([][2]float64, 1)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("Expected first sample silent under attack, got %v", buf[0][0])
	}
}

func TestMutedVolumeIsSilent(t *testing.T) {
	n, peak := drain(withVolume(CreatePopSound(sampleRate), 0, true))
	if n == 0 || peak != 0 {
		t.Errorf("Expected silent samples, got %d samples with peak %v", n, peak)
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	sm := NewSoundManager(constants.DefaultVolume, false)
	sm.Play(SoundPop)
	if sm.Active() != 0 {
		t.Error("Expected nothing playing before Initialize")
	}
	sm.Cleanup()
	if !sm.ToggleMute() {
		t.Error("Expected muted after toggle")
	}
}

type recordingPlayer struct {
	played []SoundType
}

func (p *recordingPlayer) Play(s SoundType) { p.played = append(p.played, s) }

func TestSoundHandlerRouting(t *testing.T) {
	q := events.NewEventQueue()
	r := events.NewRouter[struct{}](q)
	p := &recordingPlayer{}
	r.Register(NewSoundHandler[struct{}](p))

	q.Push(events.GameEvent{Type: events.EventLaserFired, Payload: &events.LaserPayload{Hits: 0}})
	q.Push(events.GameEvent{Type: events.EventLaserFired, Payload: &events.LaserPayload{Hits: 2}})
	q.Push(events.GameEvent{Type: events.EventBubblesPopped, Payload: &events.PopPayload{Kind: components.KindRegular, Count: 1, Points: 1}})
	q.Push(events.GameEvent{Type: events.EventBubblesPopped, Payload: &events.PopPayload{Kind: components.KindPain, Count: 1, Points: -1}})
	q.Push(events.GameEvent{Type: events.EventBubblesPopped, Payload: &events.PopPayload{Kind: components.KindBonus, Count: 1, Points: 5}})
	q.Push(events.GameEvent{Type: events.EventCountdownTick, Payload: &events.CountdownPayload{Remaining: 3}})
	q.Push(events.GameEvent{Type: events.EventRunEnded, Payload: &events.RunEndedPayload{Score: 9}})

	r.DispatchAll(struct{}{})

	want := []SoundType{SoundLaser, SoundPop, SoundPain, SoundBonus, SoundGameOver}
	if len(p.played) != len(want) {
		t.Fatalf("Expected %v, got %v", want, p.played)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, p.played[i])
		}
	}
}
