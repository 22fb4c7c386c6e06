package engine

import (
	"testing"
	"time"
)

func TestClockSchedulerEveryFiresEachPeriod(t *testing.T) {
	cs := NewClockScheduler(testEpoch)

	count := 0
	cs.Every(500*time.Millisecond, func(time.Time) { count++ })

	cs.Advance(testEpoch.Add(499 * time.Millisecond))
	if count != 0 {
		t.Fatalf("Expected no fire before first period, got %d", count)
	}

	cs.Advance(testEpoch.Add(500 * time.Millisecond))
	if count != 1 {
		t.Fatalf("Expected 1 fire at first period, got %d", count)
	}

	// Catch-up: one fire per missed period
	cs.Advance(testEpoch.Add(2 * time.Second))
	if count != 4 {
		t.Errorf("Expected 4 fires after 2s, got %d", count)
	}
}

func TestClockSchedulerAfterFiresOnce(t *testing.T) {
	cs := NewClockScheduler(testEpoch)

	var firedAt time.Time
	count := 0
	id := cs.After(300*time.Millisecond, func(now time.Time) {
		count++
		firedAt = now
	})

	if !cs.Pending(id) {
		t.Fatal("Expected timer to be pending")
	}

	cs.Advance(testEpoch.Add(time.Second))
	if count != 1 {
		t.Fatalf("Expected one-shot to fire once, got %d", count)
	}
	if !firedAt.Equal(testEpoch.Add(300 * time.Millisecond)) {
		t.Errorf("Expected callback time at due time, got %v", firedAt)
	}
	if cs.Pending(id) || cs.Len() != 0 {
		t.Error("Expected one-shot to be removed after firing")
	}
}

func TestClockSchedulerCancel(t *testing.T) {
	cs := NewClockScheduler(testEpoch)

	count := 0
	id := cs.Every(100*time.Millisecond, func(time.Time) { count++ })

	cs.Advance(testEpoch.Add(250 * time.Millisecond))
	if !cs.Cancel(id) {
		t.Fatal("Expected Cancel to report pending timer")
	}
	if cs.Cancel(id) {
		t.Error("Expected second Cancel to report nothing pending")
	}
	if cs.Cancel(0) {
		t.Error("Expected zero id to never be pending")
	}

	cs.Advance(testEpoch.Add(time.Second))
	if count != 2 {
		t.Errorf("Expected 2 fires before cancel, got %d", count)
	}
}

func TestClockSchedulerCancelFromCallback(t *testing.T) {
	cs := NewClockScheduler(testEpoch)

	var spawner, stopper TimerID
	spawns := 0
	spawner = cs.Every(100*time.Millisecond, func(time.Time) { spawns++ })
	stopper = cs.After(250*time.Millisecond, func(time.Time) {
		cs.Cancel(spawner)
		cs.Cancel(stopper)
	})

	cs.Advance(testEpoch.Add(time.Second))
	if spawns != 2 {
		t.Errorf("Expected spawns to stop at the cancel point, got %d", spawns)
	}
	if cs.Len() != 0 {
		t.Errorf("Expected no pending timers, got %d", cs.Len())
	}
}

func TestClockSchedulerDueOrder(t *testing.T) {
	cs := NewClockScheduler(testEpoch)

	var order []string
	cs.Every(300*time.Millisecond, func(time.Time) { order = append(order, "slow") })
	cs.Every(200*time.Millisecond, func(time.Time) { order = append(order, "fast") })

	cs.Advance(testEpoch.Add(600 * time.Millisecond))

	// 200 fast, 300 slow, 400 fast, 600 slow+fast (tie: registration order)
	expected := []string{"fast", "slow", "fast", "slow", "fast"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, order)
			break
		}
	}
}

func TestClockSchedulerScheduleFromCallbackUsesDueTime(t *testing.T) {
	cs := NewClockScheduler(testEpoch)

	var second time.Time
	cs.After(100*time.Millisecond, func(time.Time) {
		cs.After(100*time.Millisecond, func(now time.Time) { second = now })
	})

	cs.Advance(testEpoch.Add(time.Second))
	if !second.Equal(testEpoch.Add(200 * time.Millisecond)) {
		t.Errorf("Expected chained timer at 200ms, got %v", second.Sub(testEpoch))
	}
}

func TestClockSchedulerIgnoresPastAdvance(t *testing.T) {
	cs := NewClockScheduler(testEpoch)
	cs.Advance(testEpoch.Add(time.Second))

	if ran := cs.Advance(testEpoch); ran != 0 {
		t.Errorf("Expected no callbacks for past time, got %d", ran)
	}
	if !cs.Now().Equal(testEpoch.Add(time.Second)) {
		t.Errorf("Expected scheduler time to stay at 1s, got %v", cs.Now().Sub(testEpoch))
	}
}

func TestClockSchedulerRejectsInvalidTimers(t *testing.T) {
	cs := NewClockScheduler(testEpoch)

	if id := cs.Every(0, func(time.Time) {}); id != 0 {
		t.Errorf("Expected zero period to be rejected, got id %d", id)
	}
	if id := cs.After(time.Second, nil); id != 0 {
		t.Errorf("Expected nil callback to be rejected, got id %d", id)
	}
	if cs.Len() != 0 {
		t.Errorf("Expected no timers, got %d", cs.Len())
	}
}
