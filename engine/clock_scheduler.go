package engine

import (
	"time"
)

// TimerID identifies a scheduled timer; zero is never issued
type TimerID uint64

// TimerFunc runs when a timer comes due, receiving the timer's due time
type TimerFunc func(now time.Time)

// timer is one interval or one-shot callback
type timer struct {
	id     TimerID
	due    time.Time
	period time.Duration // Zero for one-shot timers
	seq    uint64        // Registration order, breaks ties between equal due times
	fn     TimerFunc
}

// ClockScheduler runs interval and one-shot timers against game time
// Timers only fire inside Advance, on the caller's goroutine, so callbacks never interleave
// Not safe for concurrent use: the owning loop is the single writer
type ClockScheduler struct {
	timers map[TimerID]*timer
	nextID TimerID
	seq    uint64

	// now is the game time the scheduler has been advanced to
	now time.Time

	// Tick counter for diagnostics
	fired uint64
}

// NewClockScheduler creates an empty scheduler positioned at start
func NewClockScheduler(start time.Time) *ClockScheduler {
	return &ClockScheduler{
		timers: make(map[TimerID]*timer),
		now:    start,
	}
}

// Now returns the game time the scheduler was last advanced to
func (cs *ClockScheduler) Now() time.Time {
	return cs.now
}

// Every schedules fn to run each period, first at Now()+period
func (cs *ClockScheduler) Every(period time.Duration, fn TimerFunc) TimerID {
	if period <= 0 || fn == nil {
		return 0
	}
	return cs.add(period, period, fn)
}

// After schedules fn to run once at Now()+delay
func (cs *ClockScheduler) After(delay time.Duration, fn TimerFunc) TimerID {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	return cs.add(delay, 0, fn)
}

func (cs *ClockScheduler) add(delay, period time.Duration, fn TimerFunc) TimerID {
	cs.nextID++
	cs.seq++
	t := &timer{
		id:     cs.nextID,
		due:    cs.now.Add(delay),
		period: period,
		seq:    cs.seq,
		fn:     fn,
	}
	cs.timers[t.id] = t
	return t.id
}

// Cancel removes a pending timer, reports whether it was pending
// Safe to call from inside a timer callback, including for the running timer
func (cs *ClockScheduler) Cancel(id TimerID) bool {
	if id == 0 {
		return false
	}
	if _, ok := cs.timers[id]; !ok {
		return false
	}
	delete(cs.timers, id)
	return true
}

// Pending reports whether a timer is still scheduled
func (cs *ClockScheduler) Pending(id TimerID) bool {
	_, ok := cs.timers[id]
	return ok
}

// Len returns the number of scheduled timers
func (cs *ClockScheduler) Len() int {
	return len(cs.timers)
}

// Fired returns the number of callbacks run since creation
func (cs *ClockScheduler) Fired() uint64 {
	return cs.fired
}

// Advance moves game time to now, running every timer that comes due on the way in due order
// Interval timers that fell behind fire once per missed period. Returns callbacks run
// A now before the current position is ignored
func (cs *ClockScheduler) Advance(now time.Time) int {
	if now.Before(cs.now) {
		return 0
	}

	ran := 0
	for {
		next := cs.earliest()
		if next == nil || next.due.After(now) {
			break
		}

		cs.now = next.due
		if next.period > 0 {
			next.due = next.due.Add(next.period)
		} else {
			delete(cs.timers, next.id)
		}

		next.fn(cs.now)
		ran++
		cs.fired++
	}

	cs.now = now
	return ran
}

// earliest returns the timer due first, ties broken by registration order
func (cs *ClockScheduler) earliest() *timer {
	var best *timer
	for _, t := range cs.timers {
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
