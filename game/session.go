package game

import (
	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/engine"
)

// RunSession owns every timer of one run
// Created by Start, halted at countdown expiry, torn down by Reset and Close
type RunSession struct {
	sched *engine.ClockScheduler

	spawners  [components.KindCount]engine.TimerID
	motion    [components.KindCount]engine.TimerID
	countdown engine.TimerID
	laser     engine.TimerID

	halted bool
	closed bool
}

func newRunSession(sched *engine.ClockScheduler) *RunSession {
	return &RunSession{sched: sched}
}

// Halted reports whether the simulation timers have stopped
func (s *RunSession) Halted() bool {
	return s.halted
}

// Halt cancels spawners, motion streams and the countdown
// A pending laser timeout is left to run so the last shot still disappears
func (s *RunSession) Halt() {
	if s.halted {
		return
	}
	s.halted = true

	for k := range s.spawners {
		s.sched.Cancel(s.spawners[k])
		s.sched.Cancel(s.motion[k])
		s.spawners[k], s.motion[k] = 0, 0
	}
	s.sched.Cancel(s.countdown)
	s.countdown = 0
}

// Teardown cancels every timer the session holds; safe to call repeatedly
func (s *RunSession) Teardown() {
	if s.closed {
		return
	}
	s.Halt()
	s.sched.Cancel(s.laser)
	s.laser = 0
	s.closed = true
}

// setLaserTimeout replaces the pending laser hide timer
func (s *RunSession) setLaserTimeout(id engine.TimerID) {
	s.sched.Cancel(s.laser)
	s.laser = id
}

// Pending returns the number of timers still scheduled for this session
func (s *RunSession) Pending() int {
	n := 0
	for k := range s.spawners {
		if s.sched.Pending(s.spawners[k]) {
			n++
		}
		if s.sched.Pending(s.motion[k]) {
			n++
		}
	}
	if s.sched.Pending(s.countdown) {
		n++
	}
	if s.sched.Pending(s.laser) {
		n++
	}
	return n
}
