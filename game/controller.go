package game

import (
	"log"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/bubble-popper/components"
	"github.com/lixenwraith/bubble-popper/config"
	"github.com/lixenwraith/bubble-popper/engine"
	"github.com/lixenwraith/bubble-popper/events"
	"github.com/lixenwraith/bubble-popper/status"
	"github.com/lixenwraith/bubble-popper/systems"
)

// Phase is the top-level game state
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Controller owns the run state machine and every timer of the current run
// Not safe for concurrent use: the frontend loop calls every method, and timers fire inside those calls
type Controller struct {
	// ===== CONFIGURATION =====

	cfg     *config.Config // Parameters of the current or next run
	pending *config.Config // Applied at the next Start
	specs   [components.KindCount]components.KindSpec
	bandTop float64

	// ===== TIME =====

	clock *engine.PausableClock
	sched *engine.ClockScheduler

	// ===== SIMULATION =====

	world     *engine.World
	rng       *rand.Rand
	spawn     *systems.SpawnSystem
	motion    *systems.MotionSystem
	collision *systems.CollisionSystem

	// ===== RUN STATE =====

	phase     Phase
	score     int
	remaining int
	session   *RunSession

	// ===== OUTPUTS =====

	queue       *events.EventQueue
	metrics     *status.Registry
	kinds       status.KindCounters
	fireTotal   *atomic.Int64
	fireHits    *atomic.Int64
	motionTicks *atomic.Int64
	runs        *atomic.Int64
	scorePeak   *status.AtomicFloat
}

// New creates a controller in the NotStarted phase with the gun centered
// cfg must be valid; queue and metrics may be nil
func New(cfg *config.Config, tp engine.TimeProvider, rng *rand.Rand, queue *events.EventQueue, metrics *status.Registry) *Controller {
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	if queue == nil {
		queue = events.NewEventQueue()
	}

	clock := engine.NewPausableClock(tp)
	c := &Controller{
		clock:       clock,
		sched:       engine.NewClockScheduler(clock.Now()),
		world:       engine.NewWorld(cfg.Viewport.Width, cfg.Viewport.Height),
		rng:         rng,
		queue:       queue,
		metrics:     metrics,
		kinds:       metrics.KindCounters(),
		fireTotal:   metrics.Ints.Get(status.KeyFireTotal),
		fireHits:    metrics.Ints.Get(status.KeyFireHits),
		motionTicks: metrics.Ints.Get(status.KeyMotionTicks),
		runs:        metrics.Ints.Get(status.KeyRuns),
		scorePeak:   metrics.Floats.Get(status.KeyScorePeak),
	}
	c.configure(cfg)
	c.world.CenterGun()
	return c
}

// configure binds cfg to the world and systems; only called outside a running round
func (c *Controller) configure(cfg *config.Config) {
	c.cfg = cfg
	c.specs = cfg.KindSpecs()
	c.bandTop = cfg.BandTop()

	c.world.Width = cfg.Viewport.Width
	c.world.Height = cfg.Viewport.Height
	c.world.Gun.Width = cfg.Gun.Width
	c.world.Laser.Width = cfg.Laser.Width

	c.spawn = systems.NewSpawnSystem(c.world, c.rng, cfg.Viewport.SpawnOffset)
	c.motion = systems.NewMotionSystem(c.world, c.rng, cfg.Viewport.OffscreenY)
	c.collision = systems.NewCollisionSystem(c.world, cfg.Laser.Width)
}

// ApplyConfig stages cfg for the next Start; the current round keeps its parameters
func (c *Controller) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	c.pending = cfg
	if c.phase == PhaseNotStarted {
		c.configure(cfg)
		c.pending = nil
		c.world.CenterGun()
	}
	log.Printf("config staged (phase %s)", c.phase)
}

// Config returns the parameters of the current or next run
func (c *Controller) Config() *config.Config {
	return c.cfg
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the current score, never negative
func (c *Controller) Score() int {
	return c.score
}

// Remaining returns the seconds left in the round
func (c *Controller) Remaining() int {
	return c.remaining
}

// Paused reports whether the game clock is frozen
func (c *Controller) Paused() bool {
	return c.clock.IsPaused()
}

// World exposes the entity store for tests and debug tooling
func (c *Controller) World() *engine.World {
	return c.world
}

// Session returns the current run session, nil before the first Start and after Reset
func (c *Controller) Session() *RunSession {
	return c.session
}

// Advance runs every timer due at the clock's current time, returns callbacks run
// Frontends call this once per frame
func (c *Controller) Advance() int {
	return c.sync()
}

func (c *Controller) sync() int {
	return c.sched.Advance(c.clock.Now())
}

// Start begins a new round from NotStarted or Ended; ignored while Running
func (c *Controller) Start() {
	c.sync()
	if c.phase == PhaseRunning {
		return
	}

	if c.session != nil {
		c.session.Teardown()
	}
	if c.pending != nil {
		c.configure(c.pending)
		c.pending = nil
	}

	c.score = 0
	c.remaining = c.cfg.Round.DurationSeconds
	c.world.Clear()
	c.world.ResetEntityIDs()
	c.world.HideLaser()
	c.phase = PhaseRunning

	c.session = newRunSession(c.sched)
	c.schedule(c.session)

	c.runs.Add(1)
	c.emit(events.EventRunStarted, nil)
	log.Printf("run started: %ds", c.remaining)
}

// schedule registers the spawners, motion streams and countdown of one run
func (c *Controller) schedule(s *RunSession) {
	tick := c.cfg.Motion.Tick.D()
	for _, spec := range c.specs {
		s.spawners[spec.Kind] = c.sched.Every(spec.SpawnPeriod, func(time.Time) {
			c.onSpawn(spec)
		})
		s.motion[spec.Kind] = c.sched.Every(tick, func(time.Time) {
			c.onMotion(spec)
		})
	}
	s.countdown = c.sched.Every(c.cfg.Round.CountdownInterval.D(), func(time.Time) {
		c.onCountdown()
	})
}

func (c *Controller) onSpawn(spec components.KindSpec) {
	b := c.spawn.Spawn(spec)
	c.kinds.Spawns[spec.Kind].Add(1)
	c.emit(events.EventBubbleSpawned, &events.BubblePayload{Kind: spec.Kind, Bubble: b})
}

func (c *Controller) onMotion(spec components.KindSpec) {
	c.motionTicks.Add(1)
	for _, b := range c.motion.Move(spec) {
		c.kinds.Escaped[spec.Kind].Add(1)
		c.emit(events.EventBubbleEscaped, &events.BubblePayload{Kind: spec.Kind, Bubble: b})
	}
}

func (c *Controller) onCountdown() {
	c.remaining--
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.emit(events.EventCountdownTick, &events.CountdownPayload{Remaining: c.remaining})

	if c.remaining == 0 {
		c.end()
	}
}

// end moves Running to Ended; the final score and time stay readable
func (c *Controller) end() {
	c.phase = PhaseEnded
	c.session.Halt()
	c.world.Clear()
	c.emit(events.EventRunEnded, &events.RunEndedPayload{Score: c.score})
	log.Printf("run ended: score %d", c.score)
}

// Fire shoots the laser from the gun center; ignored unless Running and not paused
func (c *Controller) Fire() {
	c.sync()
	if !c.acceptingInput() {
		return
	}
	c.fire()
}

func (c *Controller) fire() {
	res := c.collision.Fire(c.specs)
	c.score = systems.ApplyScore(c.score, res.Points)

	c.world.Laser = components.Laser{Visible: true, X: res.LaserX, Width: c.cfg.Laser.Width}
	c.session.setLaserTimeout(c.sched.After(c.cfg.Laser.Visible.D(), func(time.Time) {
		c.world.HideLaser()
		c.emit(events.EventLaserHidden, nil)
	}))

	c.fireTotal.Add(1)
	c.fireHits.Add(int64(res.TotalHits()))
	c.scorePeak.Max(float64(c.score))

	c.emit(events.EventLaserFired, &events.LaserPayload{X: res.LaserX, Hits: res.TotalHits()})
	for _, spec := range c.specs {
		n := res.Hits[spec.Kind]
		if n == 0 {
			continue
		}
		c.kinds.Hits[spec.Kind].Add(int64(n))
		c.emit(events.EventBubblesPopped, &events.PopPayload{Kind: spec.Kind, Count: n, Points: n * spec.Points})
	}
}

// Pause freezes game time during a round, reports whether the state changed
func (c *Controller) Pause() bool {
	c.sync()
	if c.phase != PhaseRunning || !c.clock.Pause() {
		return false
	}
	c.emit(events.EventPaused, nil)
	log.Printf("paused at %ds", c.remaining)
	return true
}

// Resume unfreezes game time, reports whether the state changed
func (c *Controller) Resume() bool {
	if !c.clock.Resume() {
		return false
	}
	c.emit(events.EventResumed, nil)
	return true
}

// TogglePause flips between paused and running
func (c *Controller) TogglePause() {
	if c.clock.IsPaused() {
		c.Resume()
		return
	}
	c.Pause()
}

// Reset returns to NotStarted from any phase, dropping every timer of the run
// Calling it repeatedly leaves the same state
func (c *Controller) Reset() {
	c.clock.Resume()
	c.sync()

	if c.session != nil {
		c.session.Teardown()
		c.session = nil
	}
	if c.pending != nil {
		c.configure(c.pending)
		c.pending = nil
	}

	c.score = 0
	c.remaining = 0
	c.world.Clear()
	c.world.ResetEntityIDs()
	c.world.HideLaser()
	c.world.CenterGun()

	wasNotStarted := c.phase == PhaseNotStarted
	c.phase = PhaseNotStarted
	if !wasNotStarted {
		c.emit(events.EventRunReset, nil)
		log.Printf("run reset")
	}
}

// PlayAgain resets and immediately starts a new round
func (c *Controller) PlayAgain() {
	c.Reset()
	c.Start()
}

// Close releases every timer; the controller stays readable
// Safe to call repeatedly and when nothing is running
func (c *Controller) Close() {
	if c.session != nil {
		c.session.Teardown()
	}
	c.clock.Resume()
}

func (c *Controller) emit(t events.EventType, payload any) {
	c.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: c.sched.Now()})
}
