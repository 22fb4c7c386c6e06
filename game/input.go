package game

// Tap routes a pointer press at world coordinates
// Inside the gun band it moves the gun, anywhere above it fires once
func (c *Controller) Tap(x, y float64) {
	c.sync()
	if !c.acceptingInput() {
		return
	}

	if y >= c.bandTop {
		c.aim(x)
		return
	}
	c.fire()
}

// Aim centers the gun on x; the gun may extend past either viewport edge
func (c *Controller) Aim(x float64) {
	c.sync()
	if !c.acceptingInput() {
		return
	}
	c.aim(x)
}

// Nudge shifts the gun center by dx
func (c *Controller) Nudge(dx float64) {
	c.sync()
	if !c.acceptingInput() {
		return
	}
	c.aim(c.world.Gun.CenterX() + dx)
}

// NudgeLeft and NudgeRight move the gun by the configured keyboard step
func (c *Controller) NudgeLeft()  { c.Nudge(-c.cfg.Gun.Nudge) }
func (c *Controller) NudgeRight() { c.Nudge(c.cfg.Gun.Nudge) }

func (c *Controller) aim(x float64) {
	c.world.Gun.X = x - c.world.Gun.Width/2
}

func (c *Controller) acceptingInput() bool {
	return c.phase == PhaseRunning && !c.clock.IsPaused()
}
