package system

import "github.com/jakecoffman/cp"

func (c *PlayerController) calculateDash() {
	ch := &c.ch

	if ch.DashToConsume && ch.LastDashPressedTick+c.cfg.JumpBufferTicks <= c.tick {
		ch.DashToConsume = false
	}

	// Only a press without a direction waits for one. A press while the
	// dash is spent or while crouching is dropped.
	if ch.DashToConsume && (!ch.CanDash || ch.Crouching) {
		ch.DashToConsume = false
	}

	if ch.DashToConsume {
		dir := cp.Vector{X: c.input.X, Y: c.input.Y}
		// No downward dash into the floor.
		if c.col.Grounded && dir.Y < 0 {
			dir.Y = 0
		}
		if dir.X != 0 || dir.Y != 0 {
			ch.DashVelocity = dir.Mult(c.cfg.DashPower)
			ch.Dashing = true
			ch.CanDash = false
			ch.DashStartedTick = c.tick
			ch.DashToConsume = false
			c.emit(EventDashingChanged, true)
		}
	}

	if !ch.Dashing {
		return
	}
	ch.HorizontalSpeed = ch.DashVelocity.X
	ch.VerticalSpeed = ch.DashVelocity.Y
	if ch.DashStartedTick+c.cfg.DashTicks < c.tick {
		ch.Dashing = false
		if ch.VerticalSpeed > 0 {
			ch.VerticalSpeed = 0
		}
		ch.HorizontalSpeed *= c.cfg.DashEndHorizontalMultiplier
		if c.col.Grounded {
			ch.CanDash = true
		}
		c.emit(EventDashingChanged, false)
	}
}
