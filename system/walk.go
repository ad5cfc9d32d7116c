package system

import "github.com/milk9111/platformer/common"

func (c *PlayerController) calculateWalk() {
	ch := &c.ch
	dt := c.cfg.DeltaTime()
	x := c.input.X

	if x != 0 {
		ch.HorizontalSpeed += x * c.cfg.Acceleration * dt
		ch.HorizontalSpeed = common.Clamp(ch.HorizontalSpeed, -ch.FrameClamp, ch.FrameClamp)
		// Extra air control near the top of a jump.
		ch.HorizontalSpeed += common.Sign(x) * c.cfg.ApexBonus * ch.ApexPoint * dt
	} else {
		ch.HorizontalSpeed = common.MoveTowards(ch.HorizontalSpeed, 0, c.cfg.Deceleration*dt)
	}

	if (ch.HorizontalSpeed > 0 && c.col.TouchingRightWall) || (ch.HorizontalSpeed < 0 && c.col.TouchingLeftWall) {
		ch.HorizontalSpeed = 0
	}
}
