package system

func (c *PlayerController) canUseCoyote() bool {
	ch := &c.ch
	return ch.CoyoteUsable && !c.col.Grounded && ch.LastGroundedTick+c.cfg.CoyoteTicks > c.tick
}

func (c *PlayerController) hasBufferedJump() bool {
	ch := &c.ch
	return ((c.col.Grounded && !ch.ExecutedBufferedJump) || ch.CornerStuck) &&
		ch.LastJumpPressedTick+c.cfg.JumpBufferTicks > c.tick
}

func (c *PlayerController) canDoubleJump() bool {
	return c.abilities.DoubleJump && c.ch.DoubleJumpUsable && !c.ch.CoyoteUsable
}

func (c *PlayerController) calculateJump() {
	ch := &c.ch

	// A press nobody used within the buffer window is dropped.
	if ch.JumpToConsume && ch.LastJumpPressedTick+c.cfg.JumpBufferTicks <= c.tick {
		ch.JumpToConsume = false
	}

	if ch.Crouching && !c.canStand() {
		return
	}

	if ch.JumpToConsume && c.canDoubleJump() {
		ch.VerticalSpeed = c.cfg.JumpHeight
		ch.DoubleJumpUsable = false
		ch.EndedJumpEarly = false
		ch.JumpToConsume = false
		c.emit(EventDoubleJumped, false)
	}

	if (ch.JumpToConsume && c.canUseCoyote()) || c.hasBufferedJump() {
		ch.VerticalSpeed = c.cfg.JumpHeight
		ch.EndedJumpEarly = false
		ch.CoyoteUsable = false
		ch.JumpToConsume = false
		ch.LastGroundedTick = c.tick
		ch.ExecutedBufferedJump = true
		c.emit(EventJumped, false)
	}

	if !c.col.Grounded && !c.input.JumpHeld && !ch.EndedJumpEarly && ch.VerticalSpeed > 0 {
		ch.EndedJumpEarly = true
	}

	if c.col.HittingCeiling && ch.VerticalSpeed > 0 {
		ch.VerticalSpeed = 0
	}
}
