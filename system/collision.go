package system

import "github.com/milk9111/platformer/component"

// runCollisionChecks probes the four sides of the hurtbox and handles the
// grounded edges.
func (c *PlayerController) runCollisionChecks() {
	bounds := c.Bounds()
	dist := c.cfg.DetectionRayLength

	contact, grounded := c.geo.Cast(bounds, castDown, dist)
	if grounded {
		c.groundContact = contact
	} else {
		c.groundContact = component.Contact{}
	}
	_, ceiling := c.geo.Cast(bounds, castUp, dist)
	_, left := c.geo.Cast(bounds, castLeft, dist)
	_, right := c.geo.Cast(bounds, castRight, dist)

	wasGrounded := c.col.Grounded
	c.col = component.CollisionState{
		Grounded:          grounded,
		HittingCeiling:    ceiling,
		TouchingLeftWall:  left,
		TouchingRightWall: right,
	}

	switch {
	case wasGrounded && !grounded:
		c.ch.LastGroundedTick = c.tick
		c.emit(EventGroundedChanged, false)
	case !wasGrounded && grounded:
		c.ch.CoyoteUsable = true
		c.ch.ExecutedBufferedJump = false
		c.ch.DoubleJumpUsable = true
		c.ch.CanDash = true
		c.emit(EventGroundedChanged, true)
	}
}
