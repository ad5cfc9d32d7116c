package system

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
)

func (c *PlayerController) calculateCrouch() {
	if !c.abilities.Crouch {
		return
	}
	ch := &c.ch

	if ch.Crouching {
		immediate := 0
		if ch.VelocityOnCrouch <= c.cfg.ImmediateCrouchSlowdownThreshold {
			immediate = c.cfg.CrouchSlowdownTicks
		}
		point := 1.0
		if c.cfg.CrouchSlowdownTicks > 0 {
			point = common.InverseLerp(0, float64(c.cfg.CrouchSlowdownTicks), float64(c.tick-ch.CrouchStartedTick+immediate))
		}
		ch.FrameClamp *= common.Lerp(1, c.cfg.CrouchSpeedModifier, point)
	}

	switch {
	case c.col.Grounded && c.input.Y < 0 && !ch.Crouching:
		ch.Crouching = true
		ch.VelocityOnCrouch = math.Abs(ch.Velocity.X)
		ch.CrouchStartedTick = c.tick
		c.collider = c.crouchedCollider()
		c.emit(EventCrouchingChanged, true)
	case ch.Crouching && (!c.col.Grounded || c.input.Y >= 0):
		if !c.canStand() {
			return
		}
		ch.Crouching = false
		c.collider = c.defaultCollider
		c.emit(EventCrouchingChanged, false)
	}
}

// crouchedCollider shrinks the hurtbox height while keeping its bottom edge
// in place.
func (c *PlayerController) crouchedCollider() (out component.Collider) {
	out = c.defaultCollider
	out.Size.Y *= c.cfg.CrouchSizeModifier
	out.Offset.Y -= (c.defaultCollider.Size.Y - out.Size.Y) / 2
	return out
}

// canStand tests the standing hurtbox, slightly eroded, for overlap.
func (c *PlayerController) canStand() bool {
	standing := c.defaultCollider.Scaled(c.cfg.StandClearance)
	return !c.geo.Overlaps(standing.Bounds(c.ch.Position))
}
