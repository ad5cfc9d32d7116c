package system

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// calculateJumpApex sets the apex fraction from the measured vertical
// velocity: 1 at the peak of an arc, 0 once past the apex threshold.
func (c *PlayerController) calculateJumpApex() {
	ch := &c.ch
	if c.col.Grounded {
		ch.ApexPoint = 0
		return
	}
	ch.ApexPoint = common.InverseLerp(c.cfg.JumpApexThreshold, 0, math.Abs(ch.Velocity.Y))
	ch.FallSpeed = common.Lerp(c.cfg.MinFallSpeed, c.cfg.MaxFallSpeed, ch.ApexPoint)
}

func (c *PlayerController) calculateGravity() {
	ch := &c.ch
	if c.col.Grounded {
		if ch.VerticalSpeed < 0 {
			ch.VerticalSpeed = 0
		}
		return
	}

	fallSpeed := ch.FallSpeed
	if ch.EndedJumpEarly && ch.VerticalSpeed > 0 {
		fallSpeed *= c.cfg.JumpEndEarlyGravityModifier
	}
	ch.VerticalSpeed -= fallSpeed * c.cfg.DeltaTime()
	if ch.VerticalSpeed < c.cfg.FallClamp {
		ch.VerticalSpeed = c.cfg.FallClamp
	}
}
