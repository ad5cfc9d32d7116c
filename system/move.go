package system

import "github.com/jakecoffman/cp"

// moveCharacter commits this tick's velocity, minus any effector
// displacement found under the character, through the geometry.
func (c *PlayerController) moveCharacter() {
	ch := &c.ch
	dt := c.cfg.DeltaTime()

	c.rawMovement = cp.Vector{X: ch.HorizontalSpeed, Y: ch.VerticalSpeed}
	move := c.rawMovement.Mult(dt)
	if eff := c.groundContact.Effector; eff != nil {
		move = move.Sub(eff.EvaluateEffector())
	}

	moved := c.geo.Move(c.Bounds(), move)
	ch.Position = ch.Position.Add(moved)
	if dt > 0 {
		ch.Velocity = moved.Mult(1 / dt)
	}
}

// runCornerPrevention handles the character hanging on a ledge corner: the
// probes see open space below but the hurtbox cannot move. Zeroing the
// vertical speed lets horizontal input walk it off. A character jumping
// straight up from a corner may miss the next landing edge.
func (c *PlayerController) runCornerPrevention() {
	ch := &c.ch
	ch.CornerStuck = !c.col.Grounded &&
		ch.LastPosition.Equal(ch.Position) &&
		ch.LastJumpPressedTick+1 < c.tick
	if ch.CornerStuck {
		ch.VerticalSpeed = 0
	}
	ch.LastPosition = ch.Position
}
