package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// NeverTick marks a tick-stamped event that has not happened yet. It is far
// enough below zero that no window comparison can succeed against it.
const NeverTick = math.MinInt32

// Character is the mutable movement state owned by a single controller.
type Character struct {
	Position     cp.Vector
	LastPosition cp.Vector
	// Velocity is measured from committed positions, not the requested speed.
	Velocity cp.Vector

	HorizontalSpeed float64
	VerticalSpeed   float64
	FrameClamp      float64

	// Jump
	JumpToConsume        bool
	LastJumpPressedTick  int
	LastGroundedTick     int
	CoyoteUsable         bool
	ExecutedBufferedJump bool
	EndedJumpEarly       bool
	DoubleJumpUsable     bool
	ApexPoint            float64
	FallSpeed            float64

	// Crouch
	Crouching         bool
	CrouchStartedTick int
	VelocityOnCrouch  float64

	// Dash
	DashToConsume       bool
	LastDashPressedTick int
	CanDash             bool
	Dashing             bool
	DashStartedTick     int
	DashVelocity        cp.Vector

	CornerStuck bool
}

// NewCharacter returns the idle state of a freshly activated character:
// nothing is available until the first grounded tick.
func NewCharacter(position cp.Vector) Character {
	return Character{
		Position:            position,
		LastPosition:        position,
		LastJumpPressedTick: NeverTick,
		LastDashPressedTick: NeverTick,
		EndedJumpEarly:      true,
	}
}
