package component

import "github.com/jakecoffman/cp"

// CollisionState is recomputed from geometry every tick.
type CollisionState struct {
	Grounded          bool
	HittingCeiling    bool
	TouchingLeftWall  bool
	TouchingRightWall bool
}

// Effector contributes extra displacement to a character standing on it,
// e.g. a conveyor or a moving platform.
type Effector interface {
	EvaluateEffector() cp.Vector
}

// Contact describes the geometry hit by a cast. Effector is nil when the
// geometry carries none.
type Contact struct {
	Point    cp.Vector
	Effector Effector
}

// Collider is an axis-aligned hurtbox relative to the character position.
type Collider struct {
	Size   cp.Vector
	Offset cp.Vector
}

// Bounds returns the world-space box of the collider at position.
func (c Collider) Bounds(position cp.Vector) cp.BB {
	return cp.NewBBForExtents(position.Add(c.Offset), c.Size.X/2, c.Size.Y/2)
}

// Scaled returns the collider with its size multiplied by s, keeping the
// same offset.
func (c Collider) Scaled(s float64) Collider {
	return Collider{Size: c.Size.Mult(s), Offset: c.Offset}
}
