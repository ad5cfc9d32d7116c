package physics

import "github.com/jakecoffman/cp"

// Conveyor drags whatever stands on it horizontally at Speed units per
// second. The controller subtracts effector output from its move, so a
// positive Speed carries the character right.
type Conveyor struct {
	Speed     float64
	DeltaTime float64
}

func (c *Conveyor) EvaluateEffector() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return cp.Vector{X: -c.Speed * c.DeltaTime}
}
