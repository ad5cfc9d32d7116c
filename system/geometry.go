package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
)

// Geometry is the ground query surface the controller moves against.
// Coordinates are y-up.
type Geometry interface {
	// Cast reports ground within dist of bounds along the unit axis dir.
	Cast(bounds cp.BB, dir cp.Vector, dist float64) (component.Contact, bool)
	// Overlaps reports ground overlapping bounds.
	Overlaps(bounds cp.BB) bool
	// Move returns the part of delta bounds can travel without entering
	// ground.
	Move(bounds cp.BB, delta cp.Vector) cp.Vector
}

var (
	castDown  = cp.Vector{X: 0, Y: -1}
	castUp    = cp.Vector{X: 0, Y: 1}
	castLeft  = cp.Vector{X: -1, Y: 0}
	castRight = cp.Vector{X: 1, Y: 0}
)

// openSpace is geometry with no ground at all.
type openSpace struct{}

func (openSpace) Cast(cp.BB, cp.Vector, float64) (component.Contact, bool) {
	return component.Contact{}, false
}

func (openSpace) Overlaps(cp.BB) bool { return false }

func (openSpace) Move(_ cp.BB, delta cp.Vector) cp.Vector { return delta }
