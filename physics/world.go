package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
)

// GroundCategory is the shape filter category carried by ground geometry.
const GroundCategory uint = 1

// overlapEpsilon keeps touching boxes from counting as overlapping.
const overlapEpsilon = 1e-9

// Box is a static ground rectangle, kept for debug drawing.
type Box struct {
	BB       cp.BB
	Effector component.Effector
}

// World owns the Chipmunk space holding static ground geometry and answers
// the queries the movement controller needs. Coordinates are y-up.
type World struct {
	space  *cp.Space
	filter cp.ShapeFilter
	boxes  []Box
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		space:  cp.NewSpace(),
		filter: cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, GroundCategory),
	}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Boxes returns the static ground boxes in insertion order.
func (w *World) Boxes() []Box {
	if w == nil {
		return nil
	}
	return w.boxes
}

// AddGround adds a solid ground box.
func (w *World) AddGround(bb cp.BB) *cp.Shape {
	return w.addBox(bb, nil)
}

// AddEffector adds a solid ground box whose contact reports eff.
func (w *World) AddEffector(bb cp.BB, eff component.Effector) *cp.Shape {
	return w.addBox(bb, eff)
}

func (w *World) addBox(bb cp.BB, eff component.Effector) *cp.Shape {
	if w == nil || w.space == nil {
		return nil
	}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.Filter = cp.NewShapeFilter(cp.NO_GROUP, GroundCategory, cp.ALL_CATEGORIES)
	if eff != nil {
		shape.UserData = eff
	}
	w.space.AddShape(shape)
	w.boxes = append(w.boxes, Box{BB: bb, Effector: eff})
	return shape
}

// Cast reports whether ground lies within dist of bounds along the axis
// direction dir. Boxes that only touch bounds on the perpendicular axis are
// ignored so that standing on a floor does not read as touching a wall.
// Geometry already penetrating the leading face counts as a hit.
func (w *World) Cast(bounds cp.BB, dir cp.Vector, dist float64) (component.Contact, bool) {
	if w == nil || w.space == nil {
		return component.Contact{}, false
	}
	swept := extend(bounds, dir, dist)
	var (
		found   bool
		bestGap = math.Inf(1)
		best    *cp.Shape
	)
	w.space.BBQuery(swept, w.filter, func(shape *cp.Shape, _ interface{}) {
		if shape.Sensor() {
			return
		}
		bb := shape.BB()
		if !overlapsAcross(bb, bounds, dir) || !ahead(bounds, bb, dir) {
			return
		}
		gap := math.Max(gapAlong(bounds, bb, dir), 0)
		if gap > dist {
			return
		}
		if !found || gap < bestGap {
			found = true
			bestGap = gap
			best = shape
		}
	}, nil)
	if !found {
		return component.Contact{}, false
	}
	contact := component.Contact{Point: contactPoint(bounds, best.BB(), dir)}
	if eff, ok := best.UserData.(component.Effector); ok {
		contact.Effector = eff
	}
	return contact, true
}

// Overlaps reports whether any ground geometry overlaps bounds. Touching
// edges do not count.
func (w *World) Overlaps(bounds cp.BB) bool {
	if w == nil || w.space == nil {
		return false
	}
	hit := false
	w.space.BBQuery(bounds, w.filter, func(shape *cp.Shape, _ interface{}) {
		if hit || shape.Sensor() {
			return
		}
		if strictOverlap(shape.BB(), bounds) {
			hit = true
		}
	}, nil)
	return hit
}

// Move sweeps bounds by delta, X first and then Y, stopping each axis at the
// first ground contact. It returns the displacement actually permitted.
// Geometry the bounds are already embedded in does not block, so an
// embedded box can always move out.
func (w *World) Move(bounds cp.BB, delta cp.Vector) cp.Vector {
	if w == nil || w.space == nil {
		return delta
	}
	var moved cp.Vector
	if delta.X != 0 {
		moved.X = w.sweep(bounds, cp.Vector{X: delta.X})
		bounds = translate(bounds, cp.Vector{X: moved.X})
	}
	if delta.Y != 0 {
		moved.Y = w.sweep(bounds, cp.Vector{Y: delta.Y})
	}
	return moved
}

func (w *World) sweep(bounds cp.BB, delta cp.Vector) float64 {
	amount := math.Abs(delta.X + delta.Y)
	dir := cp.Vector{X: sign(delta.X), Y: sign(delta.Y)}
	allowed := amount
	w.space.BBQuery(extend(bounds, dir, amount), w.filter, func(shape *cp.Shape, _ interface{}) {
		if shape.Sensor() {
			return
		}
		bb := shape.BB()
		if !overlapsAcross(bb, bounds, dir) || !ahead(bounds, bb, dir) {
			return
		}
		gap := gapAlong(bounds, bb, dir)
		if gap < -overlapEpsilon {
			return
		}
		if gap < 0 {
			gap = 0
		}
		if gap < allowed {
			allowed = gap
		}
	}, nil)
	return allowed * (dir.X + dir.Y)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func extend(bb cp.BB, dir cp.Vector, dist float64) cp.BB {
	switch {
	case dir.X < 0:
		bb.L -= dist
	case dir.X > 0:
		bb.R += dist
	case dir.Y < 0:
		bb.B -= dist
	case dir.Y > 0:
		bb.T += dist
	}
	return bb
}

func translate(bb cp.BB, d cp.Vector) cp.BB {
	return cp.BB{L: bb.L + d.X, B: bb.B + d.Y, R: bb.R + d.X, T: bb.T + d.Y}
}

// overlapsAcross reports a strict overlap on the axis perpendicular to dir.
func overlapsAcross(bb, bounds cp.BB, dir cp.Vector) bool {
	if dir.X != 0 {
		return bb.B < bounds.T-overlapEpsilon && bb.T > bounds.B+overlapEpsilon
	}
	return bb.L < bounds.R-overlapEpsilon && bb.R > bounds.L+overlapEpsilon
}

// ahead reports whether bb reaches past the face of bounds leading along dir.
func ahead(bounds, bb cp.BB, dir cp.Vector) bool {
	switch {
	case dir.X < 0:
		return bb.L < bounds.L-overlapEpsilon
	case dir.X > 0:
		return bb.R > bounds.R+overlapEpsilon
	case dir.Y < 0:
		return bb.B < bounds.B-overlapEpsilon
	case dir.Y > 0:
		return bb.T > bounds.T+overlapEpsilon
	}
	return false
}

// gapAlong is the free distance between bounds and bb travelling along dir.
// Negative values mean bb is already overlapping or behind bounds.
func gapAlong(bounds, bb cp.BB, dir cp.Vector) float64 {
	switch {
	case dir.X < 0:
		return bounds.L - bb.R
	case dir.X > 0:
		return bb.L - bounds.R
	case dir.Y < 0:
		return bounds.B - bb.T
	case dir.Y > 0:
		return bb.B - bounds.T
	}
	return math.Inf(1)
}

func strictOverlap(a, b cp.BB) bool {
	return a.L < b.R-overlapEpsilon && b.L < a.R-overlapEpsilon &&
		a.B < b.T-overlapEpsilon && b.B < a.T-overlapEpsilon
}

func contactPoint(bounds, bb cp.BB, dir cp.Vector) cp.Vector {
	c := bounds.Center()
	clampX := math.Max(bb.L, math.Min(bb.R, c.X))
	clampY := math.Max(bb.B, math.Min(bb.T, c.Y))
	switch {
	case dir.X < 0:
		return cp.Vector{X: bb.R, Y: clampY}
	case dir.X > 0:
		return cp.Vector{X: bb.L, Y: clampY}
	case dir.Y < 0:
		return cp.Vector{X: clampX, Y: bb.T}
	}
	return cp.Vector{X: clampX, Y: bb.B}
}
