package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/levels"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func floorWorld() *World {
	w := NewWorld()
	w.AddGround(cp.BB{L: 0, B: 0, R: 10, T: 1})
	w.AddGround(cp.BB{L: 10, B: 0, R: 11, T: 5})
	return w
}

func TestCastClassifiesContacts(t *testing.T) {
	w := floorWorld()
	standing := cp.BB{L: 1.5, B: 1, R: 2.5, T: 2.8}
	againstWall := cp.BB{L: 9, B: 1, R: 10, T: 2.8}

	cases := []struct {
		name   string
		bounds cp.BB
		dir    cp.Vector
		want   bool
	}{
		{"floor_below", standing, cp.Vector{Y: -1}, true},
		{"nothing_above", standing, cp.Vector{Y: 1}, false},
		{"floor_is_not_a_left_wall", standing, cp.Vector{X: -1}, false},
		{"floor_is_not_a_right_wall", standing, cp.Vector{X: 1}, false},
		{"wall_right", againstWall, cp.Vector{X: 1}, true},
		{"hovering_beyond_range", cp.BB{L: 1.5, B: 1.2, R: 2.5, T: 3}, cp.Vector{Y: -1}, false},
		{"hovering_within_range", cp.BB{L: 1.5, B: 1.05, R: 2.5, T: 2.85}, cp.Vector{Y: -1}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, got := w.Cast(c.bounds, c.dir, 0.1)
			if got != c.want {
				t.Fatalf("Cast(%v, %v) = %v, want %v", c.bounds, c.dir, got, c.want)
			}
		})
	}
}

func TestCastReportsEffector(t *testing.T) {
	w := NewWorld()
	belt := &Conveyor{Speed: 4, DeltaTime: 0.5}
	w.AddEffector(cp.BB{L: 0, B: 0, R: 4, T: 1}, belt)

	contact, ok := w.Cast(cp.BB{L: 1, B: 1, R: 2, T: 2}, cp.Vector{Y: -1}, 0.1)
	if !ok {
		t.Fatalf("expected a contact")
	}
	if contact.Effector == nil {
		t.Fatalf("expected the conveyor effector on the contact")
	}
	if got := contact.Effector.EvaluateEffector(); !approx(got.X, -2) || got.Y != 0 {
		t.Fatalf("unexpected effector output %v", got)
	}
	if !approx(contact.Point.Y, 1) {
		t.Fatalf("expected contact on the belt surface, got %v", contact.Point)
	}

	w.AddGround(cp.BB{L: 6, B: 0, R: 8, T: 1})
	plain, ok := w.Cast(cp.BB{L: 6.5, B: 1, R: 7.5, T: 2}, cp.Vector{Y: -1}, 0.1)
	if !ok || plain.Effector != nil {
		t.Fatalf("expected plain ground without an effector, got %+v ok=%v", plain, ok)
	}
}

func TestOverlapsIgnoresTouchingEdges(t *testing.T) {
	w := floorWorld()
	if w.Overlaps(cp.BB{L: 1, B: 1, R: 2, T: 2}) {
		t.Fatalf("touching box reported as overlapping")
	}
	if !w.Overlaps(cp.BB{L: 1, B: 0.5, R: 2, T: 2}) {
		t.Fatalf("embedded box not reported as overlapping")
	}
}

func TestMoveStopsAtGround(t *testing.T) {
	w := floorWorld()
	cases := []struct {
		name   string
		bounds cp.BB
		delta  cp.Vector
		want   cp.Vector
	}{
		{"free_fall_lands", cp.BB{L: 1, B: 2, R: 2, T: 3}, cp.Vector{Y: -5}, cp.Vector{Y: -1}},
		{"free_move", cp.BB{L: 1, B: 2, R: 2, T: 3}, cp.Vector{X: 1, Y: 0.5}, cp.Vector{X: 1, Y: 0.5}},
		{"wall_blocks_x_only", cp.BB{L: 8, B: 1, R: 9, T: 2}, cp.Vector{X: 3, Y: 1}, cp.Vector{X: 1, Y: 1}},
		{"resting_cannot_sink", cp.BB{L: 1, B: 1, R: 2, T: 2}, cp.Vector{Y: -0.3}, cp.Vector{}},
		{"embedded_can_leave", cp.BB{L: 1, B: 0.5, R: 2, T: 1.5}, cp.Vector{Y: 1}, cp.Vector{Y: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := w.Move(c.bounds, c.delta)
			if !approx(got.X, c.want.X) || !approx(got.Y, c.want.Y) {
				t.Fatalf("Move(%v, %v) = %v, want %v", c.bounds, c.delta, got, c.want)
			}
		})
	}
}

func TestMoveDoesNotTunnel(t *testing.T) {
	w := NewWorld()
	w.AddGround(cp.BB{L: 5, B: 0, R: 5.1, T: 10})
	got := w.Move(cp.BB{L: 0, B: 1, R: 1, T: 2}, cp.Vector{X: 50})
	if !approx(got.X, 4) {
		t.Fatalf("expected to stop against the thin wall at 4, got %v", got.X)
	}
}

func TestBuildLevelMergesTiles(t *testing.T) {
	lvl := &levels.Level{
		Width:  4,
		Height: 3,
		Layers: [][]int{{
			0, 0, 0, 0,
			1, 1, 0, 0,
			1, 1, 1, 1,
		}},
	}
	w, err := BuildLevel(lvl, 1.0/60)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	// Two merged tile boxes plus four bounds.
	if got := len(w.Boxes()); got != 6 {
		t.Fatalf("expected 6 boxes, got %d", got)
	}
	first := w.Boxes()[0].BB
	want := cp.BB{L: 0, B: 0, R: 2, T: 2}
	if first != want {
		t.Fatalf("expected first merged box %v, got %v", want, first)
	}
	if _, ok := w.Cast(cp.BB{L: 2.2, B: 1, R: 2.8, T: 2}, cp.Vector{Y: -1}, 0.1); !ok {
		t.Fatalf("expected ground under the lower row")
	}
	if _, ok := w.Cast(cp.BB{L: 2.2, B: 1, R: 2.8, T: 2}, cp.Vector{X: -1}, 0.5); !ok {
		t.Fatalf("expected the raised block to read as a left wall")
	}
}

func TestBuildLevelRejectsBadLayer(t *testing.T) {
	lvl := &levels.Level{Width: 2, Height: 2, Layers: [][]int{{1, 1, 1}}}
	if _, err := BuildLevel(lvl, 1.0/60); err == nil {
		t.Fatalf("expected an error for a short layer")
	}
	if _, err := BuildLevel(nil, 1.0/60); err == nil {
		t.Fatalf("expected an error for a nil level")
	}
}

func TestBuildSandbox(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS("sandbox.json")
	if err != nil {
		t.Fatalf("load sandbox: %v", err)
	}
	w, err := BuildLevel(lvl, 1.0/60)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	collider := component.Collider{Size: cp.Vector{X: 0.9, Y: 1.8}}
	pos := SpawnPosition(lvl, collider)
	if !approx(pos.X, 3.5) || !approx(pos.Y, 3.9) {
		t.Fatalf("unexpected spawn position %v", pos)
	}
	if w.Overlaps(collider.Bounds(pos)) {
		t.Fatalf("spawn overlaps ground")
	}

	effectors := 0
	for _, b := range w.Boxes() {
		if b.Effector != nil {
			effectors++
		}
	}
	if effectors != 1 {
		t.Fatalf("expected one conveyor, got %d", effectors)
	}
}
