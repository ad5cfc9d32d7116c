package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

// Script is an input source driven by a tengo script. Before every run the
// script sees the global `tick` (0 on the first Update) and sets any of
// move_x, move_y, jump_down, jump_held and dash_down; unset globals read as
// zero.
type Script struct {
	name     string
	compiled *tengo.Compiled
	tick     int
	cur      component.FrameInput
	err      error
}

func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	if err := script.Add("tick", 0); err != nil {
		return nil, fmt.Errorf("input: %s: add tick: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

// LoadScript compiles a script from prefabs/scripts.
func LoadScript(name string) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("input: load script %s: %w", name, err)
	}
	return NewScript(name, src)
}

// Err returns the first runtime error. A failed script reports no input
// from then on.
func (s *Script) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

func (s *Script) Update() {
	if s == nil || s.compiled == nil {
		return
	}
	s.cur = component.FrameInput{}
	if s.err != nil {
		return
	}
	if err := s.compiled.Set("tick", s.tick); err != nil {
		s.err = fmt.Errorf("input: %s tick %d: %w", s.name, s.tick, err)
		return
	}
	if err := s.compiled.Run(); err != nil {
		s.err = fmt.Errorf("input: %s tick %d: %w", s.name, s.tick, err)
		return
	}
	s.tick++
	s.cur = component.FrameInput{
		X:        s.float("move_x"),
		Y:        s.float("move_y"),
		JumpDown: s.bool("jump_down"),
		JumpHeld: s.bool("jump_held"),
		DashDown: s.bool("dash_down"),
	}
}

func (s *Script) float(name string) float64 {
	if !s.compiled.IsDefined(name) {
		return 0
	}
	return s.compiled.Get(name).Float()
}

func (s *Script) bool(name string) bool {
	if !s.compiled.IsDefined(name) {
		return false
	}
	return s.compiled.Get(name).Bool()
}

func (s *Script) HorizontalAxis() float64 { return s.cur.X }
func (s *Script) VerticalAxis() float64   { return s.cur.Y }
func (s *Script) JumpDown() bool          { return s.cur.JumpDown }
func (s *Script) JumpHeld() bool          { return s.cur.JumpHeld }
func (s *Script) DashDown() bool          { return s.cur.DashDown }
