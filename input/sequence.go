package input

import (
	"fmt"
	"os"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
	"gopkg.in/yaml.v3"
)

// SequenceFrame holds one input snapshot repeated for Ticks frames.
type SequenceFrame struct {
	Ticks    int     `yaml:"ticks"`
	MoveX    float64 `yaml:"move_x"`
	MoveY    float64 `yaml:"move_y"`
	JumpDown bool    `yaml:"jump_down"`
	JumpHeld bool    `yaml:"jump_held"`
	DashDown bool    `yaml:"dash_down"`
}

type sequenceSpec struct {
	Name   string          `yaml:"name"`
	Loop   bool            `yaml:"loop"`
	Frames []SequenceFrame `yaml:"frames"`
}

// Sequence replays a fixed list of frames, one per Update. Past the end it
// reports no input unless it loops.
type Sequence struct {
	Name   string
	Loop   bool
	frames []component.FrameInput
	pos    int
	cur    component.FrameInput
}

func NewSequence(frames ...component.FrameInput) *Sequence {
	return &Sequence{frames: frames}
}

func ParseSequence(data []byte) (*Sequence, error) {
	var spec sequenceSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("input: unmarshal sequence: %w", err)
	}
	seq := &Sequence{Name: spec.Name, Loop: spec.Loop}
	for i, f := range spec.Frames {
		if f.Ticks < 0 {
			return nil, fmt.Errorf("input: sequence %q frame %d has negative ticks %d", spec.Name, i, f.Ticks)
		}
		n := f.Ticks
		if n == 0 {
			n = 1
		}
		in := component.FrameInput{X: f.MoveX, Y: f.MoveY, JumpDown: f.JumpDown, JumpHeld: f.JumpHeld, DashDown: f.DashDown}
		for j := 0; j < n; j++ {
			seq.frames = append(seq.frames, in)
		}
	}
	return seq, nil
}

// LoadSequence reads a named sequence from prefabs/sequences.
func LoadSequence(name string) (*Sequence, error) {
	data, err := prefabs.LoadSequence(name)
	if err != nil {
		return nil, fmt.Errorf("input: load sequence %s: %w", name, err)
	}
	return ParseSequence(data)
}

func LoadSequenceFile(path string) (*Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}
	return ParseSequence(data)
}

// Len is the number of frames before the sequence ends or loops.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

func (s *Sequence) Done() bool {
	return s == nil || (!s.Loop && s.pos >= len(s.frames))
}

func (s *Sequence) Reset() {
	if s == nil {
		return
	}
	s.pos = 0
	s.cur = component.FrameInput{}
}

func (s *Sequence) Update() {
	if s == nil {
		return
	}
	if s.pos >= len(s.frames) {
		if !s.Loop || len(s.frames) == 0 {
			s.cur = component.FrameInput{}
			return
		}
		s.pos = 0
	}
	s.cur = s.frames[s.pos]
	s.pos++
}

func (s *Sequence) HorizontalAxis() float64 { return s.cur.X }
func (s *Sequence) VerticalAxis() float64   { return s.cur.Y }
func (s *Sequence) JumpDown() bool          { return s.cur.JumpDown }
func (s *Sequence) JumpHeld() bool          { return s.cur.JumpHeld }
func (s *Sequence) DashDown() bool          { return s.cur.DashDown }
