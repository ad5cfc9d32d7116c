package input

import (
	"testing"

	"github.com/milk9111/platformer/component"
)

func TestParseSequenceExpandsTicks(t *testing.T) {
	data := []byte(`
name: hop
frames:
  - ticks: 2
    move_x: 1
  - jump_down: true
    jump_held: true
  - ticks: 1
    move_y: -1
`)
	seq, err := ParseSequence(data)
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if seq.Len() != 4 {
		t.Fatalf("expected 4 frames, got %d", seq.Len())
	}

	want := []component.FrameInput{
		{X: 1},
		{X: 1},
		{JumpDown: true, JumpHeld: true},
		{Y: -1},
		{},
	}
	for i, w := range want {
		seq.Update()
		if got := component.ReadFrameInput(seq); got != w {
			t.Fatalf("frame %d: got %+v, want %+v", i, got, w)
		}
	}
	if !seq.Done() {
		t.Fatalf("expected sequence to be done")
	}
}

func TestSequenceLoops(t *testing.T) {
	seq := NewSequence(component.FrameInput{X: 1}, component.FrameInput{X: -1})
	seq.Loop = true
	var xs []float64
	for i := 0; i < 5; i++ {
		seq.Update()
		xs = append(xs, seq.HorizontalAxis())
	}
	want := []float64{1, -1, 1, -1, 1}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("unexpected looped axes %v", xs)
		}
	}
	if seq.Done() {
		t.Fatalf("looping sequence reported done")
	}
	seq.Reset()
	seq.Update()
	if seq.HorizontalAxis() != 1 {
		t.Fatalf("expected reset to restart the sequence")
	}
}

func TestParseSequenceRejectsNegativeTicks(t *testing.T) {
	if _, err := ParseSequence([]byte("frames:\n  - ticks: -2\n")); err == nil {
		t.Fatalf("expected error for negative ticks")
	}
	if _, err := ParseSequence([]byte("frames: {")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadEmbeddedSequence(t *testing.T) {
	seq, err := LoadSequence("jump_dash.yaml")
	if err != nil {
		t.Fatalf("LoadSequence: %v", err)
	}
	if seq.Name != "jump_dash" || seq.Len() == 0 {
		t.Fatalf("unexpected sequence %q with %d frames", seq.Name, seq.Len())
	}
}

func TestScriptReadsGlobals(t *testing.T) {
	src := []byte(`
move_x := tick < 2 ? 1.0 : -0.5
jump_down := tick == 1
jump_held := tick >= 1
`)
	s, err := NewScript("inline", src)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	want := []component.FrameInput{
		{X: 1},
		{X: 1, JumpDown: true, JumpHeld: true},
		{X: -0.5, JumpHeld: true},
	}
	for i, w := range want {
		s.Update()
		if got := component.ReadFrameInput(s); got != w {
			t.Fatalf("tick %d: got %+v, want %+v", i, got, w)
		}
	}
	if s.Err() != nil {
		t.Fatalf("unexpected error %v", s.Err())
	}
}

func TestScriptRuntimeErrorStopsInput(t *testing.T) {
	s, err := NewScript("broken", []byte("move_x := 1.0\nboom := 10 / (tick - 1)\n"))
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	s.Update()
	if s.HorizontalAxis() != 1 {
		t.Fatalf("expected input before the failure")
	}
	s.Update()
	if s.Err() == nil {
		t.Fatalf("expected a runtime error")
	}
	if s.HorizontalAxis() != 0 {
		t.Fatalf("failed script still reports input")
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript("bad", []byte("move_x := (")); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestLoadEmbeddedScript(t *testing.T) {
	s, err := LoadScript("sandbox_run.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	for i := 0; i <= 20; i++ {
		s.Update()
	}
	if !s.JumpDown() || s.HorizontalAxis() != 1 {
		t.Fatalf("expected a jump on tick 20, got %+v", component.ReadFrameInput(s))
	}
}

func TestForwardOnlyRemapsAxis(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"back", -1, 0},
		{"idle", 0, 0.5},
		{"forward", 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := ForwardOnly{NewSequence(component.FrameInput{X: c.x, Y: -1})}
			src.Update()
			if got := src.HorizontalAxis(); got != c.want {
				t.Fatalf("HorizontalAxis() = %v, want %v", got, c.want)
			}
			if src.VerticalAxis() != -1 {
				t.Fatalf("vertical axis not passed through")
			}
		})
	}
}
