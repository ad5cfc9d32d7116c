package replay

import (
	"testing"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
)

const replayTicks = 200

func loadSandbox(t *testing.T) *levels.Level {
	t.Helper()
	lvl, err := levels.LoadLevelFromFS("sandbox.json")
	if err != nil {
		t.Fatalf("load sandbox: %v", err)
	}
	return lvl
}

func runSequence(t *testing.T, src component.InputSource) Result {
	t.Helper()
	r, err := New(Options{Level: loadSandbox(t), Source: src})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r.Run(replayTicks)
}

func loadJumpDash(t *testing.T) *input.Sequence {
	t.Helper()
	seq, err := input.LoadSequence("jump_dash.yaml")
	if err != nil {
		t.Fatalf("LoadSequence: %v", err)
	}
	return seq
}

func TestReplayIsDeterministic(t *testing.T) {
	first := runSequence(t, loadJumpDash(t))
	second := runSequence(t, loadJumpDash(t))

	if first.Digest != second.Digest {
		t.Fatalf("digest drift: %x vs %x", first.Digest, second.Digest)
	}
	if first.Position != second.Position {
		t.Fatalf("position drift: %v vs %v", first.Position, second.Position)
	}
	if len(first.Events) != len(second.Events) {
		t.Fatalf("event count drift: %d vs %d", len(first.Events), len(second.Events))
	}
	if first.Ticks != replayTicks {
		t.Fatalf("expected %d ticks, got %d", replayTicks, first.Ticks)
	}
}

func TestReplayDigestTracksInput(t *testing.T) {
	moving := runSequence(t, loadJumpDash(t))
	idle := runSequence(t, input.NewSequence())
	if moving.Digest == idle.Digest {
		t.Fatalf("different inputs produced the same digest %x", moving.Digest)
	}
}

func TestReplayRecordsLandingAndJump(t *testing.T) {
	res := runSequence(t, loadJumpDash(t))

	landed, jumped := false, false
	for _, evt := range res.Events {
		switch {
		case evt.Kind == system.EventGroundedChanged && evt.Value:
			landed = true
		case evt.Kind == system.EventJumped:
			jumped = true
		}
	}
	if !landed || !jumped {
		t.Fatalf("expected a landing and a jump, got %+v", res.Events)
	}
	if res.Stamina >= 100 {
		t.Fatalf("expected jumps to cost stamina, got %v", res.Stamina)
	}
}

func TestReplayRunsScripts(t *testing.T) {
	load := func() *input.Script {
		s, err := input.LoadScript("sandbox_run.tengo")
		if err != nil {
			t.Fatalf("LoadScript: %v", err)
		}
		return s
	}
	a := runSequence(t, load())
	b := runSequence(t, load())
	if a.Digest != b.Digest {
		t.Fatalf("script replay drift: %x vs %x", a.Digest, b.Digest)
	}
	if a.Position.X <= 3.5 {
		t.Fatalf("expected the script to move right, ended at %v", a.Position)
	}
}

func TestReplayForwardOnly(t *testing.T) {
	cases := []struct {
		name    string
		forward bool
	}{
		{"standard", false},
		{"forward_only", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := prefabs.DefaultPlayerSpec()
			spec.ForwardOnly = tc.forward
			r, err := New(Options{Level: loadSandbox(t), Spec: &spec, Source: input.NewSequence()})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			start := r.Controller.Position().X
			res := r.Run(30)
			moved := res.Position.X > start
			if moved != tc.forward {
				t.Fatalf("start %v end %v, expected moved=%v", start, res.Position.X, tc.forward)
			}
		})
	}
}

func TestNewRejectsMissingInputs(t *testing.T) {
	if _, err := New(Options{Source: input.NewSequence()}); err == nil {
		t.Fatalf("expected error for nil level")
	}
	if _, err := New(Options{Level: loadSandbox(t)}); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
