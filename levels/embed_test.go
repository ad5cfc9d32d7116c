package levels

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRejectsInvalidLevels(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not_json", `{`},
		{"zero_width", `{"width":0,"height":2,"layers":[]}`},
		{"short_layer", `{"width":2,"height":2,"layers":[[1,1,1]]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.data)); err == nil {
				t.Fatalf("expected error for %s", c.data)
			}
		})
	}
}

func TestLoadEmbeddedSandbox(t *testing.T) {
	lvl, err := LoadLevelFromFS("sandbox.json")
	if err != nil {
		t.Fatalf("LoadLevelFromFS: %v", err)
	}
	if lvl.Width != 32 || lvl.Height != 14 {
		t.Fatalf("unexpected size %dx%d", lvl.Width, lvl.Height)
	}
	if !lvl.PhysicsLayer(0) {
		t.Fatalf("expected layer 0 to be a physics layer")
	}
	if _, ok := lvl.FindEntity("spawn"); !ok {
		t.Fatalf("expected a spawn entity")
	}
	conveyor, ok := lvl.FindEntity("conveyor")
	if !ok {
		t.Fatalf("expected a conveyor entity")
	}
	if got := conveyor.Prop("width", 1); got != 4 {
		t.Fatalf("expected conveyor width 4, got %v", got)
	}
	if got := conveyor.Prop("missing", 7); got != 7 {
		t.Fatalf("expected default for missing prop, got %v", got)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	if err := os.WriteFile(path, []byte(`{"width":1,"height":1,"layers":[[1]]}`), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}
	lvl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Width != 1 || !lvl.PhysicsLayer(0) {
		t.Fatalf("unexpected level %+v", lvl)
	}
	if lvl.PhysicsLayer(3) {
		t.Fatalf("out of range layer reported as physical")
	}
}
