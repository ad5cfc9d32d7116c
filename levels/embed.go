package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a tile map. Layers are flat row-major arrays of Width*Height
// tiles with row 0 at the top; any non-zero tile on a physics layer is
// ground.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

// Entity is a placed object in tile coordinates (row 0 at the top).
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Prop returns a numeric property, or def when missing or not a number.
func (e Entity) Prop(name string, def float64) float64 {
	v, ok := e.Props[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return def
}

// PhysicsLayer reports whether layer idx collides. A level without layer
// metadata treats every layer as physical.
func (l *Level) PhysicsLayer(idx int) bool {
	if l == nil || idx < 0 || idx >= len(l.Layers) {
		return false
	}
	if len(l.LayerMeta) == 0 {
		return true
	}
	if idx >= len(l.LayerMeta) {
		return false
	}
	return l.LayerMeta[idx].Physics
}

// FindEntity returns the first entity of the given type.
func (l *Level) FindEntity(kind string) (Entity, bool) {
	if l == nil {
		return Entity{}, false
	}
	for _, e := range l.Entities {
		if e.Type == kind {
			return e, true
		}
	}
	return Entity{}, false
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data)
}

// LoadLevelFile reads a level from disk.
func LoadLevelFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(data)
}

// Load tries path on disk first and falls back to the embedded levels.
func Load(path string) (*Level, error) {
	if _, err := os.Stat(path); err == nil {
		return LoadLevelFile(path)
	}
	return LoadLevelFromFS(path)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("levels: invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("levels: layer %d has %d tiles, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	return &lvl, nil
}
