package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/levels"
)

// TileSize is the world-space edge length of one level tile.
const TileSize = 1.0

const boundsThickness = 1.0

// BuildLevel creates a world holding the ground geometry of lvl. Solid tiles
// on physics layers are merged into as few boxes as possible. Conveyor
// entities become effector boxes driven at dt seconds per tick.
func BuildLevel(lvl *levels.Level, dt float64) (*World, error) {
	if lvl == nil {
		return nil, fmt.Errorf("physics: nil level")
	}
	w := NewWorld()
	for idx, layer := range lvl.Layers {
		if !lvl.PhysicsLayer(idx) {
			continue
		}
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("physics: layer %d has %d tiles, want %d", idx, len(layer), lvl.Width*lvl.Height)
		}
		w.processLayerTiles(lvl, layer)
	}

	worldW := float64(lvl.Width) * TileSize
	worldH := float64(lvl.Height) * TileSize
	w.AddGround(cp.BB{L: -boundsThickness, B: -boundsThickness, R: worldW + boundsThickness, T: 0})
	w.AddGround(cp.BB{L: -boundsThickness, B: worldH, R: worldW + boundsThickness, T: worldH + boundsThickness})
	w.AddGround(cp.BB{L: -boundsThickness, B: 0, R: 0, T: worldH})
	w.AddGround(cp.BB{L: worldW, B: 0, R: worldW + boundsThickness, T: worldH})

	for _, e := range lvl.Entities {
		if e.Type != "conveyor" {
			continue
		}
		width := e.Prop("width", 1)
		if width <= 0 {
			return nil, fmt.Errorf("physics: conveyor at %d,%d has width %v", e.X, e.Y, width)
		}
		x0 := float64(e.X) * TileSize
		y0 := float64(lvl.Height-e.Y-1) * TileSize
		bb := cp.BB{L: x0, B: y0, R: x0 + width*TileSize, T: y0 + TileSize}
		w.AddEffector(bb, &Conveyor{Speed: e.Prop("speed", 1), DeltaTime: dt})
	}
	return w, nil
}

// processLayerTiles greedily merges solid tiles into rectangles, growing each
// run right first and then down. Rows are counted from the top of the level
// while world Y grows upward.
func (w *World) processLayerTiles(lvl *levels.Level, layer []int) {
	processed := make([]bool, lvl.Width*lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			idx := y*lvl.Width + x
			if processed[idx] {
				continue
			}
			if layer[idx] == 0 {
				processed[idx] = true
				continue
			}

			width := 1
			for x+width < lvl.Width {
				idx2 := y*lvl.Width + (x + width)
				if processed[idx2] || layer[idx2] == 0 {
					break
				}
				width++
			}

			height := 1
		heightLoop:
			for y+height < lvl.Height {
				for xi := x; xi < x+width; xi++ {
					idx2 := (y+height)*lvl.Width + xi
					if processed[idx2] || layer[idx2] == 0 {
						break heightLoop
					}
				}
				height++
			}

			bb := cp.BB{
				L: float64(x) * TileSize,
				B: float64(lvl.Height-y-height) * TileSize,
				R: float64(x+width) * TileSize,
				T: float64(lvl.Height-y) * TileSize,
			}
			w.AddGround(bb)

			for yy := y; yy < y+height; yy++ {
				for xx := x; xx < x+width; xx++ {
					processed[yy*lvl.Width+xx] = true
				}
			}
		}
	}
}

// SpawnPosition returns the character position that puts the bottom of
// collider on the bottom edge of the level's spawn tile, centred on it.
// Levels without a spawn entity spawn at the top-left tile.
func SpawnPosition(lvl *levels.Level, collider component.Collider) cp.Vector {
	if lvl == nil {
		return cp.Vector{}
	}
	sx, sy := 0, 0
	if e, ok := lvl.FindEntity("spawn"); ok {
		sx, sy = e.X, e.Y
	}
	bottom := float64(lvl.Height-sy-1) * TileSize
	return cp.Vector{
		X: (float64(sx)+0.5)*TileSize - collider.Offset.X,
		Y: bottom + collider.Size.Y/2 - collider.Offset.Y,
	}
}
