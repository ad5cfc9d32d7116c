package input

import "github.com/milk9111/platformer/component"

// ForwardOnly wraps a source for auto-runner play: the horizontal axis is
// remapped from [-1, 1] to [0, 1] so the character never turns back and
// idles at half speed.
type ForwardOnly struct {
	component.InputSource
}

func (f ForwardOnly) HorizontalAxis() float64 {
	return f.InputSource.HorizontalAxis()/2 + 0.5
}
