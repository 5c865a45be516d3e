package engine

import (
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/rendering"
)

// HitTest returns the index of the topmost drawable containing p.
//
// Drawables are painted in order, so the last one containing p wins. A
// drawable is only hit inside its clip, if it has one. Zone edges are
// inclusive.
func HitTest(drawables []rendering.Drawable, p graphics.Point) (int, bool) {
	for i := len(drawables) - 1; i >= 0; i-- {
		d := drawables[i]
		if !d.Zone.Contains(p) {
			continue
		}
		if d.Clip != nil && !d.Clip.Contains(p) {
			continue
		}
		return i, true
	}
	return -1, false
}
