package world

import (
	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/internal/engine/picking"
	"github.com/Faultbox/primscene/internal/engine/stack"
	"github.com/Faultbox/primscene/pkg/math"
)

// ScreenRay returns the world-space ray under pixel (x, y) of a viewport
// of the given size, as seen by the world's camera.
func (w *World) ScreenRay(x, y, width, height float32) picking.Ray {
	viewProj := w.Camera.ProjectionMatrix(width / height).Mul(w.Camera.ViewMatrix())
	return picking.ScreenToRay(x, y, width, height, viewProj.Inverse())
}

type collector struct {
	calls []DrawCall
}

func (c *collector) Draw(call DrawCall) {
	c.calls = append(c.calls, call)
}

// Pick returns the index of the nearest object whose world-space box is hit
// by r. bounds holds the local bounds of each mesh kind; kinds missing from
// it are not pickable. Light markers are never picked.
func (w *World) Pick(r picking.Ray, bounds map[model.Kind]model.Bounds) (int, bool) {
	var c collector
	if err := w.Traverse(stack.New(), math.Identity(), &c); err != nil {
		return -1, false
	}

	best, nearest := -1, float32(0)
	for i := range w.Objects {
		b, ok := bounds[c.calls[i].Kind]
		if !ok {
			continue
		}
		box := picking.TransformAABB(b.Min, b.Max, c.calls[i].ModelView)
		if t, hit := r.IntersectAABB(box); hit && (best < 0 || t < nearest) {
			best, nearest = i, t
		}
	}
	return best, best >= 0
}
