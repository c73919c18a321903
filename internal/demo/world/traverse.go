package world

import (
	"fmt"

	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/internal/engine/stack"
	"github.com/Faultbox/primscene/pkg/math"
)

// Platform frame: every object is placed relative to the slab.
var (
	PlatformTranslate = math.Vec3{X: 0, Y: -1, Z: 0}
	PlatformScale     = math.Vec3{X: 10, Y: 0.5, Z: 10}
)

// MarkerScale is the size of the sphere drawn at each positional light.
const MarkerScale = 0.15

// DrawCall is everything a target needs to draw one mesh.
type DrawCall struct {
	Name      string
	Kind      model.Kind
	Color     [3]float32
	Material  lighting.Material
	ModelView math.Mat4
	Unlit     bool
}

// Target receives draw calls in traversal order.
type Target interface {
	Draw(call DrawCall)
}

// Traverse walks the scene with the transform stack starting from view and
// issues one draw per object, then one per light marker when enabled.
// The stack is left at depth 1 with view loaded; anything else is an error.
func (w *World) Traverse(st *stack.Stack, view math.Mat4, t Target) error {
	st.Reset(view)

	st.Push()
	st.MultTranslation(PlatformTranslate)
	st.MultScale(PlatformScale)
	for i := range w.Objects {
		obj := &w.Objects[i]
		st.Push()
		st.MultTranslation(obj.Translate)
		st.MultScale(obj.Scale)
		t.Draw(DrawCall{
			Name:      obj.Name,
			Kind:      obj.Kind,
			Color:     obj.Color,
			Material:  obj.Material,
			ModelView: st.ModelView(),
		})
		if err := st.Pop(); err != nil {
			return fmt.Errorf("object %s: %w", obj.Name, err)
		}
	}
	if err := st.Pop(); err != nil {
		return fmt.Errorf("platform frame: %w", err)
	}

	if !w.Options.ShowLights {
		return checkBalanced(st)
	}
	for i, l := range w.Lights.Lights {
		if !l.Enabled || l.Position.IsDirectional() {
			continue
		}
		st.Push()
		st.MultTranslation(l.Position.XYZ())
		st.MultScale(math.Vec3{X: MarkerScale, Y: MarkerScale, Z: MarkerScale})
		t.Draw(DrawCall{
			Name:      fmt.Sprintf("light %d", i),
			Kind:      model.KindSphere,
			Color:     l.Diffuse,
			ModelView: st.ModelView(),
			Unlit:     true,
		})
		if err := st.Pop(); err != nil {
			return fmt.Errorf("light marker %d: %w", i, err)
		}
	}
	return checkBalanced(st)
}

func checkBalanced(st *stack.Stack) error {
	if d := st.Depth(); d != 1 {
		return fmt.Errorf("unbalanced transform stack: depth %d after traversal", d)
	}
	return nil
}
