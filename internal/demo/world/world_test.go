package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/primscene/internal/engine/camera"
	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/internal/engine/stack"
	"github.com/Faultbox/primscene/pkg/math"
)

type recorder struct {
	calls []DrawCall
}

func (r *recorder) Draw(c DrawCall) {
	r.calls = append(r.calls, c)
}

func one() math.Vec3 { return math.Vec3{X: 1, Y: 1, Z: 1} }

func testWorld(t *testing.T, lights ...lighting.Light) *World {
	t.Helper()
	rig, err := lighting.NewRig(lights...)
	require.NoError(t, err)
	return &World{
		Objects: []Object{
			{Name: "platform", Kind: model.KindCube, Scale: one()},
			{Name: "cylinder", Kind: model.KindCylinder,
				Translate: math.Vec3{X: 0.2, Y: 2.5, Z: -0.2}, Scale: math.Vec3{X: 0.2, Y: 4, Z: 0.2}},
			{Name: "model", Kind: model.KindModel,
				Translate: math.Vec3{X: 0.2, Y: 0.5, Z: 0.2}, Scale: math.Vec3{X: 2, Y: 25, Z: 2}},
		},
		Lights:  rig,
		Camera:  camera.New(),
		Options: DefaultOptions(),
	}
}

func origin(m math.Mat4) []float32 {
	p := m.TransformPoint([3]float32{0, 0, 0})
	return p[:]
}

func TestTraverseOrderAndFrames(t *testing.T) {
	w := testWorld(t, lighting.White(math.Vec4{0, 0, 10, 1}))
	st := stack.New()
	rec := &recorder{}

	require.NoError(t, w.Traverse(st, math.Identity(), rec))
	require.Len(t, rec.calls, 4)

	names := []string{}
	for _, c := range rec.calls {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"platform", "cylinder", "model", "light 0"}, names)

	platform := rec.calls[0].ModelView
	assert.InDeltaSlice(t, []float32{0, -1, 0}, origin(platform), 1e-5)
	// The platform cube spans 10 x 0.5 x 10.
	corner := platform.TransformPoint([3]float32{0.5, 0.5, 0.5})
	assert.InDeltaSlice(t, []float32{5, -0.75, 5}, corner[:], 1e-5)

	assert.InDeltaSlice(t, []float32{2, 0.25, -2}, origin(rec.calls[1].ModelView), 1e-5)
	assert.InDeltaSlice(t, []float32{2, -0.75, 2}, origin(rec.calls[2].ModelView), 1e-5)

	marker := rec.calls[3]
	assert.True(t, marker.Unlit)
	assert.Equal(t, model.KindSphere, marker.Kind)
	assert.InDeltaSlice(t, []float32{0, 0, 10}, origin(marker.ModelView), 1e-5)

	assert.Equal(t, 1, st.Depth(), "traversal must leave the stack balanced")
}

func TestTraverseAppliesView(t *testing.T) {
	w := testWorld(t, lighting.White(math.Vec4{0, 0, 10, 1}))
	w.Options.ShowLights = false
	rec := &recorder{}

	view := math.Translate(0, 0, -5)
	require.NoError(t, w.Traverse(stack.New(), view, rec))
	require.Len(t, rec.calls, 3)
	assert.InDeltaSlice(t, []float32{0, -1, -5}, origin(rec.calls[0].ModelView), 1e-5)
}

func TestTraverseSkipsDirectionalAndDisabledMarkers(t *testing.T) {
	sun := lighting.White(math.Vec4{1, 1, 0, 0})
	off := lighting.White(math.Vec4{0, 3, 0, 1})
	off.Enabled = false
	w := testWorld(t, sun, off)
	rec := &recorder{}

	require.NoError(t, w.Traverse(stack.New(), math.Identity(), rec))
	assert.Len(t, rec.calls, len(w.Objects))
}

func TestTraverseIsRepeatable(t *testing.T) {
	w := testWorld(t, lighting.White(math.Vec4{0, 0, 10, 1}))
	st := stack.New()

	first, second := &recorder{}, &recorder{}
	require.NoError(t, w.Traverse(st, math.Identity(), first))
	require.NoError(t, w.Traverse(st, math.Identity(), second))
	assert.Equal(t, first.calls, second.calls)
}

func TestAdvance(t *testing.T) {
	w := testWorld(t, lighting.White(math.Vec4{0, 0, 10, 1}))
	w.Camera.Theta = 359.9

	w.Advance()
	assert.Zero(t, w.Time, "time only moves while animating")

	w.Options.Animate = true
	w.Advance()
	assert.Equal(t, uint64(1), w.Time)
	assert.InDelta(t, 0.15, w.Camera.Theta, 1e-3)
}

func TestCheckBalanced(t *testing.T) {
	st := stack.New()
	require.NoError(t, checkBalanced(st))

	st.Push()
	err := checkBalanced(st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth 2")
}
