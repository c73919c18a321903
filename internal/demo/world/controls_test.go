package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/pkg/math"
)

func TestApplyDrawMode(t *testing.T) {
	w := testWorld(t, lighting.White(math.Vec4{0, 0, 10, 1}))

	assert.True(t, w.Apply(ActionWireframe))
	assert.True(t, w.Options.Wireframe)
	assert.True(t, w.Apply(ActionWireframe))
	assert.True(t, w.Options.Wireframe, "W is not a toggle")

	assert.True(t, w.Apply(ActionSolid))
	assert.False(t, w.Options.Wireframe)
}

func TestApplyOrbitAndZoom(t *testing.T) {
	w := testWorld(t, lighting.White(math.Vec4{0, 0, 10, 1}))
	w.Camera.Theta, w.Camera.Phi, w.Camera.Distance = 0, 0, 10

	w.Apply(ActionOrbitLeft)
	assert.InDelta(t, -5, w.Camera.Theta, 1e-4)
	w.Apply(ActionOrbitUp)
	assert.InDelta(t, 5, w.Camera.Phi, 1e-4)

	w.Apply(ActionZoomIn)
	assert.Less(t, w.Camera.Distance, float32(10))
	d := w.Camera.Distance
	w.Apply(ActionZoomOut)
	assert.Greater(t, w.Camera.Distance, d)
}

func TestApplyToggles(t *testing.T) {
	w := testWorld(t, lighting.White(math.Vec4{0, 0, 10, 1}))
	show := w.Options.ShowLights

	w.Apply(ActionToggleLights)
	assert.Equal(t, !show, w.Options.ShowLights)
	w.Apply(ActionToggleAnimate)
	assert.True(t, w.Options.Animate)

	assert.False(t, w.Apply(ActionNone))
}
