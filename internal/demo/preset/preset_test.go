package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/primscene/internal/demo/preset/names"
	"github.com/Faultbox/primscene/internal/engine/camera"
	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/internal/engine/model"
)

func TestAllPresetsBuild(t *testing.T) {
	for _, name := range names.All {
		t.Run(name, func(t *testing.T) {
			w, err := New(name)
			require.NoError(t, err)
			assert.Equal(t, name, w.Preset)
			require.Len(t, w.Objects, 5)
			assert.GreaterOrEqual(t, w.Lights.Len(), 1)
			assert.LessOrEqual(t, w.Lights.Len(), lighting.MaxLights)
			assert.NoError(t, w.Camera.Validate())
			assert.True(t, w.Options.DepthTest)

			kinds := []model.Kind{}
			for _, o := range w.Objects {
				kinds = append(kinds, o.Kind)
			}
			assert.Equal(t, []model.Kind{
				model.KindCube, model.KindCylinder, model.KindCube, model.KindTorus, model.KindModel,
			}, kinds)
		})
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := New("noir")
	assert.ErrorIs(t, err, names.ErrUnknownPreset)
}

func TestNewReturnsFreshState(t *testing.T) {
	a, err := New(names.Classic)
	require.NoError(t, err)
	a.Objects[0].Material.Shininess = 99
	a.Lights.Lights[0].Enabled = false

	b, err := New(names.Classic)
	require.NoError(t, err)
	assert.Equal(t, float32(1), b.Objects[0].Material.Shininess)
	assert.True(t, b.Lights.Lights[0].Enabled)
}

func TestClassicMatchesFirstDemo(t *testing.T) {
	w, err := New(names.Classic)
	require.NoError(t, err)

	assert.Equal(t, camera.Ortho, w.Camera.Projection)
	eye := w.Camera.Eye()
	assert.InDelta(t, 0, eye.X, 1e-4)
	assert.InDelta(t, 1, eye.Y, 1e-4)
	assert.InDelta(t, 4, eye.Z, 1e-4)

	l := w.Lights.Lights[0]
	assert.Equal(t, float32(10), l.Position[2])
	assert.Equal(t, [3]float32{0.7, 0.7, 0.7}, l.Diffuse)

	// Object colors drive the diffuse term, the tint the specular one.
	platform := w.Objects[0].Material
	assert.Equal(t, PlatformColor, platform.Kd)
	assert.Equal(t, [3]float32{1, 0, 0}, platform.Ks)

	torus := w.Objects[3].Material
	assert.Equal(t, TorusColor, torus.Kd)
	assert.Equal(t, [3]float32{0, 1, 0}, torus.Ks)
	assert.Equal(t, float32(3), torus.Shininess)

	mdl := w.Objects[4].Material
	assert.Equal(t, [3]float32{}, mdl.Ka)
	assert.Equal(t, ModelColor, mdl.Kd, "the model must not render black diffuse")
	assert.Equal(t, [3]float32{}, mdl.Ks)
	assert.Equal(t, float32(0), mdl.Shininess)
}

func TestLightRigs(t *testing.T) {
	tri, err := New(names.TriLight)
	require.NoError(t, err)
	assert.Equal(t, 3, tri.Lights.Len())

	sun, err := New(names.Sun)
	require.NoError(t, err)
	assert.Equal(t, "directional", sun.Lights.Lights[0].Kind())

	spot, err := New(names.Spot)
	require.NoError(t, err)
	l := spot.Lights.Lights[0]
	assert.Equal(t, "spot", l.Kind())
	assert.Equal(t, float32(20), l.Aperture)
	assert.Equal(t, float32(10), l.Cutoff)
}
