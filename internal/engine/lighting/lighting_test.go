package lighting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/primscene/pkg/math"
)

func TestNewRigLimit(t *testing.T) {
	lights := make([]Light, MaxLights+1)
	_, err := NewRig(lights...)
	assert.True(t, errors.Is(err, ErrTooManyLights))

	r, err := NewRig(lights[:MaxLights]...)
	require.NoError(t, err)
	assert.Equal(t, MaxLights, r.Len())
}

func TestRigAddRemove(t *testing.T) {
	r, err := NewRig(White(math.Vec4{0, 0, 10, 1}))
	require.NoError(t, err)

	assert.False(t, r.Remove(0), "last light must stay")

	for r.Len() < MaxLights {
		require.NoError(t, r.Add(White(math.Vec4{1, 1, 1, 1})))
	}
	assert.ErrorIs(t, r.Add(White(math.Vec4{})), ErrTooManyLights)

	assert.True(t, r.Remove(3))
	assert.Equal(t, MaxLights-1, r.Len())
	assert.False(t, r.Remove(-1))
	assert.False(t, r.Remove(r.Len()))
}

func TestLightKind(t *testing.T) {
	l := White(math.Vec4{0, 5, 0, 1})
	assert.Equal(t, "point", l.Kind())

	l.Aperture = 20
	assert.Equal(t, "spot", l.Kind())

	l.Position[3] = 0
	assert.Equal(t, "directional", l.Kind())
}

func TestLightClamp(t *testing.T) {
	l := Light{
		Ambient:  [3]float32{-1, 0.5, 2},
		Aperture: 400,
		Cutoff:   -3,
	}
	l.Clamp()
	assert.Equal(t, [3]float32{0, 0.5, 1}, l.Ambient)
	assert.Equal(t, float32(NoSpot), l.Aperture)
	assert.Equal(t, float32(0), l.Cutoff)

	m := Material{Kd: [3]float32{2, 0, 0}, Shininess: -1}
	m.Clamp()
	assert.Equal(t, [3]float32{1, 0, 0}, m.Kd)
	assert.Equal(t, float32(0), m.Shininess)
}

func TestEyeSpace(t *testing.T) {
	point := White(math.Vec4{0, 0, 10, 1})
	sun := White(math.Vec4{0, 1, 0, 0})
	r, _ := NewRig(point, sun)

	view := math.Translate(0, 0, -5)
	out := r.EyeSpace(view)
	require.Len(t, out, 2)

	assert.Equal(t, math.Vec4{0, 0, 5, 1}, out[0].Position)
	// Directions ignore the translation.
	assert.Equal(t, math.Vec4{0, 1, 0, 0}, out[1].Position)
	assert.Equal(t, [3]float32{0, 0, -1}, out[0].Axis)
	assert.True(t, out[0].Enabled)
}

func TestUniformNames(t *testing.T) {
	n := LightNames(3)
	assert.Equal(t, "uLights[3].position", n.Position)
	assert.Equal(t, "uLights[3].aperture", n.Aperture)
	assert.Equal(t, "uMaterial.shininess", MaterialNames().Shininess)
	assert.Equal(t, "uMaterial.Ka", MaterialNames().Ka)
}
