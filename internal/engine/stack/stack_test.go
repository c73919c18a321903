package stack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/primscene/pkg/math"
)

func TestNewStackIsIdentity(t *testing.T) {
	s := New()
	assert.Equal(t, math.Identity(), s.ModelView())
	assert.Equal(t, 1, s.Depth())
}

func TestPushPopRestores(t *testing.T) {
	s := New()
	view := math.Translate(0, 0, -4)
	s.Load(view)

	s.Push()
	s.MultTranslation(math.Vec3{X: 0, Y: -1, Z: 0})
	s.MultScale(math.Vec3{X: 10, Y: 0.5, Z: 10})
	assert.NotEqual(t, view, s.ModelView())
	assert.Equal(t, 2, s.Depth())

	require.NoError(t, s.Pop())
	assert.Equal(t, view, s.ModelView())
	assert.Equal(t, 1, s.Depth())
}

func TestPopUnderflow(t *testing.T) {
	s := New()
	err := s.Pop()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}

func TestTransformOrder(t *testing.T) {
	// translate then scale: the scale is applied to the vertex first.
	s := New()
	s.MultTranslation(math.Vec3{X: 1, Y: 0, Z: 0})
	s.MultScale(math.Vec3{X: 2, Y: 2, Z: 2})

	p := s.ModelView().TransformPoint([3]float32{1, 1, 1})
	assert.InDeltaSlice(t, []float32{3, 2, 2}, p[:], 1e-6)
}

func TestNestedFrames(t *testing.T) {
	s := New()
	s.Push()
	s.MultTranslation(math.Vec3{X: 0, Y: -1, Z: 0})
	s.MultScale(math.Vec3{X: 10, Y: 0.5, Z: 10})

	s.Push()
	s.MultTranslation(math.Vec3{X: 0.2, Y: 2.5, Z: -0.2})
	s.MultScale(math.Vec3{X: 0.2, Y: 4, Z: 0.2})
	origin := s.ModelView().TransformPoint([3]float32{0, 0, 0})
	// 0.2*10, -1 + 2.5*0.5, -0.2*10
	assert.InDeltaSlice(t, []float32{2, 0.25, -2}, origin[:], 1e-5)
	require.NoError(t, s.Pop())
	require.NoError(t, s.Pop())
	assert.Equal(t, math.Identity(), s.ModelView())
}

func TestReset(t *testing.T) {
	s := New()
	s.Push()
	s.Push()
	view := math.Translate(1, 2, 3)
	s.Reset(view)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, view, s.ModelView())
}
