package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/primscene/pkg/math"
)

const eps = 1e-4

func TestEyeOnAxis(t *testing.T) {
	c := New()
	c.Theta, c.Phi, c.Distance = 0, 0, 5
	eye := c.Eye()
	assert.InDelta(t, 0, eye.X, eps)
	assert.InDelta(t, 0, eye.Y, eps)
	assert.InDelta(t, 5, eye.Z, eps)

	c.Theta = 90
	eye = c.Eye()
	assert.InDelta(t, 5, eye.X, eps)
	assert.InDelta(t, 0, eye.Z, eps)
}

func TestSetEyeRoundTrip(t *testing.T) {
	c := New()
	c.At = math.Vec3{X: 1, Y: 0, Z: -1}
	want := math.Vec3{X: 1, Y: 1, Z: 3}
	c.SetEye(want)

	got := c.Eye()
	assert.InDelta(t, want.X, got.X, eps)
	assert.InDelta(t, want.Y, got.Y, eps)
	assert.InDelta(t, want.Z, got.Z, eps)
}

func TestViewMatrixMovesAtInFront(t *testing.T) {
	c := New()
	c.SetEye(math.Vec3{X: 0, Y: 1, Z: 4})
	p := c.ViewMatrix().TransformPoint([3]float32{0, 0, 0})
	assert.InDelta(t, 0, p[0], eps)
	assert.Less(t, p[2], float32(0), "target must be in front of the camera")
}

func TestOrthoProjection(t *testing.T) {
	c := New()
	c.Projection = Ortho
	c.VPDistance = 4
	m := c.ProjectionMatrix(2)
	// x = VP*aspect maps to 1, y = VP maps to 1.
	p := m.TransformPoint([3]float32{8, 4, 0})
	assert.InDelta(t, 1, p[0], eps)
	assert.InDelta(t, 1, p[1], eps)
}

func TestPerspectiveProjection(t *testing.T) {
	c := New()
	m := c.ProjectionMatrix(1)
	p := m.TransformPoint([3]float32{0, 0, -c.Near})
	assert.InDelta(t, -1, p[2], 1e-3)
}

func TestHandleDragClampsPhi(t *testing.T) {
	c := New()
	c.HandleDrag(0, 10000)
	assert.Equal(t, c.MaxPhi, c.Phi)
	c.HandleDrag(0, -100000)
	assert.Equal(t, c.MinPhi, c.Phi)
}

func TestHandleZoom(t *testing.T) {
	c := New()
	c.Distance = 10
	c.HandleZoom(1)
	assert.InDelta(t, 9, c.Distance, eps)
	c.HandleZoom(1000)
	assert.Equal(t, c.MinDistance, c.Distance)

	c.Projection = Ortho
	c.VPDistance = 4
	c.HandleZoom(-1)
	assert.InDelta(t, 4.4, c.VPDistance, eps)
}

func TestValidate(t *testing.T) {
	c := New()
	require.NoError(t, c.Validate())
	c.Far = c.Near
	assert.Error(t, c.Validate())
}

func TestDragFirstUpdateIsZero(t *testing.T) {
	var d Drag
	dx, dy := d.Update(300, 200)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestDragTracksCursorOutsideView(t *testing.T) {
	var d Drag
	d.Update(10, 10)
	// Cursor wanders off the view without dragging.
	d.Update(500, 40)
	d.Update(120, 80)

	// Back over the view, the drag starts from the last frame's position.
	dx, dy := d.Update(123, 78)
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(-2), dy)

	c := New()
	theta, phi := c.Theta, c.Phi
	c.HandleDrag(dx, dy)
	assert.InDelta(t, theta-3*c.DragSensitivity, c.Theta, eps)
	assert.InDelta(t, phi-2*c.DragSensitivity, c.Phi, eps)
}
