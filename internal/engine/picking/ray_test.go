package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/primscene/pkg/math"
)

func unitBox() AABB {
	return AABB{Min: math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, Max: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}}
}

func TestScreenToRayIdentity(t *testing.T) {
	r := ScreenToRay(50, 50, 100, 100, math.Identity())

	assert.InDelta(t, 0, r.Origin.X, 1e-5)
	assert.InDelta(t, 0, r.Origin.Y, 1e-5)
	assert.InDelta(t, -1, r.Origin.Z, 1e-5)
	assert.InDelta(t, 1, r.Direction.Z, 1e-5)

	// Top-left pixel maps to NDC (-1, 1).
	r = ScreenToRay(0, 0, 100, 100, math.Identity())
	assert.InDelta(t, -1, r.Origin.X, 1e-5)
	assert.InDelta(t, 1, r.Origin.Y, 1e-5)
}

func TestIntersectAABB(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
		hit  bool
		dist float32
	}{
		{"front", Ray{Origin: math.Vec3{Z: -2}, Direction: math.Vec3{Z: 1}}, true, 1.5},
		{"behind", Ray{Origin: math.Vec3{Z: 2}, Direction: math.Vec3{Z: 1}}, false, 0},
		{"miss", Ray{Origin: math.Vec3{X: 2, Z: -2}, Direction: math.Vec3{Z: 1}}, false, 0},
		{"inside", Ray{Origin: math.Vec3{}, Direction: math.Vec3{Y: 1}}, true, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, hit := tt.ray.IntersectAABB(unitBox())
			assert.Equal(t, tt.hit, hit)
			if tt.hit {
				assert.InDelta(t, tt.dist, d, 1e-5)
			}
		})
	}
}

func TestTransformAABB(t *testing.T) {
	m := math.Translate(0, -1, 0).Mul(math.Scale(10, 0.5, 10))
	box := TransformAABB([3]float32{-0.5, -0.5, -0.5}, [3]float32{0.5, 0.5, 0.5}, m)

	assert.InDelta(t, -5, box.Min.X, 1e-5)
	assert.InDelta(t, -1.25, box.Min.Y, 1e-5)
	assert.InDelta(t, 5, box.Max.Z, 1e-5)
	assert.InDelta(t, -0.75, box.Max.Y, 1e-5)
}
