package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPoint(t *testing.T, want, got [3]float32) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5)
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   [3]float32
		want [3]float32
	}{
		{"identity", Identity(), [3]float32{1, 2, 3}, [3]float32{1, 2, 3}},
		{"translate", Translate(10, 20, 30), [3]float32{1, 2, 3}, [3]float32{11, 22, 33}},
		{"scale", Scale(2, 3, 4), [3]float32{1, 1, 1}, [3]float32{2, 3, 4}},
		{"scale then translate", Translate(0, -1, 0).Mul(Scale(10, 0.5, 10)), [3]float32{0.5, 0.5, 0.5}, [3]float32{5, -0.75, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPoint(t, tt.want, tt.m.TransformPoint(tt.in))
		})
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	d := Translate(5, 5, 5).Mul(Scale(2, 1, 1)).TransformDirection([3]float32{1, 1, 0})
	assertPoint(t, [3]float32{2, 1, 0}, d)
}

func TestMulVec4KeepsW(t *testing.T) {
	m := Translate(1, 2, 3)
	assert.Equal(t, Vec4{1, 2, 3, 1}, m.MulVec4(Vec4{0, 0, 0, 1}))
	assert.Equal(t, Vec4{0, 0, 1, 0}, m.MulVec4(Vec4{0, 0, 1, 0}), "directions are not translated")
}

func TestPerspectiveDividesByDepth(t *testing.T) {
	m := Perspective(Radians(90), 1, 1, 100)
	assert.Equal(t, float32(-1), m[11])
	assert.Equal(t, float32(0), m[15])

	// The near plane maps to z = -1, its top edge to y = 1.
	assertPoint(t, [3]float32{0, 1, -1}, m.TransformPoint([3]float32{0, 1, -1}))
}

func TestOrthoMapsBoxToClipSpace(t *testing.T) {
	m := Ortho(-8, 8, -4, 4, -12, 12)
	assertPoint(t, [3]float32{1, 1, 1}, m.TransformPoint([3]float32{8, 4, -12}))
	assertPoint(t, [3]float32{0, 0, 0}, m.TransformPoint([3]float32{0, 0, 0}))
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	m := LookAt(Vec3{X: 0, Y: 3, Z: 5}, Vec3{}, Vec3{Y: 1})
	assertPoint(t, [3]float32{0, 0, 0}, m.TransformPoint([3]float32{0, 3, 5}))

	// The target lies straight ahead on -Z.
	target := m.TransformPoint([3]float32{0, 0, 0})
	assert.InDelta(t, 0, target[0], 1e-5)
	assert.InDelta(t, 0, target[1], 1e-5)
	assert.Less(t, target[2], float32(0))
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Scale(2, 4, 8))
	got, id := m.Mul(m.Inverse()), Identity()
	assert.InDeltaSlice(t, id[:], got[:], 1e-5)
}

func TestInverseSingularIsIdentity(t *testing.T) {
	assert.Equal(t, Identity(), Scale(0, 1, 1).Inverse())
}

func TestTranspose(t *testing.T) {
	m := Translate(5, 6, 7)
	tr := m.Transpose()
	assert.Equal(t, []float32{5, 6, 7}, []float32{tr[3], tr[7], tr[11]})
	assert.Equal(t, m, tr.Transpose())
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	// A 45 degree normal on a surface stretched along X must tilt towards Y.
	n := NormalMatrix(Scale(4, 1, 1)).TransformDirection([3]float32{1, 1, 0})
	assert.Greater(t, n[1], n[0])
}

func TestNormalMatrixIgnoresTranslation(t *testing.T) {
	n, id := NormalMatrix(Translate(10, 20, 30)), Identity()
	assert.InDeltaSlice(t, id[:], n[:], 1e-6)
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), 1e-6)
}
