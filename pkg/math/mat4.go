package math

import "github.com/go-gl/mathgl/mgl32"

// Mat4 is a column-major 4x4 matrix, laid out as OpenGL expects. It shares
// its layout with mgl32.Mat4 and converts to it freely.
type Mat4 mgl32.Mat4

func (m Mat4) gl() mgl32.Mat4 { return mgl32.Mat4(m) }

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4(mgl32.Ident4())
}

// Perspective returns a perspective projection. fovY is in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	return Mat4(mgl32.Perspective(fovY, aspect, near, far))
}

// Ortho returns an orthographic projection of the given box.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4(mgl32.Ortho(left, right, bottom, top, near, far))
}

// LookAt returns a view matrix looking from eye towards center.
func LookAt(eye, center, up Vec3) Mat4 {
	return Mat4(mgl32.LookAtV(eye.gl(), center.gl(), up.gl()))
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4(mgl32.Translate3D(x, y, z))
}

// Scale returns a non-uniform scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4(mgl32.Scale3D(x, y, z))
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mat4(m.gl().Mul4(other.gl()))
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4(m.gl().Mul4x1(mgl32.Vec4(v)))
}

// TransformPoint transforms p as a position (w = 1). The result is divided
// by w unless the matrix is affine.
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	r := m.gl().Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})
	if r[3] != 0 && r[3] != 1 {
		return [3]float32{r[0] / r[3], r[1] / r[3], r[2] / r[3]}
	}
	return [3]float32{r[0], r[1], r[2]}
}

// TransformDirection transforms d as a direction, ignoring translation.
func (m Mat4) TransformDirection(d [3]float32) [3]float32 {
	return mgl32.TransformNormal(mgl32.Vec3(d), m.gl())
}

// Ptr returns a pointer to the first element for glUniformMatrix4fv.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Inverse returns the inverse of m, or the identity when m is singular.
func (m Mat4) Inverse() Mat4 {
	if m.gl().Det() == 0 {
		return Identity()
	}
	return Mat4(m.gl().Inv())
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	return Mat4(m.gl().Transpose())
}

// NormalMatrix returns the matrix that transforms normals for the given
// model-view matrix: transpose(inverse(mv)) with the translation cleared.
func NormalMatrix(mv Mat4) Mat4 {
	n := mv.Inverse().Transpose()
	n[3], n[7], n[11] = 0, 0, 0
	n[12], n[13], n[14] = 0, 0, 0
	n[15] = 1
	return n
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return mgl32.DegToRad(deg)
}
