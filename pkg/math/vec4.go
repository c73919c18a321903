package math

// Vec4 is a 4-component vector. Lights use W to tell positional (1)
// from directional (0) sources.
type Vec4 [4]float32

// XYZ returns the first three components.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// IsDirectional reports whether the vector encodes a direction (W == 0).
func (v Vec4) IsDirectional() bool {
	return v[3] == 0
}
