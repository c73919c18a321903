package model

import "github.com/chewxy/math32"

// Cross computes the cross product of two 3D vectors.
func Cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Normalize returns a unit vector in the same direction as v.
// Degenerate vectors map to +Y.
func Normalize(v [3]float32) [3]float32 {
	length := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if length < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / length, v[1] / length, v[2] / length}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
