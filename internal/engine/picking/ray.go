// Package picking provides ray casting against axis-aligned boxes.
package picking

import (
	gomath "math"

	"github.com/Faultbox/primscene/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates with the origin at the top left.
// invViewProj is the inverse of projection*view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	near := unproject(invViewProj, ndcX, ndcY, -1)
	far := unproject(invViewProj, ndcX, ndcY, 1)

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func unproject(inv math.Mat4, x, y, z float32) math.Vec3 {
	p := inv.MulVec4(math.Vec4{x, y, z, 1})
	if p[3] != 0 {
		p[0] /= p[3]
		p[1] /= p[3]
		p[2] /= p[3]
	}
	return p.XYZ()
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin, dir := r.Origin.Array(), r.Direction.Array()
	lo, hi := box.Min.Array(), box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// TransformAABB returns the world-space box enclosing the local box
// [lo, hi] transformed by m.
func TransformAABB(lo, hi [3]float32, m math.Mat4) AABB {
	var box AABB
	for i := 0; i < 8; i++ {
		corner := [3]float32{lo[0], lo[1], lo[2]}
		if i&1 != 0 {
			corner[0] = hi[0]
		}
		if i&2 != 0 {
			corner[1] = hi[1]
		}
		if i&4 != 0 {
			corner[2] = hi[2]
		}
		p := math.Vec3From(m.TransformPoint(corner))
		if i == 0 {
			box = AABB{Min: p, Max: p}
			continue
		}
		box.Min = math.Vec3{X: min(box.Min.X, p.X), Y: min(box.Min.Y, p.Y), Z: min(box.Min.Z, p.Z)}
		box.Max = math.Vec3{X: max(box.Max.X, p.X), Y: max(box.Max.Y, p.Y), Z: max(box.Max.Z, p.Z)}
	}
	return box
}
