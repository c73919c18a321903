// Package model builds the CPU-side meshes drawn by the scene: the
// primitive shapes (cube, cylinder, torus, sphere) and the fixed mesh model
// loaded from a Wavefront OBJ file.
package model

// Vertex is the interleaved vertex layout uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds vertex data plus two index lists: Indices for solid drawing
// (triangles) and Edges for wireframe drawing (line pairs).
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Edges    []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles in the solid index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// EmptyBounds returns bounds that any point will expand.
func EmptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}
