package model

import "sort"

// builder accumulates vertices and triangles for the generators.
type builder struct {
	vertices []Vertex
	indices  []uint32
}

func (b *builder) vertex(pos, normal [3]float32) uint32 {
	b.vertices = append(b.vertices, Vertex{Position: pos, Normal: normal})
	return uint32(len(b.vertices) - 1)
}

func (b *builder) triangle(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

// quad adds two counter-clockwise triangles for corners given in CCW order.
func (b *builder) quad(i0, i1, i2, i3 uint32) {
	b.triangle(i0, i1, i2)
	b.triangle(i0, i2, i3)
}

func (b *builder) mesh(name string) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: b.vertices,
		Indices:  b.indices,
	}
	m.Bounds = ComputeBounds(m.Vertices)
	m.Edges = BuildEdges(m.Indices)
	return m
}

// ComputeBounds returns the bounding box of the vertex positions.
func ComputeBounds(vertices []Vertex) Bounds {
	bounds := EmptyBounds()
	for i := range vertices {
		updateBounds(&bounds, vertices[i].Position)
	}
	return bounds
}

// BuildEdges derives a line list from a triangle list. Each undirected edge
// appears once, so shared edges are not drawn twice in wireframe mode.
func BuildEdges(indices []uint32) []uint32 {
	seen := make(map[[2]uint32]struct{}, len(indices))
	var keys [][2]uint32
	for i := 0; i+2 < len(indices); i += 3 {
		tri := [3]uint32{indices[i], indices[i+1], indices[i+2]}
		for j := 0; j < 3; j++ {
			a, b := tri[j], tri[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]uint32{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	// Stable order keeps uploads deterministic between runs.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	edges := make([]uint32, 0, len(keys)*2)
	for _, k := range keys {
		edges = append(edges, k[0], k[1])
	}
	return edges
}

// SmoothNormals averages normals at shared vertex positions.
// This reduces faceted appearance on loaded models.
func SmoothNormals(vertices []Vertex) {
	const epsilon float32 = 0.0001

	posMap := make(map[[3]int32][]int)
	for i := range vertices {
		key := [3]int32{
			int32(vertices[i].Position[0] / epsilon),
			int32(vertices[i].Position[1] / epsilon),
			int32(vertices[i].Position[2] / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, idxs := range posMap {
		if len(idxs) < 2 {
			continue
		}

		var sum [3]float32
		for _, idx := range idxs {
			sum[0] += vertices[idx].Normal[0]
			sum[1] += vertices[idx].Normal[1]
			sum[2] += vertices[idx].Normal[2]
		}

		avg := Normalize(sum)
		for _, idx := range idxs {
			vertices[idx].Normal = avg
		}
	}
}

// FitToExtent uniformly rescales the mesh so its largest side equals extent,
// centers it on X/Z and rests its base on Y=0.
func FitToExtent(m *Mesh, extent float32) {
	size := m.Bounds.Size()
	largest := size[0]
	if size[1] > largest {
		largest = size[1]
	}
	if size[2] > largest {
		largest = size[2]
	}
	if largest <= 0 {
		return
	}

	s := extent / largest
	center := m.Bounds.Center()
	base := m.Bounds.Min[1]
	for i := range m.Vertices {
		p := &m.Vertices[i].Position
		p[0] = (p[0] - center[0]) * s
		p[1] = (p[1] - base) * s
		p[2] = (p[2] - center[2]) * s
	}
	m.Bounds = ComputeBounds(m.Vertices)
}
