package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoFaces is returned when a model file defines no usable faces.
var ErrNoFaces = errors.New("model has no faces")

// ModelExtent is the size of the largest side of a loaded model after
// normalization. It matches the proportions of the reference mesh the scene
// layout was tuned for (the model is drawn with a 2x25x2 scale on top of the
// platform frame).
const ModelExtent = 0.15

// LoadOBJ reads a Wavefront OBJ file from disk.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model: %w", err)
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ parses the geometry subset of the Wavefront OBJ format:
// v, vn and f records. Polygons are fan-triangulated, negative (relative)
// indices are supported, texture coordinates and materials are ignored.
// When the file carries no normals, smooth normals are computed.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions [][3]float32
		normals   [][3]float32
		corners   [][2]int // (position, normal) per face corner, -1 = none
		name      string
	)

	type cornerKey struct{ p, n int }
	vertexOf := make(map[cornerKey]uint32)
	var b builder
	hasNormals := true

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "o", "g":
			if name == "" && len(fields) > 1 {
				name = fields[1]
			}

		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, Normalize(n))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			corners = corners[:0]
			for _, ref := range fields[1:] {
				pi, ni, err := parseFaceRef(ref, len(positions), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				if ni < 0 {
					hasNormals = false
				}
				corners = append(corners, [2]int{pi, ni})
			}

			ids := make([]uint32, len(corners))
			for i, c := range corners {
				key := cornerKey{c[0], c[1]}
				id, ok := vertexOf[key]
				if !ok {
					var n [3]float32
					if c[1] >= 0 {
						n = normals[c[1]]
					}
					id = b.vertex(positions[c[0]], n)
					vertexOf[key] = id
				}
				ids[i] = id
			}
			for i := 1; i+1 < len(ids); i++ {
				b.triangle(ids[0], ids[i], ids[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}
	if len(b.indices) == 0 {
		return nil, ErrNoFaces
	}

	if !hasNormals {
		computeNormals(b.vertices, b.indices)
		SmoothNormals(b.vertices)
	}

	if name == "" {
		name = "model"
	}
	return b.mesh(name), nil
}

func parseVec3(fields []string) ([3]float32, error) {
	var v [3]float32
	if len(fields) < 3 {
		return v, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseFaceRef parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based
// position and normal indices (normal -1 when absent).
func parseFaceRef(ref string, numPos, numNorm int) (int, int, error) {
	parts := strings.Split(ref, "/")

	pi, err := resolveIndex(parts[0], numPos)
	if err != nil {
		return 0, 0, fmt.Errorf("face vertex %q: %w", ref, err)
	}

	ni := -1
	if len(parts) == 3 && parts[2] != "" {
		ni, err = resolveIndex(parts[2], numNorm)
		if err != nil {
			return 0, 0, fmt.Errorf("face normal %q: %w", ref, err)
		}
	}
	return pi, ni, nil
}

func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += count
	default:
		return 0, errors.New("index 0 is invalid")
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index out of range (have %d)", count)
	}
	return idx, nil
}

// computeNormals accumulates area-weighted face normals per vertex.
func computeNormals(vertices []Vertex, indices []uint32) {
	sums := make([][3]float32, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		n := Cross(
			sub(vertices[b].Position, vertices[a].Position),
			sub(vertices[c].Position, vertices[a].Position),
		)
		for _, id := range [3]uint32{a, b, c} {
			sums[id][0] += n[0]
			sums[id][1] += n[1]
			sums[id][2] += n[2]
		}
	}
	for i := range vertices {
		vertices[i].Normal = Normalize(sums[i])
	}
}
