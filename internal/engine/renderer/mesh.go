package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/internal/logger"
)

// vertexStride is position (3 floats) + normal (3 floats).
const vertexStride = 6 * 4

// Mesh is a model.Mesh uploaded to the GPU. Triangles and edges share the
// vertex buffer and use separate element buffers.
type Mesh struct {
	vao       uint32
	vbo       uint32
	triEBO    uint32
	edgeVAO   uint32
	edgeEBO   uint32
	triCount  int32
	edgeCount int32
}

// Upload creates GPU buffers for m.
func Upload(m *model.Mesh) (*Mesh, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("upload %s: empty mesh", m.Name)
	}

	vertices := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		vertices = append(vertices,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}

	g := &Mesh{
		triCount:  int32(len(m.Indices)),
		edgeCount: int32(len(m.Edges)),
	}

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// Element array bindings are VAO state, so triangles and edges each get
	// their own VAO over the shared vertex buffer.
	g.vao, g.triEBO = makeVAO(g.vbo, m.Indices)
	if len(m.Edges) > 0 {
		g.edgeVAO, g.edgeEBO = makeVAO(g.vbo, m.Edges)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("edges", len(m.Edges)/2))

	return g, nil
}

func makeVAO(vbo uint32, indices []uint32) (vao, ebo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return vao, ebo
}

// TriangleCount returns the number of triangles.
func (g *Mesh) TriangleCount() int {
	return int(g.triCount / 3)
}

// EdgeCount returns the number of line segments.
func (g *Mesh) EdgeCount() int {
	return int(g.edgeCount / 2)
}

// DrawSolid draws the mesh as GL_TRIANGLES.
func (g *Mesh) DrawSolid() {
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.triCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// DrawWire draws the mesh edges as GL_LINES.
func (g *Mesh) DrawWire() {
	if g.edgeVAO == 0 {
		return
	}
	gl.BindVertexArray(g.edgeVAO)
	gl.DrawElementsWithOffset(gl.LINES, g.edgeCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (g *Mesh) Destroy() {
	for _, vao := range []*uint32{&g.vao, &g.edgeVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, buf := range []*uint32{&g.vbo, &g.triEBO, &g.edgeEBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
}
