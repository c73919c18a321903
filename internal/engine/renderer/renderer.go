// Package renderer owns global OpenGL state, GPU mesh buffers and per-frame
// draw statistics.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/logger"
)

// State is the subset of fixed-function state the panel toggles.
type State struct {
	DepthTest       bool
	BackfaceCulling bool
}

// Stats counts the work submitted in one frame.
type Stats struct {
	DrawCalls int
	Triangles int
	Lines     int
}

// Renderer handles global OpenGL state.
type Renderer struct {
	state   State
	applied bool
	stats   Stats
	last    Stats
}

// New initializes OpenGL function pointers and default state.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	r := &Renderer{}
	gl.DepthFunc(gl.LESS)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	r.Apply(State{DepthTest: true})
	return r, nil
}

// Apply sets depth test and culling, skipping calls when nothing changed.
func (r *Renderer) Apply(s State) {
	if r.applied && s == r.state {
		return
	}
	setCap(gl.DEPTH_TEST, s.DepthTest)
	setCap(gl.CULL_FACE, s.BackfaceCulling)
	r.state = s
	r.applied = true
}

// Invalidate forces the next Apply to touch GL. Call it after other code
// (the GUI backend) may have changed state.
func (r *Renderer) Invalidate() {
	r.applied = false
}

// Begin clears the bound framebuffer and resets frame statistics.
func (r *Renderer) Begin(clear [4]float32) {
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.stats = Stats{}
}

// End closes the frame and publishes its statistics.
func (r *Renderer) End() {
	r.last = r.stats
}

// Stats returns the statistics of the last completed frame.
func (r *Renderer) Stats() Stats {
	return r.last
}

// Draw issues the draw call for a mesh in solid or wireframe mode.
func (r *Renderer) Draw(m *Mesh, wireframe bool) {
	if wireframe {
		m.DrawWire()
		r.stats.Lines += m.EdgeCount()
	} else {
		m.DrawSolid()
		r.stats.Triangles += m.TriangleCount()
	}
	r.stats.DrawCalls++
}

func setCap(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
