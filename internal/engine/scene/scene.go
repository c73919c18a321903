// Package scene renders a world into an offscreen framebuffer: it owns the
// shader program, the uploaded meshes and the transform stack, and acts as
// the draw target of the world traversal.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/assets"
	"github.com/Faultbox/primscene/internal/demo/world"
	"github.com/Faultbox/primscene/internal/engine/framebuffer"
	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/internal/engine/renderer"
	"github.com/Faultbox/primscene/internal/engine/shader"
	"github.com/Faultbox/primscene/internal/engine/stack"
	"github.com/Faultbox/primscene/internal/logger"
	"github.com/Faultbox/primscene/pkg/math"
)

// Uniform names shared with shader.vert / shader.frag.
const (
	uniformModelView  = "mModelView"
	uniformNormals    = "mNormals"
	uniformProjection = "mProjection"
	uniformView       = "mView"
	uniformColor      = "uColor"
	uniformUnlit      = "uUnlit"
)

// Config holds scene configuration.
type Config struct {
	Width      int32
	Height     int32
	ClearColor [4]float32
}

// DefaultConfig returns a black-cleared 1280x720 target.
func DefaultConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		ClearColor: [4]float32{0, 0, 0, 1},
	}
}

// Scene draws worlds with one shader program.
type Scene struct {
	config    Config
	fb        *framebuffer.Framebuffer
	renderer  *renderer.Renderer
	program   *shader.Program
	meshes    map[model.Kind]*renderer.Mesh
	stack     *stack.Stack
	wireframe bool
}

// New uploads meshes, links the program and creates the render target.
// Must be called with a current GL context after renderer.New.
func New(cfg Config, r *renderer.Renderer, mgr *assets.Manager, meshes map[model.Kind]*model.Mesh) (*Scene, error) {
	program, err := shader.Load(mgr, assets.VertexShader, assets.FragmentShader)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		config:   cfg,
		renderer: r,
		program:  program,
		meshes:   make(map[model.Kind]*renderer.Mesh),
		stack:    stack.New(),
	}

	for _, kind := range model.Kinds {
		m, ok := meshes[kind]
		if !ok {
			s.Destroy()
			return nil, fmt.Errorf("missing %s mesh", kind)
		}
		gpu, err := renderer.Upload(m)
		if err != nil {
			s.Destroy()
			return nil, err
		}
		s.meshes[kind] = gpu
	}

	s.fb, err = framebuffer.New(cfg.Width, cfg.Height)
	if err != nil {
		s.Destroy()
		return nil, err
	}

	logger.Info("scene ready",
		zap.Int32("width", cfg.Width),
		zap.Int32("height", cfg.Height),
		zap.Int("meshes", len(s.meshes)))
	return s, nil
}

// Render draws w into the framebuffer and returns its color texture.
func (s *Scene) Render(w *world.World) (uint32, error) {
	s.fb.Bind()
	defer s.fb.Unbind()

	s.renderer.Invalidate()
	s.renderer.Apply(renderer.State{
		DepthTest:       w.Options.DepthTest,
		BackfaceCulling: w.Options.BackfaceCulling,
	})
	s.renderer.Begin(s.config.ClearColor)
	defer s.renderer.End()

	view := w.Camera.ViewMatrix()
	projection := w.Camera.ProjectionMatrix(s.fb.Aspect())

	s.program.Use()
	uploadLights(s.program, w.Lights, view)
	s.program.SetMat4(uniformProjection, projection)
	s.program.SetMat4(uniformView, view)

	s.wireframe = w.Options.Wireframe
	if err := w.Traverse(s.stack, view, s); err != nil {
		return s.fb.ColorTexture(), fmt.Errorf("traverse: %w", err)
	}
	return s.fb.ColorTexture(), nil
}

// Draw uploads the per-object uniforms and draws one mesh.
func (s *Scene) Draw(call world.DrawCall) {
	mesh, ok := s.meshes[call.Kind]
	if !ok {
		return
	}

	names := lighting.MaterialNames()
	s.program.SetVec3(uniformColor, call.Color)
	s.program.SetBool(uniformUnlit, call.Unlit)
	s.program.SetVec3(names.Ka, call.Material.Ka)
	s.program.SetVec3(names.Kd, call.Material.Kd)
	s.program.SetVec3(names.Ks, call.Material.Ks)
	s.program.SetFloat(names.Shininess, call.Material.Shininess)
	s.program.SetMat4(uniformModelView, call.ModelView)
	s.program.SetMat4(uniformNormals, math.NormalMatrix(call.ModelView))

	s.renderer.Draw(mesh, s.wireframe)
}

func uploadLights(p *shader.Program, rig *lighting.Rig, view math.Mat4) {
	lights := rig.EyeSpace(view)
	p.SetInt(lighting.UniformLightCount, int32(len(lights)))
	for i, l := range lights {
		n := lighting.LightNames(i)
		p.SetBool(n.Enabled, l.Enabled)
		p.SetVec3(n.Ambient, l.Ambient)
		p.SetVec3(n.Diffuse, l.Diffuse)
		p.SetVec3(n.Specular, l.Specular)
		p.SetVec4(n.Position, l.Position)
		p.SetVec3(n.Axis, l.Axis)
		p.SetFloat(n.Aperture, l.Aperture)
		p.SetFloat(n.Cutoff, l.Cutoff)
	}
}

// ReloadShaders recompiles the program. The previous program stays active
// when compilation fails.
func (s *Scene) ReloadShaders(mgr *assets.Manager) error {
	return s.program.Reload(mgr)
}

// Resize resizes the render target.
func (s *Scene) Resize(width, height int32) {
	s.fb.Resize(width, height)
	s.config.Width, s.config.Height = s.fb.Size()
}

// Size returns the render target size.
func (s *Scene) Size() (width, height int32) {
	return s.fb.Size()
}

// Stats returns the statistics of the last rendered frame.
func (s *Scene) Stats() renderer.Stats {
	return s.renderer.Stats()
}

// ReadPixels returns the last frame as bottom-up RGBA rows.
func (s *Scene) ReadPixels() (pixels []byte, width, height int) {
	w, h := s.fb.Size()
	return s.fb.ReadPixels(), int(w), int(h)
}

// SetMesh replaces the GPU mesh drawn for kind.
func (s *Scene) SetMesh(kind model.Kind, m *model.Mesh) error {
	gpu, err := renderer.Upload(m)
	if err != nil {
		return err
	}
	if old, ok := s.meshes[kind]; ok {
		old.Destroy()
	}
	s.meshes[kind] = gpu
	return nil
}

// Present copies the last frame to the window framebuffer.
func (s *Scene) Present(width, height int32) {
	s.fb.BlitToDefault(width, height)
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	if s.fb != nil {
		s.fb.Destroy()
		s.fb = nil
	}
	for kind, m := range s.meshes {
		m.Destroy()
		delete(s.meshes, kind)
	}
	if s.program != nil {
		s.program.Delete()
		s.program = nil
	}
}
