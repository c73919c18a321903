package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/assets"
	"github.com/Faultbox/primscene/internal/logger"
	"github.com/Faultbox/primscene/pkg/math"
)

// Program is a linked shader program with a uniform location cache.
// Setters silently skip uniforms the driver optimized away.
type Program struct {
	id       uint32
	vertex   string
	fragment string
	uniforms map[string]int32
}

// Load reads the two sources through the asset manager and links them.
func Load(mgr *assets.Manager, vertexName, fragmentName string) (*Program, error) {
	vs, vsrc, err := mgr.LoadWithSource(vertexName)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", vertexName, err)
	}
	fs, fsrc, err := mgr.LoadWithSource(fragmentName)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", fragmentName, err)
	}

	id, err := CompileProgram(string(vs), string(fs))
	if err != nil {
		return nil, fmt.Errorf("compile %s+%s: %w", vertexName, fragmentName, err)
	}

	logger.Debug("shader program linked",
		zap.Uint32("id", id),
		zap.String("vertex", vsrc),
		zap.String("fragment", fsrc))

	return &Program{
		id:       id,
		vertex:   vertexName,
		fragment: fragmentName,
		uniforms: make(map[string]int32),
	}, nil
}

// Reload recompiles the program from the manager. On failure the old program
// stays active and the error is returned.
func (p *Program) Reload(mgr *assets.Manager) error {
	mgr.Invalidate(p.vertex)
	mgr.Invalidate(p.fragment)

	next, err := Load(mgr, p.vertex, p.fragment)
	if err != nil {
		return err
	}
	gl.DeleteProgram(p.id)
	p.id = next.id
	p.uniforms = next.uniforms
	return nil
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Location returns the cached uniform location, -1 if inactive.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.Location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// SetVec3 uploads a vec3.
func (p *Program) SetVec3(name string, v [3]float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

// SetVec4 uploads a vec4.
func (p *Program) SetVec4(name string, v math.Vec4) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

// SetFloat uploads a float.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetInt uploads an int.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

// SetBool uploads a bool as an int.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
