package lighting

import (
	"fmt"

	"github.com/Faultbox/primscene/pkg/math"
)

// Uniform names shared with shader.frag.
const (
	UniformLightCount = "uNLights"
	UniformLights     = "uLights"
	UniformMaterial   = "uMaterial"
)

// LightUniforms is one light in the form the shader consumes: position and
// axis already in eye coordinates.
type LightUniforms struct {
	Enabled  bool
	Ambient  [3]float32
	Diffuse  [3]float32
	Specular [3]float32
	Position math.Vec4
	Axis     [3]float32
	Aperture float32
	Cutoff   float32
}

// LightUniformNames holds the uniform names of one array element.
type LightUniformNames struct {
	Enabled, Ambient, Diffuse, Specular, Position, Axis, Aperture, Cutoff string
}

var lightNames = func() [MaxLights]LightUniformNames {
	var names [MaxLights]LightUniformNames
	for i := range names {
		p := fmt.Sprintf("%s[%d].", UniformLights, i)
		names[i] = LightUniformNames{
			Enabled:  p + "enabled",
			Ambient:  p + "ambient",
			Diffuse:  p + "diffuse",
			Specular: p + "specular",
			Position: p + "position",
			Axis:     p + "axis",
			Aperture: p + "aperture",
			Cutoff:   p + "cutoff",
		}
	}
	return names
}()

// LightNames returns the uniform names for light i (0 <= i < MaxLights).
func LightNames(i int) LightUniformNames {
	return lightNames[i]
}

// MaterialUniformNames holds the uniform names of the material struct.
type MaterialUniformNames struct {
	Ka, Kd, Ks, Shininess string
}

// MaterialNames returns the uniform names of uMaterial.
func MaterialNames() MaterialUniformNames {
	return MaterialUniformNames{
		Ka:        UniformMaterial + ".Ka",
		Kd:        UniformMaterial + ".Kd",
		Ks:        UniformMaterial + ".Ks",
		Shininess: UniformMaterial + ".shininess",
	}
}

// EyeSpace converts the rig to shader form using the view matrix.
// Positional lights are transformed as points, directional lights and spot
// axes as directions.
func (r *Rig) EyeSpace(view math.Mat4) []LightUniforms {
	out := make([]LightUniforms, len(r.Lights))
	for i := range r.Lights {
		l := &r.Lights[i]
		pos := view.MulVec4(l.Position)
		out[i] = LightUniforms{
			Enabled:  l.Enabled,
			Ambient:  l.Ambient,
			Diffuse:  l.Diffuse,
			Specular: l.Specular,
			Position: pos,
			Axis:     view.TransformDirection(l.Axis.Array()),
			Aperture: l.Aperture,
			Cutoff:   l.Cutoff,
		}
	}
	return out
}
