// Package lighting holds the Phong light and material records edited by the
// debug panel and flattened into shader uniforms each frame.
package lighting

import (
	"errors"
	"fmt"

	"github.com/Faultbox/primscene/pkg/math"
)

// MaxLights is the size of the light array declared in the fragment shader.
const MaxLights = 8

// NoSpot is the aperture value that disables the spot cone.
const NoSpot = 180

// ErrTooManyLights is returned when a rig would exceed MaxLights.
var ErrTooManyLights = errors.New("too many lights")

// Light is one light source. Position is in world coordinates; W selects a
// positional (1) or directional (0) light.
type Light struct {
	Name     string     `yaml:"name"`
	Enabled  bool       `yaml:"enabled"`
	Position math.Vec4  `yaml:"position"`
	Ambient  [3]float32 `yaml:"ambient"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
	Axis     math.Vec3  `yaml:"axis"`     // spot direction, world space
	Aperture float32    `yaml:"aperture"` // degrees, NoSpot disables the cone
	Cutoff   float32    `yaml:"cutoff"`   // spot falloff exponent
}

// White returns a white positional light at the given position.
func White(pos math.Vec4) Light {
	return Light{
		Name:     "white",
		Enabled:  true,
		Position: pos,
		Ambient:  [3]float32{0.2, 0.2, 0.2},
		Diffuse:  [3]float32{0.7, 0.7, 0.7},
		Specular: [3]float32{1, 1, 1},
		Axis:     math.Vec3{X: 0, Y: 0, Z: -1},
		Aperture: NoSpot,
		Cutoff:   10,
	}
}

// IsSpot reports whether the light has a cone.
func (l *Light) IsSpot() bool {
	return !l.Position.IsDirectional() && l.Aperture < NoSpot
}

// Kind returns a short description used by the panel.
func (l *Light) Kind() string {
	switch {
	case l.Position.IsDirectional():
		return "directional"
	case l.IsSpot():
		return "spot"
	default:
		return "point"
	}
}

// Clamp keeps colors in 0..1 and the aperture in 0..NoSpot.
func (l *Light) Clamp() {
	for i := 0; i < 3; i++ {
		l.Ambient[i] = clamp01(l.Ambient[i])
		l.Diffuse[i] = clamp01(l.Diffuse[i])
		l.Specular[i] = clamp01(l.Specular[i])
	}
	if l.Aperture < 0 {
		l.Aperture = 0
	}
	if l.Aperture > NoSpot {
		l.Aperture = NoSpot
	}
	if l.Cutoff < 0 {
		l.Cutoff = 0
	}
}

// Rig is the ordered set of lights of a scene.
type Rig struct {
	Lights []Light
}

// NewRig creates a rig from the given lights.
func NewRig(lights ...Light) (*Rig, error) {
	if len(lights) > MaxLights {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyLights, len(lights), MaxLights)
	}
	r := &Rig{Lights: make([]Light, 0, MaxLights)}
	r.Lights = append(r.Lights, lights...)
	return r, nil
}

// Len returns the number of lights.
func (r *Rig) Len() int {
	return len(r.Lights)
}

// Add appends a light. Returns ErrTooManyLights if the rig is full.
func (r *Rig) Add(l Light) error {
	if len(r.Lights) >= MaxLights {
		return ErrTooManyLights
	}
	r.Lights = append(r.Lights, l)
	return nil
}

// Remove deletes the light at index i. The last light cannot be removed.
func (r *Rig) Remove(i int) bool {
	if i < 0 || i >= len(r.Lights) || len(r.Lights) <= 1 {
		return false
	}
	r.Lights = append(r.Lights[:i], r.Lights[i+1:]...)
	return true
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
