// Package world holds the mutable scene state shared by the render loop and
// the debug panel, and the fixed traversal that turns it into draw calls.
package world

import (
	"github.com/Faultbox/primscene/internal/engine/camera"
	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/pkg/math"
)

// Options are the rasterization and display toggles.
type Options struct {
	Wireframe       bool
	DepthTest       bool
	BackfaceCulling bool
	ShowLights      bool
	Animate         bool
}

// DefaultOptions returns solid rendering with depth test on.
func DefaultOptions() Options {
	return Options{DepthTest: true, ShowLights: true}
}

// Object is one mesh placed in the platform frame.
type Object struct {
	Name      string
	Kind      model.Kind
	Color     [3]float32
	Material  lighting.Material
	Translate math.Vec3
	Scale     math.Vec3
}

// World is the full state of one running preset.
type World struct {
	Preset  string
	Objects []Object
	Lights  *lighting.Rig
	Camera  *camera.OrbitCamera
	Options Options

	// Time counts animated frames.
	Time uint64
}

// orbitStep is the camera yaw added per animated frame, in degrees.
const orbitStep = 0.25

// Advance moves the world one frame forward.
func (w *World) Advance() {
	if !w.Options.Animate {
		return
	}
	w.Time++
	w.Camera.Theta += orbitStep
	if w.Camera.Theta >= 360 {
		w.Camera.Theta -= 360
	}
}
