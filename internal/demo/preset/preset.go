// Package preset defines the five scene variants. Each preset differs only in
// its light rig, material constants and camera setup.
package preset

import (
	"fmt"

	"github.com/Faultbox/primscene/internal/demo/preset/names"
	"github.com/Faultbox/primscene/internal/demo/world"
	"github.com/Faultbox/primscene/internal/engine/camera"
	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/pkg/math"
)

// Object colors.
var (
	PlatformColor = [3]float32{0.66, 0.46, 0.28}
	CylinderColor = [3]float32{0.18, 0.55, 0.34}
	CubeColor     = [3]float32{0.64, 0.19, 0.19}
	TorusColor    = [3]float32{0.13, 0.61, 0}
	ModelColor    = [3]float32{1, 0.80, 0.86}
)

type builder func() (*world.World, error)

var builders = map[string]builder{
	names.Classic:  classic,
	names.Orbit:    orbit,
	names.TriLight: triLight,
	names.Sun:      sun,
	names.Spot:     spot,
}

// New builds a fresh world for the named preset.
func New(name string) (*world.World, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", names.ErrUnknownPreset, name)
	}
	w, err := b()
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	w.Preset = name
	return w, nil
}

// objects places the five meshes with the given materials, in draw order.
func objects(platform, cylinder, cube, torus, mdl lighting.Material) []world.Object {
	return []world.Object{
		{
			Name: "platform", Kind: model.KindCube, Color: PlatformColor, Material: platform,
			Scale: math.Vec3{X: 1, Y: 1, Z: 1},
		},
		{
			Name: "cylinder", Kind: model.KindCylinder, Color: CylinderColor, Material: cylinder,
			Translate: math.Vec3{X: 0.2, Y: 2.5, Z: -0.2}, Scale: math.Vec3{X: 0.2, Y: 4, Z: 0.2},
		},
		{
			Name: "cube", Kind: model.KindCube, Color: CubeColor, Material: cube,
			Translate: math.Vec3{X: -0.2, Y: 2.5, Z: -0.2}, Scale: math.Vec3{X: 0.2, Y: 4, Z: 0.2},
		},
		{
			Name: "torus", Kind: model.KindTorus, Color: TorusColor, Material: torus,
			Translate: math.Vec3{X: -0.2, Y: 1.3, Z: 0.2}, Scale: math.Vec3{X: 0.2, Y: 4, Z: 0.2},
		},
		{
			Name: "model", Kind: model.KindModel, Color: ModelColor, Material: mdl,
			Translate: math.Vec3{X: 0.2, Y: 0.5, Z: 0.2}, Scale: math.Vec3{X: 2, Y: 25, Z: 2},
		},
	}
}

// colored returns a material whose ambient and diffuse terms follow the
// object color.
func colored(c [3]float32, ks float32, shininess float32) lighting.Material {
	return lighting.Material{
		Ka:        scale3(c, 0.3),
		Kd:        c,
		Ks:        [3]float32{ks, ks, ks},
		Shininess: shininess,
	}
}

func scale3(c [3]float32, s float32) [3]float32 {
	return [3]float32{c[0] * s, c[1] * s, c[2] * s}
}

func perspectiveCamera() *camera.OrbitCamera {
	c := camera.New()
	c.Projection = camera.Perspective
	c.Fovy = 45
	c.Distance = 9
	c.Theta = 30
	c.Phi = 25
	return c
}

func coloredObjects(ks, shininess float32) []world.Object {
	return objects(
		colored(PlatformColor, ks, shininess),
		colored(CylinderColor, ks, shininess),
		colored(CubeColor, ks, shininess),
		colored(TorusColor, ks, shininess),
		colored(ModelColor, ks, shininess),
	)
}
