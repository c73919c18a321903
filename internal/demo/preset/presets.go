package preset

import (
	"github.com/Faultbox/primscene/internal/demo/world"
	"github.com/Faultbox/primscene/internal/engine/camera"
	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/pkg/math"
)

// classic reproduces the first demo: an ortho view from (0, VP/4, VP) and a
// single white light. The object color is the diffuse term and the red or
// green tint the specular one, which is how the first demo rendered.
func classic() (*world.World, error) {
	rig, err := lighting.NewRig(lighting.White(math.Vec4{0, 0, 10, 1}))
	if err != nil {
		return nil, err
	}

	cam := camera.New()
	cam.Projection = camera.Ortho
	cam.VPDistance = camera.DefaultVPDistance
	vp := cam.VPDistance
	cam.SetEye(math.Vec3{X: 0, Y: vp / 4, Z: vp})

	red, green := [3]float32{1, 0, 0}, [3]float32{0, 1, 0}
	return &world.World{
		Objects: objects(
			lighting.Material{Ka: red, Kd: PlatformColor, Ks: red, Shininess: 1},
			lighting.Material{Ka: red, Kd: CylinderColor, Ks: red, Shininess: 1},
			lighting.Material{Ka: red, Kd: CubeColor, Ks: red, Shininess: 1},
			lighting.Material{Ka: green, Kd: TorusColor, Ks: green, Shininess: 3},
			lighting.Material{Kd: ModelColor, Shininess: 0},
		),
		Lights:  rig,
		Camera:  cam,
		Options: world.DefaultOptions(),
	}, nil
}

func orbit() (*world.World, error) {
	l := lighting.White(math.Vec4{4, 6, 8, 1})
	rig, err := lighting.NewRig(l)
	if err != nil {
		return nil, err
	}
	opts := world.DefaultOptions()
	opts.Animate = true
	return &world.World{
		Objects: coloredObjects(0.6, 24),
		Lights:  rig,
		Camera:  perspectiveCamera(),
		Options: opts,
	}, nil
}

func triLight() (*world.World, error) {
	mk := func(name string, pos math.Vec4, c [3]float32) lighting.Light {
		l := lighting.White(pos)
		l.Name = name
		l.Ambient = scale3(c, 0.1)
		l.Diffuse = c
		l.Specular = c
		return l
	}
	rig, err := lighting.NewRig(
		mk("red", math.Vec4{5, 3, 0, 1}, [3]float32{1, 0, 0}),
		mk("green", math.Vec4{-2.5, 3, 4.33, 1}, [3]float32{0, 1, 0}),
		mk("blue", math.Vec4{-2.5, 3, -4.33, 1}, [3]float32{0, 0, 1}),
	)
	if err != nil {
		return nil, err
	}

	grey := lighting.Material{
		Ka:        [3]float32{0.2, 0.2, 0.2},
		Kd:        [3]float32{0.8, 0.8, 0.8},
		Ks:        [3]float32{0.5, 0.5, 0.5},
		Shininess: 32,
	}
	return &world.World{
		Objects: objects(grey, grey, grey, grey, grey),
		Lights:  rig,
		Camera:  perspectiveCamera(),
		Options: world.DefaultOptions(),
	}, nil
}

func sun() (*world.World, error) {
	l := lighting.White(math.Vec4{1, 2, 1, 0})
	l.Name = "sun"
	l.Ambient = [3]float32{0.25, 0.22, 0.2}
	l.Diffuse = [3]float32{1, 0.92, 0.8}
	l.Specular = [3]float32{1, 0.95, 0.9}
	rig, err := lighting.NewRig(l)
	if err != nil {
		return nil, err
	}

	cam := perspectiveCamera()
	cam.Phi = 35
	return &world.World{
		Objects: coloredObjects(0.3, 8),
		Lights:  rig,
		Camera:  cam,
		Options: world.DefaultOptions(),
	}, nil
}

func spot() (*world.World, error) {
	l := lighting.White(math.Vec4{0, 6, 0, 1})
	l.Name = "spot"
	l.Ambient = [3]float32{0.05, 0.05, 0.05}
	l.Diffuse = [3]float32{1, 1, 1}
	l.Axis = math.Vec3{X: 0, Y: -1, Z: 0}
	l.Aperture = 20
	l.Cutoff = 10
	rig, err := lighting.NewRig(l)
	if err != nil {
		return nil, err
	}

	return &world.World{
		Objects: coloredObjects(0.8, 48),
		Lights:  rig,
		Camera:  perspectiveCamera(),
		Options: world.DefaultOptions(),
	}, nil
}
