package model

import "fmt"

// Kind identifies one of the meshes the scene can draw.
type Kind int

const (
	KindCube Kind = iota
	KindCylinder
	KindTorus
	KindSphere
	KindModel
)

// Kinds lists every mesh kind in upload order.
var Kinds = []Kind{KindCube, KindCylinder, KindTorus, KindSphere, KindModel}

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindTorus:
		return "torus"
	case KindSphere:
		return "sphere"
	case KindModel:
		return "model"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitives builds the generated meshes with the default tessellation.
// The model mesh is loaded separately.
func Primitives() map[Kind]*Mesh {
	return map[Kind]*Mesh{
		KindCube:     Cube(),
		KindCylinder: Cylinder(DefaultCylinderSegments),
		KindTorus:    Torus(TorusRadius, TorusTubeRadius, DefaultTorusRadialSegs, DefaultTorusTubeSegs),
		KindSphere:   Sphere(DefaultSphereSlices, DefaultSphereStacks),
	}
}
