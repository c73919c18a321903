package model

import "github.com/chewxy/math32"

// Default tessellation used by the scene.
const (
	DefaultCylinderSegments = 32
	DefaultTorusRadialSegs  = 32
	DefaultTorusTubeSegs    = 16
	DefaultSphereSlices     = 24
	DefaultSphereStacks     = 16

	TorusRadius     = 0.4
	TorusTubeRadius = 0.1
)

// Cube returns a unit cube centered at the origin (side 1) with flat
// per-face normals.
func Cube() *Mesh {
	type face struct {
		n, u, v [3]float32
	}
	faces := []face{
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
	}

	var b builder
	for _, f := range faces {
		corner := func(su, sv float32) [3]float32 {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = 0.5*f.n[i] + 0.5*su*f.u[i] + 0.5*sv*f.v[i]
			}
			return p
		}
		i0 := b.vertex(corner(-1, -1), f.n)
		i1 := b.vertex(corner(1, -1), f.n)
		i2 := b.vertex(corner(1, 1), f.n)
		i3 := b.vertex(corner(-1, 1), f.n)
		b.quad(i0, i1, i2, i3)
	}
	return b.mesh("cube")
}

// Cylinder returns a capped cylinder of radius 0.5 and height 1 centered at
// the origin, with its axis along Y.
func Cylinder(segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	const r, h = 0.5, 0.5

	var b builder
	ring := func(i int) (x, z float32) {
		theta := 2 * math32.Pi * float32(i) / float32(segments)
		return r * math32.Sin(theta), r * math32.Cos(theta)
	}

	// Side: one seam column is duplicated so normals stay continuous.
	base := uint32(len(b.vertices))
	for i := 0; i <= segments; i++ {
		x, z := ring(i)
		n := Normalize([3]float32{x, 0, z})
		b.vertex([3]float32{x, -h, z}, n)
		b.vertex([3]float32{x, h, z}, n)
	}
	for i := 0; i < segments; i++ {
		b0 := base + uint32(2*i)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		b.quad(b0, b1, t1, t0)
	}

	// Caps.
	for _, y := range []float32{h, -h} {
		n := [3]float32{0, 1, 0}
		if y < 0 {
			n = [3]float32{0, -1, 0}
		}
		center := b.vertex([3]float32{0, y, 0}, n)
		first := uint32(len(b.vertices))
		for i := 0; i <= segments; i++ {
			x, z := ring(i)
			b.vertex([3]float32{x, y, z}, n)
		}
		for i := 0; i < segments; i++ {
			p0 := first + uint32(i)
			p1 := p0 + 1
			if y > 0 {
				b.triangle(center, p0, p1)
			} else {
				b.triangle(center, p1, p0)
			}
		}
	}
	return b.mesh("cylinder")
}

// Torus returns a torus lying in the XZ plane, centered at the origin.
// radius is the ring radius, tubeRadius the radius of the tube.
func Torus(radius, tubeRadius float32, radialSegs, tubeSegs int) *Mesh {
	if radialSegs < 3 {
		radialSegs = 3
	}
	if tubeSegs < 3 {
		tubeSegs = 3
	}

	var b builder
	for j := 0; j <= radialSegs; j++ {
		u := 2 * math32.Pi * float32(j) / float32(radialSegs)
		center := [3]float32{radius * math32.Sin(u), 0, radius * math32.Cos(u)}
		for i := 0; i <= tubeSegs; i++ {
			v := 2 * math32.Pi * float32(i) / float32(tubeSegs)
			ring := radius + tubeRadius*math32.Cos(v)
			p := [3]float32{ring * math32.Sin(u), tubeRadius * math32.Sin(v), ring * math32.Cos(u)}
			b.vertex(p, Normalize(sub(p, center)))
		}
	}

	stride := uint32(tubeSegs + 1)
	for j := 0; j < radialSegs; j++ {
		for i := 0; i < tubeSegs; i++ {
			a := uint32(j)*stride + uint32(i)
			bb := a + stride
			c := bb + 1
			d := a + 1
			b.quad(a, bb, c, d)
		}
	}
	return b.mesh("torus")
}

// Sphere returns a UV sphere of radius 0.5 centered at the origin.
func Sphere(slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	const r = 0.5

	var b builder
	for s := 0; s <= stacks; s++ {
		phi := math32.Pi * float32(s) / float32(stacks)
		for t := 0; t <= slices; t++ {
			theta := 2 * math32.Pi * float32(t) / float32(slices)
			n := [3]float32{
				math32.Sin(phi) * math32.Sin(theta),
				math32.Cos(phi),
				math32.Sin(phi) * math32.Cos(theta),
			}
			b.vertex([3]float32{r * n[0], r * n[1], r * n[2]}, n)
		}
	}

	stride := uint32(slices + 1)
	for s := 0; s < stacks; s++ {
		for t := 0; t < slices; t++ {
			a := uint32(s)*stride + uint32(t)
			right := a + 1
			down := a + stride
			downRight := down + 1
			if s != stacks-1 {
				b.triangle(a, down, downRight)
			}
			if s != 0 {
				b.triangle(a, downRight, right)
			}
		}
	}
	return b.mesh("sphere")
}
