// Package camera provides the orbit camera used to view the scene.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/primscene/pkg/math"
)

// Projection selects the projection matrix kind.
type Projection int

const (
	Ortho Projection = iota
	Perspective
)

// String returns the projection name shown in the panel.
func (p Projection) String() string {
	switch p {
	case Ortho:
		return "ortho"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// DefaultVPDistance is the ortho half-height of the view volume.
const DefaultVPDistance = 4

// OrbitCamera orbits around At. The eye is expressed in spherical
// coordinates: Theta is the yaw around Y, Phi the pitch above the XZ plane,
// both in degrees.
type OrbitCamera struct {
	At       math.Vec3
	Up       math.Vec3
	Distance float32
	Theta    float32
	Phi      float32

	Projection Projection
	Fovy       float32 // degrees
	Near       float32
	Far        float32
	VPDistance float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPhi      float32
	MaxPhi      float32

	// Sensitivity
	DragSensitivity float32 // degrees per pixel
	ZoomSensitivity float32
}

// New creates a perspective orbit camera looking at the origin.
func New() *OrbitCamera {
	return &OrbitCamera{
		Up:              math.Vec3{X: 0, Y: 1, Z: 0},
		Distance:        10,
		Theta:           30,
		Phi:             25,
		Projection:      Perspective,
		Fovy:            45,
		Near:            0.1,
		Far:             100,
		VPDistance:      DefaultVPDistance,
		MinDistance:     1,
		MaxDistance:     60,
		MinPhi:          -89,
		MaxPhi:          89,
		DragSensitivity: 0.4,
		ZoomSensitivity: 0.1,
	}
}

// Eye returns the camera position in world space.
func (c *OrbitCamera) Eye() math.Vec3 {
	theta := math.Radians(c.Theta)
	phi := math.Radians(c.Phi)
	return math.Vec3{
		X: c.At.X + c.Distance*math32.Cos(phi)*math32.Sin(theta),
		Y: c.At.Y + c.Distance*math32.Sin(phi),
		Z: c.At.Z + c.Distance*math32.Cos(phi)*math32.Cos(theta),
	}
}

// SetEye places the camera at eye, keeping At.
func (c *OrbitCamera) SetEye(eye math.Vec3) {
	d := eye.Sub(c.At)
	c.Distance = d.Length()
	if c.Distance == 0 {
		return
	}
	c.Phi = math32.Asin(d.Y/c.Distance) * 180 / math32.Pi
	c.Theta = math32.Atan2(d.X, d.Z) * 180 / math32.Pi
}

// ViewMatrix returns LookAt(eye, at, up).
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye(), c.At, c.Up)
}

// ProjectionMatrix returns the projection for the given viewport aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if c.Projection == Ortho {
		vp := c.VPDistance
		return math.Ortho(-vp*aspect, vp*aspect, -vp, vp, -3*vp, 3*vp)
	}
	return math.Perspective(math.Radians(c.Fovy), aspect, c.Near, c.Far)
}

// HandleDrag orbits the camera by a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Theta -= deltaX * c.DragSensitivity
	c.Phi += deltaY * c.DragSensitivity
	c.clamp()
}

// Drag turns absolute cursor positions into per-frame deltas. Update must be
// called every frame, hovered or not, so a drag never starts from a stale
// position.
type Drag struct {
	lastX, lastY float32
	seen         bool
}

// Update records the cursor and returns its movement since the previous
// call. The first call returns a zero delta.
func (d *Drag) Update(x, y float32) (dx, dy float32) {
	if d.seen {
		dx, dy = x-d.lastX, y-d.lastY
	}
	d.lastX, d.lastY, d.seen = x, y, true
	return dx, dy
}

// HandleZoom updates distance based on scroll wheel delta. In ortho mode the
// view volume shrinks instead.
func (c *OrbitCamera) HandleZoom(delta float32) {
	if c.Projection == Ortho {
		c.VPDistance -= delta * c.VPDistance * c.ZoomSensitivity
		if c.VPDistance < 0.5 {
			c.VPDistance = 0.5
		}
		if c.VPDistance > 40 {
			c.VPDistance = 40
		}
		return
	}
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

// Validate checks the projection parameters.
func (c *OrbitCamera) Validate() error {
	if c.Projection == Perspective {
		if c.Fovy <= 0 || c.Fovy >= 180 {
			return fmt.Errorf("fovy %.1f out of range", c.Fovy)
		}
		if c.Near <= 0 || c.Far <= c.Near {
			return fmt.Errorf("invalid clip planes near=%.3f far=%.3f", c.Near, c.Far)
		}
	}
	if c.VPDistance <= 0 {
		return fmt.Errorf("vp distance must be positive, got %.3f", c.VPDistance)
	}
	return nil
}

func (c *OrbitCamera) clamp() {
	if c.Phi < c.MinPhi {
		c.Phi = c.MinPhi
	}
	if c.Phi > c.MaxPhi {
		c.Phi = c.MaxPhi
	}
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
	c.Theta = math32.Mod(c.Theta, 360)
}
