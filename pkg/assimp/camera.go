package assimp

import (
	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// Camera is a view of one camera. Positions and directions are relative
// to the node with the same name.
type Camera struct {
	o *owner
	p *abi.Camera
}

func (c Camera) raw() *abi.Camera {
	c.o.check()
	return c.p
}

// Name is the name of the node that places the camera.
func (c Camera) Name() string { return c.raw().Name.String() }

// Position is the eye position in node space.
func (c Camera) Position() math.Vec3 { return c.raw().Position.Vec3() }

// Up is the up vector in node space.
func (c Camera) Up() math.Vec3 { return c.raw().Up.Vec3() }

// LookAt is the viewing direction in node space.
func (c Camera) LookAt() math.Vec3 { return c.raw().LookAt.Vec3() }

// ClipPlaneNear is the distance of the near clipping plane.
func (c Camera) ClipPlaneNear() float32 { return c.raw().ClipPlaneNear }

// ClipPlaneFar is the distance of the far clipping plane.
func (c Camera) ClipPlaneFar() float32 { return c.raw().ClipPlaneFar }

// HorizontalFOV is half the horizontal field of view, in radians.
func (c Camera) HorizontalFOV() float32 {
	return c.raw().HorizontalFOV
}

// Aspect is width/height, or 0 when the file left it unspecified.
func (c Camera) Aspect() float32 {
	return c.raw().Aspect
}

// ViewMatrix returns the camera's view matrix in its node's space.
func (c Camera) ViewMatrix() math.Mat4 {
	r := c.raw()
	eye := r.Position.Vec3()
	return math.LookAt(eye, eye.Add(r.LookAt.Vec3()), r.Up.Vec3())
}
