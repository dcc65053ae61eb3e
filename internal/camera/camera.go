// Package camera implements the L6 pinhole camera: a yaw/pitch
// orientation with a vertical field of view, producing one primary ray
// per pixel (spec §3 Camera, §4.5).
package camera

import (
	"math"

	"github.com/voximity/raytracer-go/internal/prim"
)

// Camera is a pinhole projection. FOV must be mutated through SetFOVDeg
// so the derived chf factor stays consistent; constructing the zero
// value directly leaves chf stale, so always go through New.
type Camera struct {
	VW, VH int
	Origin prim.Vector3
	Yaw    float64 // radians
	Pitch  float64 // radians

	fovDeg float64
	chf    float64 // tan((90 - fov/2) degrees in radians); recomputed on FOV change
}

// New builds a camera with the given viewport, origin, orientation and
// vertical FOV in degrees.
func New(vw, vh int, origin prim.Vector3, yaw, pitch, fovDeg float64) *Camera {
	c := &Camera{VW: vw, VH: vh, Origin: origin, Yaw: yaw, Pitch: pitch}
	c.SetFOVDeg(fovDeg)
	return c
}

// Default returns the spec's default camera: origin at the world
// origin, facing -Z, 90 degree vertical FOV, at a 4x4 viewport.
func Default() *Camera {
	return New(4, 4, prim.Vector3{}, 0, 0, 90)
}

// FOVDeg returns the camera's current vertical field of view in degrees.
func (c *Camera) FOVDeg() float64 { return c.fovDeg }

// SetFOVDeg sets the vertical FOV in degrees and recomputes chf (spec
// §3: "fov must be set through a setter so chf is kept consistent").
func (c *Camera) SetFOVDeg(fovDeg float64) {
	c.fovDeg = fovDeg
	c.chf = math.Tan((90 - fovDeg/2) * math.Pi / 180)
}

// PrimaryRay returns the world-space ray through pixel (x, y) in integer
// image space, per spec §4.5.
func (c *Camera) PrimaryRay(x, y int) prim.Ray {
	local := prim.Vector3{
		X: float64(x) - float64(c.VW)/2,
		Y: -(float64(y) - float64(c.VH)/2),
		Z: -float64(c.VH) / 2 * c.chf,
	}

	orientation := prim.EulerXYZ(-c.Pitch, c.Yaw, 0)
	direction := orientation.TransformVector(local).Normalize()

	return prim.NewRay(c.Origin, direction)
}
