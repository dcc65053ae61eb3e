package geometry

import (
	"math"

	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/texture"
)

// Plane is an infinite plane defined by a point on it and a unit normal.
type Plane struct {
	Origin prim.Vector3
	Normal prim.Vector3
	// UVWrap scales world coordinates to UV space before wrapping with
	// fract (spec §4.1).
	UVWrap float64
	Mat    material.Material
}

// NewPlane builds a plane with the default UV wrap of 1 world unit per
// texture tile.
func NewPlane(origin, normal prim.Vector3, mat material.Material) *Plane {
	return &Plane{Origin: origin, Normal: normal.Normalize(), UVWrap: 1.0, Mat: mat}
}

func (p *Plane) Material() *material.Material { return &p.Mat }

func (p *Plane) Intersect(ray prim.Ray) (Hit, bool) {
	d := p.Normal.Dot(ray.Direction)
	if math.Abs(d) <= Epsilon {
		return Hit{}, false
	}

	t := p.Origin.Sub(ray.Origin).Dot(p.Normal) / d
	if t <= 0 {
		return Hit{}, false
	}

	point := ray.Along(t)
	normal := p.Normal
	if d > 0 {
		normal = normal.Neg()
	}

	wrap := p.UVWrap
	if wrap == 0 {
		wrap = 1.0
	}

	var u, v float64
	if math.Abs(p.Normal.Z) < 1-Epsilon {
		u = prim.Fract(point.X / wrap)
		v = prim.Fract(point.Z / wrap)
	}

	return Hit{
		Normal:    normal,
		NearT:     t,
		NearPoint: point,
		FarT:      t,
		FarPoint:  point,
		UV:        texture.UV{U: float32(u), V: float32(v)},
	}, true
}
