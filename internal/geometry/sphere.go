package geometry

import (
	"math"

	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/texture"
)

// Sphere is a geometric sphere defined by center and radius.
type Sphere struct {
	Center prim.Vector3
	Radius float64
	Mat    material.Material
}

func NewSphere(center prim.Vector3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

func (s *Sphere) Material() *material.Material { return &s.Mat }

// Intersect implements the classic geometric sphere test (spec §4.1).
func (s *Sphere) Intersect(ray prim.Ray) (Hit, bool) {
	l := s.Center.Sub(ray.Origin)
	tCa := l.Dot(ray.Direction)
	if tCa < 0 {
		return Hit{}, false
	}

	d2 := l.Dot(l) - tCa*tCa
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return Hit{}, false
	}

	tHc := math.Sqrt(r2 - d2)
	t0 := tCa - tHc
	t1 := tCa + tHc
	if t1 <= Epsilon {
		return Hit{}, false
	}
	if t0 <= Epsilon {
		t0 = t1
	}

	nearPoint := ray.Along(t0)
	farPoint := ray.Along(t1)
	normal := nearPoint.Sub(s.Center).ScaleDiv(s.Radius)
	normal = faceNormal(normal, ray.Direction)

	u := 0.5 + math.Atan2(normal.X, normal.Z)/(2*math.Pi)
	v := 0.5 - math.Asin(prim.Clamp(normal.Y, -1, 1))/math.Pi

	return Hit{
		Normal:    normal,
		NearT:     t0,
		NearPoint: nearPoint,
		FarT:      t1,
		FarPoint:  farPoint,
		UV:        texture.UV{U: float32(u), V: float32(v)},
	}, true
}
