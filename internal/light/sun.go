package light

import (
	"math"

	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/prim"
)

// Sun is a directional light with no distance attenuation.
type Sun struct {
	// Direction is the direction the light travels (e.g. (0, -1, 0) for
	// straight-down sunlight).
	Direction prim.Vector3

	ColorValue        prim.Color
	Intensity         float64
	SpecPower         int
	SpecStrength      float64
	ShadowCoefficient float64 // [0, 1]: multiplies diffuse/specular when occluded
}

func (s *Sun) Color() prim.Color          { return s.ColorValue }
func (s *Sun) BaseIntensity() float64     { return s.Intensity }
func (s *Sun) SpecularPower() int         { return s.SpecPower }
func (s *Sun) SpecularStrength() float64  { return s.SpecStrength }

func (s *Sun) Shading(ray prim.Ray, hit geometry.Hit, scene ShadowCaster) Shading {
	l := s.Direction.Neg().Normalize()

	diffuse := max0(hit.Normal.Dot(l))
	specular := blinnSpecular(hit.Normal, l, ray.Direction, s.SpecPower)

	shadowRay := prim.NewRay(shadowOrigin(hit), l)
	if scene.AnyHitBefore(shadowRay, math.Inf(1)) {
		diffuse *= s.ShadowCoefficient
		specular *= s.ShadowCoefficient
	}

	return Shading{Diffuse: diffuse, Specular: specular, Intensity: s.Intensity}
}

func max0(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}
