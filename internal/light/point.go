package light

import (
	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/prim"
)

// Meter is the attenuation unit from spec §4.3: intensity falls off as
// base / (dist/Meter)^2.
const Meter = 1.0

// Point is an isotropic point light with inverse-square attenuation and
// a hard cutoff distance.
type Point struct {
	Position    prim.Vector3
	MaxDistance float64

	ColorValue   prim.Color
	Intensity    float64
	SpecPower    int
	SpecStrength float64
}

func (p *Point) Color() prim.Color         { return p.ColorValue }
func (p *Point) BaseIntensity() float64    { return p.Intensity }
func (p *Point) SpecularPower() int        { return p.SpecPower }
func (p *Point) SpecularStrength() float64 { return p.SpecStrength }

func (p *Point) Shading(ray prim.Ray, hit geometry.Hit, scene ShadowCaster) Shading {
	return pointShading(p.Position, p.MaxDistance, p.Intensity, p.SpecPower, ray, hit, scene)
}

// pointShading implements spec §4.3's Point light contract and is
// reused by Area, which evaluates it once per sample.
func pointShading(position prim.Vector3, maxDistance, baseIntensity float64, specPower int, ray prim.Ray, hit geometry.Hit, scene ShadowCaster) Shading {
	lVec := position.Sub(hit.NearPoint)
	dist := lVec.Length()
	if dist > maxDistance {
		// Whole-light interpretation of spec §9's open question: beyond
		// the cutoff the light contributes nothing at all.
		return Shading{}
	}
	l := lVec.ScaleDiv(dist)

	diffuse := max0(hit.Normal.Dot(l))
	specular := blinnSpecular(hit.Normal, l, ray.Direction, specPower)

	scaled := dist / Meter
	intensity := baseIntensity / (scaled * scaled)

	shadowRay := prim.NewRay(shadowOrigin(hit), l)
	if scene.AnyHitBefore(shadowRay, dist) {
		diffuse = 0
		specular = 0
	}

	return Shading{Diffuse: diffuse, Specular: specular, Intensity: intensity}
}
