// Package light implements the L4 direct lighting models: sun
// (directional), point, and area lights (spec §3 Light, §4.3).
package light

import (
	"math"

	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/prim"
)

// ShadowCaster is the subset of scene behavior a light needs to cast
// shadow rays, without depending on the tracer package (which in turn
// depends on Light) — see spec §3 Light: "may cast shadow rays into the
// scene."
type ShadowCaster interface {
	// AnyHitBefore reports whether any scene object occludes the ray
	// before parameter maxT.
	AnyHitBefore(ray prim.Ray, maxT float64) bool
}

// Shading is the result of evaluating a light at a hit point: diffuse
// and specular weights, and an overall intensity multiplier. The
// caller combines them as
//
//	contribution = light_color * (diffuse + specular*specularStrength) * intensity
type Shading struct {
	Diffuse, Specular, Intensity float64
}

// Light is implemented by every light variant.
type Light interface {
	Color() prim.Color
	BaseIntensity() float64
	SpecularPower() int
	SpecularStrength() float64
	Shading(ray prim.Ray, hit geometry.Hit, scene ShadowCaster) Shading
}

// blinnSpecular computes max(0, n . normalize(L - rayDir))^power, the
// half-vector specular term from spec §4.3.
func blinnSpecular(normal, l, rayDir prim.Vector3, power int) float64 {
	h := l.Sub(rayDir).Normalize()
	s := math.Max(0, normal.Dot(h))
	return math.Pow(s, float64(power))
}

func shadowOrigin(hit geometry.Hit) prim.Vector3 {
	return hit.NearPoint.Add(hit.Normal.Scale(geometry.Epsilon))
}
