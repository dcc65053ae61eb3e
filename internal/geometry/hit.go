// Package geometry implements the L2 primitives: plane, sphere, AABB,
// and triangulated mesh, each returning a Hit for a ray (spec §3, §4.1).
package geometry

import (
	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/texture"
)

// Epsilon is the intersection and offset-bias tolerance used throughout
// the geometry and shading pipeline (spec §4.1, §6).
const Epsilon = 1e-11

// Hit is the result of a single primitive intersection. The normal is
// oriented toward the incoming ray.
type Hit struct {
	Normal prim.Vector3

	NearT     float64
	NearPoint prim.Vector3

	FarT     float64
	FarPoint prim.Vector3

	UV texture.UV
}

// SceneObject is implemented by every intersectable scene member: it
// can test a ray for intersection and exposes the material to shade it
// with (spec §3 Scene object).
type SceneObject interface {
	Intersect(ray prim.Ray) (Hit, bool)
	Material() *material.Material
}

// faceNormal orients n to face against the ray direction, flipping it
// if necessary — used by two-sided primitives (spec §3: "two-sided
// primitives flip it").
func faceNormal(n, rayDir prim.Vector3) prim.Vector3 {
	if n.Dot(rayDir) > 0 {
		return n.Neg()
	}
	return n
}
