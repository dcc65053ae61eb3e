package geometry

import "github.com/voximity/raytracer-go/internal/prim"

// triangleHit is the raw result of a Möller–Trumbore test: the ray
// parameter and the two barycentric coordinates (u, v); the third
// barycentric weight is w = 1 - u - v.
type triangleHit struct {
	T, U, V float64
}

// intersectTriangle implements the Möller–Trumbore algorithm (spec
// §4.1). v0/v1/v2 are the triangle's vertices in world space.
func intersectTriangle(ray prim.Ray, v0, v1, v2 prim.Vector3) (triangleHit, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	h := ray.Direction.Cross(e2)
	a := e1.Dot(h)
	if a > -Epsilon && a < Epsilon {
		return triangleHit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return triangleHit{}, false
	}

	q := s.Cross(e1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return triangleHit{}, false
	}

	t := f * e2.Dot(q)
	if t <= Epsilon {
		return triangleHit{}, false
	}

	return triangleHit{T: t, U: u, V: v}, true
}

// barycentric interpolates a value given at the triangle's three
// vertices using weights (1-u-v, u, v).
func barycentric(a, b, c prim.Vector3, u, v float64) prim.Vector3 {
	w := 1 - u - v
	return a.Scale(w).Add(b.Scale(u)).Add(c.Scale(v))
}
