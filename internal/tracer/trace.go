package tracer

import (
	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/prim"
)

// TraceRay implements the pseudocontract in spec §4.6: find the nearest
// hit, shade it (ambient + per-light), then recurse into reflection
// and/or refraction while the depth budget allows. Depth 0 is the
// primary ray.
func (s *Scene) TraceRay(ray prim.Ray, depth int) prim.Color {
	obj, hit, ok := s.nearestHit(ray)
	if !ok {
		return s.Skybox.RayColor(ray)
	}
	return s.shadeHit(obj, ray, hit, depth)
}

func (s *Scene) shadeHit(obj geometry.SceneObject, ray prim.Ray, hit geometry.Hit, depth int) prim.Color {
	mat := obj.Material()
	base := mat.Texture.At(hit.UV)

	shading := s.ambientPlusLights(ray, hit)
	color := base.Mul(prim.ColorFromVector(shading))

	// Additive self-illumination (SPEC_FULL supplement): emissivity lets
	// a material glow regardless of incident light.
	if mat.Emissivity > 0 {
		color = color.Add(base.Scale(mat.Emissivity))
	}

	r := mat.Reflectiveness
	t := mat.Transparency
	eta := mat.IOR
	const eps = geometry.Epsilon

	canRecurse := depth < s.Options.MaxRayDepth

	if t > eps && canRecurse {
		refracted := s.refractedColor(obj, ray, hit, eta, depth)

		if r > eps {
			reflectRay := ray.Reflect(hit.NearPoint.Add(hit.Normal.Scale(eps)), hit.Normal)
			reflected := s.TraceRay(reflectRay, depth+1)
			w := prim.Clamp(1+ray.Direction.Dot(hit.Normal), 0, 1)
			refracted = refracted.Lerp(reflected, w)
		}

		color = color.Lerp(refracted, t)
	} else if r > eps && canRecurse {
		reflectRay := ray.Reflect(hit.NearPoint.Add(hit.Normal.Scale(eps)), hit.Normal)
		reflected := s.TraceRay(reflectRay, depth+1)
		color = color.Lerp(reflected, r)
	}

	return color
}

// ambientPlusLights sums the scene's ambient term and every light's
// contribution in linear [0,1]-scaled color space (spec §4.6 step 3).
func (s *Scene) ambientPlusLights(ray prim.Ray, hit geometry.Hit) prim.Vector3 {
	accum := s.Options.Ambient.Vector()

	for _, l := range s.Lights {
		sh := l.Shading(ray, hit, s)
		lightColor := l.Color().Vector()
		term := lightColor.Scale(sh.Diffuse).Add(lightColor.Scale(sh.Specular * l.SpecularStrength())).Scale(sh.Intensity)
		accum = accum.Add(term)
	}

	return accum
}

// refractedColor implements spec §4.6 step 6's refraction branch. obj is
// the object hit was resolved against; re-entering it along the
// refracted direction recovers its exit surface.
func (s *Scene) refractedColor(obj geometry.SceneObject, ray prim.Ray, hit geometry.Hit, eta float64, depth int) prim.Color {
	const eps = geometry.Epsilon

	surfaceColor := func() prim.Color {
		mat := obj.Material()
		base := mat.Texture.At(hit.UV)
		return base.Mul(prim.ColorFromVector(s.ambientPlusLights(ray, hit)))
	}

	if eta == 1 {
		continued := prim.NewRay(hit.FarPoint, ray.Direction)
		return s.TraceRay(continued, depth+1)
	}

	r1, ok := ray.Refract(hit.Normal, 1, eta)
	if !ok {
		// Total internal reflection entering the surface: treat it as
		// opaque for this bounce (spec §7).
		return surfaceColor()
	}

	entryOrigin := hit.NearPoint.Sub(hit.Normal.Scale(eps))
	internal := prim.NewRay(entryOrigin, r1)

	exitHit, ok := obj.Intersect(internal)
	if !ok {
		// Degenerate (grazing) case: the original hit's far point is the
		// best available exit estimate.
		exitHit = geometry.Hit{FarPoint: hit.FarPoint, Normal: hit.Normal.Neg()}
	}

	r2, ok := internal.Refract(exitHit.Normal, eta, 1)
	if !ok {
		// Total internal reflection on the way out: same fallback.
		return surfaceColor()
	}

	exitRay := prim.NewRay(exitHit.FarPoint.Add(r2.Scale(eps)), r2)
	return s.TraceRay(exitRay, depth+1)
}
