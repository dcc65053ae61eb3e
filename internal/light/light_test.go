package light

import (
	"math"
	"testing"

	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/prim"
)

type fakeShadowCaster struct{ occluded bool }

func (f fakeShadowCaster) AnyHitBefore(ray prim.Ray, maxT float64) bool { return f.occluded }

func TestSunPerpendicularGivesZeroDiffuse(t *testing.T) {
	sun := &Sun{Direction: prim.Vector3{Y: -1}, Intensity: 1, SpecStrength: 0}
	hit := geometry.Hit{Normal: prim.Vector3{Z: 1}, NearPoint: prim.Vector3{}}
	ray := prim.NewRay(prim.Vector3{Z: 5}, prim.Vector3{Z: -1})

	sh := sun.Shading(ray, hit, fakeShadowCaster{})
	if sh.Diffuse != 0 {
		t.Errorf("Diffuse = %v, want 0 (sun perpendicular to surface)", sh.Diffuse)
	}
}

func TestSunShadowAppliesCoefficient(t *testing.T) {
	sun := &Sun{Direction: prim.Vector3{Y: -1}, Intensity: 1, ShadowCoefficient: 0.5}
	hit := geometry.Hit{Normal: prim.Vector3{Y: 1}, NearPoint: prim.Vector3{}}
	ray := prim.NewRay(prim.Vector3{Y: 5}, prim.Vector3{Y: -1})

	lit := sun.Shading(ray, hit, fakeShadowCaster{occluded: false})
	shadowed := sun.Shading(ray, hit, fakeShadowCaster{occluded: true})

	if lit.Diffuse <= 0 {
		t.Fatalf("lit.Diffuse = %v, want > 0", lit.Diffuse)
	}
	if diff := math.Abs(shadowed.Diffuse - lit.Diffuse*0.5); diff > 1e-9 {
		t.Errorf("shadowed.Diffuse = %v, want %v", shadowed.Diffuse, lit.Diffuse*0.5)
	}
}

func TestPointLightAttenuatesWithDistance(t *testing.T) {
	p := &Point{Position: prim.Vector3{Y: 10}, MaxDistance: 100, Intensity: 4, SpecStrength: 0}
	hit := geometry.Hit{Normal: prim.Vector3{Y: 1}, NearPoint: prim.Vector3{}}
	ray := prim.NewRay(prim.Vector3{Y: 10}, prim.Vector3{Y: -1})

	sh := p.Shading(ray, hit, fakeShadowCaster{})
	want := 4.0 / (10.0 * 10.0)
	if diff := math.Abs(sh.Intensity - want); diff > 1e-9 {
		t.Errorf("Intensity = %v, want %v", sh.Intensity, want)
	}
}

func TestPointLightBeyondMaxDistanceContributesNothing(t *testing.T) {
	p := &Point{Position: prim.Vector3{Y: 1000}, MaxDistance: 5, Intensity: 1}
	hit := geometry.Hit{Normal: prim.Vector3{Y: 1}, NearPoint: prim.Vector3{}}
	ray := prim.NewRay(prim.Vector3{}, prim.Vector3{Y: 1})

	sh := p.Shading(ray, hit, fakeShadowCaster{})
	if sh != (Shading{}) {
		t.Errorf("Shading() = %+v, want zero value beyond max distance", sh)
	}
}
