package tracer

import (
	"math"
	"testing"
	"time"

	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/light"
	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/skybox"
	"github.com/voximity/raytracer-go/internal/texture"
)

// TestNearestHitMissReturnsSkyboxColor and TestNearestHitRedSphere cover
// scenario S1: a ray straight at a solid red sphere against the normal
// skybox returns ambient-modulated red, while a ray that misses returns
// the skybox color for that direction.
func TestNearestHitRedSphere(t *testing.T) {
	scene := NewScene()
	scene.Options.Ambient = prim.White
	scene.Objects = []geometry.SceneObject{
		geometry.NewSphere(prim.Vector3{Z: -3}, 1, material.Material{Texture: texture.Solid{Color: prim.NewColor(255, 0, 0)}, IOR: 1.3}),
	}

	ray := prim.NewRay(prim.Vector3{}, prim.Vector3{Z: -1})
	got := scene.TraceRay(ray, 0)
	want := prim.NewColor(255, 0, 0)
	if got != want {
		t.Errorf("TraceRay() = %v, want %v (ambient-white modulated red)", got, want)
	}
}

func TestNearestHitMissReturnsSkyboxColor(t *testing.T) {
	scene := NewScene() // default skybox is Normal{}
	scene.Objects = []geometry.SceneObject{
		geometry.NewSphere(prim.Vector3{Z: -3}, 1, material.Default()),
	}

	dir := prim.Vector3{X: 1, Y: 1, Z: -1}.Normalize()
	ray := prim.NewRay(prim.Vector3{}, dir)
	got := scene.TraceRay(ray, 0)
	want := prim.ColorFromNormal(dir)
	if got != want {
		t.Errorf("TraceRay() = %v, want %v (skybox color for a missed ray)", got, want)
	}
}

// TestAABBPerpendicularSunIsUnlit is scenario S2: a sun exactly
// perpendicular to a box's front face contributes nothing.
func TestAABBPerpendicularSunIsUnlit(t *testing.T) {
	scene := NewScene()
	scene.Options = Options{MaxRayDepth: 0, Ambient: prim.Black}
	scene.Objects = []geometry.SceneObject{
		geometry.NewAabb(prim.Vector3{Z: -5}, prim.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, material.Material{
			Texture: texture.Solid{Color: prim.White},
		}),
	}
	scene.Lights = []light.Light{
		&light.Sun{Direction: prim.Vector3{Y: -1}, Intensity: 1, SpecStrength: 0},
	}

	ray := prim.NewRay(prim.Vector3{}, prim.Vector3{Z: -1})
	got := scene.TraceRay(ray, 0)
	if got != prim.Black {
		t.Errorf("TraceRay() = %v, want black (sun perpendicular to the front face)", got)
	}
}

// TestGlassSpherePassthroughAtUnityIOR is scenario S4: a glass sphere
// with ior=1 bends nothing, so a ray through its center reaches whatever
// is directly behind it unchanged.
func TestGlassSpherePassthroughAtUnityIOR(t *testing.T) {
	scene := NewScene()
	scene.Options = Options{MaxRayDepth: 4, Ambient: prim.Black}
	scene.Skybox = skybox.Solid{Color: prim.NewColor(0, 0, 255)}
	scene.Objects = []geometry.SceneObject{
		geometry.NewSphere(prim.Vector3{}, 1, material.Material{
			Texture: texture.Solid{Color: prim.White}, Transparency: 1.0, IOR: 1.0,
		}),
	}

	ray := prim.NewRay(prim.Vector3{Z: 5}, prim.Vector3{Z: -1})
	got := scene.TraceRay(ray, 0)
	want := prim.NewColor(0, 0, 255)
	if got != want {
		t.Errorf("TraceRay() = %v, want %v (unbent passthrough to the skybox)", got, want)
	}
}

// TestShadowHalvesIntensity is scenario S6: a sun with shadows enabled
// and shadow_coefficient 0.5 halves a plane pixel sitting in a
// sphere's shadow, relative to the same plane lit directly.
//
// The sphere floats above the plane (center (0,2,-3), r=1) so the sun,
// straight overhead, casts its shadow onto (0,0,-3) without the sphere
// ever sitting between the camera and the plane. The camera sits off
// to the side so both the shadowed and the lit point are visible
// without the viewing ray itself grazing the sphere.
func TestShadowHalvesIntensity(t *testing.T) {
	scene := NewScene()
	scene.Options = Options{MaxRayDepth: 0, Ambient: prim.Black}
	plane := geometry.NewPlane(prim.Vector3{}, prim.Up, material.Material{
		Texture: texture.Solid{Color: prim.White},
	})
	scene.Objects = []geometry.SceneObject{
		plane,
		geometry.NewSphere(prim.Vector3{Y: 2, Z: -3}, 1, material.Default()),
	}
	scene.Lights = []light.Light{
		&light.Sun{Direction: prim.Vector3{Y: -1}, ColorValue: prim.White, Intensity: 1, SpecStrength: 0, ShadowCoefficient: 0.5},
	}

	viewpoint := prim.Vector3{X: 10, Y: 5, Z: -3}
	shadowedTarget := prim.Vector3{Z: -3}
	litTarget := prim.Vector3{X: 5, Z: -3}

	shadowed := prim.NewRay(viewpoint, shadowedTarget.Sub(viewpoint).Normalize())
	lit := prim.NewRay(viewpoint, litTarget.Sub(viewpoint).Normalize())

	shadowedColor := scene.TraceRay(shadowed, 0).Vector()
	litColor := scene.TraceRay(lit, 0).Vector()

	if litColor.X <= 0 {
		t.Fatalf("lit pixel is black, want a positive lit value to compare against")
	}
	if diff := math.Abs(shadowedColor.X - litColor.X*0.5); diff > 1.0/255 {
		t.Errorf("shadowed = %v, lit = %v; want shadowed ~= lit*0.5", shadowedColor.X, litColor.X)
	}
}

// TestZeroMaxDepthTerminatesDoubleMirror is property 11: with
// max_ray_depth=0, a scene of two facing mirrors renders a
// finite-intensity image instead of recursing forever.
func TestZeroMaxDepthTerminatesDoubleMirror(t *testing.T) {
	scene := NewScene()
	scene.Options = Options{MaxRayDepth: 0, Ambient: prim.NewColor(10, 10, 10)}
	mirror := material.Material{Texture: texture.Solid{Color: prim.White}, Reflectiveness: 1.0}
	scene.Objects = []geometry.SceneObject{
		geometry.NewPlane(prim.Vector3{Z: -5}, prim.Vector3{Z: 1}, mirror),
		geometry.NewPlane(prim.Vector3{Z: 5}, prim.Vector3{Z: -1}, mirror),
	}

	ray := prim.NewRay(prim.Vector3{}, prim.Vector3{Z: -1})
	done := make(chan prim.Color, 1)
	go func() { done <- scene.TraceRay(ray, 0) }()

	select {
	case got := <-done:
		v := got.Vector()
		if math.IsNaN(v.X) || math.IsInf(v.X, 0) {
			t.Errorf("TraceRay() = %v, want a finite color", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("TraceRay() did not return, want it to terminate at max_ray_depth=0")
	}
}
