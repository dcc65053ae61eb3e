// Package tracer implements L7: the Scene value and the recursive
// shader that turns a primary ray into a Color (spec §3 Scene, §4.6).
package tracer

import (
	"github.com/voximity/raytracer-go/internal/camera"
	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/light"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/skybox"
)

// Options holds the scene-wide render settings (spec §3 Scene).
type Options struct {
	MaxRayDepth int
	Ambient     prim.Color
}

// DefaultOptions returns the spec's default options: depth 4, ambient
// (40, 40, 40).
func DefaultOptions() Options {
	return Options{MaxRayDepth: 4, Ambient: prim.NewColor(40, 40, 40)}
}

// Scene owns every object, light, the camera, and the skybox for the
// duration of a render (spec §3 Scene, §5 "Shared resources").
type Scene struct {
	Objects []geometry.SceneObject
	Lights  []light.Light
	Camera  *camera.Camera
	Skybox  skybox.Skybox
	Options Options
}

// NewScene returns an empty scene with the spec's defaults: no objects
// or lights, a default camera, a normal-colored skybox.
func NewScene() *Scene {
	return &Scene{
		Camera:  camera.Default(),
		Skybox:  skybox.Normal{},
		Options: DefaultOptions(),
	}
}

// nearestHit scans every scene object and returns the one with the
// smallest Hit.NearT, per spec §4.6 step 1.
func (s *Scene) nearestHit(ray prim.Ray) (geometry.SceneObject, geometry.Hit, bool) {
	var (
		bestObj geometry.SceneObject
		best    geometry.Hit
		found   bool
	)
	for _, obj := range s.Objects {
		hit, ok := obj.Intersect(ray)
		if !ok {
			continue
		}
		if !found || hit.NearT < best.NearT {
			bestObj, best, found = obj, hit, true
		}
	}
	return bestObj, best, found
}

// AnyHitBefore implements light.ShadowCaster: it reports whether any
// scene object occludes the ray at or before parameter maxT.
func (s *Scene) AnyHitBefore(ray prim.Ray, maxT float64) bool {
	for _, obj := range s.Objects {
		hit, ok := obj.Intersect(ray)
		if ok && hit.NearT <= maxT {
			return true
		}
	}
	return false
}
