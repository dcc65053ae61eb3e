package main

import (
	"github.com/voximity/raytracer-go/internal/camera"
	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/light"
	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/skybox"
	"github.com/voximity/raytracer-go/internal/texture"
	"github.com/voximity/raytracer-go/internal/tracer"
)

// cannedScene builds a small demo scene: a reflective checkerboard
// floor, an opaque red sphere, a clear glass sphere, a sun and a point
// light, rendered against a solid sky. It exists to give the CLI something to
// render without a scene file.
func cannedScene(vw, vh int) *tracer.Scene {
	scene := tracer.NewScene()
	scene.Camera = camera.New(vw, vh, prim.Vector3{Y: 0.5, Z: 2}, 0, -0.1, 70)
	scene.Skybox = skybox.Solid{Color: prim.NewColor(135, 206, 235)}
	scene.Options = tracer.Options{MaxRayDepth: 5, Ambient: prim.NewColor(30, 30, 30)}

	floor := geometry.NewPlane(
		prim.Vector3{Y: -1},
		prim.Up,
		material.Material{
			Texture:        texture.Checkerboard{A: texture.Solid{Color: prim.White}, B: texture.Solid{Color: prim.NewColor(40, 40, 40)}},
			Reflectiveness: 0.3,
			IOR:            1.3,
		},
	)
	floor.UVWrap = 2

	sphere := geometry.NewSphere(
		prim.Vector3{Z: -4},
		1,
		material.Material{
			Texture:        texture.Solid{Color: prim.NewColor(200, 30, 30)},
			Reflectiveness: 0.1,
			Transparency:   0,
			IOR:            1.3,
		},
	)

	glass := geometry.NewSphere(
		prim.Vector3{X: 2.2, Z: -4},
		0.8,
		material.Material{
			Texture:      texture.Solid{Color: prim.White},
			Transparency: 0.9,
			IOR:          1.5,
		},
	)

	scene.Objects = []geometry.SceneObject{floor, sphere, glass}

	scene.Lights = []light.Light{
		&light.Sun{
			Direction:         prim.Vector3{X: -0.3, Y: -1, Z: -0.2},
			ColorValue:        prim.White,
			Intensity:         1.0,
			SpecPower:         32,
			SpecStrength:      0.5,
			ShadowCoefficient: 0.3,
		},
		&light.Point{
			Position:     prim.Vector3{X: -3, Y: 2, Z: -2},
			MaxDistance:  20,
			ColorValue:   prim.NewColor(255, 220, 180),
			Intensity:    8,
			SpecPower:    16,
			SpecStrength: 0.3,
		},
	}

	return scene
}
