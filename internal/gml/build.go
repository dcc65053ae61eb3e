package gml

import (
	"fmt"

	"github.com/voximity/raytracer-go/internal/camera"
	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/light"
	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/skybox"
	"github.com/voximity/raytracer-go/internal/texture"
	"github.com/voximity/raytracer-go/internal/tracer"
)

// BuildScene parses a GML program and evaluates it, converting the
// RenderArgs the program pushes through the "render" builtin into a
// *tracer.Scene. This adapts the stack language's narrow Sphere/Union
// object model onto the richer scene model the core tracer consumes;
// it is not a full scene-description language. Programs built from
// spheres, translate and union work; the cube, plane, uscale and
// rotatex/y/z builtins are registered without an implementation, so a
// program that calls them fails to evaluate.
func BuildScene(source string) (*tracer.Scene, error) {
	program, err := NewParser(source).Parse()
	if err != nil {
		return nil, fmt.Errorf("gml: parse: %w", err)
	}

	es := NewEvalState()

	var args *RenderArgs
	es.Render = func(a *RenderArgs) { args = a }

	if err := es.Eval(program); err != nil {
		return nil, fmt.Errorf("gml: eval: %w", err)
	}
	if args == nil {
		return nil, fmt.Errorf("gml: program did not call render")
	}

	return SceneFromRenderArgs(es, args)
}

// SceneFromRenderArgs converts the RenderArgs produced by the "render"
// builtin into a *tracer.Scene. Exported so an interactive shell that
// accumulates evaluator state across many lines can render on demand,
// not just after a single one-shot program.
func SceneFromRenderArgs(es *EvalState, args *RenderArgs) (*tracer.Scene, error) {
	scene := tracer.NewScene()

	width, height := args.Width, args.Height
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	fov := args.Fov
	if fov <= 0 {
		fov = 90
	}
	scene.Camera = camera.New(width, height, prim.Vector3{}, 0, 0, fov)

	depth := args.Depth
	if depth <= 0 {
		depth = 4
	}
	ambient := prim.White
	if args.AmbientLight != nil {
		ambient = colorFromGMLPoint(*args.AmbientLight)
	}
	scene.Options = tracer.Options{MaxRayDepth: depth, Ambient: ambient}
	scene.Skybox = skybox.Normal{}

	for _, l := range args.Lights {
		scene.Lights = append(scene.Lights, &light.Point{
			Position:     vectorFromGMLPoint(l.Position),
			MaxDistance:  1000,
			ColorValue:   colorFromGMLPoint(l.Color),
			Intensity:    1,
			SpecPower:    32,
			SpecStrength: 0.5,
		})
	}

	objs, err := flattenObjects(es, args.Scene)
	if err != nil {
		return nil, err
	}
	scene.Objects = objs

	return scene, nil
}

// flattenObjects converts the GML scene-object tree (Sphere | Union,
// recursively) into the core's flat SceneObject list.
func flattenObjects(es *EvalState, obj SceneObject) ([]geometry.SceneObject, error) {
	switch v := obj.(type) {
	case *Sphere:
		mat, err := surfaceFnMaterial(es, v.SurfaceFn)
		if err != nil {
			return nil, err
		}
		center := prim.Vector3{X: float64(v.Center.X), Y: float64(v.Center.Y), Z: float64(v.Center.Z)}
		return []geometry.SceneObject{geometry.NewSphere(center, float64(v.Radius), mat)}, nil
	case *Union:
		var out []geometry.SceneObject
		for _, child := range v.Objects {
			children, err := flattenObjects(es, child)
			if err != nil {
				return nil, err
			}
			out = append(out, children...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("gml: unsupported scene object %T", obj)
	}
}

// surfaceFnMaterial evaluates a sphere's surface closure once, at the
// equator (u=0, v=0.5), to get a representative solid color. The
// closure's kd/ks/specular-exponent outputs belong to the original
// Phong model and have no equivalent field in this tracer's Material,
// so they are intentionally dropped.
func surfaceFnMaterial(es *EvalState, fn VClosure) (material.Material, error) {
	if fn.Code == nil {
		return material.Default(), nil
	}

	oldStack, oldEnv := es.Stack, es.Env
	defer func() { es.Stack, es.Env = oldStack, oldEnv }()
	es.Stack = nil
	es.Env = fn.Env

	es.push(VInt(0))
	es.push(VReal(0))
	es.push(VReal(0.5))

	if err := es.Eval(fn.Code); err != nil {
		return material.Material{}, fmt.Errorf("gml: evaluating surface function: %w", err)
	}

	if _, _, _, err := pop3[VReal](es); err != nil { // kd, ks, specular exponent: unused, see doc comment
		return material.Material{}, fmt.Errorf("gml: surface function did not return (color, kd, ks, n): %w", err)
	}
	colorPoint, err := popValue[Point](es)
	if err != nil {
		return material.Material{}, fmt.Errorf("gml: surface function did not push a color: %w", err)
	}

	mat := material.Default()
	mat.Texture = texture.Solid{Color: colorFromGMLPoint(colorPoint)}
	return mat, nil
}

func colorFromGMLPoint(p Point) prim.Color {
	return prim.ColorFromUnit(prim.Clamp(float64(p.X), 0, 1), prim.Clamp(float64(p.Y), 0, 1), prim.Clamp(float64(p.Z), 0, 1))
}

func vectorFromGMLPoint(p Point) prim.Vector3 {
	return prim.Vector3{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
