package tracer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/rtlog"
	"go.uber.org/zap"
)

// Render produces a row-major array of vw*vh colors, one per pixel,
// with pixel (x, y) at index y*vw+x (spec §4.7, §6). Pixels are
// independent, so the pool dispatches one task per pixel across all
// available cores, mirroring the flat parallel-for pattern gopher3D
// uses for its own per-chunk work.
func (s *Scene) Render() []prim.Color {
	vw, vh := s.Camera.VW, s.Camera.VH
	out := make([]prim.Color, vw*vh)

	pool := pond.NewPool(runtime.NumCPU())
	defer pool.StopAndWait()

	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			x, y := x, y
			pool.Submit(func() {
				ray := s.Camera.PrimaryRay(x, y)
				out[y*vw+x] = s.TraceRay(ray, 0)
			})
		}
	}

	return out
}

// Image converts a rendered pixel buffer into a standard library image,
// ready for encoding.
func (s *Scene) Image(pixels []prim.Color) *image.RGBA {
	vw, vh := s.Camera.VW, s.Camera.VH
	img := image.NewRGBA(image.Rect(0, 0, vw, vh))
	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			img.Set(x, y, pixels[y*vw+x])
		}
	}
	return img
}

// RenderToFile renders the scene and writes it to path as a PNG. Image
// encoding is outside the core's scope (spec §1); this is a thin
// convenience wrapper the CLI and demos call directly.
func (s *Scene) RenderToFile(path string) error {
	rtlog.Log.Info("rendering scene", zap.Int("width", s.Camera.VW), zap.Int("height", s.Camera.VH))

	pixels := s.Render()
	img := s.Image(pixels)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tracer: create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("tracer: encode png: %w", err)
	}

	rtlog.Log.Info("render complete", zap.String("path", path))
	return nil
}
