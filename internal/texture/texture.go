// Package texture implements the L1 texture abstraction: a tagged
// variant sampled by UV coordinate in [0, 1]^2.
package texture

import (
	"image"

	"github.com/voximity/raytracer-go/internal/prim"
)

// UV is a 2D texture coordinate. Components are float32 per the Hit
// contract in spec; texture sampling widens to float64 internally.
type UV struct {
	U, V float32
}

// Texture is implemented by every texture variant. Implementations must
// wrap UV coordinates outside [0, 1] the way their kind requires (fract
// for solid/procedural surfaces, clamp for images).
type Texture interface {
	At(uv UV) prim.Color
}

// Solid is a texture that returns the same color everywhere.
type Solid struct {
	Color prim.Color
}

func (s Solid) At(UV) prim.Color { return s.Color }

// Checkerboard alternates between two textures, splitting UV space at
// 0.5 on each axis.
type Checkerboard struct {
	A, B Texture
}

func (c Checkerboard) At(uv UV) prim.Color {
	u := prim.Fract(float64(uv.U))
	v := prim.Fract(float64(uv.V))
	uHalf := u < 0.5
	vHalf := v < 0.5
	if uHalf == vHalf {
		return c.A.At(uv)
	}
	return c.B.At(uv)
}

// Image samples an in-memory RGB image by UV, clamping to the edge.
type Image struct {
	img image.Image
	w, h int
}

// NewImage wraps a decoded image for UV sampling. Decoding the image is
// the caller's responsibility (image I/O is outside the core, per
// spec §1); this constructor only records its dimensions.
func NewImage(img image.Image) *Image {
	b := img.Bounds()
	return &Image{img: img, w: b.Dx(), h: b.Dy()}
}

func (im *Image) Bounds() (w, h int) { return im.w, im.h }

// At samples the image with clamp-to-edge addressing (spec §6).
func (im *Image) At(uv UV) prim.Color {
	return im.sample(float64(uv.U), float64(uv.V))
}

func (im *Image) sample(u, v float64) prim.Color {
	b := im.img.Bounds()
	x := prim.Clamp(u, 0, 1) * float64(im.w-1)
	y := prim.Clamp(v, 0, 1) * float64(im.h-1)

	x0 := int(x)
	y0 := int(y)
	return pixelColor(im.img, b.Min.X+x0, b.Min.Y+y0)
}

// BilinearAt samples with bilinear interpolation among the four nearest
// texels — used by the cubemap skybox (spec §4.4) rather than by plain
// material textures, which clamp to nearest per spec §6.
func (im *Image) BilinearAt(u, v float64) prim.Color {
	b := im.img.Bounds()
	fx := prim.Clamp(u, 0, 1) * float64(im.w-1)
	fy := prim.Clamp(v, 0, 1) * float64(im.h-1)

	x0 := int(fx)
	y0 := int(fy)
	x1 := min(x0+1, im.w-1)
	y1 := min(y0+1, im.h-1)
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := pixelColor(im.img, b.Min.X+x0, b.Min.Y+y0).Vector()
	c10 := pixelColor(im.img, b.Min.X+x1, b.Min.Y+y0).Vector()
	c01 := pixelColor(im.img, b.Min.X+x0, b.Min.Y+y1).Vector()
	c11 := pixelColor(im.img, b.Min.X+x1, b.Min.Y+y1).Vector()

	return prim.ColorFromVector(prim.Blerp(c00, c10, c01, c11, tx, ty))
}

func pixelColor(img image.Image, x, y int) prim.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return prim.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
