// Package material implements the Material value described in spec §3.
package material

import (
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/texture"
)

// Material describes a surface's appearance and light-transport
// behavior. The zero value is not valid; use Default or New.
type Material struct {
	Texture         texture.Texture
	Reflectiveness  float64 // [0, 1]
	Transparency    float64 // [0, 1]
	IOR             float64 // > 0
	Emissivity      float64 // [0, 1], self-illumination (see SPEC_FULL)
}

// Default returns the material used when none is specified: white
// solid, non-reflective, opaque, glass-ish IOR, no emissivity.
func Default() Material {
	return Material{
		Texture: texture.Solid{Color: prim.White},
		IOR:     1.3,
	}
}

// New builds a Material with the given texture and default physical
// properties, matching Default's IOR.
func New(t texture.Texture) Material {
	m := Default()
	m.Texture = t
	return m
}
