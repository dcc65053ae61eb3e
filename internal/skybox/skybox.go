// Package skybox implements the background colors returned when a
// primary or secondary ray escapes the scene without hitting anything
// (spec §3 Skybox, §4.4).
package skybox

import (
	"github.com/voximity/raytracer-go/internal/prim"
)

// Skybox is implemented by every skybox variant.
type Skybox interface {
	// RayColor returns the background color a ray that escaped the scene
	// should be given.
	RayColor(ray prim.Ray) prim.Color
}

// Solid returns the same color for every direction.
type Solid struct {
	Color prim.Color
}

func (s Solid) RayColor(prim.Ray) prim.Color { return s.Color }

// Normal visualizes the ray direction itself as a color, via the same
// n/2+0.5 mapping used for surface normals. Mainly a debugging aid.
type Normal struct{}

func (Normal) RayColor(ray prim.Ray) prim.Color {
	return prim.ColorFromNormal(ray.Direction)
}
