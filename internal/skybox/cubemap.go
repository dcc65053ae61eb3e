package skybox

import (
	"github.com/voximity/raytracer-go/internal/bounds"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/texture"
)

// cube is the AABB a direction is re-intersected against to find its
// face and per-face UV (spec §4.4): centered at the origin with
// half-extents (0.5, 0.5, 0.5).
var cube = bounds.AABB{
	Min: prim.Vector3{X: -0.5, Y: -0.5, Z: -0.5},
	Max: prim.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
}

// cell identifies one face's position in the 4x3 cross layout (spec
// §4.4, §6):
//
//	.   +Y  .   .
//	+X  −Z  −X  +Z
//	.   −Y  .   .
type cell struct{ col, row int }

func cellFor(axis int, positive bool) cell {
	switch axis {
	case 0:
		if positive {
			return cell{0, 1}
		}
		return cell{2, 1}
	case 1:
		if positive {
			return cell{1, 0}
		}
		return cell{1, 2}
	default:
		if positive {
			return cell{3, 1}
		}
		return cell{1, 1}
	}
}

// Cubemap samples a single image laid out as a 4x3 cross of the six cube
// faces (spec §4.4). A ray direction d is re-intersected as
// Ray(2d, -d) against the unit-ish cube to recover the entered face and
// its local UV, then bilinearly sampled from that face's cell in the
// atlas.
type Cubemap struct {
	Atlas *texture.Image
}

// NewCubemap wraps a decoded 4x3 cross atlas image.
func NewCubemap(atlas *texture.Image) *Cubemap {
	return &Cubemap{Atlas: atlas}
}

func (c *Cubemap) RayColor(ray prim.Ray) prim.Color {
	direction := ray.Direction
	probe := prim.NewRay(direction.Scale(2), direction.Neg())
	hit, ok := cube.Intersect(probe)
	if !ok {
		return prim.Black
	}

	point := probe.Along(hit.Near)
	u, v := cube.FaceUV(hit.NormalAxis, hit.NormalPositive, point)

	// Spec §6: on +Y use (1-u, 1-v); on -Y use (u, 1-v), so the cross
	// edges match at the seams with the side faces.
	if hit.NormalAxis == 1 {
		if hit.NormalPositive {
			u, v = 1-u, 1-v
		} else {
			v = 1 - v
		}
	}

	cl := cellFor(hit.NormalAxis, hit.NormalPositive)
	atlasU := (float64(cl.col) + u) / 4
	atlasV := (float64(cl.row) + v) / 3

	return c.Atlas.BilinearAt(atlasU, atlasV)
}
