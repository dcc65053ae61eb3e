// Package bounds implements the axis-aligned bounding box, shared by the
// AABB scene primitive, the mesh bounding box, the BVH node boxes, and
// the skybox cube projector (spec §4.1, §4.2, §4.4).
package bounds

import (
	"math"

	"github.com/voximity/raytracer-go/internal/prim"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max prim.Vector3
}

// Empty returns a degenerate AABB suitable as the identity element for
// repeated Union calls.
func Empty() AABB {
	return AABB{Min: prim.VectorMax, Max: prim.VectorMin}
}

// FromPoints returns the smallest AABB containing every given point.
func FromPoints(points ...prim.Vector3) AABB {
	b := Empty()
	for _, p := range points {
		b = b.UnionPoint(p)
	}
	return b
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: prim.Min(b.Min, other.Min), Max: prim.Max(b.Max, other.Max)}
}

// UnionPoint returns the smallest AABB containing b and p.
func (b AABB) UnionPoint(p prim.Vector3) AABB {
	return AABB{Min: prim.Min(b.Min, p), Max: prim.Max(b.Max, p)}
}

// Centroid returns the box's midpoint.
func (b AABB) Centroid() prim.Vector3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extent returns the box's size along each axis.
func (b AABB) Extent() prim.Vector3 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the total surface area of the box, used by the SAH
// cost model (spec §4.2). A degenerate (empty) box has zero area.
func (b AABB) SurfaceArea() float64 {
	e := b.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// Hit is the result of intersecting a ray against an AABB: the entry and
// exit ray parameters and the outward face normal at entry, already
// oriented toward the ray per spec §3.
type Hit struct {
	Near, Far float64
	Normal    prim.Vector3
	// NormalAxis and NormalPositive identify which face was entered, for
	// UV face-projection (spec §4.1, §4.4).
	NormalAxis     int
	NormalPositive bool
}

// Intersect implements the slab method described in spec §4.1, using the
// ray's precomputed inverse direction.
func (b AABB) Intersect(ray prim.Ray) (Hit, bool) {
	t1 := b.Min.Sub(ray.Origin).Mul(ray.InvDirection)
	t2 := b.Max.Sub(ray.Origin).Mul(ray.InvDirection)

	tSmall := prim.Min(t1, t2)
	tBig := prim.Max(t1, t2)

	tn := math.Max(tSmall.X, math.Max(tSmall.Y, tSmall.Z))
	tf := math.Min(tBig.X, math.Min(tBig.Y, tBig.Z))

	if tn > tf || tf < 0 {
		return Hit{}, false
	}

	axis := 0
	switch tn {
	case tSmall.Y:
		axis = 1
	case tSmall.Z:
		axis = 2
	}

	sign := -1.0
	if ray.Direction.Axis(axis) < 0 {
		sign = 1.0
	}
	normal := prim.Vector3{}
	switch axis {
	case 0:
		normal.X = sign
	case 1:
		normal.Y = sign
	case 2:
		normal.Z = sign
	}

	return Hit{
		Near:           tn,
		Far:            tf,
		Normal:         normal,
		NormalAxis:     axis,
		NormalPositive: sign > 0,
	}, true
}

// FaceUV projects a world-space point known to lie on the given face of
// the box onto [0, 1]^2, with a fixed per-face orientation (spec §4.1,
// §6).
func (b AABB) FaceUV(axis int, positive bool, p prim.Vector3) (u, v float64) {
	extent := b.Extent()
	local := p.Sub(b.Min).Div(extent)

	switch axis {
	case 0: // +-X face spans YZ
		u, v = local.Z, local.Y
		if positive {
			u = 1 - u
		}
	case 1: // +-Y face spans XZ
		u, v = local.X, local.Z
		if positive {
			v = 1 - v
		}
	case 2: // +-Z face spans XY
		u, v = local.X, local.Y
		if !positive {
			u = 1 - u
		}
	}
	return u, 1 - v
}
