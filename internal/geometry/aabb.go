package geometry

import (
	"github.com/voximity/raytracer-go/internal/bounds"
	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/texture"
)

// Aabb is an axis-aligned box scene object. It reuses the bounds.AABB
// slab test (spec §4.1); the "bare" AABB test used by the BVH, mesh
// bounding box, and skybox projector lives in package bounds so it has
// no dependency on materials.
type Aabb struct {
	Box bounds.AABB
	Mat material.Material
}

func NewAabb(center, halfExtents prim.Vector3, mat material.Material) *Aabb {
	return &Aabb{
		Box: bounds.AABB{Min: center.Sub(halfExtents), Max: center.Add(halfExtents)},
		Mat: mat,
	}
}

func (a *Aabb) Material() *material.Material { return &a.Mat }

func (a *Aabb) Intersect(ray prim.Ray) (Hit, bool) {
	bh, ok := a.Box.Intersect(ray)
	if !ok {
		return Hit{}, false
	}

	nearPoint := ray.Along(bh.Near)
	farPoint := ray.Along(bh.Far)
	u, v := a.Box.FaceUV(bh.NormalAxis, bh.NormalPositive, nearPoint)

	return Hit{
		Normal:    bh.Normal,
		NearT:     bh.Near,
		NearPoint: nearPoint,
		FarT:      bh.Far,
		FarPoint:  farPoint,
		UV:        texture.UV{U: float32(u), V: float32(v)},
	}, true
}
