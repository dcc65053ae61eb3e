package geometry

import (
	"sort"

	"github.com/voximity/raytracer-go/internal/bvh"
	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/texture"
)

// TriangleIndices is one triangle: a triple of indices into the mesh's
// vertex (and, if present, normal/UV) arrays.
type TriangleIndices [3]int

// Mesh is a triangulated surface: vertex positions plus optional
// per-vertex normals and UVs, and the triangle index triples that
// reference them (spec §3 Mesh). A Mesh must have its BVH built (via
// BuildBVH) before any ray is traced against it.
type Mesh struct {
	Vertices []prim.Vector3
	Normals  []prim.Vector3 // optional; len 0 or len(Vertices)
	UVs      []texture.UV   // optional; len 0 or len(Vertices)
	Tris     []TriangleIndices

	Mat material.Material

	tree *bvh.BVH
}

// NewMesh stores the given slices and returns an unaccelerated mesh;
// call BuildBVH before tracing against it. It does not check that
// normals/UVs, if present, cover every vertex referenced by a triangle.
func NewMesh(vertices []prim.Vector3, normals []prim.Vector3, uvs []texture.UV, tris []TriangleIndices, mat material.Material) *Mesh {
	return &Mesh{Vertices: vertices, Normals: normals, UVs: uvs, Tris: tris, Mat: mat}
}

func (m *Mesh) Material() *material.Material { return &m.Mat }

// BuildBVH constructs the mesh's SAH BVH over its triangles (spec
// §4.2). It must be called once, after the mesh's geometry is final and
// before any call to Intersect.
func (m *Mesh) BuildBVH() {
	refs := make([]bvh.Reference, len(m.Tris))
	for i, tri := range m.Tris {
		refs[i] = bvh.NewReference(i, m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]])
	}
	m.tree = bvh.Build(refs)
}

// candidateHit is an intermediate result while resolving the nearest
// and second-nearest triangle hit for a ray.
type candidateHit struct {
	tri  TriangleIndices
	hit  triangleHit
}

// Intersect delegates to the BVH for a candidate triangle set, tests
// each candidate with Möller–Trumbore, and returns a Hit whose Near is
// the closest triangle and Far is the second-closest (or equal to Near
// if only one triangle was hit) — spec §4.1.
func (m *Mesh) Intersect(ray prim.Ray) (Hit, bool) {
	if m.tree == nil {
		panic("geometry: Mesh.Intersect called before BuildBVH")
	}

	candidates := m.tree.Traverse(ray)
	if len(candidates) == 0 {
		return Hit{}, false
	}

	hits := make([]candidateHit, 0, len(candidates))
	for _, idx := range candidates {
		tri := m.Tris[idx]
		v0, v1, v2 := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		h, ok := intersectTriangle(ray, v0, v1, v2)
		if !ok {
			continue
		}
		hits = append(hits, candidateHit{tri: tri, hit: h})
	}
	if len(hits) == 0 {
		return Hit{}, false
	}

	// Sort ascending by t. NaN never arises here (Möller–Trumbore only
	// divides by a determinant already checked non-zero), but ties are
	// broken as Equal per spec §4.6 numerical policy.
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].hit.T < hits[j].hit.T
	})

	near := hits[0]
	far := hits[0]
	if len(hits) > 1 {
		far = hits[1]
	}

	normal, uv := m.surfaceAt(near.tri, near.hit, ray)

	return Hit{
		Normal:    normal,
		NearT:     near.hit.T,
		NearPoint: ray.Along(near.hit.T),
		FarT:      far.hit.T,
		FarPoint:  ray.Along(far.hit.T),
		UV:        uv,
	}, true
}

func (m *Mesh) surfaceAt(tri TriangleIndices, h triangleHit, ray prim.Ray) (prim.Vector3, texture.UV) {
	v0, v1, v2 := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]

	var normal prim.Vector3
	if len(m.Normals) > 0 {
		n0, n1, n2 := m.Normals[tri[0]], m.Normals[tri[1]], m.Normals[tri[2]]
		normal = barycentric(n0, n1, n2, h.U, h.V).Normalize()
	} else {
		normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	}
	normal = faceNormal(normal, ray.Direction)

	var u, v float64
	if len(m.UVs) > 0 {
		uv0, uv1, uv2 := m.UVs[tri[0]], m.UVs[tri[1]], m.UVs[tri[2]]
		w := 1 - h.U - h.V
		u = w*float64(uv0.U) + h.U*float64(uv1.U) + h.V*float64(uv2.U)
		v = w*float64(uv0.V) + h.U*float64(uv1.V) + h.V*float64(uv2.V)
	} else {
		u, v = h.U, h.V
	}
	v = 1 - prim.Fract(v)

	return normal, texture.UV{U: float32(u), V: float32(v)}
}
