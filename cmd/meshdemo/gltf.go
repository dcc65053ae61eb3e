package main

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voximity/raytracer-go/internal/geometry"
	"github.com/voximity/raytracer-go/internal/material"
	"github.com/voximity/raytracer-go/internal/prim"
	"github.com/voximity/raytracer-go/internal/texture"
)

// loadGLTFMesh opens a .glb or .gltf file and flattens its first
// triangle-mode primitive into a geometry.Mesh, ready for BuildBVH.
// Node transforms, multi-primitive meshes, and PBR materials are out of
// scope here; loadGLTFMesh exists to exercise the mesh/BVH path against
// real triangulated data, not to be a general-purpose glTF importer.
func loadGLTFMesh(path string, mat material.Material) (*geometry.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshdemo: open %q: %w", path, err)
	}

	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			m, err := meshFromPrimitive(doc, prim, mat)
			if err != nil {
				return nil, err
			}
			return m, nil
		}
	}

	return nil, fmt.Errorf("meshdemo: %q has no triangle primitives", path)
}

func meshFromPrimitive(doc *gltf.Document, p *gltf.Primitive, mat material.Material) (*geometry.Mesh, error) {
	posIdx, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("meshdemo: primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("meshdemo: read positions: %w", err)
	}

	vertices := make([]prim.Vector3, len(positions))
	for i, pos := range positions {
		vertices[i] = prim.Vector3{X: float64(pos[0]), Y: float64(pos[1]), Z: float64(pos[2])}
	}

	var normals []prim.Vector3
	if idx, ok := p.Attributes[gltf.NORMAL]; ok {
		raw, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("meshdemo: read normals: %w", err)
		}
		normals = make([]prim.Vector3, len(raw))
		for i, n := range raw {
			normals[i] = prim.Vector3{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2])}
		}
	}

	var uvs []texture.UV
	if idx, ok := p.Attributes[gltf.TEXCOORD_0]; ok {
		raw, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("meshdemo: read texcoords: %w", err)
		}
		uvs = make([]texture.UV, len(raw))
		for i, uv := range raw {
			uvs[i] = texture.UV{U: uv[0], V: uv[1]}
		}
	}

	var tris []geometry.TriangleIndices
	if p.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("meshdemo: read indices: %w", err)
		}
		if len(indices)%3 != 0 {
			return nil, fmt.Errorf("meshdemo: index count %d is not a multiple of 3", len(indices))
		}
		tris = make([]geometry.TriangleIndices, len(indices)/3)
		for i := range tris {
			tris[i] = geometry.TriangleIndices{
				int(indices[i*3]), int(indices[i*3+1]), int(indices[i*3+2]),
			}
		}
	} else {
		if len(vertices)%3 != 0 {
			return nil, fmt.Errorf("meshdemo: unindexed vertex count %d is not a multiple of 3", len(vertices))
		}
		tris = make([]geometry.TriangleIndices, len(vertices)/3)
		for i := range tris {
			tris[i] = geometry.TriangleIndices{i * 3, i*3 + 1, i*3 + 2}
		}
	}

	mesh := geometry.NewMesh(vertices, normals, uvs, tris, mat)
	mesh.BuildBVH()
	return mesh, nil
}
