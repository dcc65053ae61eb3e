package bvh

import (
	"math/rand"
	"testing"

	"github.com/voximity/raytracer-go/internal/prim"
)

func randomTriangle(rng *rand.Rand, center prim.Vector3) (prim.Vector3, prim.Vector3, prim.Vector3) {
	jitter := func() prim.Vector3 {
		return prim.Vector3{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
	}
	return center.Add(jitter()), center.Add(jitter()), center.Add(jitter())
}

func buildRandomBVH(n int) *BVH {
	rng := rand.New(rand.NewSource(1))
	refs := make([]Reference, n)
	for i := 0; i < n; i++ {
		center := prim.Vector3{X: float64(i % 10), Y: float64((i / 10) % 10), Z: float64(i / 100)}
		v0, v1, v2 := randomTriangle(rng, center)
		refs[i] = NewReference(i, v0, v1, v2)
	}
	return Build(refs)
}

// TestLeavesCoverEveryTriangleExactlyOnce is property 3: the union of
// all leaf triangle-index sets equals the index set of the input, with
// no duplicates.
func TestLeavesCoverEveryTriangleExactlyOnce(t *testing.T) {
	const n = 500
	tree := buildRandomBVH(n)

	got := tree.AllTriangleIndices()
	if len(got) != n {
		t.Fatalf("AllTriangleIndices() has %d entries, want %d", len(got), n)
	}
	for i, idx := range got {
		if idx != i {
			t.Fatalf("AllTriangleIndices()[%d] = %d, want %d (gaps or duplicates)", i, idx, i)
		}
	}
}

// TestNodeBoxesContainChildren is property 4: every node's AABB
// contains the AABBs of all triangles reachable from it.
func TestNodeBoxesContainChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	refs := make([]Reference, 200)
	for i := range refs {
		center := prim.Vector3{X: float64(i%7) * 3, Y: float64(i%5) * 2, Z: float64(i % 3)}
		v0, v1, v2 := randomTriangle(rng, center)
		refs[i] = NewReference(i, v0, v1, v2)
	}
	byIndex := make(map[int]Reference, len(refs))
	for _, r := range refs {
		byIndex[r.Index] = r
	}
	tree := Build(refs)

	var walk func(nodeIdx int) AABB
	walk = func(nodeIdx int) AABB {
		node := tree.Nodes[nodeIdx]
		if node.IsLeaf {
			for _, idx := range node.Triangles {
				box := byIndex[idx].Box
				if !contains(node.Box, box) {
					t.Fatalf("leaf box %v does not contain triangle %d box %v", node.Box, idx, box)
				}
			}
			return node.Box
		}
		left := walk(node.Left)
		right := walk(node.Right)
		if !contains(node.Box, left) || !contains(node.Box, right) {
			t.Fatalf("branch box %v does not contain both children (%v, %v)", node.Box, left, right)
		}
		return node.Box
	}
	walk(tree.Root)
}

func contains(outer, inner AABB) bool {
	const eps = 1e-9
	return outer.Min.X <= inner.Min.X+eps && outer.Min.Y <= inner.Min.Y+eps && outer.Min.Z <= inner.Min.Z+eps &&
		outer.Max.X >= inner.Max.X-eps && outer.Max.Y >= inner.Max.Y-eps && outer.Max.Z >= inner.Max.Z-eps
}

func TestBuildEmptyProducesSingleEmptyLeaf(t *testing.T) {
	tree := Build(nil)
	if len(tree.Nodes) != 1 || !tree.Nodes[0].IsLeaf {
		t.Fatalf("Build(nil) = %+v, want a single empty leaf", tree)
	}
	if got := tree.AllTriangleIndices(); len(got) != 0 {
		t.Errorf("AllTriangleIndices() = %v, want empty", got)
	}
}
