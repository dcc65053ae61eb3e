// Package bvh implements the surface-area-heuristic bounding volume
// hierarchy described in spec §4.2: a binary tree over a set of
// triangle references, built with a parallel fork-join recursion and
// traversed to gather candidate triangle indices for a ray.
package bvh

import (
	"math"
	"sort"
	"sync"

	"github.com/voximity/raytracer-go/internal/bounds"
	"github.com/voximity/raytracer-go/internal/prim"
)

const (
	// numBuckets is B from spec §4.2.
	numBuckets = 32
	// traversalCost is T_trav from spec §4.2.
	traversalCost = 1.0
	// parallelDepthLimit bounds how many levels of the build recursion
	// fork onto new goroutines, keeping total goroutine fan-out
	// proportional to available parallelism instead of unbounded.
	parallelDepthLimit = 6
)

// Reference pairs a triangle index with its precomputed bounding box and
// centroid, the build-time wrapper described in spec §4.2.
type Reference struct {
	Index    int
	Box      bounds.AABB
	Centroid prim.Vector3
}

// NewReference builds a Reference for a triangle given its three
// vertices and its index in the mesh's triangle array.
func NewReference(index int, v0, v1, v2 prim.Vector3) Reference {
	box := bounds.FromPoints(v0, v1, v2)
	return Reference{Index: index, Box: box, Centroid: box.Centroid()}
}

// Node is a tagged variant: a Branch with two children, or a Leaf
// holding the triangle indices it covers. Child links are indices into
// the owning BVH's arena (spec §4.2, §9 design notes).
type Node struct {
	Box AABB

	// IsLeaf distinguishes the two variants.
	IsLeaf bool

	// Branch fields; zero/unused on a leaf.
	Left, Right int

	// Leaf field; nil/unused on a branch.
	Triangles []int
}

// AABB is a local alias so callers of this package don't need to import
// bounds just to read a node's box.
type AABB = bounds.AABB

// BVH is a built hierarchy: an arena of nodes plus the root's index.
type BVH struct {
	Nodes []Node
	Root  int
}

// Build constructs a BVH over the given references. Construction is
// deterministic given the references' order (spec §4.2 correctness
// invariants). An empty reference set produces a BVH with a single
// empty leaf.
func Build(refs []Reference) *BVH {
	if len(refs) == 0 {
		return &BVH{Nodes: []Node{{IsLeaf: true, Box: bounds.Empty()}}, Root: 0}
	}

	b := &builder{}
	root := b.build(refs, 0)
	return &BVH{Nodes: b.arena, Root: root}
}

type builder struct {
	mu    sync.Mutex
	arena []Node
}

// alloc appends a node to the shared arena and returns its index. The
// arena is append-only; allocation is serialized by a mutex so
// concurrent recursive branches can safely emit nodes (spec §5).
func (b *builder) alloc(n Node) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.arena = append(b.arena, n)
	return len(b.arena) - 1
}

func (b *builder) build(refs []Reference, depth int) int {
	if len(refs) < 2 {
		return b.alloc(leafNode(refs))
	}

	bounds := unionBoxes(refs)
	axis := bounds.Extent().MaxAxis()

	left, right, ok := sahSplit(refs, bounds, axis)
	if !ok {
		return b.alloc(leafNode(refs))
	}

	var leftIdx, rightIdx int
	if depth < parallelDepthLimit && len(refs) > 64 {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			leftIdx = b.build(left, depth+1)
		}()
		go func() {
			defer wg.Done()
			rightIdx = b.build(right, depth+1)
		}()
		wg.Wait()
	} else {
		leftIdx = b.build(left, depth+1)
		rightIdx = b.build(right, depth+1)
	}

	return b.alloc(Node{
		IsLeaf: false,
		Left:   leftIdx,
		Right:  rightIdx,
		Box:    b.arena[leftIdx].Box.Union(b.arena[rightIdx].Box),
	})
}

func leafNode(refs []Reference) Node {
	box := unionBoxes(refs)
	tris := make([]int, len(refs))
	for i, r := range refs {
		tris[i] = r.Index
	}
	return Node{IsLeaf: true, Box: box, Triangles: tris}
}

func unionBoxes(refs []Reference) bounds.AABB {
	box := bounds.Empty()
	for _, r := range refs {
		box = box.Union(r.Box)
	}
	return box
}

// sahSplit evaluates the surface-area-heuristic cost of splitting refs
// along axis using numBuckets centroid buckets, per spec §4.2. It
// returns the two partitions and whether splitting beats the cost of a
// single leaf.
func sahSplit(refs []Reference, parent bounds.AABB, axis int) (left, right []Reference, ok bool) {
	extent := parent.Extent().Axis(axis)
	if extent <= 0 {
		return nil, nil, false
	}
	minAxis := parent.Min.Axis(axis)

	type bucket struct {
		count int
		box   bounds.AABB
	}
	var buckets [numBuckets]bucket
	for i := range buckets {
		buckets[i].box = bounds.Empty()
	}

	bucketOf := func(r Reference) int {
		frac := (r.Centroid.Axis(axis) - minAxis) / extent
		idx := int(frac * numBuckets)
		if idx < 0 {
			idx = 0
		}
		if idx >= numBuckets {
			idx = numBuckets - 1
		}
		return idx
	}

	for _, r := range refs {
		i := bucketOf(r)
		buckets[i].count++
		buckets[i].box = buckets[i].box.Union(r.Box)
	}

	// Prefix/suffix surface areas and counts to evaluate each of the
	// B-1 candidate cuts in O(B).
	var prefixBox [numBuckets]bounds.AABB
	var prefixCount [numBuckets]int
	acc := bounds.Empty()
	accCount := 0
	for i := 0; i < numBuckets; i++ {
		acc = acc.Union(buckets[i].box)
		accCount += buckets[i].count
		prefixBox[i] = acc
		prefixCount[i] = accCount
	}

	var suffixBox [numBuckets]bounds.AABB
	var suffixCount [numBuckets]int
	acc = bounds.Empty()
	accCount = 0
	for i := numBuckets - 1; i >= 0; i-- {
		acc = acc.Union(buckets[i].box)
		accCount += buckets[i].count
		suffixBox[i] = acc
		suffixCount[i] = accCount
	}

	parentSA := parent.SurfaceArea()
	if parentSA == 0 {
		return nil, nil, false
	}

	bestCost := math.Inf(1)
	bestSplit := -1
	for i := 0; i < numBuckets-1; i++ {
		nLeft, nRight := prefixCount[i], suffixCount[i+1]
		if nLeft == 0 || nRight == 0 {
			continue
		}
		cost := traversalCost + (float64(nLeft)*prefixBox[i].SurfaceArea()+
			float64(nRight)*suffixBox[i+1].SurfaceArea())/parentSA
		if cost < bestCost {
			bestCost = cost
			bestSplit = i
		}
	}

	leafCost := float64(len(refs))
	if bestSplit < 0 || bestCost >= leafCost {
		return nil, nil, false
	}

	for _, r := range refs {
		if bucketOf(r) <= bestSplit {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return nil, nil, false
	}
	return left, right, true
}

// Traverse descends the BVH, returning every leaf's triangle indices
// whose box the ray intersects (spec §4.2 traversal). The caller is
// responsible for the exact per-triangle intersection test.
func (t *BVH) Traverse(ray prim.Ray) []int {
	var out []int
	t.traverse(t.Root, ray, &out)
	return out
}

func (t *BVH) traverse(nodeIdx int, ray prim.Ray, out *[]int) {
	node := &t.Nodes[nodeIdx]
	if _, ok := node.Box.Intersect(ray); !ok {
		return
	}
	if node.IsLeaf {
		*out = append(*out, node.Triangles...)
		return
	}
	t.traverse(node.Left, ray, out)
	t.traverse(node.Right, ray, out)
}

// AllTriangleIndices returns every triangle index covered by the BVH's
// leaves, for testing the invariant that the union of leaves equals the
// full triangle set with no duplicates (spec §8, property 3).
func (t *BVH) AllTriangleIndices() []int {
	var out []int
	for _, n := range t.Nodes {
		if n.IsLeaf {
			out = append(out, n.Triangles...)
		}
	}
	sort.Ints(out)
	return out
}
