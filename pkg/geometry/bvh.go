package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrNoBoundingBox is returned when a BVH member cannot be bounded
	ErrNoBoundingBox = errors.New("object has no bounding box")
	// ErrEmptyBVH is returned when a BVH is built over no objects
	ErrEmptyBVH = errors.New("no objects to build a BVH over")
)

// BVHNode is a node of a bounding volume hierarchy. Children are either
// subtrees or primitives; a node over a single primitive has that primitive
// as both children.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
	size  int // primitives under this node
}

// bvhEntry caches an object's box for the duration of the build
type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// NewBVHNode builds a hierarchy over objects for rays with times in
// [time0, time1]. Split axes are drawn from sampler. The input slice is not
// modified.
func NewBVHNode(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("while building BVH: object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	return buildBVH(entries, sampler), nil
}

// NewBVHFromList builds a hierarchy over the members of a list
func NewBVHFromList(list *HittableList, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	return NewBVHNode(list.Objects, time0, time1, sampler)
}

// buildBVH splits entries on a random axis, ordering by box minimum
func buildBVH(entries []bvhEntry, sampler core.Sampler) *BVHNode {
	axis := core.RandomInt(sampler, 0, 2)
	less := func(a, b bvhEntry) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	node := &BVHNode{size: len(entries)}
	var leftBox, rightBox core.AABB

	switch len(entries) {
	case 1:
		node.Left, node.Right = entries[0].object, entries[0].object
		leftBox, rightBox = entries[0].box, entries[0].box
	case 2:
		first, second := entries[0], entries[1]
		if !less(first, second) {
			first, second = second, first
		}
		node.Left, node.Right = first.object, second.object
		leftBox, rightBox = first.box, second.box
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i], entries[j])
		})
		mid := len(entries) / 2
		left := buildBVH(entries[:mid], sampler)
		right := buildBVH(entries[mid:], sampler)
		node.Left, node.Right = left, right
		leftBox, rightBox = left.Box, right.Box
	}

	node.Box = leftBox.Union(rightBox)
	return node
}

// Hit prunes on the node box, then tests the left child and the right child
// with tMax tightened to any left hit.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node's box, fixed at construction
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Primitives int
	Nodes      int
	MaxDepth   int
}

// Stats walks the tree and reports its size and depth
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{Primitives: n.size}
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if left, ok := n.Left.(*BVHNode); ok && n.size > 2 {
		left.collectStats(depth+1, stats)
	}
	if right, ok := n.Right.(*BVHNode); ok && n.size > 2 {
		right.collectStats(depth+1, stats)
	}
}
